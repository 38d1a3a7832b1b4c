// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view holds the user-facing view state of the scene:
// zoom, rotation, and the hovered and clicked nodes.
package view

import (
	"fmt"
	"slices"

	"cogentcore.org/synaptic/camera"
	"cogentcore.org/synaptic/graph"
	"cogentcore.org/synaptic/math32"
)

// State is the view state of the scene. It is owned by the scene
// and only mutated on the scene goroutine.
type State struct {

	// Zoom is the zoom level, in [0, 100].
	Zoom float32

	// RotationX is the rotation of the network around the X axis, in radians.
	RotationX float32

	// RotationY is the rotation of the network around the Y axis, in radians.
	RotationY float32

	// Hovered is the node under the pointer, or [graph.NoNode].
	Hovered graph.NodeID

	// Clicked is the set of clicked nodes.
	Clicked map[graph.NodeID]struct{}

	// LastClicked is the most recently clicked node, reported to the UI.
	LastClicked graph.NodeID
}

// New returns a new view state at the given zoom level.
func New(zoom float32) *State {
	vs := &State{}
	vs.SetZoom(zoom)
	return vs
}

// SetZoom sets the zoom level, clamped to [0, 100].
func (vs *State) SetZoom(zoom float32) {
	vs.Zoom = camera.ClampZoom(zoom)
}

// Rotate advances both rotation angles by the given amount.
// The angles are kept within one turn, so that small steps
// still advance them after any number of frames.
func (vs *State) Rotate(delta float32) {
	vs.RotationX = math32.Mod(vs.RotationX+delta, 2*math32.Pi)
	vs.RotationY = math32.Mod(vs.RotationY+delta, 2*math32.Pi)
}

// Rotation returns the rotation matrix of the network.
func (vs *State) Rotation() *math32.Matrix4 {
	m := &math32.Matrix4{}
	m.SetRotationFromEuler(math32.Vec3(vs.RotationX, vs.RotationY, 0))
	return m
}

// WorldPos returns the world position of the given network-local position.
func (vs *State) WorldPos(pos math32.Vector3) math32.Vector3 {
	return pos.MulMatrix4AsPoint(vs.Rotation())
}

// IsClicked returns whether the given node is in the clicked set.
func (vs *State) IsClicked(id graph.NodeID) bool {
	_, ok := vs.Clicked[id]
	return ok
}

// ToggleClicked adds the node to the clicked set if it is not in it,
// and removes it otherwise. It returns whether the node is now clicked.
func (vs *State) ToggleClicked(id graph.NodeID) bool {
	if vs.IsClicked(id) {
		delete(vs.Clicked, id)
		return false
	}
	if vs.Clicked == nil {
		vs.Clicked = make(map[graph.NodeID]struct{})
	}
	vs.Clicked[id] = struct{}{}
	vs.LastClicked = id
	return true
}

// ClickedIDs returns the clicked node ids in ascending order.
func (vs *State) ClickedIDs() []graph.NodeID {
	ids := make([]graph.NodeID, 0, len(vs.Clicked))
	for id := range vs.Clicked {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Selected returns the node the UI should report: the hovered node
// if any, otherwise the last clicked node if it is still clicked.
func (vs *State) Selected() (graph.NodeID, bool) {
	if vs.Hovered != graph.NoNode {
		return vs.Hovered, true
	}
	if vs.LastClicked != graph.NoNode && vs.IsClicked(vs.LastClicked) {
		return vs.LastClicked, true
	}
	return graph.NoNode, false
}

// ResetSelection clears the hovered and clicked nodes, as needed
// when the graph they refer to is replaced.
func (vs *State) ResetSelection() {
	vs.Hovered = graph.NoNode
	vs.LastClicked = graph.NoNode
	clear(vs.Clicked)
}

func (vs *State) String() string {
	return fmt.Sprintf("view.State{Zoom: %g, Rotation: (%g, %g), Hovered: %v, Clicked: %d}", vs.Zoom, vs.RotationX, vs.RotationY, vs.Hovered, len(vs.Clicked))
}

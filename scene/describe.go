// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/synaptic/camera"
	"cogentcore.org/synaptic/colors"
	"cogentcore.org/synaptic/graph"
	"cogentcore.org/synaptic/math32"
	"cogentcore.org/synaptic/picker"
)

// NodePrim is a node drawn as a sphere.
type NodePrim struct {
	ID        graph.NodeID     `json:"id"`
	Pos       math32.Vector3   `json:"pos"`
	Color     color.RGBA       `json:"color"`
	Radius    float32          `json:"radius"`
	Highlight graph.Highlights `json:"highlight"`
}

// LinePrim is a connection drawn as a line segment.
type LinePrim struct {
	A     math32.Vector3 `json:"a"`
	B     math32.Vector3 `json:"b"`
	Color color.RGBA     `json:"color"`
}

// Description is the renderer-independent description of a frame.
// Positions are in world coordinates, with the rotation of the
// network already applied.
type Description struct {

	// Frame is the number of animation frames run so far.
	Frame uint64 `json:"frame"`

	// Nodes in creation order.
	Nodes []NodePrim `json:"nodes"`

	// Lines in creation order.
	Lines []LinePrim `json:"lines"`

	// Camera is a copy of the camera.
	Camera camera.Camera `json:"camera"`

	// RotationX and RotationY are the rotation of the network, in radians.
	RotationX float32 `json:"rotationX"`
	RotationY float32 `json:"rotationY"`

	// Background is the clear color.
	Background color.RGBA `json:"background"`

	// Selected is the selected node, or [graph.NoNode].
	Selected graph.NodeID `json:"selected"`

	// Clicked are the clicked nodes, in ascending order.
	Clicked []graph.NodeID `json:"clicked"`

	// Neighbors are the nodes connected to the selected node.
	Neighbors []graph.NodeID `json:"neighbors"`
}

// Describe returns the description of the current frame.
func (sc *Scene) Describe() *Description {
	rot := sc.View.Rotation()
	d := &Description{
		Frame:      sc.Loop.Frames,
		Camera:     *sc.Camera,
		RotationX:  sc.View.RotationX,
		RotationY:  sc.View.RotationY,
		Background: colors.Background,
		Clicked:    sc.View.ClickedIDs(),
	}
	if id, ok := sc.View.Selected(); ok {
		d.Selected = id
		d.Neighbors = sc.Graph.Neighbors(id)
	}
	nodes := sc.Graph.Nodes()
	d.Nodes = make([]NodePrim, len(nodes))
	for i, nd := range nodes {
		d.Nodes[i] = NodePrim{
			ID:        nd.ID,
			Pos:       nd.Pos.MulMatrix4AsPoint(rot),
			Color:     nd.Color,
			Radius:    picker.NodeRadius,
			Highlight: nd.Highlight,
		}
	}
	cons := sc.Graph.Connections()
	d.Lines = make([]LinePrim, len(cons))
	for i, cn := range cons {
		d.Lines[i] = LinePrim{
			A:     cn.A.MulMatrix4AsPoint(rot),
			B:     cn.B.MulMatrix4AsPoint(rot),
			Color: colors.Line,
		}
	}
	return d
}

// NodeByID returns the prim of the given node.
func (d *Description) NodeByID(id graph.NodeID) (NodePrim, bool) {
	for _, np := range d.Nodes {
		if np.ID == id {
			return np, true
		}
	}
	return NodePrim{}, false
}

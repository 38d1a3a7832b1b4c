// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package picker resolves pointer rays to nodes, and applies
// the hover and click highlight rules of the scene.
package picker

import (
	"log/slog"

	"cogentcore.org/synaptic/colors"
	"cogentcore.org/synaptic/graph"
	"cogentcore.org/synaptic/math32"
	"cogentcore.org/synaptic/view"
)

// NodeRadius is the radius of the sphere drawn for each node,
// which is also the radius used for hit testing.
const NodeRadius = 0.05

// Target is a node at its current world position.
type Target struct {
	ID  graph.NodeID
	Pos math32.Vector3
}

// Targets returns the nodes of the graph at their world positions
// under the rotation of the given view state, in creation order.
func Targets(g *graph.Graph, vs *view.State) []Target {
	rot := vs.Rotation()
	nodes := g.Nodes()
	tgs := make([]Target, len(nodes))
	for i, nd := range nodes {
		tgs[i] = Target{ID: nd.ID, Pos: nd.Pos.MulMatrix4AsPoint(rot)}
	}
	return tgs
}

// Pick returns the target whose sphere of the given radius is
// intersected nearest to the ray origin. It returns [graph.NoNode]
// and false when the ray misses all of them.
func Pick(ray *math32.Ray, targets []Target, radius float32) (graph.NodeID, bool) {
	best := graph.NoNode
	bestT := math32.Infinity
	for _, tg := range targets {
		t, ok := ray.IntersectSphere(math32.Sphere{Center: tg.Pos, Radius: radius})
		if !ok || t >= bestT {
			continue
		}
		best = tg.ID
		bestT = t
	}
	return best, best != graph.NoNode
}

// Picker applies pointer events to the highlight state
// of a graph and its view state.
type Picker struct {

	// Radius is the hit radius of each node.
	Radius float32 `default:"0.05"`
}

// New returns a new picker using [NodeRadius].
func New() *Picker {
	return &Picker{Radius: NodeRadius}
}

// Hit returns the node hit by the given ray against the current
// nodes of the graph, under the current rotation.
func (pk *Picker) Hit(g *graph.Graph, vs *view.State, ray *math32.Ray) (graph.NodeID, bool) {
	if g == nil || g.Len() == 0 {
		return graph.NoNode, false
	}
	return Pick(ray, Targets(g, vs), pk.Radius)
}

// Move applies a pointer move along the given ray. On a hit, the
// node becomes the hovered node and is highlighted unless clicked,
// and a different previously hovered node that is not clicked is
// restored to its density color. On a miss, there is no hovered
// node and every node that is not clicked is restored.
// It returns the hovered node.
func (pk *Picker) Move(g *graph.Graph, vs *view.State, ray *math32.Ray) (graph.NodeID, bool) {
	id, hit := pk.Hit(g, vs, ray)
	if !hit {
		vs.Hovered = graph.NoNode
		if g == nil {
			return graph.NoNode, false
		}
		for _, nd := range g.Nodes() {
			if vs.IsClicked(nd.ID) {
				continue
			}
			restore(g, nd)
		}
		return graph.NoNode, false
	}
	prev := vs.Hovered
	vs.Hovered = id
	if prev != id && prev != graph.NoNode && !vs.IsClicked(prev) {
		if pn, ok := g.NodeByID(prev); ok {
			restore(g, pn)
		}
	}
	if nd, ok := g.NodeByID(id); ok && !vs.IsClicked(id) {
		nd.Highlight = graph.Hovered
		nd.Color = colors.Highlight
	}
	return id, true
}

// Click applies a pointer click along the given ray. A hit toggles
// the node in the clicked set: added nodes are highlighted, removed
// nodes are restored to their density color. A miss does nothing.
// It returns the node hit.
func (pk *Picker) Click(g *graph.Graph, vs *view.State, ray *math32.Ray) (graph.NodeID, bool) {
	id, hit := pk.Hit(g, vs, ray)
	if !hit {
		return graph.NoNode, false
	}
	nd, ok := g.NodeByID(id)
	if !ok {
		return graph.NoNode, false
	}
	if vs.ToggleClicked(id) {
		nd.Highlight = graph.Clicked
		nd.Color = colors.Highlight
		slog.Debug("node clicked", "id", id)
		return id, true
	}
	nd.Color = colors.ForConnections(g.ConnectionCount(id))
	if vs.Hovered == id {
		nd.Highlight = graph.Hovered
	} else {
		nd.Highlight = graph.Normal
	}
	slog.Debug("node unclicked", "id", id)
	return id, true
}

// restore returns the node to its normal density color.
func restore(g *graph.Graph, nd *graph.Node) {
	nd.Highlight = graph.Normal
	nd.Color = colors.ForConnections(g.ConnectionCount(nd.ID))
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"testing"

	"cogentcore.org/synaptic/base/randx"
	"cogentcore.org/synaptic/colors"
	"cogentcore.org/synaptic/graph"
	"cogentcore.org/synaptic/math32"
	"cogentcore.org/synaptic/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eye = math32.Vec3(0, 0, 5)

// rayTo returns a ray from the eye through the given world point.
func rayTo(p math32.Vector3) *math32.Ray {
	return math32.NewRay(eye, p.Sub(eye))
}

// missRay points away from the unit cube.
func missRay() *math32.Ray {
	return math32.NewRay(eye, math32.Vec3(0, 0, 1))
}

func testGraph(t *testing.T) (*graph.Graph, *view.State) {
	g := graph.Build(&graph.IDAllocator{}, randx.NewSysRand(7), 12, 30)
	require.Equal(t, 12, g.Len())
	return g, view.New(50)
}

// firstHittable returns a node whose center ray picks that same node.
func firstHittable(t *testing.T, g *graph.Graph, vs *view.State, skip ...graph.NodeID) *graph.Node {
	tgs := Targets(g, vs)
outer:
	for i, tg := range tgs {
		for _, s := range skip {
			if s == tg.ID {
				continue outer
			}
		}
		if id, ok := Pick(rayTo(tg.Pos), tgs, NodeRadius); ok && id == tg.ID {
			return g.Nodes()[i]
		}
	}
	t.Fatal("no hittable node")
	return nil
}

func TestPickNearest(t *testing.T) {
	tgs := []Target{
		{ID: 1, Pos: math32.Vec3(0, 0, -1)},
		{ID: 2, Pos: math32.Vec3(0, 0, 1)},
		{ID: 3, Pos: math32.Vec3(0.5, 0, 2)},
	}
	id, ok := Pick(math32.NewRay(eye, math32.Vec3(0, 0, -1)), tgs, NodeRadius)
	assert.True(t, ok)
	assert.Equal(t, graph.NodeID(2), id)
}

func TestPickMiss(t *testing.T) {
	tgs := []Target{{ID: 1, Pos: math32.Vec3(0, 0, 0)}}
	id, ok := Pick(math32.NewRay(eye, math32.Vec3(1, 0, -1)), tgs, NodeRadius)
	assert.False(t, ok)
	assert.Equal(t, graph.NoNode, id)

	id, ok = Pick(missRay(), nil, NodeRadius)
	assert.False(t, ok)
	assert.Equal(t, graph.NoNode, id)
}

func TestPickRotated(t *testing.T) {
	g, vs := testGraph(t)
	vs.Rotate(0.8)
	nd := firstHittable(t, g, vs)
	pk := New()

	id, ok := pk.Hit(g, vs, rayTo(vs.WorldPos(nd.Pos)))
	assert.True(t, ok)
	assert.Equal(t, nd.ID, id)
}

func TestMoveHover(t *testing.T) {
	g, vs := testGraph(t)
	pk := New()
	a := firstHittable(t, g, vs)
	b := firstHittable(t, g, vs, a.ID)

	id, ok := pk.Move(g, vs, rayTo(vs.WorldPos(a.Pos)))
	assert.True(t, ok)
	assert.Equal(t, a.ID, id)
	assert.Equal(t, a.ID, vs.Hovered)
	assert.Equal(t, graph.Hovered, a.Highlight)
	assert.Equal(t, colors.Highlight, a.Color)

	pk.Move(g, vs, rayTo(vs.WorldPos(b.Pos)))
	assert.Equal(t, b.ID, vs.Hovered)
	assert.Equal(t, graph.Normal, a.Highlight)
	assert.Equal(t, colors.ForConnections(g.ConnectionCount(a.ID)), a.Color)
	assert.Equal(t, colors.Highlight, b.Color)
}

func TestMoveMissRestores(t *testing.T) {
	g, vs := testGraph(t)
	pk := New()
	a := firstHittable(t, g, vs)
	pk.Move(g, vs, rayTo(vs.WorldPos(a.Pos)))

	id, ok := pk.Move(g, vs, missRay())
	assert.False(t, ok)
	assert.Equal(t, graph.NoNode, id)
	assert.Equal(t, graph.NoNode, vs.Hovered)
	for _, nd := range g.Nodes() {
		assert.Equal(t, graph.Normal, nd.Highlight)
		assert.Equal(t, colors.ForConnections(g.ConnectionCount(nd.ID)), nd.Color, "node %v", nd.ID)
	}
}

func TestMoveMissKeepsClicked(t *testing.T) {
	g, vs := testGraph(t)
	pk := New()
	a := firstHittable(t, g, vs)
	pk.Click(g, vs, rayTo(vs.WorldPos(a.Pos)))
	pk.Move(g, vs, missRay())
	assert.Equal(t, graph.Clicked, a.Highlight)
	assert.Equal(t, colors.Highlight, a.Color)
}

func TestMoveOverClicked(t *testing.T) {
	g, vs := testGraph(t)
	pk := New()
	a := firstHittable(t, g, vs)
	pk.Click(g, vs, rayTo(vs.WorldPos(a.Pos)))
	pk.Move(g, vs, rayTo(vs.WorldPos(a.Pos)))
	assert.Equal(t, a.ID, vs.Hovered)
	assert.Equal(t, graph.Clicked, a.Highlight)
}

func TestClickToggle(t *testing.T) {
	g, vs := testGraph(t)
	pk := New()
	a := firstHittable(t, g, vs)
	ray := rayTo(vs.WorldPos(a.Pos))

	id, ok := pk.Click(g, vs, ray)
	assert.True(t, ok)
	assert.Equal(t, a.ID, id)
	assert.True(t, vs.IsClicked(a.ID))
	assert.Equal(t, graph.Clicked, a.Highlight)
	assert.Equal(t, colors.Highlight, a.Color)

	pk.Click(g, vs, ray)
	assert.False(t, vs.IsClicked(a.ID))
	assert.Equal(t, graph.Normal, a.Highlight)
	assert.Equal(t, colors.ForConnections(g.ConnectionCount(a.ID)), a.Color)
}

func TestClickOtherKeepsFirst(t *testing.T) {
	g, vs := testGraph(t)
	pk := New()
	a := firstHittable(t, g, vs)
	b := firstHittable(t, g, vs, a.ID)

	pk.Click(g, vs, rayTo(vs.WorldPos(a.Pos)))
	pk.Move(g, vs, rayTo(vs.WorldPos(b.Pos)))
	id, ok := pk.Click(g, vs, rayTo(vs.WorldPos(b.Pos)))
	assert.True(t, ok)
	assert.Equal(t, b.ID, id)

	assert.True(t, vs.IsClicked(a.ID))
	assert.Equal(t, graph.Clicked, a.Highlight)
	assert.Equal(t, colors.Highlight, a.Color)
	assert.True(t, vs.IsClicked(b.ID))
	assert.Equal(t, graph.Clicked, b.Highlight)
	assert.Equal(t, b.ID, vs.LastClicked)
	assert.ElementsMatch(t, []graph.NodeID{a.ID, b.ID}, vs.ClickedIDs())
}

func TestClickMissNoop(t *testing.T) {
	g, vs := testGraph(t)
	pk := New()
	a := firstHittable(t, g, vs)
	pk.Click(g, vs, rayTo(vs.WorldPos(a.Pos)))

	id, ok := pk.Click(g, vs, missRay())
	assert.False(t, ok)
	assert.Equal(t, graph.NoNode, id)
	assert.Equal(t, []graph.NodeID{a.ID}, vs.ClickedIDs())
}

func TestEmptyGraph(t *testing.T) {
	g := graph.New(nil, nil)
	vs := view.New(50)
	pk := New()
	_, ok := pk.Move(g, vs, missRay())
	assert.False(t, ok)
	_, ok = pk.Click(g, vs, missRay())
	assert.False(t, ok)
	_, ok = pk.Move(nil, vs, missRay())
	assert.False(t, ok)
}

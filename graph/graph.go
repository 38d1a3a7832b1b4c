// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph provides the network model of the scene: nodes at
// fixed random positions, the connections between them, and an
// adjacency index keyed by node id.
//
// A Graph is never edited structurally beyond appending nodes:
// any change in node or connection count is applied by building
// a complete replacement with [Build].
package graph

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/synaptic/base/ordmap"
	"cogentcore.org/synaptic/base/randx"
	"cogentcore.org/synaptic/colors"
	"cogentcore.org/synaptic/math32"
)

// Extent is the half size of the cube in which node positions are
// sampled: each coordinate is in [-Extent, Extent).
const Extent = 1

// Node is a point in the network with a fixed position.
type Node struct {

	// ID is the unique id of the node, never reused.
	ID NodeID

	// Pos is the position of the node, set once at creation.
	Pos math32.Vector3

	// Highlight is the pointer highlight state of the node.
	Highlight Highlights

	// Color is the current display color of the node.
	Color color.RGBA
}

// Connection is an unordered pair of node positions, captured
// when the connection was made.
type Connection struct {

	// A and B are the endpoint positions.
	A, B math32.Vector3

	// From and To are the ids of the endpoint nodes.
	From, To NodeID
}

// Graph is the set of all nodes and connections at a point in time.
type Graph struct {

	// Bounds is the box in which node positions are sampled.
	Bounds math32.Box3

	// nodes in creation order, keyed by id
	nodes ordmap.Map[NodeID, *Node]

	// all connections, in creation order
	connections []Connection

	// adjacency is the number of connections incident to each node id
	adjacency map[NodeID]int

	ids  *IDAllocator
	rand randx.Rand
}

// New returns a new empty graph that gets node ids from the given
// allocator and samples positions from the given random source.
func New(ids *IDAllocator, rnd randx.Rand) *Graph {
	if ids == nil {
		ids = &IDAllocator{}
	}
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	return &Graph{
		Bounds:    math32.B3Cube(Extent),
		adjacency: make(map[NodeID]int),
		ids:       ids,
		rand:      rnd,
	}
}

// Build returns a new graph with nodeCount nodes at uniformly random
// positions, and up to connectionCount connections between uniformly
// chosen pairs of nodes. Each connection trial that picks the same node
// twice is discarded, so fewer connections than requested may result,
// and none at all when there are fewer than two nodes. Negative counts
// are treated as 0.
func Build(ids *IDAllocator, rnd randx.Rand, nodeCount, connectionCount int) *Graph {
	g := New(ids, rnd)
	nodeCount = max(nodeCount, 0)
	connectionCount = max(connectionCount, 0)
	for range nodeCount {
		g.AddNode()
	}
	if nodeCount < 2 {
		if connectionCount > 0 {
			slog.Debug("graph: fewer than 2 nodes, no connections made", "nodes", nodeCount, "connections", connectionCount)
		}
		return g
	}
	for range connectionCount {
		a := g.rand.Intn(nodeCount)
		b := g.rand.Intn(nodeCount)
		if a == b {
			continue
		}
		g.connect(g.nodes.ValueByIndex(a), g.nodes.ValueByIndex(b))
	}
	slog.Debug("graph: built", "nodes", g.Len(), "connections", g.NumConnections(), "requested", connectionCount)
	return g
}

// AddNode adds one node with a new id at a random position.
// It does not connect the node to anything.
func (g *Graph) AddNode() *Node {
	pos := g.Bounds.PointAt(math32.Vec3(g.rand.Float32(), g.rand.Float32(), g.rand.Float32()))
	nd := &Node{ID: g.ids.Next(), Pos: pos, Color: colors.NodeBase}
	g.nodes.Add(nd.ID, nd)
	return nd
}

// connect adds a connection between the two nodes
// and records it in the adjacency index.
func (g *Graph) connect(a, b *Node) {
	g.connections = append(g.connections, Connection{A: a.Pos, B: b.Pos, From: a.ID, To: b.ID})
	g.adjacency[a.ID]++
	g.adjacency[b.ID]++
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return g.nodes.Len()
}

// NumConnections returns the number of connections.
func (g *Graph) NumConnections() int {
	return len(g.connections)
}

// Nodes returns the nodes in creation order.
func (g *Graph) Nodes() []*Node {
	return g.nodes.Values()
}

// Connections returns the connections in creation order.
func (g *Graph) Connections() []Connection {
	return g.connections
}

// NodeByID returns the node with the given id, and false
// if there is no such node in this graph.
func (g *Graph) NodeByID(id NodeID) (*Node, bool) {
	return g.nodes.ValueByKeyTry(id)
}

// ConnectionCount returns the number of connections incident to the
// node with the given id. It is 0 for ids not in this graph.
func (g *Graph) ConnectionCount(id NodeID) int {
	return g.adjacency[id]
}

// Density returns the normalized connection density of the node
// with the given id; see [colors.Density].
func (g *Graph) Density(id NodeID) float32 {
	return colors.Density(g.ConnectionCount(id))
}

// Neighbors returns the ids of the nodes connected to the node with
// the given id, in connection order without duplicates.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	if g.adjacency[id] == 0 {
		return nil
	}
	var nbs []NodeID
	seen := map[NodeID]bool{}
	for _, cn := range g.connections {
		var other NodeID
		switch id {
		case cn.From:
			other = cn.To
		case cn.To:
			other = cn.From
		default:
			continue
		}
		if !seen[other] {
			seen[other] = true
			nbs = append(nbs, other)
		}
	}
	return nbs
}

// ClearHighlights resets the highlight state of all nodes to [Normal].
func (g *Graph) ClearHighlights() {
	for _, nd := range g.nodes.All() {
		nd.Highlight = Normal
	}
}

// Teardown releases all nodes and connections and clears their
// highlight state. The graph is empty afterwards.
func (g *Graph) Teardown() {
	g.ClearHighlights()
	g.nodes.Reset()
	g.connections = nil
	clear(g.adjacency)
}

// String returns a summary of the graph.
func (g *Graph) String() string {
	return fmt.Sprintf("graph.Graph{Nodes: %d, Connections: %d}", g.Len(), g.NumConnections())
}

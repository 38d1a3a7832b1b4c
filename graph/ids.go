// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"
	"strconv"
)

// NodeID is the unique identity of a [Node].
type NodeID uint64

// NoNode is the zero NodeID, which no node ever has.
const NoNode NodeID = 0

// String returns the id as a decimal string, or "none" for [NoNode].
func (id NodeID) String() string {
	if id == NoNode {
		return "none"
	}
	return strconv.FormatUint(uint64(id), 10)
}

// IDAllocator issues sequential node ids starting at 1.
// One allocator should be shared by all the graphs built over the
// life of a scene, so that ids are never reused across rebuilds.
// The zero value is ready to use.
type IDAllocator struct {
	last NodeID
}

// Next returns the next id.
func (ia *IDAllocator) Next() NodeID {
	ia.last++
	return ia.last
}

// Last returns the most recently issued id, or [NoNode].
func (ia *IDAllocator) Last() NodeID {
	return ia.last
}

// Reset restarts ids from 1. It is intended for tests;
// ids issued before a Reset will be issued again.
func (ia *IDAllocator) Reset() {
	ia.last = NoNode
}

// Highlights are the pointer highlight states of a node.
type Highlights int32

const (
	// Normal is a node that is neither hovered nor clicked.
	Normal Highlights = iota

	// Hovered is a node under the pointer. It is transient.
	Hovered

	// Clicked is a node that has been clicked. It persists until
	// the node is clicked again, and takes precedence over Hovered.
	Clicked

	// HighlightsN is the number of highlight states.
	HighlightsN
)

var highlightNames = [HighlightsN]string{"Normal", "Hovered", "Clicked"}

// String returns the name of the highlight state.
func (h Highlights) String() string {
	if h < 0 || h >= HighlightsN {
		return fmt.Sprintf("Highlights(%d)", int32(h))
	}
	return highlightNames[h]
}

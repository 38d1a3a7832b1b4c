// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strings"
)

// Sources are the alternative sources of node color.
type Sources int32

const (
	// SourceDensity colors nodes by their normalized connection count.
	SourceDensity Sources = iota

	// SourceActivation colors nodes by a time-varying activation signal.
	SourceActivation

	// SourcesN is the number of color sources.
	SourcesN
)

var sourceNames = [SourcesN]string{"Density", "Activation"}

// String returns the name of the source.
func (s Sources) String() string {
	if s < 0 || s >= SourcesN {
		return fmt.Sprintf("Sources(%d)", int32(s))
	}
	return sourceNames[s]
}

// SetString sets the source from its name (case insensitive).
func (s *Sources) SetString(str string) error {
	for i, nm := range sourceNames {
		if strings.EqualFold(nm, str) {
			*s = Sources(i)
			return nil
		}
	}
	return fmt.Errorf("colors.Sources: %q is not a valid color source", str)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Sources) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Sources) UnmarshalText(text []byte) error {
	return s.SetString(string(text))
}

// Mapper resolves the display color of a node from the active [Sources].
type Mapper struct {

	// Source is the active source of node color.
	Source Sources
}

// NodeColor returns the color for a node with the given connection
// count and activation, according to the active source.
func (m *Mapper) NodeColor(count int, activation float32) color.RGBA {
	if m.Source == SourceActivation {
		return ForActivation(activation)
	}
	return ForConnections(count)
}

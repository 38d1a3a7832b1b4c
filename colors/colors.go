// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors maps network topology and activation to node
// display colors, and holds the fixed colors used by the scene.
package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	// NeutralGray is the color of a node with no connections.
	// It is a special case, not a point on the density spectrum.
	NeutralGray = colornames.Gray

	// Highlight is the color of a hovered or clicked node.
	Highlight = colornames.White

	// NodeBase is the color of a newly created node before
	// its first recolor (electric blue).
	NodeBase = color.RGBA{0x7d, 0xf9, 0xff, 0xff}

	// Line is the color of connection lines.
	Line = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}

	// Background is the scene clear color.
	Background = color.RGBA{0x12, 0x12, 0x12, 0xff}
)

// FromRGB makes a new RGBA color from the given
// RGB uint8 values, using 255 for A.
func FromRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// toColorful converts an opaque RGBA color to a colorful.Color.
func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// fromColorful converts a colorful.Color to an opaque RGBA color.
func fromColorful(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return FromRGB(r, g, b)
}

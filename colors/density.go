// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"cogentcore.org/synaptic/math32"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// DensityCap is the connection count at which density saturates at 1.
	DensityCap = 100

	// DensityHueMin is the hue in degrees for a density of 0 (blue).
	DensityHueMin = 240

	// DensityHueMax is the hue in degrees for a density of 1 (red).
	DensityHueMax = 0
)

// Density returns the normalized connection density for the given
// connection count: min(count, DensityCap) / DensityCap.
// Negative counts are treated as 0.
func Density(count int) float32 {
	count = min(max(count, 0), DensityCap)
	return float32(count) / DensityCap
}

// DensityHue returns the hue in degrees for the given density,
// sweeping from [DensityHueMin] at 0 to [DensityHueMax] at 1.
func DensityHue(density float32) float32 {
	density = math32.Clamp(density, 0, 1)
	return math32.Lerp(DensityHueMin, DensityHueMax, density)
}

// ForDensity returns the color for the given normalized density
// in [0, 1] (clamped), as a fully saturated HSL hue sweep from
// blue at 0 to red at 1.
func ForDensity(density float32) color.RGBA {
	return fromColorful(colorful.Hsl(float64(DensityHue(density)), 1, 0.5))
}

// ForConnections returns the color for a node with the given number
// of connections: [NeutralGray] if it has none, and otherwise
// [ForDensity] of its [Density].
func ForConnections(count int) color.RGBA {
	if count <= 0 {
		return NeutralGray
	}
	return ForDensity(Density(count))
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"time"

	"cogentcore.org/synaptic/math32"
	"golang.org/x/image/colornames"
)

// ActivationPalette is the ordered palette that activation
// values are interpolated through, from -1 to 1.
var ActivationPalette = []color.RGBA{
	colornames.Blue,
	colornames.Lime,
	colornames.Yellow,
	colornames.Red,
}

// Activation returns the simulated activation of the node at the
// given index at the given elapsed time: a sine wave whose rate
// scales with speed, phase-shifted by the node index.
func Activation(elapsed time.Duration, speed float32, index int) float32 {
	ms := float32(elapsed.Milliseconds())
	return math32.Sin(ms*0.001*speed + float32(index))
}

// ForActivation returns the color for the given activation in [-1, 1]
// (clamped), linearly interpolated between the two [ActivationPalette]
// entries that bracket it.
func ForActivation(activation float32) color.RGBA {
	return PaletteColor(ActivationPalette, (math32.Clamp(activation, -1, 1)+1)/2)
}

// PaletteColor returns the color at the given normalized position
// in [0, 1] along the given palette, interpolating linearly in RGB
// between the bracketing entries selected by floor(pos * (n-1)).
func PaletteColor(palette []color.RGBA, pos float32) color.RGBA {
	n := len(palette)
	switch n {
	case 0:
		return NeutralGray
	case 1:
		return palette[0]
	}
	scaled := math32.Clamp(pos, 0, 1) * float32(n-1)
	idx := int(math32.Floor(scaled))
	if idx >= n-1 {
		return palette[n-1]
	}
	weight := scaled - float32(idx)
	start := toColorful(palette[idx])
	end := toColorful(palette[idx+1])
	return fromColorful(start.BlendRgb(end, float64(weight)))
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a software renderer that draws scene
// descriptions into an RGBA image, for PNG snapshots.
package raster

import (
	"bufio"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"slices"
	"sync"

	"cogentcore.org/synaptic/base/errors"
	"cogentcore.org/synaptic/math32"
	"cogentcore.org/synaptic/scene"
	"github.com/anthonynsimon/bild/blur"
	"golang.org/x/image/vector"
)

// circleK is the cubic bezier control distance for a quarter circle.
const circleK = 0.5522847

// Renderer draws scene descriptions into an image.
// The image of the most recent frame can be read
// from any goroutine with [Renderer.Snapshot].
type Renderer struct {

	// LineWidth is the width of connection lines, in pixels.
	LineWidth float32 `default:"1"`

	// MinRadius is the minimum radius of node discs, in pixels.
	MinRadius float32 `default:"1.5"`

	// Glow is the radius in pixels of the gaussian glow drawn
	// under the nodes. 0 draws no glow.
	Glow float64

	image *image.RGBA
	ras   *vector.Rasterizer
	mu    sync.Mutex
}

// New returns a new renderer drawing into an image of the given size.
func New(width, height int) *Renderer {
	rs := &Renderer{LineWidth: 1, MinRadius: 1.5}
	rs.SetSize(width, height)
	return rs
}

// SetSize sets the size of the image, in pixels.
func (rs *Renderer) SetSize(width, height int) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	width, height = max(width, 1), max(height, 1)
	if rs.image != nil && rs.image.Rect.Dx() == width && rs.image.Rect.Dy() == height {
		return
	}
	rs.image = image.NewRGBA(image.Rect(0, 0, width, height))
	rs.ras = vector.NewRasterizer(width, height)
}

// Size returns the size of the image, in pixels.
func (rs *Renderer) Size() (width, height int) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.image == nil {
		return 0, 0
	}
	return rs.image.Rect.Dx(), rs.image.Rect.Dy()
}

// Render draws the given description: the background, then the
// connection lines, then the node discs from far to near.
// The aspect ratio of the image is used for the projection.
func (rs *Renderer) Render(d *scene.Description) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.image == nil {
		return errors.New("raster: renderer has been released")
	}
	img := rs.image
	w, h := float32(img.Rect.Dx()), float32(img.Rect.Dy())
	cam := d.Camera
	cam.Aspect = w / h
	vp := cam.ViewProjection()
	toPixel := func(world math32.Vector3) math32.Vector3 {
		ndc := world.MulMatrix4AsPoint(vp)
		return math32.Vec3((ndc.X+1)*0.5*w, (1-ndc.Y)*0.5*h, ndc.Z)
	}

	draw.Draw(img, img.Rect, image.NewUniform(d.Background), image.Point{}, draw.Src)

	for _, ln := range d.Lines {
		a, b := toPixel(ln.A), toPixel(ln.B)
		if !inDepth(a.Z) || !inDepth(b.Z) {
			continue
		}
		rs.line(a, b, ln.Color)
	}

	type disc struct {
		center math32.Vector3
		radius float32
		color  color.RGBA
	}
	discs := make([]disc, 0, len(d.Nodes))
	for _, np := range d.Nodes {
		c := toPixel(np.Pos)
		if !inDepth(c.Z) {
			continue
		}
		edge := toPixel(np.Pos.Add(cam.UpDir.Normal().MulScalar(np.Radius)))
		r := max(math32.Vec3(edge.X-c.X, edge.Y-c.Y, 0).Length(), rs.MinRadius)
		discs = append(discs, disc{center: c, radius: r, color: np.Color})
	}
	slices.SortStableFunc(discs, func(a, b disc) int {
		switch {
		case a.center.Z > b.center.Z:
			return -1
		case a.center.Z < b.center.Z:
			return 1
		}
		return 0
	})
	if rs.Glow > 0 {
		layer := image.NewRGBA(img.Rect)
		for _, dc := range discs {
			rs.disc(layer, dc.center, dc.radius*2, dc.color)
		}
		draw.Draw(img, img.Rect, blur.Gaussian(layer, rs.Glow), image.Point{}, draw.Over)
	}
	for _, dc := range discs {
		rs.disc(img, dc.center, dc.radius, dc.color)
	}
	return nil
}

// inDepth returns whether the NDC depth is between the near and far planes.
func inDepth(z float32) bool {
	return z >= -1 && z <= 1
}

// disc fills a circle at the given pixel center.
func (rs *Renderer) disc(dst draw.Image, c math32.Vector3, r float32, clr color.RGBA) {
	rs.ras.Reset(rs.image.Rect.Dx(), rs.image.Rect.Dy())
	k := r * circleK
	x, y := c.X, c.Y
	rs.ras.MoveTo(x+r, y)
	rs.ras.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
	rs.ras.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
	rs.ras.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
	rs.ras.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
	rs.ras.ClosePath()
	rs.fill(dst, clr)
}

// line fills a quad of LineWidth along the segment between the given pixel points.
func (rs *Renderer) line(a, b math32.Vector3, clr color.RGBA) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math32.Sqrt(dx*dx + dy*dy)
	if l == 0 {
		return
	}
	hw := rs.LineWidth * 0.5
	nx, ny := -dy/l*hw, dx/l*hw
	rs.ras.Reset(rs.image.Rect.Dx(), rs.image.Rect.Dy())
	rs.ras.MoveTo(a.X+nx, a.Y+ny)
	rs.ras.LineTo(b.X+nx, b.Y+ny)
	rs.ras.LineTo(b.X-nx, b.Y-ny)
	rs.ras.LineTo(a.X-nx, a.Y-ny)
	rs.ras.ClosePath()
	rs.fill(rs.image, clr)
}

func (rs *Renderer) fill(dst draw.Image, clr color.RGBA) {
	rs.ras.DrawOp = draw.Over
	rs.ras.Draw(dst, dst.Bounds(), image.NewUniform(clr), image.Point{})
}

// Snapshot returns a copy of the image of the most recent frame,
// or nil if the renderer has been released.
func (rs *Renderer) Snapshot() *image.RGBA {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.image == nil {
		return nil
	}
	cp := image.NewRGBA(rs.image.Rect)
	copy(cp.Pix, rs.image.Pix)
	return cp
}

// EncodePNG writes the image of the most recent frame as a PNG.
func (rs *Renderer) EncodePNG(w io.Writer) error {
	img := rs.Snapshot()
	if img == nil {
		return errors.New("raster: renderer has been released")
	}
	return png.Encode(w, img)
}

// SavePNG saves the image of the most recent frame to the given PNG file.
func (rs *Renderer) SavePNG(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if err := rs.EncodePNG(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// Release releases the image.
func (rs *Renderer) Release() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.image = nil
	rs.ras = nil
}

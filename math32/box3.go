// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Box3 represents a 3D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Cube returns a new [Box3] centered at the origin extending
// by halfSize along each axis.
func B3Cube(halfSize float32) Box3 {
	return B3(-halfSize, -halfSize, -halfSize, halfSize, halfSize, halfSize)
}

// PointAt returns the point inside the box at the given fractional
// position along each axis, where 0 is Min and 1 is Max.
func (b Box3) PointAt(frac Vector3) Vector3 {
	return Vec3(Lerp(b.Min.X, b.Max.X, frac.X), Lerp(b.Min.Y, b.Max.Y, frac.Y), Lerp(b.Min.Z, b.Max.Z, frac.Z))
}

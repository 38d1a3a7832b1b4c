// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Matrix4 is 4x4 matrix organized internally as column matrix.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MulMatrices sets this matrix as the matrix product a * b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	var res Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			res[col*4+row] = sum
		}
	}
	*m = res
}

// Mul returns this matrix times other matrix (this is unchanged)
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// SetRotationFromEuler sets this a rotation matrix from the specified
// euler angles (radians), applied in XYZ order. Translation is zeroed.
func (m *Matrix4) SetRotationFromEuler(euler Vector3) {
	a := Cos(euler.X)
	b := Sin(euler.X)
	c := Cos(euler.Y)
	d := Sin(euler.Y)
	e := Cos(euler.Z)
	f := Sin(euler.Z)

	ae := a * e
	af := a * f
	be := b * e
	bf := b * f

	m[0] = c * e
	m[4] = -c * f
	m[8] = d
	m[1] = af + be*d
	m[5] = ae - bf*d
	m[9] = -b * c
	m[2] = bf - ae*d
	m[6] = be + af*d
	m[10] = a * c

	m[3] = 0
	m[7] = 0
	m[11] = 0
	m[12] = 0
	m[13] = 0
	m[14] = 0
	m[15] = 1
}

// SetLookAtView sets this matrix as the view matrix of a camera at
// position eye looking at target, with the given up direction:
// it transforms world coordinates into camera-centered coordinates
// where the camera looks down the negative Z axis.
func (m *Matrix4) SetLookAtView(eye, target, up Vector3) {
	z := eye.Sub(target)
	if z.IsNil() {
		z.Z = 1
	}
	z = z.Normal()
	x := up.Cross(z)
	if x.IsNil() {
		// up parallel to view direction: nudge to get a valid basis
		z.X += 0.0001
		z = z.Normal()
		x = up.Cross(z)
	}
	x = x.Normal()
	y := z.Cross(x)

	m[0] = x.X
	m[4] = x.Y
	m[8] = x.Z
	m[12] = -x.Dot(eye)

	m[1] = y.X
	m[5] = y.Y
	m[9] = y.Z
	m[13] = -y.Dot(eye)

	m[2] = z.X
	m[6] = z.Y
	m[10] = z.Z
	m[14] = -z.Dot(eye)

	m[3] = 0
	m[7] = 0
	m[11] = 0
	m[15] = 1
}

// SetFrustum sets this matrix to a projection frustum matrix bounded
// by the specified planes.
func (m *Matrix4) SetFrustum(left, right, bottom, top, near, far float32) {
	x := 2 * near / (right - left)
	y := 2 * near / (top - bottom)
	a := (right + left) / (right - left)
	b := (top + bottom) / (top - bottom)
	c := -(far + near) / (far - near)
	d := -2 * far * near / (far - near)

	*m = Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		a, b, c, -1,
		0, 0, d, 0,
	}
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the specified vertical field of view in degrees,
// aspect ratio (width/height) and near and far planes.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	ymax := near * Tan(DegToRad(fov*0.5))
	ymin := -ymax
	xmin := ymin * aspect
	xmax := ymax * aspect
	m.SetFrustum(xmin, xmax, ymin, ymax, near, far)
}

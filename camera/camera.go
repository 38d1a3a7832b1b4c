// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera maps the bounded zoom level to the camera distance,
// and provides the view and projection transforms and picking rays
// of the perspective camera looking at the network.
package camera

import (
	"fmt"
	"strings"

	"cogentcore.org/synaptic/math32"
)

// ZoomPolicies are the formulas that map a zoom level to a camera distance.
type ZoomPolicies int32

const (
	// ZoomLinear moves the camera linearly from MaxZ at zoom 0 to MinZ at zoom 100.
	ZoomLinear ZoomPolicies = iota

	// ZoomInverse divides MaxZoom by a factor growing from 1 at zoom 0
	// to MaxZoom at zoom 100, so the distance goes from MaxZoom to 1.
	ZoomInverse

	// ZoomPoliciesN is the number of zoom policies.
	ZoomPoliciesN
)

var zoomPolicyNames = [ZoomPoliciesN]string{"Linear", "Inverse"}

// String returns the name of the policy.
func (zp ZoomPolicies) String() string {
	if zp < 0 || zp >= ZoomPoliciesN {
		return fmt.Sprintf("ZoomPolicies(%d)", int32(zp))
	}
	return zoomPolicyNames[zp]
}

// SetString sets the policy from its name (case insensitive).
func (zp *ZoomPolicies) SetString(s string) error {
	for i, nm := range zoomPolicyNames {
		if strings.EqualFold(nm, s) {
			*zp = ZoomPolicies(i)
			return nil
		}
	}
	return fmt.Errorf("camera.ZoomPolicies: %q is not a valid zoom policy", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (zp ZoomPolicies) MarshalText() ([]byte, error) {
	return []byte(zp.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (zp *ZoomPolicies) UnmarshalText(text []byte) error {
	return zp.SetString(string(text))
}

// ZoomMax is the upper bound of the zoom level; the lower bound is 0.
const ZoomMax = 100

// Camera defines the properties of the perspective camera.
// It does not own the rotation of the network, which is applied
// as a transform of the whole scene.
type Camera struct {

	// Policy is the zoom formula in use.
	Policy ZoomPolicies

	// MinZ is the distance at full zoom for [ZoomLinear].
	MinZ float32 `default:"2"`

	// MaxZ is the distance at zero zoom for [ZoomLinear].
	MaxZ float32 `default:"8"`

	// MaxZoom is the distance at zero zoom for [ZoomInverse].
	MaxZoom float32 `default:"10"`

	// Pos is the position of the camera.
	Pos math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// UpDir is the up direction of the camera.
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"75"`

	// Aspect is the aspect ratio (width/height).
	Aspect float32 `default:"1.5"`

	// Near is the near plane distance.
	Near float32 `default:"0.1"`

	// Far is the far plane distance.
	Far float32 `default:"1000"`
}

// New returns a new camera with default parameters,
// using the given zoom policy and placed for the given zoom level.
func New(policy ZoomPolicies, zoom float32) *Camera {
	cm := &Camera{}
	cm.Defaults()
	cm.Policy = policy
	cm.SetZoom(zoom)
	return cm
}

// Defaults sets the default camera parameters, looking
// at the origin with the Y axis up from +Z.
func (cm *Camera) Defaults() {
	cm.Policy = ZoomLinear
	cm.MinZ = 2
	cm.MaxZ = 8
	cm.MaxZoom = 10
	cm.FOV = 75
	cm.Aspect = 1.5
	cm.Near = 0.1
	cm.Far = 1000
	cm.Target = math32.Vector3{}
	cm.UpDir = math32.Vec3(0, 1, 0)
	cm.Pos = math32.Vec3(0, 0, cm.DistanceForZoom(ZoomMax/2))
}

// ClampZoom clamps the given zoom level to [0, ZoomMax].
func ClampZoom(zoom float32) float32 {
	if math32.IsNaN(zoom) {
		return 0
	}
	return math32.Clamp(zoom, 0, ZoomMax)
}

// DistanceForZoom returns the distance of the camera from its
// target for the given zoom level, which is clamped to [0, ZoomMax].
// Higher zoom always gives a closer camera.
func (cm *Camera) DistanceForZoom(zoom float32) float32 {
	frac := ClampZoom(zoom) / ZoomMax
	switch cm.Policy {
	case ZoomInverse:
		return cm.MaxZoom / (1 + frac*(cm.MaxZoom-1))
	default:
		return cm.MaxZ - (cm.MaxZ-cm.MinZ)*frac
	}
}

// SetZoom places the camera on the +Z axis from its target at the
// distance for the given zoom level, looking at the target.
func (cm *Camera) SetZoom(zoom float32) {
	cm.Pos = cm.Target.Add(math32.Vec3(0, 0, cm.DistanceForZoom(zoom)))
	cm.UpDir = math32.Vec3(0, 1, 0)
}

// Distance returns the current distance from the camera to its target.
func (cm *Camera) Distance() float32 {
	return cm.Pos.DistanceTo(cm.Target)
}

// SetAspect sets the aspect ratio from the given viewport size.
// Degenerate sizes are ignored.
func (cm *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	cm.Aspect = float32(width) / float32(height)
}

// ViewMatrix returns the view matrix, which transforms world
// coordinates into camera-centered coordinates.
func (cm *Camera) ViewMatrix() *math32.Matrix4 {
	view := &math32.Matrix4{}
	view.SetLookAtView(cm.Pos, cm.Target, cm.UpDir)
	return view
}

// ProjectionMatrix returns the perspective projection matrix.
func (cm *Camera) ProjectionMatrix() *math32.Matrix4 {
	proj := &math32.Matrix4{}
	proj.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	return proj
}

// ViewProjection returns the combined projection * view matrix.
func (cm *Camera) ViewProjection() *math32.Matrix4 {
	return cm.ProjectionMatrix().Mul(cm.ViewMatrix())
}

// Project returns the normalized device coordinates of the given
// world point: X and Y in [-1, 1] when in view, with Z the depth.
func (cm *Camera) Project(world math32.Vector3) math32.Vector3 {
	return world.MulMatrix4AsPoint(cm.ViewProjection())
}

// Ray returns the ray from the camera through the given normalized
// device coordinates, where (-1, -1) is the bottom left of the
// viewport and (1, 1) the top right.
func (cm *Camera) Ray(ndcX, ndcY float32) *math32.Ray {
	forward := cm.Target.Sub(cm.Pos)
	if forward.IsNil() {
		forward = math32.Vec3(0, 0, -1)
	}
	forward = forward.Normal()
	right := forward.Cross(cm.UpDir).Normal()
	if right.IsNil() {
		right = math32.Vec3(1, 0, 0)
	}
	up := right.Cross(forward)
	th := math32.Tan(math32.DegToRad(cm.FOV * 0.5))
	dir := forward.Add(right.MulScalar(ndcX * th * cm.Aspect)).Add(up.MulScalar(ndcY * th))
	return math32.NewRay(cm.Pos, dir)
}

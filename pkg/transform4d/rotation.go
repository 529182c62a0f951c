// Package transform4d composes rigid motions of 4-space for the renderer.
//
// A 4D affine transform needs a 5x5 homogeneous matrix, which a shading stage
// built around mat4 cannot take. The transform is therefore passed as three
// values: a 4x4 rotation, a translation vector and a scale vector, applied as
//
//	world = translation + rotation * (scale * local)
package transform4d

import (
	"fmt"

	"github.com/Faultbox/hyperview/pkg/math"
)

// Plane is one of the six coordinate planes of 4-space.
type Plane int

// Planes in composition order.
const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
	PlaneXW
	PlaneYW
	PlaneZW
	PlaneCount
)

var planeAxes = [PlaneCount][2]math.Axis{
	PlaneXY: {math.AxisX, math.AxisY},
	PlaneXZ: {math.AxisX, math.AxisZ},
	PlaneYZ: {math.AxisY, math.AxisZ},
	PlaneXW: {math.AxisX, math.AxisW},
	PlaneYW: {math.AxisY, math.AxisW},
	PlaneZW: {math.AxisZ, math.AxisW},
}

// Axes returns the two axes spanning the plane.
func (p Plane) Axes() (math.Axis, math.Axis) {
	return planeAxes[p][0], planeAxes[p][1]
}

// String returns the plane name, e.g. "xw".
func (p Plane) String() string {
	if p < 0 || p >= PlaneCount {
		return fmt.Sprintf("plane(%d)", int(p))
	}
	a, b := p.Axes()
	return a.String() + b.String()
}

// ParsePlane resolves a plane name such as "yz".
func ParsePlane(name string) (Plane, error) {
	for p := Plane(0); p < PlaneCount; p++ {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown rotation plane %q", name)
}

// Angles holds one value per plane, indexed by Plane. It is used both for
// rotation angles (radians) and angular velocities (radians per second).
type Angles [PlaneCount]float32

// Rotation returns the rotation matrix for a single plane.
func Rotation(p Plane, angle float32) math.Mat4 {
	a, b := p.Axes()
	return math.PlaneRotation(a, b, angle)
}

// ComposeRotation returns R = Rxy * Rxz * Ryz * Rxw * Ryw * Rzw.
//
// Rotations in planes sharing an axis do not commute, so this order is part
// of the visible behavior: changing it changes the animation.
func ComposeRotation(xy, xz, yz, xw, yw, zw float32) math.Mat4 {
	return Compose(Angles{xy, xz, yz, xw, yw, zw})
}

// Compose is ComposeRotation over an Angles value.
func Compose(a Angles) math.Mat4 {
	r := math.Identity()
	for p := Plane(0); p < PlaneCount; p++ {
		r = r.Mul(Rotation(p, a[p]))
	}
	return r
}

// Package math provides the small 4D linear algebra used by the visualizer.
//
// All types are float32 so they can be handed to OpenGL uniforms and vertex
// buffers without conversion.
package math

import "github.com/chewxy/math32"

// Axis identifies one of the four coordinate axes.
type Axis int

// Coordinate axes in storage order.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisW
)

// String returns the lowercase axis letter.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	case AxisW:
		return "w"
	}
	return "?"
}

// Vec2 is a 2D vector, used for texture coordinates.
type Vec2 struct {
	X, Y float32
}

// Vec4 is a point or direction in 4-space.
type Vec4 struct {
	X, Y, Z, W float32
}

// Splat returns a vector with all four components set to s.
func Splat(s float32) Vec4 {
	return Vec4{s, s, s, s}
}

// Get returns the component for axis a.
func (v Vec4) Get(a Axis) float32 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	default:
		return v.W
	}
}

// With returns a copy of v with the component for axis a replaced.
func (v Vec4) With(a Axis, s float32) Vec4 {
	switch a {
	case AxisX:
		v.X = s
	case AxisY:
		v.Y = s
	case AxisZ:
		v.Z = s
	default:
		v.W = s
	}
	return v
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Scale returns v * s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Mul returns the component-wise product.
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Dot returns the dot product.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the Euclidean norm.
func (v Vec4) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns a unit vector, or the zero vector when v has no length.
func (v Vec4) Normalize() Vec4 {
	l := v.Length()
	if l == 0 {
		return Vec4{}
	}
	return v.Scale(1 / l)
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec4) ApproxEqual(other Vec4, eps float32) bool {
	d := v.Sub(other)
	return math32.Abs(d.X) <= eps && math32.Abs(d.Y) <= eps &&
		math32.Abs(d.Z) <= eps && math32.Abs(d.W) <= eps
}

// Array returns the components as an array, in x, y, z, w order.
func (v Vec4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// Package camera provides the orbit camera that frames the tesseract.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection selects how the reduced 3D scene is projected to the screen.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

// ParseProjection resolves "perspective" or "orthographic". Anything else is
// perspective.
func ParseProjection(name string) Projection {
	if name == "orthographic" {
		return Orthographic
	}
	return Perspective
}

// OrbitCamera orbits around a target point.
type OrbitCamera struct {
	Target mgl32.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // radians, positive looks down
	Yaw      float32 // radians

	Projection Projection
	FOV        float32 // vertical, degrees
	Near, Far  float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	home pose
}

// pose is the part of the camera Reset restores.
type pose struct {
	target     mgl32.Vec3
	distance   float32
	pitch, yaw float32
}

// NewOrbitCamera creates an orbit camera looking at the origin from distance.
func NewOrbitCamera(distance, fovDegrees float32, proj Projection) *OrbitCamera {
	c := &OrbitCamera{
		Distance:        distance,
		Pitch:           0.35,
		Yaw:             0.6,
		Projection:      proj,
		FOV:             fovDegrees,
		Near:            0.1,
		Far:             200,
		MinDistance:     1,
		MaxDistance:     100,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
	c.home = pose{c.Target, c.Distance, c.Pitch, c.Yaw}
	return c
}

// Reset restores the construction-time target, distance and angles.
func (c *OrbitCamera) Reset() {
	c.Target = c.home.target
	c.Distance = c.home.distance
	c.Pitch, c.Yaw = c.home.pitch, c.home.yaw
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	sp, cp := math32.Sincos(c.Pitch)
	sy, cy := math32.Sincos(c.Yaw)
	offset := mgl32.Vec3{cp * sy, sp, cp * cy}.Mul(c.Distance)
	return c.Target.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the projection for the given viewport aspect ratio.
// The orthographic volume matches the perspective frustum at the target.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	if c.Projection == Orthographic {
		halfH := c.Distance * math32.Tan(mgl32.DegToRad(c.FOV)/2)
		halfW := halfH * aspect
		return mgl32.Ortho(-halfW, halfW, -halfH, halfH, c.Near, c.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.ProjectionMatrix(aspect).Mul4(c.ViewMatrix())
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = mgl32.Clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

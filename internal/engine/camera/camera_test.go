package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPositionDistance(t *testing.T) {
	c := NewOrbitCamera(8, 45, Perspective)
	c.Target = mgl32.Vec3{1, 2, 3}

	d := c.Position().Sub(c.Target).Len()
	assert.InDelta(t, 8, d, 1e-4)
}

func TestPositionOnAxis(t *testing.T) {
	c := NewOrbitCamera(5, 45, Perspective)
	c.Pitch = 0
	c.Yaw = 0

	assert.True(t, c.Position().ApproxEqualThreshold(mgl32.Vec3{0, 0, 5}, 1e-5), "got %v", c.Position())
}

func TestViewMatrixCentersTarget(t *testing.T) {
	c := NewOrbitCamera(6, 45, Perspective)
	c.Target = mgl32.Vec3{0, 1, 0}

	p := c.ViewMatrix().Mul4x1(c.Target.Vec4(1))
	assert.InDelta(t, 0, p.X(), 1e-4)
	assert.InDelta(t, 0, p.Y(), 1e-4)
	assert.InDelta(t, -6, p.Z(), 1e-4)
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera(6, 45, Perspective)

	c.HandleDrag(0, 1e6)
	assert.Equal(t, c.MaxPitch, c.Pitch)
	c.HandleDrag(0, -1e6)
	assert.Equal(t, c.MinPitch, c.Pitch)

	yaw := c.Yaw
	c.HandleDrag(100, 0)
	assert.InDelta(t, yaw-100*c.DragSensitivity, c.Yaw, 1e-6)
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera(6, 45, Perspective)

	c.HandleZoom(1)
	assert.InDelta(t, 6*0.9, c.Distance, 1e-5)

	for i := 0; i < 200; i++ {
		c.HandleZoom(5)
	}
	assert.Equal(t, c.MinDistance, c.Distance)

	for i := 0; i < 200; i++ {
		c.HandleZoom(-5)
	}
	assert.Equal(t, c.MaxDistance, c.Distance)
}

func TestReset(t *testing.T) {
	c := NewOrbitCamera(6, 45, Perspective)
	c.HandleDrag(40, 40)
	c.HandleZoom(2)

	c.Reset()
	assert.Equal(t, float32(6), c.Distance)
	assert.Equal(t, float32(0.35), c.Pitch)
	assert.Equal(t, float32(0.6), c.Yaw)

	// A second reset still has a home to return to.
	c.HandleZoom(2)
	c.Reset()
	assert.Equal(t, float32(6), c.Distance)
}

func TestProjection(t *testing.T) {
	assert.Equal(t, Orthographic, ParseProjection("orthographic"))
	assert.Equal(t, Perspective, ParseProjection("perspective"))
	assert.Equal(t, Perspective, ParseProjection(""))

	persp := NewOrbitCamera(6, 45, Perspective).ProjectionMatrix(1)
	ortho := NewOrbitCamera(6, 45, Orthographic).ProjectionMatrix(1)

	// Perspective divides by -z; orthographic keeps w = 1.
	assert.InDelta(t, -1, persp.At(3, 2), 1e-6)
	assert.InDelta(t, 0, ortho.At(3, 2), 1e-6)
	assert.InDelta(t, 1, ortho.At(3, 3), 1e-6)

	// Non-positive aspect falls back to square.
	assert.Equal(t, persp, NewOrbitCamera(6, 45, Perspective).ProjectionMatrix(0))
}

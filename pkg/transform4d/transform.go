package transform4d

import (
	"fmt"

	"github.com/Faultbox/hyperview/pkg/math"
)

// GapFactor is k in gap = center.w * scale * k, the lateral spacing between
// side-by-side instances.
const GapFactor float32 = 2.5

// Instance selects one of the side-by-side copies drawn per frame.
type Instance int

const (
	InstanceBefore  Instance = -1 // shifted by -gap along x
	InstanceCurrent Instance = 0
	InstanceAfter   Instance = 1 // shifted by +gap along x
)

// Instances lists every instance in draw order.
var Instances = []Instance{InstanceBefore, InstanceCurrent, InstanceAfter}

// String returns the instance name.
func (i Instance) String() string {
	switch i {
	case InstanceBefore:
		return "before"
	case InstanceCurrent:
		return "current"
	case InstanceAfter:
		return "after"
	}
	return "unknown"
}

// Transform is the decomposed 4D affine transform handed to the shader.
type Transform struct {
	Rotation    math.Mat4
	Translation math.Vec4
	Scale       math.Vec4
}

// Apply returns translation + rotation * (scale * p).
func (t Transform) Apply(p math.Vec4) math.Vec4 {
	return t.Translation.Add(t.Rotation.MulVec4(t.Scale.Mul(p)))
}

// Gap returns the lateral distance between instances.
func Gap(center math.Vec4, scale float32) float32 {
	return center.W * scale * GapFactor
}

// ScaleVector returns (s, s, s, 1). The w extent is never scaled.
func ScaleVector(scale float32) math.Vec4 {
	return math.Vec4{X: scale, Y: scale, Z: scale, W: 1}
}

// Translation returns the center shifted along x by the instance's gap.
func Translation(center math.Vec4, scale float32, inst Instance) math.Vec4 {
	t := center
	t.X += float32(inst) * Gap(center, scale)
	return t
}

// DecomposeAffine returns the rotation, translation and scale vector for one
// instance placed at center with uniform scale.
func DecomposeAffine(rotation math.Mat4, center math.Vec4, scale float32, inst Instance) Transform {
	return Transform{
		Rotation:    rotation,
		Translation: Translation(center, scale, inst),
		Scale:       ScaleVector(scale),
	}
}

// ParseInstance resolves an instance name.
func ParseInstance(name string) (Instance, error) {
	for _, inst := range Instances {
		if inst.String() == name {
			return inst, nil
		}
	}
	return 0, fmt.Errorf("unknown instance %q", name)
}

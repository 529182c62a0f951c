package transform4d

import (
	"github.com/Faultbox/hyperview/pkg/math"
)

// State is the animation state of one session: rotation angles and their
// velocities, plus the placement of the object in 4-space.
type State struct {
	Angles     Angles
	Velocities Angles

	Center math.Vec4
	Scale  float32
	// WVelocity drives center.w over time.
	WVelocity float32
}

// NewState returns the initial state: everything zero except center.w and
// scale, which start at 1.
func NewState() State {
	return State{
		Center: math.Vec4{W: 1},
		Scale:  1,
	}
}

// Reset restores the initial state.
func (s *State) Reset() {
	*s = NewState()
}

// Update integrates every angle and center.w by velocity * dt. Angles are not
// wrapped; sine and cosine take care of periodicity.
func Update(s *State, dt float32) {
	for p := range s.Angles {
		s.Angles[p] += s.Velocities[p] * dt
	}
	s.Center.W += s.WVelocity * dt
}

// Rotation returns the composed rotation for the current angles.
func (s State) Rotation() math.Mat4 {
	return Compose(s.Angles)
}

// Transform returns the shader transform for one instance.
func (s State) Transform(inst Instance) Transform {
	return DecomposeAffine(s.Rotation(), s.Center, s.Scale, inst)
}

// Transforms returns the transforms for the given instances, composing the
// rotation once.
func (s State) Transforms(instances ...Instance) []Transform {
	r := s.Rotation()
	out := make([]Transform, 0, len(instances))
	for _, inst := range instances {
		out = append(out, DecomposeAffine(r, s.Center, s.Scale, inst))
	}
	return out
}

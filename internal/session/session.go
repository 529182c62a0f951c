// Package session owns the live animation state of the visualizer and is the
// only place where user input reaches it. Every setter clamps its argument to
// the configured limits; the transform engine itself never clamps.
package session

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hyperview/internal/config"
	"github.com/Faultbox/hyperview/internal/logger"
	"github.com/Faultbox/hyperview/pkg/hypercube"
	"github.com/Faultbox/hyperview/pkg/math"
	"github.com/Faultbox/hyperview/pkg/transform4d"
)

// Limits bounds every user-settable quantity.
type Limits struct {
	MaxAngularVelocity float32
	MaxOffset          float32
	MinCenterW         float32
	MaxCenterW         float32
	MinScale           float32
	MaxScale           float32
	VelocityStep       float32
	OffsetStep         float32
	ScaleStep          float32
}

// LimitsFromConfig copies the controls section. MinCenterW is raised to 1 if
// configured lower: the divide reduction needs w >= 1.
func LimitsFromConfig(c config.ControlsConfig) Limits {
	l := Limits{
		MaxAngularVelocity: c.MaxAngularVelocity,
		MaxOffset:          c.MaxOffset,
		MinCenterW:         max(c.MinCenterW, 1),
		MaxCenterW:         c.MaxCenterW,
		MinScale:           c.MinScale,
		MaxScale:           c.MaxScale,
		VelocityStep:       c.VelocityStep,
		OffsetStep:         c.OffsetStep,
		ScaleStep:          c.ScaleStep,
	}
	l.MaxCenterW = max(l.MaxCenterW, l.MinCenterW)
	return l
}

// Display holds what gets drawn and how.
type Display struct {
	Variants  []hypercube.Variant
	Instances []transform4d.Instance
	Wireframe bool // draw the wire overlay on top of solid variants
	Lighting  bool
	Texturing bool
	Ghosts    bool // draw the before/after instances
}

// Session is the mutable state behind one window.
type Session struct {
	State   transform4d.State
	Limits  Limits
	Display Display

	SpeedMultiplier float32
	Paused          bool
	Selected        transform4d.Plane

	initial    transform4d.State
	quitting   bool
	screenshot bool
	log        *zap.Logger
}

// New builds a session from config. The config is expected to be validated;
// unknown names are skipped with a warning.
func New(cfg *config.Config) *Session {
	s := &Session{
		Limits:          LimitsFromConfig(cfg.Controls),
		SpeedMultiplier: cfg.Animation.SpeedMultiplier,
		Paused:          cfg.Animation.Paused,
		Selected:        transform4d.PlaneXW,
		log:             logger.Named("session"),
	}

	s.Display = Display{
		Wireframe: false,
		Lighting:  cfg.Render.Lighting,
		Texturing: cfg.Render.Texturing,
	}
	for _, name := range cfg.Mesh.Variants {
		v, err := hypercube.ParseVariant(name)
		if err != nil {
			s.log.Warn("skipping variant", zap.Error(err))
			continue
		}
		if v == hypercube.WireOverlay {
			s.Display.Wireframe = true
		}
		s.Display.Variants = append(s.Display.Variants, v)
	}
	for _, name := range cfg.Mesh.Instances {
		inst, err := transform4d.ParseInstance(name)
		if err != nil {
			s.log.Warn("skipping instance", zap.Error(err))
			continue
		}
		if inst != transform4d.InstanceCurrent {
			s.Display.Ghosts = true
		}
		s.Display.Instances = append(s.Display.Instances, inst)
	}

	s.State = transform4d.NewState()
	s.clampPlacement()
	for name, v := range cfg.Animation.Velocities {
		p, err := transform4d.ParsePlane(name)
		if err != nil {
			s.log.Warn("skipping velocity", zap.Error(err))
			continue
		}
		s.SetVelocity(p, v)
	}
	s.State.WVelocity = cfg.Animation.WVelocity
	s.initial = s.State

	return s
}

// SetVelocity sets the angular velocity of one plane, clamped to
// ±MaxAngularVelocity.
func (s *Session) SetVelocity(p transform4d.Plane, v float32) {
	lim := s.Limits.MaxAngularVelocity
	s.State.Velocities[p] = clamp(v, -lim, lim)
}

// SetAngle sets one rotation angle directly.
func (s *Session) SetAngle(p transform4d.Plane, angle float32) {
	s.State.Angles[p] = angle
}

// SetCenter sets one coordinate of the center. x, y and z are clamped to
// ±MaxOffset, w to [MinCenterW, MaxCenterW].
func (s *Session) SetCenter(a math.Axis, v float32) {
	if a == math.AxisW {
		v = clamp(v, s.Limits.MinCenterW, s.Limits.MaxCenterW)
	} else {
		v = clamp(v, -s.Limits.MaxOffset, s.Limits.MaxOffset)
	}
	s.State.Center = s.State.Center.With(a, v)
}

// SetScale sets the uniform xyz scale, clamped to [MinScale, MaxScale].
func (s *Session) SetScale(v float32) {
	s.State.Scale = clamp(v, s.Limits.MinScale, s.Limits.MaxScale)
}

// Reset zeroes every angle and velocity and recenters the object at
// (0, 0, 0, 1) with scale 1, pulled into the configured limits.
func (s *Session) Reset() {
	s.State.Reset()
	s.clampPlacement()
	s.log.Debug("reset")
}

func (s *Session) clampPlacement() {
	s.SetCenter(math.AxisW, s.State.Center.W)
	s.SetScale(s.State.Scale)
}

// Restart restores the state the session was created with, velocities
// included.
func (s *Session) Restart() {
	s.State = s.initial
}

// Step advances the animation by dt seconds unless paused. center.w bounces
// between its limits instead of leaving them.
func (s *Session) Step(dt float32) {
	if s.Paused {
		return
	}
	transform4d.Update(&s.State, dt*s.SpeedMultiplier)

	w := s.State.Center.W
	switch {
	case w < s.Limits.MinCenterW:
		s.State.Center.W = s.Limits.MinCenterW
		s.State.WVelocity = abs(s.State.WVelocity)
	case w > s.Limits.MaxCenterW:
		s.State.Center.W = s.Limits.MaxCenterW
		s.State.WVelocity = -abs(s.State.WVelocity)
	}
}

// Instances returns the instances to draw this frame.
func (s *Session) Instances() []transform4d.Instance {
	if s.Display.Ghosts {
		if len(s.Display.Instances) > 1 {
			return s.Display.Instances
		}
		return transform4d.Instances
	}
	return []transform4d.Instance{transform4d.InstanceCurrent}
}

// Transforms returns one shader transform per visible instance.
func (s *Session) Transforms() []transform4d.Transform {
	return s.State.Transforms(s.Instances()...)
}

// Quitting reports whether a quit action was received.
func (s *Session) Quitting() bool {
	return s.quitting
}

// TakeScreenshotRequest reports and clears a pending screenshot request. The
// capture itself happens at the start of the next frame.
func (s *Session) TakeScreenshotRequest() bool {
	req := s.screenshot
	s.screenshot = false
	return req
}

// Apply performs an action. It returns false for ActionNone.
func (s *Session) Apply(a Action) bool {
	if p, ok := a.selectedPlane(); ok {
		s.Selected = p
		s.log.Debug("plane selected", zap.Stringer("plane", p))
		return true
	}

	step := s.Limits.OffsetStep
	c := s.State.Center

	switch a {
	case ActionReset:
		s.Reset()
	case ActionTogglePause:
		s.Paused = !s.Paused
	case ActionQuit:
		s.quitting = true
	case ActionVelocityUp:
		s.SetVelocity(s.Selected, s.State.Velocities[s.Selected]+s.Limits.VelocityStep)
	case ActionVelocityDown:
		s.SetVelocity(s.Selected, s.State.Velocities[s.Selected]-s.Limits.VelocityStep)
	case ActionMoveLeft:
		s.SetCenter(math.AxisX, c.X-step)
	case ActionMoveRight:
		s.SetCenter(math.AxisX, c.X+step)
	case ActionMoveUp:
		s.SetCenter(math.AxisY, c.Y+step)
	case ActionMoveDown:
		s.SetCenter(math.AxisY, c.Y-step)
	case ActionWIn:
		s.SetCenter(math.AxisW, c.W-step)
	case ActionWOut:
		s.SetCenter(math.AxisW, c.W+step)
	case ActionScaleUp:
		s.SetScale(s.State.Scale + s.Limits.ScaleStep)
	case ActionScaleDown:
		s.SetScale(s.State.Scale - s.Limits.ScaleStep)
	case ActionToggleWireframe:
		s.Display.Wireframe = !s.Display.Wireframe
	case ActionToggleLighting:
		s.Display.Lighting = !s.Display.Lighting
	case ActionToggleTexture:
		s.Display.Texturing = !s.Display.Texturing
	case ActionToggleGhosts:
		s.Display.Ghosts = !s.Display.Ghosts
	case ActionScreenshot:
		s.screenshot = true
	default:
		return false
	}
	return true
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

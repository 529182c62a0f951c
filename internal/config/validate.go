package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/hyperview/pkg/hypercube"
	"github.com/Faultbox/hyperview/pkg/transform4d"
)

// Validate reports every inconsistent setting at once.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}

	switch c.Render.Projection {
	case "perspective", "orthographic":
	default:
		err = multierr.Append(err, fmt.Errorf("render: unknown projection %q", c.Render.Projection))
	}
	switch c.Render.ReduceW {
	case "drop", "divide":
	default:
		err = multierr.Append(err, fmt.Errorf("render: unknown reduce_w mode %q", c.Render.ReduceW))
	}
	if c.Render.Projection == "perspective" && (c.Render.FOV <= 0 || c.Render.FOV >= 180) {
		err = multierr.Append(err, fmt.Errorf("render: fov %.1f out of (0, 180)", c.Render.FOV))
	}
	if c.Render.CameraDist <= 0 {
		err = multierr.Append(err, fmt.Errorf("render: camera_distance must be positive"))
	}
	if c.Render.GhostBrightness < 0 || c.Render.GhostBrightness > 1 {
		err = multierr.Append(err, fmt.Errorf("render: ghost_brightness %.2f out of [0, 1]", c.Render.GhostBrightness))
	}

	if c.Mesh.Size <= 0 {
		err = multierr.Append(err, fmt.Errorf("mesh: size %.3f must be positive", c.Mesh.Size))
	}
	if len(c.Mesh.Variants) == 0 {
		err = multierr.Append(err, fmt.Errorf("mesh: at least one variant is required"))
	}
	for _, name := range c.Mesh.Variants {
		if _, perr := hypercube.ParseVariant(name); perr != nil {
			err = multierr.Append(err, fmt.Errorf("mesh: %w", perr))
		}
	}
	for _, name := range c.Mesh.Instances {
		if _, perr := transform4d.ParseInstance(name); perr != nil {
			err = multierr.Append(err, fmt.Errorf("mesh: %w", perr))
		}
	}
	for name := range c.Animation.Velocities {
		if _, perr := transform4d.ParsePlane(name); perr != nil {
			err = multierr.Append(err, fmt.Errorf("animation: %w", perr))
		}
	}

	ctl := c.Controls
	if ctl.MinCenterW < 1 {
		err = multierr.Append(err, fmt.Errorf("controls: min_center_w %.2f must be >= 1", ctl.MinCenterW))
	}
	if ctl.MaxCenterW < ctl.MinCenterW {
		err = multierr.Append(err, fmt.Errorf("controls: max_center_w below min_center_w"))
	}
	if ctl.MinScale <= 0 || ctl.MaxScale < ctl.MinScale {
		err = multierr.Append(err, fmt.Errorf("controls: scale range [%.2f, %.2f] is invalid", ctl.MinScale, ctl.MaxScale))
	}
	if ctl.MaxAngularVelocity <= 0 {
		err = multierr.Append(err, fmt.Errorf("controls: max_angular_velocity must be positive"))
	}
	if ctl.VelocityStep <= 0 || ctl.OffsetStep <= 0 || ctl.ScaleStep <= 0 {
		err = multierr.Append(err, fmt.Errorf("controls: step sizes must be positive"))
	}

	return err
}

// Package app wires config, session, camera and renderer together and drives
// them from one of two frontends: the ImGui control window or the bare SDL
// window with keyboard bindings.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/hyperview/internal/config"
	"github.com/Faultbox/hyperview/internal/engine/camera"
	"github.com/Faultbox/hyperview/internal/engine/debug"
	"github.com/Faultbox/hyperview/internal/engine/renderer"
	"github.com/Faultbox/hyperview/internal/logger"
	"github.com/Faultbox/hyperview/internal/session"
	"github.com/Faultbox/hyperview/pkg/hypercube"
	"github.com/Faultbox/hyperview/pkg/transform4d"
)

// core is the frontend-independent part of the application. It must be
// created after a GL context is current.
type core struct {
	cfg      *config.Config
	session  *session.Session
	camera   *camera.OrbitCamera
	renderer *renderer.Renderer
	shots    *debug.Screenshots
	stats    MeshStats

	log *zap.Logger
}

func newCore(cfg *config.Config) (*core, error) {
	c := &core{
		cfg:     cfg,
		session: session.New(cfg),
		camera:  camera.NewOrbitCamera(cfg.Render.CameraDist, cfg.Render.FOV, camera.ParseProjection(cfg.Render.Projection)),
		shots:   debug.NewScreenshots(cfg.Render.Screenshots, "hyperview"),
		log:     logger.Named("app"),
	}

	var err error
	c.renderer, err = renderer.New(&cfg.Render)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	mesh := BuildMesh(cfg.Mesh.Size, c.session.Display)
	if err := c.renderer.Upload(mesh); err != nil {
		c.renderer.Close()
		return nil, fmt.Errorf("failed to upload mesh: %w", err)
	}
	c.stats = Summarize(mesh)

	c.log.Info("tesseract ready",
		zap.Float32("size", cfg.Mesh.Size),
		zap.Int("sub_meshes", len(mesh.SubMeshes)),
		zap.Int("vertices", c.stats.Vertices),
		zap.Int("triangles", c.stats.Triangles),
		zap.Int("lines", c.stats.Lines),
	)
	return c, nil
}

func (c *core) close() {
	if c.renderer != nil {
		c.renderer.Close()
	}
}

// update advances the animation and follows render settings edited at runtime.
func (c *core) update(dt float32) {
	c.session.Step(dt)
	c.camera.Projection = camera.ParseProjection(c.cfg.Render.Projection)
	c.camera.FOV = c.cfg.Render.FOV
}

// draw renders every visible instance into the currently bound framebuffer.
func (c *core) draw(width, height int) {
	c.renderer.Resize(width, height)
	c.renderer.Draw(renderer.Frame{
		ViewProj:   c.camera.ViewProjection(c.renderer.Aspect()),
		CameraPos:  c.camera.Position(),
		Display:    c.session.Display,
		Instances:  c.session.Instances(),
		Transforms: c.session.Transforms(),
	})
}

// loadTexture swaps the face texture and remembers the path on success.
func (c *core) loadTexture(path string) error {
	if err := c.renderer.LoadTexture(path); err != nil {
		return err
	}
	c.cfg.Render.TexturePath = path
	return nil
}

// saveScreenshot writes bottom-up RGBA pixels and logs the result.
func (c *core) saveScreenshot(pixels []byte, width, height int) (string, error) {
	path, err := c.shots.SavePixels(pixels, width, height)
	if err != nil {
		c.log.Error("screenshot failed", zap.Error(err))
		return "", err
	}
	c.log.Info("screenshot saved", zap.String("path", path))
	return path, nil
}

// saveConfig writes the live session and render settings to the user config.
func (c *core) saveConfig() error {
	SyncConfig(c.cfg, c.session)
	if err := c.cfg.Save(); err != nil {
		c.log.Error("failed to save config", zap.Error(err))
		return err
	}
	c.log.Info("config saved")
	return nil
}

// BuildMesh builds the sub-meshes every draw pass for d can need.
func BuildMesh(size float32, d session.Display) *hypercube.Mesh {
	return hypercube.Build(size, renderer.MeshVariants(d)...)
}

// MeshStats are the totals shown in the control panel.
type MeshStats struct {
	Vertices  int
	Triangles int
	Lines     int
}

// Summarize totals the primitives of all sub-meshes.
func Summarize(m *hypercube.Mesh) MeshStats {
	var s MeshStats
	for i := range m.SubMeshes {
		sm := &m.SubMeshes[i]
		s.Vertices += len(sm.Vertices)
		if sm.Topology == hypercube.Lines {
			s.Lines += sm.PrimitiveCount()
		} else {
			s.Triangles += sm.PrimitiveCount()
		}
	}
	return s
}

// SyncConfig copies the live session state back into cfg so that saving
// reproduces the current view on the next start.
func SyncConfig(cfg *config.Config, s *session.Session) {
	a := &cfg.Animation
	a.SpeedMultiplier = s.SpeedMultiplier
	a.Paused = s.Paused
	a.WVelocity = s.State.WVelocity
	a.Velocities = make(map[string]float32)
	for p := transform4d.Plane(0); p < transform4d.PlaneCount; p++ {
		if v := s.State.Velocities[p]; v != 0 {
			a.Velocities[p.String()] = v
		}
	}

	cfg.Render.Lighting = s.Display.Lighting
	cfg.Render.Texturing = s.Display.Texturing

	cfg.Mesh.Variants = cfg.Mesh.Variants[:0]
	for _, v := range s.Display.Variants {
		if v != hypercube.WireOverlay {
			cfg.Mesh.Variants = append(cfg.Mesh.Variants, v.String())
		}
	}
	// An overlay-only mesh keeps its variant even when hidden.
	if s.Display.Wireframe || len(cfg.Mesh.Variants) == 0 {
		cfg.Mesh.Variants = append(cfg.Mesh.Variants, hypercube.WireOverlay.String())
	}

	cfg.Mesh.Instances = cfg.Mesh.Instances[:0]
	for _, inst := range s.Instances() {
		cfg.Mesh.Instances = append(cfg.Mesh.Instances, inst.String())
	}
}

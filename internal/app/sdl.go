package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/hyperview/internal/config"
	"github.com/Faultbox/hyperview/internal/engine/framebuffer"
	"github.com/Faultbox/hyperview/internal/engine/input"
	"github.com/Faultbox/hyperview/internal/engine/window"
)

// SDL is the keyboard-driven frontend: a bare window, no panels.
type SDL struct {
	*core

	running bool
	window  *window.Window
	input   *input.Input
	keymap  input.Keymap
}

// NewSDL creates the window, the renderer and the keymap.
func NewSDL(cfg *config.Config) (*SDL, error) {
	a := &SDL{}

	var err error
	a.window, err = window.New(cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just made current.
	a.core, err = newCore(cfg)
	if err != nil {
		a.window.Close()
		return nil, err
	}

	a.keymap, err = input.NewKeymap(cfg.Keys)
	if err != nil {
		// Bad bindings are skipped, the rest still work.
		a.log.Warn("invalid key bindings", zap.Error(err))
	}
	a.input = input.New()

	a.log.Info("SDL frontend initialized", zap.Int("bindings", len(a.keymap)))
	return a, nil
}

// Run starts the main loop.
func (a *SDL) Run() error {
	a.running = true

	lastTime := time.Now()
	fps := newFPSCounter(lastTime)

	a.log.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Input
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents(a.input.Events())
		if a.session.Quitting() {
			a.running = false
			break
		}

		// 2. Update
		a.update(dt)

		// 3. Render
		width, height := a.window.DrawableSize()
		a.draw(width, height)
		if a.session.TakeScreenshotRequest() {
			pixels := framebuffer.ReadDefault(int32(width), int32(height))
			a.saveScreenshot(pixels, width, height)
		}

		// 4. Present
		a.window.SwapBuffers()

		if fps.tick(now) {
			a.window.SetTitle(fmt.Sprintf("%s - %.0f FPS", a.cfg.Window.Title, fps.fps))
			a.log.Debug("fps", zap.Float32("fps", fps.fps), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
		}
	}

	return nil
}

func (a *SDL) handleEvents(events []input.Event) {
	for _, e := range events {
		switch e.Type {
		case input.EventMouseMove:
			if a.input.Dragging() {
				a.camera.HandleDrag(float32(e.DeltaX), float32(e.DeltaY))
			}
		case input.EventMouseWheel:
			a.camera.HandleZoom(e.Wheel)
		}
	}

	for _, action := range a.keymap.Actions(events) {
		a.session.Apply(action)
	}
}

// Close releases GL resources and the window.
func (a *SDL) Close() {
	if a.core != nil {
		a.log.Info("closing")
		a.close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

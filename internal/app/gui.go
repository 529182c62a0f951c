package app

import (
	"fmt"
	"os"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/hyperview/internal/config"
	"github.com/Faultbox/hyperview/internal/engine/framebuffer"
	"github.com/Faultbox/hyperview/internal/engine/ui"
	"github.com/Faultbox/hyperview/internal/logger"
	"github.com/Faultbox/hyperview/internal/session"
)

const panelWidth = 360

// windowBackend is the part of ui.Backend the GUI drives.
type windowBackend interface {
	Run(renderFunc func())
	SetWindowTitle(title string)
	Close()
}

// GUI is the ImGui frontend: a control panel next to the 3D view.
type GUI struct {
	*core

	backend  windowBackend
	fb       *framebuffer.Framebuffer
	panel    *ui.Panel
	view     ui.ViewportImage
	bindings ui.Bindings
	dialog   textureDialog

	lastTime time.Time
	fps      *fpsCounter
}

// NewGUI creates the ImGui window, the renderer and the offscreen target.
func NewGUI(cfg *config.Config) (*GUI, error) {
	a := &GUI{}

	backend, err := ui.NewBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create ui backend: %w", err)
	}
	a.backend = backend

	a.core, err = newCore(cfg)
	if err != nil {
		a.abort()
		return nil, err
	}

	// The backend clears the window after our callback, so the scene is
	// drawn offscreen and shown as an image.
	a.fb, err = framebuffer.New(int32(cfg.Window.Width-panelWidth), int32(cfg.Window.Height))
	if err != nil {
		a.abort()
		return nil, fmt.Errorf("failed to create framebuffer: %w", err)
	}

	a.bindings, err = ui.ParseBindings(cfg.Keys)
	if err != nil {
		a.log.Warn("invalid key bindings", zap.Error(err))
	}

	a.panel = ui.NewPanel(a.session, &cfg.Render)
	a.lastTime = time.Now()
	a.fps = newFPSCounter(a.lastTime)

	a.log.Info("GUI frontend initialized", zap.Int("bindings", len(a.bindings)))
	return a, nil
}

// Run starts the backend loop. It returns when the window is closed.
func (a *GUI) Run() error {
	a.log.Info("starting main loop")
	a.backend.Run(a.frame)
	return nil
}

// Close releases GL resources.
func (a *GUI) Close() {
	if a.fb != nil {
		a.fb.Destroy()
		a.fb = nil
	}
	if a.core != nil {
		a.log.Info("closing")
		a.close()
		a.core = nil
	}
}

// abort releases everything a failed NewGUI created, the window included.
func (a *GUI) abort() {
	a.Close()
	if a.backend != nil {
		a.backend.Close()
		a.backend = nil
	}
}

// frame is called by the backend once per frame inside an ImGui frame.
func (a *GUI) frame() {
	now := time.Now()
	dt := float32(now.Sub(a.lastTime).Seconds())
	a.lastTime = now

	if path, ok := a.dialog.take(); ok {
		if err := a.loadTexture(path); err != nil {
			a.panel.SetStatus("Texture failed, using checkerboard")
		} else {
			a.panel.SetStatus("Loaded " + path)
		}
	}

	for _, action := range a.bindings.Pressed() {
		a.session.Apply(action)
	}

	a.update(dt)

	a.handle(a.panel.MenuBar())

	pos, size := ui.Viewport()
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, size.Y))
	if imgui.BeginV("Controls", nil, flags) {
		a.handle(a.panel.Draw(ui.Stats{
			FPS:       a.fps.fps,
			Vertices:  a.stats.Vertices,
			Triangles: a.stats.Triangles,
			Lines:     a.stats.Lines,
			Texture:   a.cfg.Render.TexturePath,
		}))
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+panelWidth, pos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(size.X-panelWidth, size.Y))
	viewFlags := flags | imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar
	if imgui.BeginV("##View", nil, viewFlags) {
		a.drawScene()
	}
	imgui.End()

	if a.session.Quitting() {
		a.quit()
	}

	if a.fps.tick(now) {
		a.backend.SetWindowTitle(fmt.Sprintf("%s - %.0f FPS", a.cfg.Window.Title, a.fps.fps))
	}
}

func (a *GUI) drawScene() {
	width, height := a.view.Size()
	a.fb.Resize(width, height)

	restore := a.fb.Begin()
	a.draw(int(width), int(height))
	restore()

	if a.session.TakeScreenshotRequest() {
		if path, err := a.saveScreenshot(a.fb.ReadPixels(), int(width), int(height)); err == nil {
			a.panel.SetStatus("Saved " + path)
		} else {
			a.panel.SetStatus("Screenshot failed")
		}
	}

	a.view.Draw(a.fb.ColorTexture(), width, height, a.camera)
}

func (a *GUI) handle(req ui.Requests) {
	if req.LoadTexture {
		a.dialog.show(a.log)
	}
	if req.ResetCamera {
		a.camera.Reset()
	}
	if req.Screenshot {
		a.session.Apply(session.ActionScreenshot)
	}
	if req.SaveConfig {
		if err := a.saveConfig(); err != nil {
			a.panel.SetStatus("Save failed: " + err.Error())
		} else {
			a.panel.SetStatus("Config saved")
		}
	}
	if req.Quit {
		a.quit()
	}
}

// quit exits the process; the backend loop has no way to be stopped from
// inside a frame.
func (a *GUI) quit() {
	a.Close()
	logger.Sync()
	os.Exit(0)
}

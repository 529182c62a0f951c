// Package ui provides the ImGui frontend: backend setup, the control panel and
// the 3D viewport widget.
package ui

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hyperview/internal/logger"
)

// fontPaths are tried in order; the ImGui default font is used if none exist.
var fontPaths = []string{
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"C:\\Windows\\Fonts\\segoeui.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
}

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	width   int
	height  int
}

// NewBackend creates the ImGui window and initializes OpenGL.
func NewBackend(title string, width, height int) (*Backend, error) {
	b := &Backend{
		width:  width,
		height: height,
	}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	// Fonts must be added before the first frame builds the atlas.
	b.backend.SetAfterCreateContextHook(loadFont)

	b.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	b.backend.CreateWindow(title, width, height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	return b, nil
}

func loadFont() {
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		fontCfg := imgui.NewFontConfig()
		defer fontCfg.Destroy()
		imgui.CurrentIO().Fonts().AddFontFromFileTTFV(path, 15.0, fontCfg, nil)
		logger.Named("ui").Debug("font loaded", zap.String("path", path))
		return
	}
}

// Run starts the main render loop. renderFunc is called once per frame with
// an ImGui frame already begun.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// Close tears down a backend whose loop was never started. The backend
// only releases its window and context on the way out of Run.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
	b.backend.Run(func() {})
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// WindowSize returns the size the window was created with.
func (b *Backend) WindowSize() (int, int) {
	return b.width, b.height
}

// Viewport returns the main viewport work area, excluding the menu bar.
func Viewport() (pos, size imgui.Vec2) {
	viewport := imgui.MainViewport()
	return viewport.WorkPos(), viewport.WorkSize()
}

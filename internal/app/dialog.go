package app

import (
	"sync"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"
)

// textureDialog runs the native file picker off the render thread. The chosen
// path is picked up by the next frame.
type textureDialog struct {
	mu      sync.Mutex
	pending string
	open    bool
}

// show opens the picker unless one is already open.
func (d *textureDialog) show(log *zap.Logger) {
	d.mu.Lock()
	if d.open {
		d.mu.Unlock()
		return
	}
	d.open = true
	d.mu.Unlock()

	go func() {
		filename, err := dialog.File().
			Filter("Images", "png", "jpg", "jpeg", "bmp", "tga").
			Filter("All Files", "*").
			Title("Load Texture").
			Load()

		d.mu.Lock()
		d.open = false
		d.mu.Unlock()

		if err != nil {
			if err != dialog.ErrCancelled {
				log.Error("file dialog failed", zap.Error(err))
			}
			return
		}
		d.set(filename)
	}()
}

func (d *textureDialog) set(path string) {
	d.mu.Lock()
	d.pending = path
	d.mu.Unlock()
}

// take returns and clears the pending path.
func (d *textureDialog) take() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	path := d.pending
	d.pending = ""
	return path, path != ""
}

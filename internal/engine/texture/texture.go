// Package texture decodes face textures for the textured tesseract variants.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp" // BMP decoder registration
	xdraw "golang.org/x/image/draw"
)

// MaxSize caps the longer side of an uploaded texture.
const MaxSize = 2048

// Load decodes an image file into RGBA. PNG, JPEG, BMP and TGA are supported.
// Images larger than MaxSize are scaled down.
func Load(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read texture: %w", err)
	}

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode %s: empty image", filepath.Base(path))
	}

	return Fit(img, MaxSize), nil
}

// Fit converts img to RGBA, scaling it down so neither side exceeds limit.
func Fit(img image.Image, limit int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > limit || h > limit {
		if w >= h {
			h = max(1, h*limit/w)
			w = limit
		} else {
			w = max(1, w*limit/h)
			h = limit
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	}
	return dst
}

// Checkerboard returns a size x size image of cells x cells alternating squares.
func Checkerboard(size, cells int, a, b color.RGBA) *image.RGBA {
	size = max(size, 1)
	cells = min(max(cells, 1), size)
	cell := size / cells

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// DefaultCheckerboard is the fallback texture used when none is configured or
// the configured one fails to load.
func DefaultCheckerboard() *image.RGBA {
	return Checkerboard(256, 8,
		color.RGBA{R: 230, G: 230, B: 230, A: 255},
		color.RGBA{R: 60, G: 90, B: 160, A: 255},
	)
}

package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types handled by DecodeTGA.
const (
	TGATypeUncompressed = 2
	TGATypeRLE          = 10
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("tga: pixel data truncated")

// DecodeTGA decodes an uncompressed or RLE true-color TGA with 24 or 32 bits
// per pixel.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, errors.New("tga: header too short")
	}

	idLen := int(data[0])
	if data[1] != 0 {
		return nil, errors.New("tga: color-mapped images are not supported")
	}
	kind := data[2]
	if kind != TGATypeUncompressed && kind != TGATypeRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", kind)
	}
	w := int(data[12]) | int(data[13])<<8
	h := int(data[14]) | int(data[15])<<8
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("tga: empty image %dx%d", w, h)
	}
	bpp := int(data[16])
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}
	topDown := data[17]&0x20 != 0

	start := tgaHeaderSize + idLen
	if start > len(data) {
		return nil, errTGATruncated
	}

	r := tgaReader{
		img:     image.NewRGBA(image.Rect(0, 0, w, h)),
		src:     data[start:],
		bpp:     bpp / 8,
		topDown: topDown,
	}
	var err error
	if kind == TGATypeUncompressed {
		err = r.raw(w * h)
	} else {
		err = r.rle()
	}
	if err != nil {
		return nil, err
	}
	return r.img, nil
}

type tgaReader struct {
	img     *image.RGBA
	src     []byte
	bpp     int
	topDown bool
	n       int // pixels written
}

// pixel reads one BGR(A) pixel.
func (r *tgaReader) pixel() (color.RGBA, error) {
	if len(r.src) < r.bpp {
		return color.RGBA{}, errTGATruncated
	}
	c := color.RGBA{R: r.src[2], G: r.src[1], B: r.src[0], A: 255}
	if r.bpp == 4 {
		c.A = r.src[3]
	}
	r.src = r.src[r.bpp:]
	return c, nil
}

func (r *tgaReader) put(c color.RGBA) {
	w := r.img.Rect.Dx()
	h := r.img.Rect.Dy()
	x, y := r.n%w, r.n/w
	if !r.topDown {
		y = h - 1 - y
	}
	r.img.SetRGBA(x, y, c)
	r.n++
}

func (r *tgaReader) raw(count int) error {
	for i := 0; i < count; i++ {
		c, err := r.pixel()
		if err != nil {
			return err
		}
		r.put(c)
	}
	return nil
}

func (r *tgaReader) rle() error {
	total := r.img.Rect.Dx() * r.img.Rect.Dy()
	for r.n < total {
		if len(r.src) == 0 {
			return errTGATruncated
		}
		packet := r.src[0]
		r.src = r.src[1:]
		count := min(int(packet&0x7f)+1, total-r.n)

		if packet&0x80 == 0 {
			if err := r.raw(count); err != nil {
				return err
			}
			continue
		}
		c, err := r.pixel()
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			r.put(c)
		}
	}
	return nil
}

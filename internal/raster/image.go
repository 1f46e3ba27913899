package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var ErrInvalidSize = errors.New("raster: width and height must be at least 1")

// Pixel is one non-premultiplied RGBA sample.
type Pixel struct {
	R, G, B, A uint8
}

// Opaque returns a fully opaque pixel with the given color channels.
func Opaque(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 0xff}
}

// Image is a row-major pixel grid stored in one flat buffer. Images never
// share storage with each other.
type Image struct {
	width  int
	height int
	pix    []Pixel
}

func New(width, height int) (*Image, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}, nil
}

// Filled returns a width x height image where every pixel is p.
func Filled(width, height int, p Pixel) (*Image, error) {
	img, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for i := range img.pix {
		img.pix[i] = p
	}
	return img, nil
}

func (m *Image) Width() int  { return m.width }
func (m *Image) Height() int { return m.height }

func (m *Image) At(x, y int) Pixel {
	return m.pix[y*m.width+x]
}

func (m *Image) Set(x, y int, p Pixel) {
	m.pix[y*m.width+x] = p
}

// Row returns a copy of row y.
func (m *Image) Row(y int) []Pixel {
	out := make([]Pixel, m.width)
	copy(out, m.pix[y*m.width:(y+1)*m.width])
	return out
}

func (m *Image) Clone() *Image {
	out := &Image{width: m.width, height: m.height, pix: make([]Pixel, len(m.pix))}
	copy(out.pix, m.pix)
	return out
}

func (m *Image) Equal(other *Image) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i := range m.pix {
		if m.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// NRGBA converts the grid to the standard library's non-premultiplied form.
func (m *Image) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.width, m.height))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := m.At(x, y)
			out.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	return out
}

// FromNRGBA copies src into a new Image. The bounds origin is discarded.
func FromNRGBA(src *image.NRGBA) (*Image, error) {
	b := src.Bounds()
	img, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			c := src.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			img.Set(x, y, Pixel{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return img, nil
}

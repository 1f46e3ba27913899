package raster

import (
	"errors"
	"image"
	"testing"

	xdraw "golang.org/x/image/draw"
)

func gradient(t *testing.T, w, h int) *Image {
	t.Helper()
	img, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d) error = %v", w, h, err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, Pixel{R: uint8(x * 17), G: uint8(y * 31), B: uint8(x ^ y), A: uint8(255 - x)})
		}
	}
	return img
}

func TestScaleNearest_SameSizeIsCopy(t *testing.T) {
	src := gradient(t, 8, 8)
	out, err := ScaleNearest(src, 8)
	if err != nil {
		t.Fatalf("ScaleNearest() error = %v", err)
	}
	if !out.Equal(src) {
		t.Fatalf("ScaleNearest to own size changed pixels")
	}
	out.Set(0, 0, Pixel{})
	if src.At(0, 0) == (Pixel{}) {
		t.Fatalf("ScaleNearest result aliases source storage")
	}
}

func TestScaleNearest_Deterministic(t *testing.T) {
	src := gradient(t, 48, 48)
	for _, size := range []int{1, 16, 29, 48, 87, 192} {
		a, err := ScaleNearest(src, size)
		if err != nil {
			t.Fatalf("ScaleNearest(%d) error = %v", size, err)
		}
		b, err := ScaleNearest(src, size)
		if err != nil {
			t.Fatalf("ScaleNearest(%d) error = %v", size, err)
		}
		if !a.Equal(b) {
			t.Fatalf("ScaleNearest(%d) not deterministic", size)
		}
		if a.Width() != size || a.Height() != size {
			t.Fatalf("ScaleNearest(%d) = %dx%d", size, a.Width(), a.Height())
		}
	}
}

func TestScaleNearest_SinglePixelSource(t *testing.T) {
	want := Pixel{R: 10, G: 20, B: 30, A: 40}
	src, err := Filled(1, 1, want)
	if err != nil {
		t.Fatalf("Filled() error = %v", err)
	}
	for _, size := range []int{1, 2, 7, 256} {
		out, err := ScaleNearest(src, size)
		if err != nil {
			t.Fatalf("ScaleNearest(%d) error = %v", size, err)
		}
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if got := out.At(x, y); got != want {
					t.Fatalf("size %d pixel (%d,%d) = %+v, want %+v", size, x, y, got, want)
				}
			}
		}
	}
}

func TestScaleNearest_DownscaleMapping(t *testing.T) {
	src := gradient(t, 4, 4)
	out, err := ScaleNearest(src, 2)
	if err != nil {
		t.Fatalf("ScaleNearest() error = %v", err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got, want := out.At(x, y), src.At(x*2, y*2); got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestScaleNearest_MatchesXDrawOnIntegerUpscale(t *testing.T) {
	// Opaque pixels keep the premultiplied round trip inside x/image lossless.
	src := gradient(t, 6, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			p := src.At(x, y)
			p.A = 0xff
			src.Set(x, y, p)
		}
	}
	for _, factor := range []int{2, 3, 4} {
		size := 6 * factor
		ours, err := ScaleNearest(src, size)
		if err != nil {
			t.Fatalf("ScaleNearest(%d) error = %v", size, err)
		}
		ref := image.NewNRGBA(image.Rect(0, 0, size, size))
		xdraw.NearestNeighbor.Scale(ref, ref.Bounds(), src.NRGBA(), image.Rect(0, 0, 6, 6), xdraw.Src, nil)
		refImg, err := FromNRGBA(ref)
		if err != nil {
			t.Fatalf("FromNRGBA() error = %v", err)
		}
		if !ours.Equal(refImg) {
			t.Fatalf("ScaleNearest(%d) disagrees with x/image/draw nearest neighbor", size)
		}
	}
}

func TestScaleNearest_InvalidSize(t *testing.T) {
	src := gradient(t, 2, 2)
	if _, err := ScaleNearest(src, 0); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("ScaleNearest(0) error = %v, want ErrInvalidSize", err)
	}
}

func TestNew_RejectsEmpty(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{name: "zero width", w: 0, h: 3},
		{name: "zero height", w: 3, h: 0},
		{name: "negative", w: -1, h: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.w, tt.h); !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("New(%d, %d) error = %v", tt.w, tt.h, err)
			}
		})
	}
}

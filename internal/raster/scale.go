package raster

import "fmt"

// ScaleNearest resamples src to a size x size square by mapping every target
// coordinate t to source coordinate floor(t * srcEdge / size), independently
// per axis. When the target already matches the source, a copy is returned.
func ScaleNearest(src *Image, size int) (*Image, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: target edge %d", ErrInvalidSize, size)
	}
	if src.width == size && src.height == size {
		return src.Clone(), nil
	}
	dst, err := New(size, size)
	if err != nil {
		return nil, err
	}
	for y := 0; y < size; y++ {
		sy := y * src.height / size
		for x := 0; x < size; x++ {
			sx := x * src.width / size
			dst.pix[y*size+x] = src.pix[sy*src.width+sx]
		}
	}
	return dst, nil
}

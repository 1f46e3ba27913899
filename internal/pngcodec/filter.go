package pngcodec

import "fmt"

// Filter types, as per the PNG format.
const (
	FilterNone    = 0
	FilterSub     = 1
	FilterUp      = 2
	FilterAverage = 3
	FilterPaeth   = 4
)

// Paeth returns whichever of left (a), up (b) or up-left (c) is closest to
// a+b-c, preferring a, then b, then c on ties.
func Paeth(a, b, c uint8) uint8 {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Unfilter reverses the per-row filters of a decompressed scanline stream.
// Each of the height rows in raw is one filter-type byte followed by stride
// bytes; bpp is the distance in bytes to the corresponding byte of the pixel
// on the left. The returned rows are freshly allocated.
func Unfilter(raw []byte, height, stride, bpp int) ([][]byte, error) {
	if height < 1 || stride < 1 || bpp < 1 {
		return nil, FormatError(fmt.Sprintf("bad scanline geometry %dx%d bpp %d", stride, height, bpp))
	}
	if len(raw) < height*(stride+1) {
		return nil, FormatError("not enough pixel data")
	}

	rows := make([][]byte, height)
	prev := make([]byte, stride)
	for y := 0; y < height; y++ {
		start := y * (stride + 1)
		ft := raw[start]
		cur := make([]byte, stride)
		copy(cur, raw[start+1:start+1+stride])

		switch ft {
		case FilterNone:
		case FilterSub:
			for i := bpp; i < stride; i++ {
				cur[i] += cur[i-bpp]
			}
		case FilterUp:
			for i, p := range prev {
				cur[i] += p
			}
		case FilterAverage:
			for i := 0; i < bpp && i < stride; i++ {
				cur[i] += prev[i] / 2
			}
			for i := bpp; i < stride; i++ {
				cur[i] += uint8((int(cur[i-bpp]) + int(prev[i])) / 2)
			}
		case FilterPaeth:
			for i := 0; i < bpp && i < stride; i++ {
				cur[i] += Paeth(0, prev[i], 0)
			}
			for i := bpp; i < stride; i++ {
				cur[i] += Paeth(cur[i-bpp], prev[i], prev[i-bpp])
			}
		default:
			return nil, UnsupportedFormatError(fmt.Sprintf("filter type %d on row %d", ft, y))
		}

		rows[y] = cur
		prev = cur
	}
	return rows, nil
}

// appendUnfiltered appends one scanline tagged with FilterNone.
func appendUnfiltered(dst []byte, row []byte) []byte {
	dst = append(dst, FilterNone)
	return append(dst, row...)
}

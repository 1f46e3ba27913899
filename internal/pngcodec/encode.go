package pngcodec

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zlib"

	"appicon/internal/raster"
)

// Encode serializes img as an 8-bit RGBA PNG with a single IDAT chunk.
// Every scanline uses FilterNone and the payload is deflated at the best
// compression level, so equal images always produce equal bytes.
func Encode(img *raster.Image) ([]byte, error) {
	w, h := img.Width(), img.Height()

	ihdr := make([]byte, 0, ihdrLength)
	ihdr = binary.BigEndian.AppendUint32(ihdr, uint32(w))
	ihdr = binary.BigEndian.AppendUint32(ihdr, uint32(h))
	ihdr = append(ihdr,
		8,                       // bit depth
		ColorTypeTrueColorAlpha, // color type
		0,                       // compression
		0,                       // filter
		0,                       // interlace
	)

	stride := w * 4
	raw := make([]byte, 0, (stride+1)*h)
	line := make([]byte, stride)
	for y := 0; y < h; y++ {
		for x, p := range img.Row(y) {
			line[x*4] = p.R
			line[x*4+1] = p.G
			line[x*4+2] = p.B
			line[x*4+3] = p.A
		}
		raw = appendUnfiltered(raw, line)
	}

	var deflated bytes.Buffer
	zw, err := zlib.NewWriterLevel(&deflated, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("png: deflate setup: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("png: deflate: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("png: deflate: %w", err)
	}

	out := make([]byte, 0, len(signature)+3*12+len(ihdr)+deflated.Len())
	out = append(out, signature...)
	out = AppendChunk(out, chunkIHDR, ihdr)
	out = AppendChunk(out, chunkIDAT, deflated.Bytes())
	out = AppendChunk(out, chunkIEND, nil)
	return out, nil
}

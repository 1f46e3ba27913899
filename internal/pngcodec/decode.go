package pngcodec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"appicon/internal/raster"
)

// Color types, as per the PNG format.
const (
	ColorTypeGrayscale      = 0
	ColorTypeTrueColor      = 2
	ColorTypeIndexed        = 3
	ColorTypeGrayscaleAlpha = 4
	ColorTypeTrueColorAlpha = 6
)

// Upper bound on the inflated scanline stream; larger images are refused
// before any pixel memory is allocated.
const maxRawBytes = 1 << 30

// Header is the decoded IHDR payload.
type Header struct {
	Width       int
	Height      int
	BitDepth    uint8
	ColorType   uint8
	Compression uint8
	Filter      uint8
	Interlace   uint8
}

// BytesPerPixel is 3 for RGB and 4 for RGBA streams.
func (h Header) BytesPerPixel() int {
	if h.ColorType == ColorTypeTrueColorAlpha {
		return 4
	}
	return 3
}

func (h Header) validate() error {
	if h.Width < 1 || h.Height < 1 {
		return FormatError(fmt.Sprintf("bad dimensions %dx%d", h.Width, h.Height))
	}
	if h.BitDepth != 8 {
		return UnsupportedFormatError(fmt.Sprintf("bit depth %d", h.BitDepth))
	}
	if h.ColorType != ColorTypeTrueColor && h.ColorType != ColorTypeTrueColorAlpha {
		return UnsupportedFormatError(fmt.Sprintf("color type %d", h.ColorType))
	}
	if h.Compression != 0 {
		return UnsupportedFormatError(fmt.Sprintf("compression method %d", h.Compression))
	}
	if h.Filter != 0 {
		return UnsupportedFormatError(fmt.Sprintf("filter method %d", h.Filter))
	}
	if h.Interlace != 0 {
		return UnsupportedFormatError("interlaced image")
	}
	return nil
}

func parseIHDR(data []byte) (Header, error) {
	if len(data) != ihdrLength {
		return Header{}, FormatError(fmt.Sprintf("bad IHDR length %d", len(data)))
	}
	w := binary.BigEndian.Uint32(data[0:4])
	h := binary.BigEndian.Uint32(data[4:8])
	if w > maxChunkLength || h > maxChunkLength {
		return Header{}, FormatError(fmt.Sprintf("bad dimensions %dx%d", w, h))
	}
	return Header{
		Width:       int(w),
		Height:      int(h),
		BitDepth:    data[8],
		ColorType:   data[9],
		Compression: data[10],
		Filter:      data[11],
		Interlace:   data[12],
	}, nil
}

// Decode parses an 8-bit RGB or RGBA PNG stream. Chunk CRCs are verified.
// Ancillary chunks and the optional PLTE are skipped, any other critical
// chunk is refused, and scanning stops at IEND.
func Decode(data []byte) (*raster.Image, error) {
	r, err := newChunkReader(data)
	if err != nil {
		return nil, err
	}

	var (
		hdr     Header
		seenHdr bool
		idat    bytes.Buffer
	)
	for {
		c, ok, err := r.next(true)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		switch c.Type {
		case chunkIHDR:
			if seenHdr {
				return nil, FormatError("duplicate IHDR")
			}
			if hdr, err = parseIHDR(c.Data); err != nil {
				return nil, err
			}
			if err := hdr.validate(); err != nil {
				return nil, err
			}
			seenHdr = true
		case chunkIDAT:
			if !seenHdr {
				return nil, FormatError("IDAT before IHDR")
			}
			idat.Write(c.Data)
		case chunkIEND, chunkPLTE:
		default:
			if c.Critical() {
				return nil, UnsupportedFormatError(fmt.Sprintf("critical chunk %s", c.Type))
			}
		}
	}
	if !seenHdr {
		return nil, FormatError("missing IHDR")
	}
	if idat.Len() == 0 {
		return nil, FormatError("missing IDAT")
	}

	bpp := hdr.BytesPerPixel()
	stride := hdr.Width * bpp
	rawSize := int64(stride+1) * int64(hdr.Height)
	if int64(stride) != int64(hdr.Width)*int64(bpp) || rawSize > maxRawBytes {
		return nil, UnsupportedFormatError(fmt.Sprintf("image too large %dx%d", hdr.Width, hdr.Height))
	}

	raw, err := inflate(idat.Bytes(), int(rawSize))
	if err != nil {
		return nil, err
	}
	rows, err := Unfilter(raw, hdr.Height, stride, bpp)
	if err != nil {
		return nil, err
	}

	img, err := raster.New(hdr.Width, hdr.Height)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x := 0; x < hdr.Width; x++ {
			px := row[x*bpp : x*bpp+bpp]
			p := raster.Pixel{R: px[0], G: px[1], B: px[2], A: 0xff}
			if bpp == 4 {
				p.A = px[3]
			}
			img.Set(x, y, p)
		}
	}
	return img, nil
}

// inflate decompresses exactly want bytes of the zlib stream. The buffer
// grows with the data actually produced, so a header announcing a huge image
// costs nothing until the stream delivers it.
func inflate(compressed []byte, want int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, FormatError(fmt.Sprintf("bad zlib stream: %v", err))
	}
	defer zr.Close()

	var raw bytes.Buffer
	n, err := raw.ReadFrom(io.LimitReader(zr, int64(want)))
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, FormatError(fmt.Sprintf("bad zlib stream: %v", err))
	}
	if n < int64(want) {
		return nil, FormatError("not enough pixel data")
	}
	return raw.Bytes(), nil
}

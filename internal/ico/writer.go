// Package ico assembles Windows icon files that embed a PNG stream as their
// single image.
package ico

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	iconDirSize      = 6
	iconDirEntrySize = 16
	// PayloadOffset is where the embedded PNG starts in a single-entry file.
	PayloadOffset = iconDirSize + iconDirEntrySize

	MaxSize = 256
)

var (
	ErrEmptyPayload  = errors.New("ico: empty PNG payload")
	ErrImageTooLarge = errors.New("ico: image edge must be 1..256 pixels")
)

// Write wraps pngData, an already encoded size x size PNG, in an icon
// directory with one 32bpp entry.
func Write(pngData []byte, size int) ([]byte, error) {
	if len(pngData) == 0 {
		return nil, ErrEmptyPayload
	}
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: got %d", ErrImageTooLarge, size)
	}
	buf := make([]byte, PayloadOffset+len(pngData))

	// ICONDIR
	binary.LittleEndian.PutUint16(buf[0:2], 0) // reserved
	binary.LittleEndian.PutUint16(buf[2:4], 1) // image type (icon)
	binary.LittleEndian.PutUint16(buf[4:6], 1) // image count

	entry := buf[iconDirSize:PayloadOffset]
	entry[0] = dimByte(size)
	entry[1] = dimByte(size)
	entry[2] = 0                                  // palette
	entry[3] = 0                                  // reserved
	binary.LittleEndian.PutUint16(entry[4:6], 1)  // color planes
	binary.LittleEndian.PutUint16(entry[6:8], 32) // bits per pixel
	binary.LittleEndian.PutUint32(entry[8:12], uint32(len(pngData)))
	binary.LittleEndian.PutUint32(entry[12:16], PayloadOffset)

	copy(buf[PayloadOffset:], pngData)
	return buf, nil
}

// dimByte encodes an edge length; 0 stands for 256.
func dimByte(v int) byte {
	if v >= MaxSize {
		return 0
	}
	return byte(v)
}

package pngcodec

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

const (
	signature = "\x89PNG\r\n\x1a\n"

	chunkIHDR = "IHDR"
	chunkIDAT = "IDAT"
	chunkIEND = "IEND"
	chunkPLTE = "PLTE"

	ihdrLength = 13
	// Chunk lengths above 2^31-1 are invalid per the PNG format.
	maxChunkLength = 0x7fffffff
)

// Chunk is one length-prefixed PNG record. Data aliases the input buffer.
type Chunk struct {
	Type string
	Data []byte
	CRC  uint32
}

// Critical reports whether decoders must understand the chunk type.
func (c Chunk) Critical() bool {
	return len(c.Type) == 4 && c.Type[0] >= 'A' && c.Type[0] <= 'Z'
}

type chunkReader struct {
	data []byte
	off  int
	done bool
}

func newChunkReader(data []byte) (*chunkReader, error) {
	if len(data) < len(signature) || string(data[:len(signature)]) != signature {
		return nil, FormatError("not a PNG file")
	}
	return &chunkReader{data: data, off: len(signature)}, nil
}

func (r *chunkReader) advance(n int) ([]byte, error) {
	if n < 0 || r.off+n > len(r.data) {
		return nil, FormatError("truncated chunk")
	}
	r.off += n
	return r.data[r.off-n : r.off], nil
}

// next returns the following chunk, or ok=false once IEND was read or the
// buffer is exhausted on a chunk boundary.
func (r *chunkReader) next(verify bool) (Chunk, bool, error) {
	if r.done || r.off == len(r.data) {
		return Chunk{}, false, nil
	}
	head, err := r.advance(8)
	if err != nil {
		return Chunk{}, false, err
	}
	length := binary.BigEndian.Uint32(head[:4])
	if length > maxChunkLength {
		return Chunk{}, false, FormatError(fmt.Sprintf("bad chunk length %d", length))
	}
	typ := string(head[4:8])
	payload, err := r.advance(int(length))
	if err != nil {
		return Chunk{}, false, err
	}
	tail, err := r.advance(4)
	if err != nil {
		return Chunk{}, false, err
	}
	stored := binary.BigEndian.Uint32(tail)
	if verify {
		if got := chunkCRC(head[4:8], payload); got != stored {
			return Chunk{}, false, IntegrityError(fmt.Sprintf("%s chunk CRC 0x%08x, want 0x%08x", typ, stored, got))
		}
	}
	if typ == chunkIEND {
		r.done = true
	}
	return Chunk{Type: typ, Data: payload, CRC: stored}, true, nil
}

// ReadChunks splits a PNG stream into its chunks, stopping after IEND.
func ReadChunks(data []byte, verifyCRC bool) ([]Chunk, error) {
	r, err := newChunkReader(data)
	if err != nil {
		return nil, err
	}
	var chunks []Chunk
	for {
		c, ok, err := r.next(verifyCRC)
		if err != nil {
			return nil, err
		}
		if !ok {
			return chunks, nil
		}
		chunks = append(chunks, c)
	}
}

// AppendChunk appends the serialized form of a chunk to dst.
func AppendChunk(dst []byte, typ string, data []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(data)))
	dst = append(dst, typ...)
	dst = append(dst, data...)
	return binary.BigEndian.AppendUint32(dst, chunkCRC([]byte(typ), data))
}

func chunkCRC(typ []byte, data []byte) uint32 {
	h := crc32.NewIEEE()
	_, _ = h.Write(typ)
	_, _ = h.Write(data)
	return h.Sum32()
}

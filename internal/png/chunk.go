package png

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// Chunk types the codec cares about. Everything else is skipped.
const (
	chunkIHDR = "IHDR"
	chunkIDAT = "IDAT"
	chunkIEND = "IEND"
)

// maxChunkLength is the largest length a chunk may declare.
// https://www.w3.org/TR/PNG/#5Chunk-layout
const maxChunkLength = 0x7fffffff

// chunk is one length-type-payload-CRC unit of the stream.
type chunk struct {
	Type string
	Data []byte
	CRC  uint32
}

// cursor walks a flat byte buffer. It only moves forward and every read
// past the end of the buffer is a FormatError.
type cursor struct {
	buf []byte
	off int
}

func newCursor(buf []byte, off int) *cursor {
	return &cursor{buf: buf, off: off}
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.off
}

func (c *cursor) done() bool {
	return c.off >= len(c.buf)
}

// next returns the next n bytes without copying them.
func (c *cursor) next(n int, what string) ([]byte, error) {
	if n < 0 || n > c.remaining() {
		return nil, FormatError(fmt.Sprintf("truncated %s at offset %d", what, c.off))
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// chunk reads one chunk and verifies its CRC.
func (c *cursor) chunk() (chunk, error) {
	start := c.off
	hdr, err := c.next(8, "chunk header")
	if err != nil {
		return chunk{}, err
	}
	length := binary.BigEndian.Uint32(hdr[:4])
	typ := string(hdr[4:8])
	if length > maxChunkLength {
		return chunk{}, FormatError(fmt.Sprintf("bad chunk length %d for %q at offset %d", length, typ, start))
	}

	data, err := c.next(int(length), typ+" chunk data")
	if err != nil {
		return chunk{}, err
	}
	sum, err := c.next(4, typ+" chunk CRC")
	if err != nil {
		return chunk{}, err
	}

	want := binary.BigEndian.Uint32(sum)
	crc := crc32.NewIEEE()
	crc.Write(hdr[4:8])
	crc.Write(data)
	if got := crc.Sum32(); got != want {
		return chunk{}, FormatError(fmt.Sprintf("%s chunk CRC mismatch: got %08x, want %08x", typ, got, want))
	}

	return chunk{Type: typ, Data: data, CRC: want}, nil
}

package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/klauspost/compress/zlib"
)

// CompressionLevel indicates the zlib level used for the IDAT stream.
type CompressionLevel int

const (
	DefaultCompression CompressionLevel = 0
	NoCompression      CompressionLevel = -1
	BestSpeed          CompressionLevel = -2
	BestCompression    CompressionLevel = -3
)

// ParseCompressionLevel maps a config name to a level. Accepted names are
// best, default, speed and none.
func ParseCompressionLevel(name string) (CompressionLevel, error) {
	switch name {
	case "best", "":
		return BestCompression, nil
	case "default":
		return DefaultCompression, nil
	case "speed":
		return BestSpeed, nil
	case "none":
		return NoCompression, nil
	}
	return 0, fmt.Errorf("unknown compression level %q (want best, default, speed or none)", name)
}

func (l CompressionLevel) zlibLevel() int {
	switch l {
	case NoCompression:
		return zlib.NoCompression
	case BestSpeed:
		return zlib.BestSpeed
	case BestCompression:
		return zlib.BestCompression
	default:
		return zlib.DefaultCompression
	}
}

// Encoder configures PNG encoding.
type Encoder struct {
	CompressionLevel CompressionLevel
}

// Encode writes rows as an 8-bit RGBA PNG using maximum compression.
func Encode(width, height int, rows [][]byte) ([]byte, error) {
	enc := &Encoder{CompressionLevel: BestCompression}
	return enc.Encode(width, height, rows)
}

// Encode writes rows as an 8-bit RGBA, non-interlaced PNG with a single
// IDAT chunk. Every scanline is stored with filter type None. Each row must
// be width*4 bytes.
func (e *Encoder) Encode(width, height int, rows [][]byte) ([]byte, error) {
	if width < 1 || height < 1 || int64(width) > math.MaxUint32/4 || int64(height) > math.MaxUint32 {
		return nil, fmt.Errorf("png: invalid image size %dx%d", width, height)
	}
	if len(rows) != height {
		return nil, fmt.Errorf("png: got %d rows, want %d", len(rows), height)
	}

	stride := width * 4
	raw := make([]byte, 0, height*(stride+1))
	for y, row := range rows {
		if len(row) != stride {
			return nil, fmt.Errorf("png: row %d has %d bytes, want %d", y, len(row), stride)
		}
		raw = append(raw, FilterNone)
		raw = append(raw, row...)
	}

	var idat bytes.Buffer
	zw, err := zlib.NewWriterLevel(&idat, e.CompressionLevel.zlibLevel())
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	hdr := Header{
		Width:     uint32(width),
		Height:    uint32(height),
		BitDepth:  8,
		ColorType: ColorTypeRGBA,
	}

	var out bytes.Buffer
	out.Grow(len(Signature) + 3*12 + ihdrLength + idat.Len())
	out.WriteString(Signature)
	writeChunk(&out, chunkIHDR, hdr.marshal())
	writeChunk(&out, chunkIDAT, idat.Bytes())
	writeChunk(&out, chunkIEND, nil)
	return out.Bytes(), nil
}

// writeChunk appends length, type, payload and the CRC-32 of type+payload.
func writeChunk(w *bytes.Buffer, typ string, data []byte) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(len(data)))
	w.Write(b[:])
	w.WriteString(typ)
	w.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	binary.BigEndian.PutUint32(b[:], crc.Sum32())
	w.Write(b[:])
}

package png

import (
	"encoding/binary"
	"fmt"
)

// Signature is the fixed 8-byte prefix of every PNG stream.
const Signature = "\x89PNG\r\n\x1a\n"

// Color types defined by PNG.
const (
	ColorTypeRGB  = 2
	ColorTypeRGBA = 6
)

const ihdrLength = 13

// Header holds the fields of the IHDR chunk.
type Header struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// BytesPerPixel returns the number of bytes one pixel occupies in the
// filtered scanlines: 3 for RGB, 4 for RGBA.
func (h *Header) BytesPerPixel() int {
	if h.ColorType == ColorTypeRGB {
		return 3
	}
	return 4
}

// Stride returns the length of one unfiltered scanline in bytes.
func (h *Header) Stride() int {
	return int(h.Width) * h.BytesPerPixel()
}

// ColorModel returns a short name for the color type.
func (h *Header) ColorModel() string {
	switch h.ColorType {
	case ColorTypeRGB:
		return "RGB"
	case ColorTypeRGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("color type %d", h.ColorType)
	}
}

func (h *Header) marshal() []byte {
	b := make([]byte, ihdrLength)
	binary.BigEndian.PutUint32(b[0:4], h.Width)
	binary.BigEndian.PutUint32(b[4:8], h.Height)
	b[8] = h.BitDepth
	b[9] = h.ColorType
	b[10] = h.CompressionMethod
	b[11] = h.FilterMethod
	b[12] = h.InterlaceMethod
	return b
}

// parseHeader unpacks and validates an IHDR payload.
func parseHeader(data []byte) (*Header, error) {
	if len(data) != ihdrLength {
		return nil, FormatError(fmt.Sprintf("bad IHDR length %d", len(data)))
	}
	h := &Header{
		Width:             binary.BigEndian.Uint32(data[0:4]),
		Height:            binary.BigEndian.Uint32(data[4:8]),
		BitDepth:          data[8],
		ColorType:         data[9],
		CompressionMethod: data[10],
		FilterMethod:      data[11],
		InterlaceMethod:   data[12],
	}

	if h.Width == 0 || h.Height == 0 {
		return nil, FormatError(fmt.Sprintf("zero-area image %dx%d", h.Width, h.Height))
	}
	if h.BitDepth != 8 {
		return nil, UnsupportedError(fmt.Sprintf("bit depth %d", h.BitDepth))
	}
	if h.ColorType != ColorTypeRGB && h.ColorType != ColorTypeRGBA {
		return nil, UnsupportedError(fmt.Sprintf("color type %d", h.ColorType))
	}
	if h.CompressionMethod != 0 {
		return nil, UnsupportedError(fmt.Sprintf("compression method %d", h.CompressionMethod))
	}
	if h.FilterMethod != 0 {
		return nil, UnsupportedError(fmt.Sprintf("filter method %d", h.FilterMethod))
	}
	if h.InterlaceMethod != 0 {
		return nil, UnsupportedError("interlaced image")
	}
	return h, nil
}

package png

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zlib"
)

// Decoded is the result of decoding a PNG stream. Rows always hold RGBA
// pixels, Width*4 bytes each, top to bottom.
type Decoded struct {
	Header Header
	Rows   [][]byte

	// Chunks is the number of chunks walked, IEND included.
	Chunks int
	// CompressedSize is the total IDAT payload length.
	CompressedSize int
}

// Width returns the image width in pixels.
func (d *Decoded) Width() int { return int(d.Header.Width) }

// Height returns the image height in pixels.
func (d *Decoded) Height() int { return int(d.Header.Height) }

func checkSignature(data []byte) error {
	if !bytes.HasPrefix(data, []byte(Signature)) {
		return FormatError("not a PNG file")
	}
	return nil
}

// DecodeHeader reads the signature and the IHDR chunk only.
func DecodeHeader(data []byte) (*Header, error) {
	if err := checkSignature(data); err != nil {
		return nil, err
	}
	c := newCursor(data, len(Signature))
	for !c.done() {
		ch, err := c.chunk()
		if err != nil {
			return nil, err
		}
		switch ch.Type {
		case chunkIHDR:
			return parseHeader(ch.Data)
		case chunkIDAT, chunkIEND:
			return nil, FormatError("missing IHDR before " + ch.Type)
		}
	}
	return nil, FormatError("missing IHDR")
}

// Decode parses a PNG stream and returns its pixels as RGBA rows. Only
// 8-bit, non-interlaced RGB and RGBA images are accepted.
func Decode(data []byte) (*Decoded, error) {
	if err := checkSignature(data); err != nil {
		return nil, err
	}

	var (
		hdr    *Header
		idat   bytes.Buffer
		chunks int
	)
	c := newCursor(data, len(Signature))
walk:
	for !c.done() {
		ch, err := c.chunk()
		if err != nil {
			return nil, err
		}
		chunks++

		switch ch.Type {
		case chunkIHDR:
			if hdr != nil {
				return nil, FormatError("duplicate IHDR")
			}
			hdr, err = parseHeader(ch.Data)
			if err != nil {
				return nil, err
			}
		case chunkIDAT:
			if hdr == nil {
				return nil, FormatError("missing IHDR before IDAT")
			}
			idat.Write(ch.Data)
		case chunkIEND:
			if hdr == nil {
				return nil, FormatError("missing IHDR before IEND")
			}
			break walk
		}
	}
	if hdr == nil {
		return nil, FormatError("missing IHDR")
	}

	compressedSize := idat.Len()
	raw, err := inflate(&idat, hdr)
	if err != nil {
		return nil, err
	}
	rows, err := unfilter(raw, hdr)
	if err != nil {
		return nil, err
	}

	return &Decoded{
		Header:         *hdr,
		Rows:           rows,
		Chunks:         chunks,
		CompressedSize: compressedSize,
	}, nil
}

// inflate decompresses the IDAT stream and returns exactly the
// Height*(1+Stride) bytes of filtered scanlines. The rest of the stream is
// still read so a bad checksum is reported.
func inflate(r io.Reader, hdr *Header) ([]byte, error) {
	rowSize := int64(hdr.Stride()) + 1
	if rowSize > math.MaxInt/int64(hdr.Height) {
		return nil, UnsupportedError("dimension overflow")
	}
	want := rowSize * int64(hdr.Height)

	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, &DecompressionError{Err: err}
	}
	defer zr.Close()

	raw, err := io.ReadAll(io.LimitReader(zr, want))
	if err != nil {
		return nil, &DecompressionError{Err: err}
	}
	if int64(len(raw)) < want {
		return nil, FormatError(fmt.Sprintf("not enough pixel data: got %d bytes, want %d", len(raw), want))
	}
	if _, err := io.Copy(io.Discard, zr); err != nil {
		return nil, &DecompressionError{Err: err}
	}
	return raw, nil
}

// unfilter splits raw into scanlines, reverses each line's filter against
// the previous reconstructed line and widens RGB to RGBA.
func unfilter(raw []byte, hdr *Header) ([][]byte, error) {
	bpp := hdr.BytesPerPixel()
	stride := hdr.Stride()
	height := int(hdr.Height)

	rows := make([][]byte, height)
	prev := make([]byte, stride)
	for y := 0; y < height; y++ {
		off := y * (stride + 1)
		line, err := Reconstruct(raw[off], raw[off+1:off+1+stride], prev, bpp)
		if err != nil {
			return nil, err
		}
		prev = line
		if hdr.ColorType == ColorTypeRGB {
			line = ExpandRGB(line)
		}
		rows[y] = line
	}
	return rows, nil
}

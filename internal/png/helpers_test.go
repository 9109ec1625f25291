package png

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"
)

type rawChunk struct {
	typ  string
	data []byte
}

// buildPNG assembles a stream from arbitrary chunks so malformed inputs can
// be produced.
func buildPNG(chunks ...rawChunk) []byte {
	var buf bytes.Buffer
	buf.WriteString(Signature)
	for _, c := range chunks {
		writeChunk(&buf, c.typ, c.data)
	}
	return buf.Bytes()
}

func ihdrChunk(h Header) rawChunk {
	return rawChunk{typ: chunkIHDR, data: h.marshal()}
}

func rgbaHeader(w, h uint32) Header {
	return Header{Width: w, Height: h, BitDepth: 8, ColorType: ColorTypeRGBA}
}

func idatChunk(t *testing.T, raw []byte) rawChunk {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return rawChunk{typ: chunkIDAT, data: buf.Bytes()}
}

func iendChunk() rawChunk {
	return rawChunk{typ: chunkIEND}
}

// filterRow applies filter ft to cur, the inverse of Reconstruct.
func filterRow(ft byte, cur, prev []byte, bpp int) []byte {
	out := make([]byte, len(cur))
	for i := range cur {
		var left, upLeft byte
		if i >= bpp {
			left = cur[i-bpp]
			upLeft = prev[i-bpp]
		}
		up := prev[i]
		switch ft {
		case FilterNone:
			out[i] = cur[i]
		case FilterSub:
			out[i] = cur[i] - left
		case FilterUp:
			out[i] = cur[i] - up
		case FilterAverage:
			out[i] = cur[i] - uint8((int(left)+int(up))/2)
		case FilterPaeth:
			out[i] = cur[i] - Paeth(left, up, upLeft)
		}
	}
	return out
}

// filteredStream filters each row with the given filter types (cycled) and
// prefixes the filter byte.
func filteredStream(rows [][]byte, bpp int, filters ...byte) []byte {
	var raw []byte
	prev := make([]byte, len(rows[0]))
	for y, row := range rows {
		ft := filters[y%len(filters)]
		raw = append(raw, ft)
		raw = append(raw, filterRow(ft, row, prev, bpp)...)
		prev = row
	}
	return raw
}

// gradientRows returns h rows of w pixels with bpp channels of varied data.
func gradientRows(w, h, bpp int) [][]byte {
	rows := make([][]byte, h)
	for y := range rows {
		rows[y] = make([]byte, w*bpp)
		for i := range rows[y] {
			rows[y][i] = byte(y*37 + i*11 + (i*y)%7)
		}
	}
	return rows
}

package png

import (
	"bytes"
	"encoding/binary"
	stdpng "image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLayout(t *testing.T) {
	rows := gradientRows(3, 2, 4)
	data, err := Encode(3, 2, rows)
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(data, []byte(Signature)))

	c := newCursor(data, len(Signature))
	var types []string
	for !c.done() {
		ch, err := c.chunk()
		require.NoError(t, err)
		types = append(types, ch.Type)
		if ch.Type == chunkIHDR {
			hdr, err := parseHeader(ch.Data)
			require.NoError(t, err)
			assert.Equal(t, rgbaHeader(3, 2), *hdr)
		}
		if ch.Type == chunkIEND {
			assert.Empty(t, ch.Data)
		}
	}
	assert.Equal(t, []string{chunkIHDR, chunkIDAT, chunkIEND}, types)
}

func TestEncodeUsesFilterNone(t *testing.T) {
	rows := gradientRows(2, 3, 4)
	data, err := Encode(2, 3, rows)
	require.NoError(t, err)

	dec, err := Decode(data)
	require.NoError(t, err)

	c := newCursor(data, len(Signature))
	_, err = c.chunk()
	require.NoError(t, err)
	idat, err := c.chunk()
	require.NoError(t, err)

	raw, err := inflate(bytes.NewReader(idat.Data), &dec.Header)
	require.NoError(t, err)
	for y := 0; y < 3; y++ {
		assert.Equal(t, byte(FilterNone), raw[y*(2*4+1)])
	}
}

func TestRoundTrip(t *testing.T) {
	rows := gradientRows(7, 4, 4)
	first, err := Encode(7, 4, rows)
	require.NoError(t, err)

	dec, err := Decode(first)
	require.NoError(t, err)
	assert.Equal(t, rows, dec.Rows)

	second, err := Encode(dec.Width(), dec.Height(), dec.Rows)
	require.NoError(t, err)
	again, err := Decode(second)
	require.NoError(t, err)
	assert.Equal(t, dec.Rows, again.Rows)
}

func TestEncodeReadableByStandardLibrary(t *testing.T) {
	rows := [][]byte{
		{255, 0, 0, 255, 0, 255, 0, 128},
		{0, 0, 255, 0, 1, 2, 3, 4},
	}
	data, err := Encode(2, 2, rows)
	require.NoError(t, err)

	img, err := stdpng.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})
}

func TestEncoderCompressionLevels(t *testing.T) {
	rows := gradientRows(16, 16, 4)
	for _, name := range []string{"best", "default", "speed", "none"} {
		t.Run(name, func(t *testing.T) {
			level, err := ParseCompressionLevel(name)
			require.NoError(t, err)
			enc := &Encoder{CompressionLevel: level}
			data, err := enc.Encode(16, 16, rows)
			require.NoError(t, err)

			dec, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, rows, dec.Rows)
		})
	}

	_, err := ParseCompressionLevel("extreme")
	assert.Error(t, err)
}

func TestEncodeRejectsBadInput(t *testing.T) {
	_, err := Encode(0, 1, [][]byte{{}})
	assert.Error(t, err)

	_, err = Encode(1, 2, [][]byte{{1, 2, 3, 4}})
	assert.Error(t, err)

	_, err = Encode(2, 1, [][]byte{{1, 2, 3, 4}})
	assert.Error(t, err)
}

func TestWriteChunkCRC(t *testing.T) {
	var buf bytes.Buffer
	writeChunk(&buf, chunkIEND, nil)
	// The IEND CRC is a constant of the format.
	assert.Equal(t, uint32(0xae426082), binary.BigEndian.Uint32(buf.Bytes()[8:12]))
	assert.Equal(t, uint32(0), binary.BigEndian.Uint32(buf.Bytes()[0:4]))
}

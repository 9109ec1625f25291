package png

import "fmt"

// Filter types defined by PNG.
const (
	FilterNone    = 0
	FilterSub     = 1
	FilterUp      = 2
	FilterAverage = 3
	FilterPaeth   = 4
)

// Paeth implements the Paeth predictor: it returns whichever of a (left),
// b (above) and c (upper left) is closest to a + b - c. Ties go to a, then b.
func Paeth(a, b, c uint8) uint8 {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

// Reconstruct undoes the filter of one scanline. filtered and prev must have
// the same length; prev is the previous reconstructed scanline, all zeros for
// the first one. bpp is the pixel stride in bytes. The inputs are not
// modified and a new slice is returned.
func Reconstruct(filter byte, filtered, prev []byte, bpp int) ([]byte, error) {
	if len(prev) != len(filtered) {
		return nil, fmt.Errorf("png: previous row has %d bytes, want %d", len(prev), len(filtered))
	}
	if bpp < 1 {
		return nil, fmt.Errorf("png: invalid bytes per pixel %d", bpp)
	}

	out := make([]byte, len(filtered))
	copy(out, filtered)

	switch filter {
	case FilterNone:
		// No-op.
	case FilterSub:
		for i := bpp; i < len(out); i++ {
			out[i] += out[i-bpp]
		}
	case FilterUp:
		for i, p := range prev {
			out[i] += p
		}
	case FilterAverage:
		for i := 0; i < bpp && i < len(out); i++ {
			out[i] += prev[i] / 2
		}
		for i := bpp; i < len(out); i++ {
			out[i] += uint8((int(out[i-bpp]) + int(prev[i])) / 2)
		}
	case FilterPaeth:
		for i := 0; i < bpp && i < len(out); i++ {
			out[i] += Paeth(0, prev[i], 0)
		}
		for i := bpp; i < len(out); i++ {
			out[i] += Paeth(out[i-bpp], prev[i], prev[i-bpp])
		}
	default:
		return nil, UnsupportedError(fmt.Sprintf("filter type %d", filter))
	}
	return out, nil
}

// ExpandRGB converts one RGB scanline to RGBA, with every alpha byte set to
// 255.
func ExpandRGB(row []byte) []byte {
	n := len(row) / 3
	out := make([]byte, n*4)
	for x := 0; x < n; x++ {
		out[x*4] = row[x*3]
		out[x*4+1] = row[x*3+1]
		out[x*4+2] = row[x*3+2]
		out[x*4+3] = 0xff
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

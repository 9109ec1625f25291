package png

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaeth(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c uint8
		want    uint8
	}{
		{"all equal", 1, 1, 1, 1},
		{"a closest", 10, 4, 4, 10},
		{"a ties b", 5, 5, 0, 5},
		{"a wins tie with c", 4, 10, 8, 4},
		{"b wins tie with c", 4, 10, 6, 10},
		{"c strictly smallest", 3, 5, 4, 4},
		{"no left neighbour", 0, 200, 0, 200},
		{"upper left dominates", 0, 10, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paeth(tt.a, tt.b, tt.c))
		})
	}
}

func TestReconstruct(t *testing.T) {
	tests := []struct {
		name     string
		filter   byte
		filtered []byte
		prev     []byte
		bpp      int
		want     []byte
	}{
		{
			name:     "none",
			filter:   FilterNone,
			filtered: []byte{1, 2, 3},
			prev:     []byte{9, 9, 9},
			bpp:      3,
			want:     []byte{1, 2, 3},
		},
		{
			name:     "sub",
			filter:   FilterSub,
			filtered: []byte{10, 20, 30, 5, 5, 5},
			prev:     make([]byte, 6),
			bpp:      3,
			want:     []byte{10, 20, 30, 15, 25, 35},
		},
		{
			name:     "sub wraps",
			filter:   FilterSub,
			filtered: []byte{200, 0, 0, 100, 0, 0},
			prev:     make([]byte, 6),
			bpp:      3,
			want:     []byte{200, 0, 0, 44, 0, 0},
		},
		{
			name:     "up",
			filter:   FilterUp,
			filtered: []byte{1, 2, 3, 10},
			prev:     []byte{10, 250, 0, 250},
			bpp:      4,
			want:     []byte{11, 252, 3, 4},
		},
		{
			name:     "average",
			filter:   FilterAverage,
			filtered: []byte{4, 4, 4},
			prev:     []byte{10, 20, 30},
			bpp:      1,
			want:     []byte{9, 18, 28},
		},
		{
			name:     "paeth",
			filter:   FilterPaeth,
			filtered: []byte{1, 1, 1},
			prev:     []byte{10, 20, 5},
			bpp:      1,
			want:     []byte{11, 21, 6},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reconstruct(tt.filter, tt.filtered, tt.prev, tt.bpp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconstructDoesNotModifyInputs(t *testing.T) {
	filtered := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	prev := []byte{8, 7, 6, 5, 4, 3, 2, 1}
	for ft := byte(FilterNone); ft <= FilterPaeth; ft++ {
		_, err := Reconstruct(ft, filtered, prev, 4)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, filtered)
		assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, prev)
	}
}

func TestReconstructInvertsFilter(t *testing.T) {
	rows := gradientRows(5, 2, 4)
	for ft := byte(FilterNone); ft <= FilterPaeth; ft++ {
		filtered := filterRow(ft, rows[1], rows[0], 4)
		got, err := Reconstruct(ft, filtered, rows[0], 4)
		require.NoError(t, err)
		assert.Equal(t, rows[1], got, "filter %d", ft)
	}
}

func TestReconstructUnknownFilter(t *testing.T) {
	_, err := Reconstruct(5, []byte{1, 2, 3}, []byte{0, 0, 0}, 3)
	var unsupported UnsupportedError
	require.True(t, errors.As(err, &unsupported), "got %v", err)
}

func TestReconstructRowMismatch(t *testing.T) {
	_, err := Reconstruct(FilterUp, []byte{1, 2, 3}, []byte{0, 0}, 3)
	assert.Error(t, err)
}

func TestExpandRGB(t *testing.T) {
	got := ExpandRGB([]byte{10, 20, 30, 1, 2, 3})
	assert.Equal(t, []byte{10, 20, 30, 255, 1, 2, 3, 255}, got)
}

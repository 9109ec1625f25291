package icon

import (
	"fmt"

	"github.com/kiesman99/prepare-icon/internal/png"
)

// DefaultMargin is the fraction of the canvas side kept empty on each side
// of the content when no margin is given.
const DefaultMargin = 0.14

// Bounds for the share of the canvas side the content may occupy.
const (
	MinScaleArea = 0.1
	MaxScaleArea = 0.95
)

// Image holds RGBA pixels as rows, top to bottom. Every row is Width*4
// bytes: R, G, B, A per pixel.
type Image struct {
	Width  int
	Height int
	Rows   [][]byte
}

// NewImage allocates a fully transparent width x height image.
func NewImage(width, height int) *Image {
	rows := make([][]byte, height)
	for y := range rows {
		rows[y] = make([]byte, width*4)
	}
	return &Image{Width: width, Height: height, Rows: rows}
}

// Pixel returns the RGBA value at x, y.
func (img *Image) Pixel(x, y int) [4]byte {
	i := x * 4
	row := img.Rows[y]
	return [4]byte{row[i], row[i+1], row[i+2], row[i+3]}
}

// BoundingBox is an inclusive pixel rectangle.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY int
}

// Width returns the number of columns covered by the box.
func (b BoundingBox) Width() int { return b.MaxX - b.MinX + 1 }

// Height returns the number of rows covered by the box.
func (b BoundingBox) Height() int { return b.MaxY - b.MinY + 1 }

func (b BoundingBox) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// Options contains all configuration for icon preparation
type Options struct {
	Margin      float64
	Compression png.CompressionLevel
}

// DefaultOptions returns the margin and compression the CLI uses when
// nothing is configured.
func DefaultOptions() *Options {
	return &Options{
		Margin:      DefaultMargin,
		Compression: png.BestCompression,
	}
}

// Result describes one prepared icon.
type Result struct {
	Data []byte // encoded PNG

	SrcWidth  int
	SrcHeight int

	Bounds        BoundingBox
	ContentWidth  int
	ContentHeight int

	Width   int // canvas side; Width == Height
	Height  int
	XOffset int
	YOffset int
}

package icon

import "math"

// Crop copies the pixels inside box into a new image.
func Crop(img *Image, box BoundingBox) *Image {
	out := &Image{
		Width:  box.Width(),
		Height: box.Height(),
		Rows:   make([][]byte, 0, box.Height()),
	}
	for y := box.MinY; y <= box.MaxY; y++ {
		row := make([]byte, out.Width*4)
		copy(row, img.Rows[y][box.MinX*4:(box.MaxX+1)*4])
		out.Rows = append(out.Rows, row)
	}
	return out
}

// ScaleArea returns the share of the canvas side the content should fill,
// 1 - 2*margin clamped to [MinScaleArea, MaxScaleArea]. NaN is treated as
// the maximum.
func ScaleArea(margin float64) float64 {
	s := 1.0 - 2*margin
	switch {
	case math.IsNaN(s), s > MaxScaleArea:
		return MaxScaleArea
	case s < MinScaleArea:
		return MinScaleArea
	}
	return s
}

// CanvasSide returns the side of the square canvas for content of the given
// size. It is never smaller than the longer content side.
func CanvasSide(contentW, contentH int, margin float64) int {
	side := max(contentW, contentH)
	canvas := int(math.Ceil(float64(side) / ScaleArea(margin)))
	return max(canvas, side)
}

// CenterOnSquare places content in the middle of a transparent square canvas
// sized by CanvasSide. Odd leftover space goes to the right and bottom.
// It returns the canvas and the offset of the content's top-left pixel.
func CenterOnSquare(content *Image, margin float64) (canvas *Image, xOff, yOff int) {
	side := CanvasSide(content.Width, content.Height, margin)
	canvas = NewImage(side, side)

	xOff = (side - content.Width) / 2
	yOff = (side - content.Height) / 2

	for y, src := range content.Rows {
		copy(canvas.Rows[y+yOff][xOff*4:], src)
	}
	return canvas, xOff, yOff
}

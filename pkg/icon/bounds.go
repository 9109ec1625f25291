package icon

// AlphaBounds returns the smallest box containing every pixel whose alpha is
// above zero. An image with no such pixel yields the full image extent.
func AlphaBounds(img *Image) BoundingBox {
	minX, minY := img.Width, img.Height
	maxX, maxY := -1, -1

	for y := 0; y < img.Height; y++ {
		row := img.Rows[y]
		for x := 0; x < img.Width; x++ {
			if row[x*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX == -1 {
		return BoundingBox{MinX: 0, MinY: 0, MaxX: img.Width - 1, MaxY: img.Height - 1}
	}
	return BoundingBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

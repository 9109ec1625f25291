package icon

import (
	"github.com/kiesman99/prepare-icon/internal/logging"
	"github.com/kiesman99/prepare-icon/internal/oops"
	"github.com/kiesman99/prepare-icon/internal/png"
)

// Processor turns PNG bytes into a centered square icon.
type Processor struct {
	margin  float64
	encoder *png.Encoder
}

// NewProcessor creates a new processor. A nil opts uses DefaultOptions.
func NewProcessor(opts *Options) *Processor {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Processor{
		margin:  opts.Margin,
		encoder: &png.Encoder{CompressionLevel: opts.Compression},
	}
}

// DecodeImage decodes PNG bytes into an RGBA image.
func (p *Processor) DecodeImage(data []byte) (*Image, error) {
	dec, err := png.Decode(data)
	if err != nil {
		return nil, err
	}

	logging.Debug().
		Int("width", dec.Width()).
		Int("height", dec.Height()).
		Str("color", dec.Header.ColorModel()).
		Int("chunks", dec.Chunks).
		Int("idat_bytes", dec.CompressedSize).
		Msg("Decoded PNG")

	return &Image{
		Width:  dec.Width(),
		Height: dec.Height(),
		Rows:   dec.Rows,
	}, nil
}

// Process runs decode, bounds, crop, center and encode on one PNG.
func (p *Processor) Process(data []byte) (*Result, error) {
	// 1. Decode
	src, err := p.DecodeImage(data)
	if err != nil {
		return nil, oops.New(err, "decode")
	}

	// 2. Find the non-transparent content
	box := AlphaBounds(src)
	content := Crop(src, box)
	logging.Debug().
		Stringer("bounds", box).
		Int("content_width", content.Width).
		Int("content_height", content.Height).
		Msg("Cropped to alpha bounds")

	// 3. Center on a square canvas
	canvas, xOff, yOff := CenterOnSquare(content, p.margin)
	logging.Debug().
		Float64("margin", p.margin).
		Float64("scale_area", ScaleArea(p.margin)).
		Int("canvas", canvas.Width).
		Int("x_offset", xOff).
		Int("y_offset", yOff).
		Msg("Centered content")

	// 4. Encode
	encoded, err := p.encoder.Encode(canvas.Width, canvas.Height, canvas.Rows)
	if err != nil {
		return nil, oops.New(err, "encode")
	}
	logging.Debug().Int("bytes", len(encoded)).Msg("Encoded PNG")

	return &Result{
		Data:          encoded,
		SrcWidth:      src.Width,
		SrcHeight:     src.Height,
		Bounds:        box,
		ContentWidth:  content.Width,
		ContentHeight: content.Height,
		Width:         canvas.Width,
		Height:        canvas.Height,
		XOffset:       xOff,
		YOffset:       yOff,
	}, nil
}

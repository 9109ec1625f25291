package png

// A FormatError reports that the input is not a well-formed PNG stream:
// missing signature, truncated chunks, bad CRCs, missing IHDR or short
// pixel data.
type FormatError string

func (e FormatError) Error() string { return "png: invalid format: " + string(e) }

// An UnsupportedError reports that the input is a valid PNG that uses a
// feature this package does not handle (bit depth, color type, interlacing,
// unknown filter types).
type UnsupportedError string

func (e UnsupportedError) Error() string { return "png: unsupported feature: " + string(e) }

// A DecompressionError reports that the concatenated IDAT payload is not a
// valid zlib stream.
type DecompressionError struct {
	Err error
}

func (e *DecompressionError) Error() string {
	return "png: decompression failed: " + e.Err.Error()
}

func (e *DecompressionError) Unwrap() error {
	return e.Err
}

package prepare

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/kiesman99/prepare-icon/internal/logging"
	"github.com/kiesman99/prepare-icon/internal/oops"
	"github.com/kiesman99/prepare-icon/pkg/icon"
)

// IOError reports a failure reading the input or writing the output.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Preparer handles one input file to one output file.
type Preparer struct {
	processor *icon.Processor
}

// NewPreparer creates a new preparer instance
func NewPreparer(opts *icon.Options) *Preparer {
	return &Preparer{
		processor: icon.NewProcessor(opts),
	}
}

// Prepare reads input, builds the icon and writes it to output. Nothing is
// written unless every stage succeeds.
func (p *Preparer) Prepare(input, output string) (*icon.Result, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, &IOError{Op: "read", Path: input, Err: err}
	}
	logging.Debug().Str("path", input).Int("bytes", len(data)).Msg("Read input")

	result, err := p.processor.Process(data)
	if err != nil {
		return nil, oops.New(err, "preparing %s", input)
	}

	if err := WriteFileAtomic(output, result.Data, 0644); err != nil {
		return nil, &IOError{Op: "write", Path: output, Err: err}
	}
	logging.Info().
		Str("path", output).
		Int("width", result.Width).
		Int("height", result.Height).
		Int("bytes", len(result.Data)).
		Msg("Wrote icon")

	return result, nil
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it into place, so readers see either the old file or the complete new one.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	cleanup := func() {
		f.Close()
		os.Remove(tmp)
	}

	if _, err := f.Write(data); err != nil {
		cleanup()
		return err
	}
	if err := f.Sync(); err != nil {
		cleanup()
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

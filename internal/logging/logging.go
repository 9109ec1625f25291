package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kiesman99/prepare-icon/internal/oops"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel keeps the tool quiet unless something goes wrong.
const DefaultLevel = zerolog.WarnLevel

func init() {
	zerolog.ErrorStackMarshaler = oops.ZerologStackMarshaler
	SetOutput(os.Stderr)
	zerolog.SetGlobalLevel(DefaultLevel)
}

// SetOutput points the global logger at w using the console format.
// Standard output is never used; it carries the tool's own output.
func SetOutput(w io.Writer) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}

// SetLevel parses a level name (trace, debug, info, warn, error) and applies
// it globally.
func SetLevel(name string) error {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	if level == zerolog.NoLevel {
		level = DefaultLevel
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

func GlobalLogger() *zerolog.Logger {
	return &log.Logger
}

func Trace() *zerolog.Event {
	return log.Trace().Stack()
}

func Debug() *zerolog.Event {
	return log.Debug().Stack()
}

func Info() *zerolog.Event {
	return log.Info().Stack()
}

func Warn() *zerolog.Event {
	return log.Warn().Stack()
}

func Error() *zerolog.Event {
	return log.Error().Stack()
}

func With() zerolog.Context {
	return log.With().Stack()
}

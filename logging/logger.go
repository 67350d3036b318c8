package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var Logger zerolog.Logger

func init() {
	SetGlobalLogger(zerolog.Nop())
}

func SetGlobalLogger(logger zerolog.Logger) {
	Logger = logger
	zerolog.DefaultContextLogger = &Logger
}

// Configure installs a logger writing to w at the named level. Format is one
// of "auto", "console" or "json"; "auto" picks console output when w is a
// terminal.
func Configure(w io.Writer, level, format string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("unknown log level '%s': %w", level, err)
	}

	switch strings.ToLower(format) {
	case "auto":
		if isTerminal(w) {
			w = zerolog.ConsoleWriter{Out: w}
		}
	case "console":
		w = zerolog.ConsoleWriter{Out: w}
	case "json":
	default:
		return fmt.Errorf("unknown log format '%s'", format)
	}

	SetGlobalLogger(zerolog.New(w).Level(lvl).With().Timestamp().Logger())

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func Debug() *zerolog.Event { return Logger.Debug() }

func Info() *zerolog.Event { return Logger.Info() }

func Error() *zerolog.Event { return Logger.Error() }

// Package logging builds the zerolog logger used for diagnostics.
//
// Diagnostics go to stderr. Result lines ("Created x", "FAILED x") are not
// log events and are written by the CLI directly.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalidFormat indicates an unknown output format.
var ErrInvalidFormat = errors.New("invalid log format")

// ErrInvalidLevel indicates an unknown level name.
var ErrInvalidLevel = errors.New("invalid log level")

// Options configures New.
type Options struct {
	Level  string // zerolog level name; empty = info
	Format string // FormatConsole or FormatJSON; empty = console
	Out    io.Writer
}

// New returns a logger writing to opts.Out. Console output is colored only
// when Out is a terminal.
func New(opts Options) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("%w: %q", ErrInvalidLevel, opts.Level)
		}
		level = parsed
	}

	var out io.Writer
	switch opts.Format {
	case "", FormatConsole:
		out = zerolog.ConsoleWriter{
			Out:        opts.Out,
			TimeFormat: time.TimeOnly,
			NoColor:    !IsTerminal(opts.Out),
		}
	case FormatJSON:
		out = opts.Out
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q (must be console or json)", ErrInvalidFormat, opts.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// Package logging builds the zerolog loggers used by the CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// ErrUnknownFormat is returned for a format other than "console" or "json".
var ErrUnknownFormat = errors.New("logging: unknown format")

// New returns a logger writing to w at the given level.
//
// format "console" gives human-readable lines, coloured only when w is a
// terminal; "json" gives one JSON object per event.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logging: level %q: %w", level, err)
	}

	var out io.Writer
	switch strings.ToLower(format) {
	case "console":
		out = zerolog.ConsoleWriter{Out: w, NoColor: !IsTerminal(w), TimeFormat: time.Kitchen}
	case "json":
		out = w
	default:
		return zerolog.Nop(), fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// IsTerminal reports whether w is backed by a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

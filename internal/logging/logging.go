// Package logging builds the primstep CLI logger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Sentinel errors for unrecognized settings.
var (
	ErrUnknownFormat = errors.New("logging: unknown format")
	ErrUnknownLevel  = errors.New("logging: unknown level")
)

// New returns a *slog.Logger writing to w (os.Stderr when nil).
// format is "text" or "json"; level is "debug", "info", "warn" or "error".
// Empty strings select text and info. Anything else is an error, so a typo
// in -log-level does not quietly hide debug output.
func New(format, level string, w io.Writer) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// ParseLevel maps a level name to a slog.Level. "warning" is accepted as warn.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%q: %w", level, ErrUnknownLevel)
	}
}

// Package logging builds the slog loggers used by the airroute collaborators
// (storage, CLI, HTTP). The shortest-path core never logs.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slog"
)

// Output formats accepted by New.
const (
	FormatLine = "line"
	FormatText = "text"
	FormatJSON = "json"
)

// ErrBadFormat indicates an unknown log format name.
var ErrBadFormat = errors.New("logging: unknown format")

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to a level.
// The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: level %q: %w", s, err)
	}

	return lvl, nil
}

// New returns a logger writing to w at the given level and format.
// An empty format selects FormatLine.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "", FormatLine:
		h = NewLineHandler(w, opts)
	case FormatText:
		h = slog.NewTextHandler(w, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, format)
	}

	return slog.New(h), nil
}

// Discard returns a logger that drops every record. Components use it when
// no logger is injected.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

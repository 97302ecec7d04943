// Package logging builds the slog.Logger used by gitshow.
//
// Format is "text" (default) or "json". Level is one of debug, info, warn
// or error. Records go to the writer passed to New, normally stderr, so
// that command output on stdout stays clean.
package logging

import (
	"io"
	"log/slog"
	"strings"

	platformerrors "github.com/Akshay2350/node-git/errors"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to w.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a level name. An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, platformerrors.WithContext(
			platformerrors.Newf(platformerrors.CodeInvalidConfig, "unknown log level %q", s),
			"log_level", s)
	}
}

// ValidFormat reports whether format is supported. An empty string is the
// default text format.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case "", FormatText, "console", FormatJSON:
		return true
	default:
		return false
	}
}

// Package logger holds the process-wide structured logger for savectl.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LevelDebug is re-exported so callers need not import log/slog for it.
const LevelDebug = slog.LevelDebug

// L is the global logger instance. It discards all output until Init
// enables it.
var L = slog.New(slog.DiscardHandler)

var closer io.Closer

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	File    string     // Append JSON records here; empty means text to stderr
	Level   slog.Level // Minimum log level. Zero is LevelInfo
}

// Init configures logging. Call before any log calls; a previous log file
// is closed.
func Init(opts Options) error {
	Close()
	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		return nil
	}
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	if opts.File == "" {
		L = slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return fmt.Errorf("log dir: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	closer = f
	L = slog.New(slog.NewJSONHandler(f, handlerOpts))
	return nil
}

// Close releases the log file, if any. Logging is discarded afterwards.
func Close() {
	if closer == nil {
		return
	}
	_ = closer.Close()
	closer = nil
	L = slog.New(slog.DiscardHandler)
}

// ParseLevel accepts debug, info, warn or error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

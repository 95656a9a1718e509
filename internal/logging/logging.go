// Package logging builds the application logger.
//
// The UI owns the terminal, so log output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options holds logger configuration
type Options struct {
	Path  string
	Level string
}

// New creates a logger writing to opts.Path. The returned closer must be
// closed on exit; with an empty path logs are discarded.
func New(opts Options) (*log.Logger, io.Closer, error) {
	if opts.Path == "" {
		return NewWithWriter(io.Discard, opts.Level), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	return NewWithWriter(f, opts.Level), f, nil
}

// NewWithWriter creates a logger on w. This is useful for testing.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		Prefix:          "todo",
	})
}

// ParseLevel converts a level name, defaulting to info
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

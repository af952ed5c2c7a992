// Package logging builds the diagnostic logger shared by virtualias components.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix is printed before every log line.
const Prefix = "virtualias"

// New returns a logger writing to w at the given level name.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  lvl,
	}), nil
}

// NewStderr returns a logger on stderr, falling back to warn for an unknown level.
func NewStderr(level string) *log.Logger {
	logger, err := New(os.Stderr, level)
	if err != nil {
		logger, _ = New(os.Stderr, "warn")
		logger.Warn("Unknown log level, using warn", "level", level)
	}
	return logger
}

// Discard returns a logger that drops everything. Components fall back to it
// when constructed without a logger.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OrDiscard returns logger, or a discarding logger when it is nil.
func OrDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}

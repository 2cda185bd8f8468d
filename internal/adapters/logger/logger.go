// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"

	"go.trai.ch/pynix/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
}

// New creates a Logger writing human-readable output to stderr.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Logger writing to the given writer.
func NewWithWriter(w io.Writer) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{logger: slog.New(handler)}
}

var _ ports.Logger = (*Logger)(nil)

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.logger.Error("operation failed", "error", err)
}

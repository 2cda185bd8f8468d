// Package fs persists generated artifacts to the filesystem.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/pynix/internal/core/ports"
	"go.trai.ch/zerr"
)

const dirPerm = 0o750

// Writer implements ports.ArtifactWriter with atomic writes: the expression
// is written to a temp file in the target directory and renamed into place,
// so a failure never leaves a truncated artifact.
type Writer struct{}

// NewWriter creates a new artifact writer.
func NewWriter() *Writer {
	return &Writer{}
}

var _ ports.ArtifactWriter = (*Writer)(nil)

// Write persists the expression at path.
func (w *Writer) Write(path, expression string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return zerr.Wrap(err, "failed to create output directory")
	}

	tmp, err := os.CreateTemp(dir, ".pynix-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp artifact")
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(expression); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, "failed to close artifact"), "path", path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, "failed to move artifact into place"), "path", path)
	}
	return nil
}

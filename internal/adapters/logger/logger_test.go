package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.trai.ch/pynix/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Info("wrote env.nix")

	out := buf.String()
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("expected INFO level in output, got: %q", out)
	}
	if !strings.Contains(out, "wrote env.nix") {
		t.Errorf("expected message in output, got: %q", out)
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Error(errors.New("lockfile unreadable"))

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("expected ERROR level in output, got: %q", out)
	}
	if !strings.Contains(out, "lockfile unreadable") {
		t.Errorf("expected error text in output, got: %q", out)
	}
}

func TestNew(t *testing.T) {
	if logger.New() == nil {
		t.Fatal("expected a logger")
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/pynix/internal/adapters/config"
)

func TestLoadHCL(t *testing.T) {
	content := `
python = "python39"
disable_checks = true

nixpkgs {
  rev    = "nixrev"
  sha256 = "nixsha"
}

pypi_fetcher {
  rev    = "fetchrev"
  sha256 = "fetchsha"
}

environment "default" {
  lockfile = "${workdir}/env.lock.json"
  output   = "${workdir}/env.nix"
}
`
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "pynix.hcl")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	m, err := config.LoadHCL(path, tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.PythonAttr != "python39" {
		t.Errorf("expected python39, got %q", m.PythonAttr)
	}
	if !m.DisableChecks {
		t.Error("expected disable_checks to be set")
	}

	// The workdir variable resolves paths relative to the manifest directory
	env, ok := m.Environment("default")
	if !ok {
		t.Fatal("expected default environment")
	}
	if env.Lockfile != filepath.Join(tmpDir, "env.lock.json") {
		t.Errorf("expected workdir-interpolated lockfile path, got %q", env.Lockfile)
	}
	if env.Output != filepath.Join(tmpDir, "env.nix") {
		t.Errorf("expected workdir-interpolated output path, got %q", env.Output)
	}
}

func TestLoadHCL_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pynix.hcl")
	if err := os.WriteFile(path, []byte(`python = `), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	if _, err := config.LoadHCL(path, t.TempDir()); err == nil {
		t.Fatal("expected error for malformed manifest, got nil")
	}
}

func TestLoadHCL_MissingEnvironments(t *testing.T) {
	content := `
python = "python39"

nixpkgs {
  rev    = "nixrev"
  sha256 = "nixsha"
}

pypi_fetcher {
  rev    = "fetchrev"
  sha256 = "fetchsha"
}
`
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "pynix.hcl")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	if _, err := config.LoadHCL(path, tmpDir); err == nil {
		t.Fatal("expected error for manifest without environments, got nil")
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.trai.ch/pynix/internal/adapters/config"
	"go.trai.ch/pynix/internal/core/domain"
	"go.trai.ch/pynix/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const validYAML = `
version: "1"
python: python38
nixpkgs:
  rev: nixrev
  sha256: nixsha
pypi_fetcher:
  rev: fetchrev
  sha256: fetchsha
environments:
  prod:
    lockfile: prod.lock.json
    output: prod.nix
  dev:
    lockfile: dev.lock.json
    output: dev.nix
`

func newLoader(t *testing.T) *config.FileLoader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func TestLoad_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "pynix.yaml"), []byte(validYAML), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	m, err := newLoader(t).Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.PythonAttr != "python38" {
		t.Errorf("expected python38, got %q", m.PythonAttr)
	}
	if m.Nixpkgs.Rev != "nixrev" || m.Nixpkgs.SHA256 != "nixsha" {
		t.Errorf("unexpected nixpkgs pin: %+v", m.Nixpkgs)
	}
	if !m.PreferNixpkgs {
		t.Error("expected prefer_nixpkgs to default to true")
	}
	if m.IndexFile != "nixpkgs-python.json" {
		t.Errorf("expected default index file, got %q", m.IndexFile)
	}

	// Environments are sorted by name
	if len(m.Environments) != 2 {
		t.Fatalf("expected 2 environments, got %d", len(m.Environments))
	}
	if m.Environments[0].Name != "dev" || m.Environments[1].Name != "prod" {
		t.Errorf("expected environments sorted by name, got %v", m.Environments)
	}
}

func TestLoad_YAMLWinsOverHCL(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "pynix.yaml"), []byte(validYAML), 0o600); err != nil {
		t.Fatalf("failed to write yaml manifest: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "pynix.hcl"), []byte(`python = "python27"`), 0o600); err != nil {
		t.Fatalf("failed to write hcl manifest: %v", err)
	}

	m, err := newLoader(t).Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.PythonAttr != "python38" {
		t.Errorf("expected the yaml manifest to win, got python %q", m.PythonAttr)
	}
}

func TestLoad_NoManifest(t *testing.T) {
	_, err := newLoader(t).Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error when no manifest exists, got nil")
	}
	if !strings.Contains(err.Error(), domain.ErrManifestInvalid.Error()) {
		t.Errorf("expected manifest error, got: %v", err)
	}
}

func TestLoadYAML_Defaults(t *testing.T) {
	content := `
nixpkgs:
  rev: nixrev
  sha256: nixsha
pypi_fetcher:
  rev: fetchrev
  sha256: fetchsha
environments:
  default:
    lockfile: env.lock.json
    output: env.nix
`
	path := filepath.Join(t.TempDir(), "pynix.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	m, err := config.LoadYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.PythonAttr != "python3" {
		t.Errorf("expected default python3, got %q", m.PythonAttr)
	}
}

func TestLoadYAML_MissingPin(t *testing.T) {
	content := `
python: python38
environments:
  default:
    lockfile: env.lock.json
    output: env.nix
`
	path := filepath.Join(t.TempDir(), "pynix.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	_, err := config.LoadYAML(path)
	if err == nil {
		t.Fatal("expected error for missing pins, got nil")
	}
	if !strings.Contains(err.Error(), domain.ErrManifestInvalid.Error()) {
		t.Errorf("expected manifest error, got: %v", err)
	}
}

func TestLoadYAML_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pynix.yaml")
	if err := os.WriteFile(path, []byte("python: [unclosed"), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	if _, err := config.LoadYAML(path); err == nil {
		t.Fatal("expected error for malformed manifest, got nil")
	}
}

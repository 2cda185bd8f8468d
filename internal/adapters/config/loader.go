// Package config provides the manifest loader for pynix.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/pynix/internal/core/domain"
	"go.trai.ch/pynix/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	yamlFilename = "pynix.yaml"
	hclFilename  = "pynix.hcl"

	defaultIndexFile = "nixpkgs-python.json"
	defaultPython    = "python3"
)

// FileLoader implements ports.ConfigLoader. It discovers either a YAML or an
// HCL manifest in the working directory; YAML wins when both exist.
type FileLoader struct {
	log ports.Logger
}

// NewLoader creates a new manifest loader.
func NewLoader(log ports.Logger) *FileLoader {
	return &FileLoader{log: log}
}

var _ ports.ConfigLoader = (*FileLoader)(nil)

// Load reads the manifest from the given working directory.
func (l *FileLoader) Load(cwd string) (*domain.Manifest, error) {
	yamlPath := filepath.Join(cwd, yamlFilename)
	if fileExists(yamlPath) {
		l.log.Info("loading manifest " + yamlPath)
		return LoadYAML(yamlPath)
	}
	hclPath := filepath.Join(cwd, hclFilename)
	if fileExists(hclPath) {
		l.log.Info("loading manifest " + hclPath)
		return LoadHCL(hclPath, cwd)
	}
	err := zerr.With(domain.ErrManifestInvalid, "cwd", cwd)
	return nil, zerr.With(err, "reason", "no pynix.yaml or pynix.hcl found")
}

// LoadYAML reads a YAML manifest from the given path.
func LoadYAML(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var dto manifestDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	envs := make([]domain.EnvSpec, 0, len(dto.Environments))
	for name, env := range dto.Environments {
		envs = append(envs, domain.EnvSpec{
			Name:     name,
			Lockfile: env.Lockfile,
			Output:   env.Output,
		})
	}

	return buildManifest(
		dto.Python,
		domain.Pin{Rev: dto.Nixpkgs.Rev, SHA256: dto.Nixpkgs.SHA256},
		domain.Pin{Rev: dto.PyPIFetcher.Rev, SHA256: dto.PyPIFetcher.SHA256},
		dto.DisableChecks,
		dto.PreferNixpkgs,
		dto.IndexFile,
		envs,
	)
}

// buildManifest applies defaults, sorts environments, and validates.
func buildManifest(python string, nixpkgs, fetcher domain.Pin, disableChecks bool, preferNixpkgs *bool, indexFile string, envs []domain.EnvSpec) (*domain.Manifest, error) {
	if python == "" {
		python = defaultPython
	}
	if indexFile == "" {
		indexFile = defaultIndexFile
	}
	prefer := true
	if preferNixpkgs != nil {
		prefer = *preferNixpkgs
	}
	slices.SortFunc(envs, func(a, b domain.EnvSpec) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})

	m := &domain.Manifest{
		PythonAttr:    python,
		Nixpkgs:       nixpkgs,
		PyPIFetcher:   fetcher,
		DisableChecks: disableChecks,
		PreferNixpkgs: prefer,
		IndexFile:     indexFile,
		Environments:  envs,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

package domain

import "go.trai.ch/zerr"

// Pin identifies an immutable snapshot of an external source: a commit plus
// the sha256 of its tarball.
type Pin struct {
	Rev    string
	SHA256 string
}

// EnvSpec is one named environment declared in the manifest: which resolver
// output to read and where to write the generated expression.
type EnvSpec struct {
	Name     string
	Lockfile string
	Output   string
}

// Manifest is the parsed project configuration.
type Manifest struct {
	// PythonAttr is the nixpkgs attribute of the target interpreter
	// (e.g. "python311").
	PythonAttr string

	// Nixpkgs pins the base repository snapshot.
	Nixpkgs Pin

	// PyPIFetcher pins the source-fetch helper.
	PyPIFetcher Pin

	// DisableChecks disables test execution and install checks in every
	// generated block.
	DisableChecks bool

	// PreferNixpkgs belongs to the external resolver's contract: reuse
	// existing recipes instead of rebuilding where possible. The resolver
	// has already applied it by the time the lockfile is written, so
	// generation never consults it; it is parsed here only so manifests
	// round-trip the full resolver configuration.
	PreferNixpkgs bool

	// IndexFile is the path of the candidate snapshot backing the package
	// index.
	IndexFile string

	// Environments are the declared environments, sorted by name.
	Environments []EnvSpec
}

// Options derives the generation options shared by all environments.
func (m *Manifest) Options() GenerateOptions {
	return GenerateOptions{
		PythonAttr:    m.PythonAttr,
		NixpkgsRev:    m.Nixpkgs.Rev,
		NixpkgsSHA256: m.Nixpkgs.SHA256,
		FetcherRev:    m.PyPIFetcher.Rev,
		FetcherSHA256: m.PyPIFetcher.SHA256,
		DisableChecks: m.DisableChecks,
	}
}

// Environment looks up a declared environment by name.
func (m *Manifest) Environment(name string) (EnvSpec, bool) {
	for _, env := range m.Environments {
		if env.Name == name {
			return env, true
		}
	}
	return EnvSpec{}, false
}

// Validate checks that the manifest carries everything generation needs.
func (m *Manifest) Validate() error {
	if m.PythonAttr == "" {
		return zerr.With(ErrManifestInvalid, "reason", "python attribute is required")
	}
	if m.Nixpkgs.Rev == "" || m.Nixpkgs.SHA256 == "" {
		return zerr.With(ErrManifestInvalid, "reason", "nixpkgs pin requires rev and sha256")
	}
	if m.PyPIFetcher.Rev == "" || m.PyPIFetcher.SHA256 == "" {
		return zerr.With(ErrManifestInvalid, "reason", "pypi fetcher pin requires rev and sha256")
	}
	if len(m.Environments) == 0 {
		return zerr.With(ErrManifestInvalid, "reason", "at least one environment is required")
	}
	for _, env := range m.Environments {
		if env.Lockfile == "" || env.Output == "" {
			err := zerr.With(ErrManifestInvalid, "environment", env.Name)
			return zerr.With(err, "reason", "environment requires lockfile and output")
		}
	}
	return nil
}

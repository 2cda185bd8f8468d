package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.trai.ch/pynix/internal/core/domain"
	"go.trai.ch/zerr"
)

// LoadHCL reads an HCL manifest from the given path. Expressions may
// reference the `workdir` variable, which is bound to the directory the
// manifest was discovered in, so lockfile and output paths can be spelled
// relative to it.
func LoadHCL(path, cwd string) (*domain.Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, zerr.Wrap(diags, "failed to parse manifest")
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"workdir": cty.StringVal(cwd),
		},
	}

	var dto hclManifestDTO
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &dto); diags.HasErrors() {
		return nil, zerr.Wrap(diags, "failed to decode manifest")
	}

	var nixpkgs, fetcher domain.Pin
	if dto.Nixpkgs != nil {
		nixpkgs = domain.Pin{Rev: dto.Nixpkgs.Rev, SHA256: dto.Nixpkgs.SHA256}
	}
	if dto.PyPIFetcher != nil {
		fetcher = domain.Pin{Rev: dto.PyPIFetcher.Rev, SHA256: dto.PyPIFetcher.SHA256}
	}

	envs := make([]domain.EnvSpec, 0, len(dto.Environments))
	for _, env := range dto.Environments {
		envs = append(envs, domain.EnvSpec{
			Name:     env.Name,
			Lockfile: env.Lockfile,
			Output:   env.Output,
		})
	}

	return buildManifest(
		dto.Python,
		nixpkgs,
		fetcher,
		dto.DisableChecks,
		dto.PreferNixpkgs,
		dto.IndexFile,
		envs,
	)
}

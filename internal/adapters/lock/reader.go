// Package lock reads the external resolver's output into a validated
// package set. It is an interchange layer only: no resolution happens here.
package lock

import (
	"encoding/json"
	"os"

	"go.trai.ch/pynix/internal/core/domain"
	"go.trai.ch/pynix/internal/core/ports"
	"go.trai.ch/zerr"
)

// supportedVersion is the lockfile format version this reader understands.
const supportedVersion = 1

// lockfileDTO is the JSON shape the resolver writes.
type lockfileDTO struct {
	Version  int          `json:"version"`
	Packages []packageDTO `json:"packages"`
}

type packageDTO struct {
	Name            string   `json:"name"`
	Version         string   `json:"version"`
	IsRoot          bool     `json:"is_root"`
	BuildInputs     []string `json:"build_inputs"`
	PropBuildInputs []string `json:"prop_build_inputs"`
}

// Reader implements ports.LockReader over JSON lockfiles.
type Reader struct{}

// NewReader creates a new lockfile reader.
func NewReader() *Reader {
	return &Reader{}
}

var _ ports.LockReader = (*Reader)(nil)

// Read parses the lockfile at path and validates the resulting set: every
// input edge must reference a package present in the set.
func (r *Reader) Read(path string) (*domain.PkgSet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the manifest
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read lockfile")
	}

	var dto lockfileDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileInvalid.Error())
	}
	if dto.Version != supportedVersion {
		err := zerr.With(domain.ErrLockfileInvalid, "path", path)
		err = zerr.With(err, "version", dto.Version)
		return nil, zerr.With(err, "supported_version", supportedVersion)
	}

	set := domain.NewPkgSet()
	for _, p := range dto.Packages {
		pkg := &domain.ResolvedPkg{
			Name:            domain.NewInternedString(p.Name),
			Version:         domain.NewInternedString(p.Version),
			IsRoot:          p.IsRoot,
			BuildInputs:     internStrings(p.BuildInputs),
			PropBuildInputs: internStrings(p.PropBuildInputs),
		}
		if err := set.Add(pkg); err != nil {
			return nil, err
		}
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

func internStrings(strs []string) []domain.InternedString {
	if len(strs) == 0 {
		return nil
	}
	res := make([]domain.InternedString, len(strs))
	for i, s := range strs {
		res[i] = domain.NewInternedString(s)
	}
	return res
}

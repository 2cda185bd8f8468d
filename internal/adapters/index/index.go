// Package index implements the PackageIndex port over a JSON snapshot of the
// base repository's python package candidates.
package index

import (
	"encoding/json"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pynix/internal/core/domain"
	"go.trai.ch/pynix/internal/core/ports"
	"go.trai.ch/zerr"
)

// Candidate is one known identifier for a package name.
type Candidate struct {
	Key     string
	Version string
}

// Directory answers candidate queries from an in-memory snapshot. It is
// read-only after Load.
type Directory struct {
	candidates  map[string][]Candidate
	fingerprint string
}

var _ ports.PackageIndex = (*Directory)(nil)

// Load reads a candidate snapshot from the given path.
func Load(path string) (*Directory, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the manifest
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read index snapshot")
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse index snapshot")
	}

	dir := &Directory{
		candidates:  make(map[string][]Candidate, len(file)),
		fingerprint: strconv.FormatUint(xxhash.Sum64(data), 16),
	}
	for name, dtos := range file {
		cands := make([]Candidate, len(dtos))
		for i, dto := range dtos {
			cands[i] = Candidate{Key: dto.Key, Version: dto.Version}
		}
		// Stable candidate order: by version, then key.
		slices.SortFunc(cands, func(a, b Candidate) int {
			if c := compareVersions(a.Version, b.Version); c != 0 {
				return c
			}
			return strings.Compare(a.Key, b.Key)
		})
		dir.candidates[name] = cands
	}
	return dir, nil
}

// Fingerprint returns a digest of the raw snapshot bytes. Two snapshots with
// different contents never share a fingerprint.
func (d *Directory) Fingerprint() string {
	return d.fingerprint
}

// HasPackage reports whether any candidate exists for the name.
func (d *Directory) HasPackage(name string) bool {
	return len(d.candidates[name]) > 0
}

// HasCandidate reports whether a candidate with exactly the given version
// exists for the name.
func (d *Directory) HasCandidate(name, version string) bool {
	for _, c := range d.candidates[name] {
		if c.Version == version {
			return true
		}
	}
	return false
}

// FindBestCandidate returns the attribute key closest to the requested
// version: an exact match if one exists, otherwise the highest candidate not
// above the requested version, otherwise the lowest one above it.
func (d *Directory) FindBestCandidate(name, version string) (string, error) {
	cands := d.candidates[name]
	if len(cands) == 0 {
		err := zerr.With(domain.ErrIndexInconsistent, "package", name)
		return "", zerr.With(err, "reason", "no candidates in snapshot")
	}

	best := -1
	for i, c := range cands {
		switch compareVersions(c.Version, version) {
		case 0:
			return c.Key, nil
		case -1:
			best = i
		}
	}
	if best >= 0 {
		return cands[best].Key, nil
	}
	return cands[0].Key, nil
}

// AllCandidates returns every attribute key for the name in stable order.
func (d *Directory) AllCandidates(name string) []string {
	cands := d.candidates[name]
	keys := make([]string, len(cands))
	for i, c := range cands {
		keys[i] = c.Key
	}
	return keys
}

// HasMultipleCandidates reports whether more than one attribute shares the
// name.
func (d *Directory) HasMultipleCandidates(name string) bool {
	return len(d.candidates[name]) > 1
}

// compareVersions orders dotted version strings, comparing numeric segments
// numerically and falling back to string comparison for the rest.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		if aerr == nil && berr == nil {
			if an != bn {
				if an < bn {
					return -1
				}
				return 1
			}
			continue
		}
		if c := strings.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}

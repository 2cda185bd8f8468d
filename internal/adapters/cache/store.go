// Package cache stores generated expressions keyed by a fingerprint of the
// generation inputs. Generation is deterministic, so a fingerprint hit may
// reuse the cached text verbatim.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pynix/internal/core/domain"
	"go.trai.ch/pynix/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// Store implements ports.ExpressionCache using a flat JSON file.
type Store struct {
	path    string
	mu      sync.RWMutex
	entries map[string]string
}

// NewStore creates a cache backed by the file at the given path. A missing
// file starts an empty cache.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    filepath.Clean(path),
		entries: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

var _ ports.ExpressionCache = (*Store)(nil)

// Key fingerprints one generation run: every package with its version, root
// flag and input edges in name-sorted order, plus the pins, flags and the
// index snapshot fingerprint. Any change to any of them produces a
// different key.
func (s *Store) Key(set *domain.PkgSet, opts domain.GenerateOptions) string {
	h := xxhash.New()
	sep := []byte{0}

	writeField := func(field string) {
		_, _ = h.WriteString(field)
		_, _ = h.Write(sep)
	}

	writeField(opts.PythonAttr)
	writeField(opts.NixpkgsRev)
	writeField(opts.NixpkgsSHA256)
	writeField(opts.FetcherRev)
	writeField(opts.FetcherSHA256)
	writeField(strconv.FormatBool(opts.DisableChecks))
	writeField(opts.IndexFingerprint)

	for pkg := range set.Walk() {
		writeField(pkg.Name.String())
		writeField(pkg.Version.String())
		writeField(strconv.FormatBool(pkg.IsRoot))
		for _, in := range pkg.BuildInputs {
			writeField("b:" + in.String())
		}
		for _, in := range pkg.PropBuildInputs {
			writeField("p:" + in.String())
		}
	}

	return strconv.FormatUint(h.Sum64(), 16)
}

// Get returns the cached expression for key, if any.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	expr, ok := s.entries[key]
	return expr, ok
}

// Put stores the expression under key and persists the cache file.
func (s *Store) Put(key, expression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = expression
	return s.save()
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read expression cache")
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		// A corrupted cache is not fatal; start over.
		s.entries = make(map[string]string)
	}
	return nil
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal expression cache")
	}
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, filePerm); err != nil {
		return zerr.Wrap(err, "failed to write expression cache")
	}
	return nil
}

package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// PkgSet is the name-keyed collection of resolved packages handed to the
// generator. It is built once from the resolver's output and read-only
// afterwards.
type PkgSet struct {
	pkgs  map[InternedString]ResolvedPkg
	names []string
}

// NewPkgSet creates a new empty PkgSet.
func NewPkgSet() *PkgSet {
	return &PkgSet{
		pkgs: make(map[InternedString]ResolvedPkg),
	}
}

// Add inserts a package into the set. Input slices are canonicalized (sorted
// and deduplicated) on the way in. It returns an error if a package with the
// same name already exists.
func (s *PkgSet) Add(p *ResolvedPkg) error {
	if _, exists := s.pkgs[p.Name]; exists {
		return zerr.With(ErrDuplicatePackage, "package", p.Name.String())
	}
	pkg := *p
	pkg.BuildInputs = canonicalize(pkg.BuildInputs)
	pkg.PropBuildInputs = canonicalize(pkg.PropBuildInputs)
	s.pkgs[pkg.Name] = pkg
	s.names = nil
	return nil
}

// Get returns the package with the given name.
func (s *PkgSet) Get(name string) (ResolvedPkg, bool) {
	p, ok := s.pkgs[NewInternedString(name)]
	return p, ok
}

// Len returns the number of packages in the set.
func (s *PkgSet) Len() int {
	return len(s.pkgs)
}

// SortedNames returns all package names in lexicographic order.
func (s *PkgSet) SortedNames() []string {
	if s.names == nil {
		s.names = make([]string, 0, len(s.pkgs))
		for name := range s.pkgs {
			s.names = append(s.names, name.String())
		}
		slices.Sort(s.names)
	}
	return s.names
}

// Walk returns an iterator that yields packages in name-sorted order.
func (s *PkgSet) Walk() iter.Seq[ResolvedPkg] {
	return func(yield func(ResolvedPkg) bool) {
		for _, name := range s.SortedNames() {
			if !yield(s.pkgs[NewInternedString(name)]) {
				return
			}
		}
	}
}

// Roots returns the root-flagged packages in name-sorted order.
func (s *PkgSet) Roots() []ResolvedPkg {
	roots := make([]ResolvedPkg, 0, len(s.pkgs))
	for pkg := range s.Walk() {
		if pkg.IsRoot {
			roots = append(roots, pkg)
		}
	}
	return roots
}

// Validate enforces the dangling-reference invariant: every name appearing in
// a build-input or propagated-build-input set must itself be a key of the
// set. A violation fails the whole set.
func (s *PkgSet) Validate() error {
	for pkg := range s.Walk() {
		for _, input := range pkg.BuildInputs {
			if _, ok := s.pkgs[input]; !ok {
				return missingRefError(pkg.Name, input, "build_inputs")
			}
		}
		for _, input := range pkg.PropBuildInputs {
			if _, ok := s.pkgs[input]; !ok {
				return missingRefError(pkg.Name, input, "prop_build_inputs")
			}
		}
	}
	return nil
}

func missingRefError(pkg, input InternedString, field string) error {
	err := zerr.With(ErrMissingDependencyReference, "package", pkg.String())
	err = zerr.With(err, "input", input.String())
	return zerr.With(err, "field", field)
}

func canonicalize(inputs []InternedString) []InternedString {
	if len(inputs) == 0 {
		return nil
	}
	sorted := make([]string, len(inputs))
	for i, in := range inputs {
		sorted[i] = in.String()
	}
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	res := make([]InternedString, len(sorted))
	for i, s := range sorted {
		res[i] = NewInternedString(s)
	}
	return res
}

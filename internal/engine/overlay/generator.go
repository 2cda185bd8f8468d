// Package overlay implements the overlay generation engine. It decides, per
// resolved package, whether the package must be redefined on top of the
// pinned base repository, and renders the override, fresh-definition and
// alias blocks into one reproducible environment expression.
package overlay

import (
	"slices"
	"strings"

	"go.trai.ch/pynix/internal/core/domain"
	"go.trai.ch/pynix/internal/core/ports"
	"go.trai.ch/zerr"
)

// Generator implements ports.ExpressionGenerator against a package index.
type Generator struct {
	index ports.PackageIndex
}

// New creates a Generator querying the given index.
func New(index ports.PackageIndex) *Generator {
	return &Generator{index: index}
}

var _ ports.ExpressionGenerator = (*Generator)(nil)

// Generate renders the resolved set into the final expression. The transform
// is a single pass over the name-sorted set with no side effects; any
// failure aborts the run before text is produced.
func (g *Generator) Generate(set *domain.PkgSet, opts domain.GenerateOptions) (string, error) {
	keys := g.overlayKeys(set)

	blocks := []block{
		importsBlock{
			fetcherRev:    opts.FetcherRev,
			fetcherSHA256: opts.FetcherSHA256,
			nixpkgsRev:    opts.NixpkgsRev,
			nixpkgsSHA256: opts.NixpkgsSHA256,
			pythonAttr:    opts.PythonAttr,
		},
		overlayHeader{pythonAttr: opts.PythonAttr},
	}

	for pkg := range set.Walk() {
		name := pkg.Name.String()
		if _, ok := keys[name]; !ok {
			continue
		}
		version := pkg.Version.String()

		buildInputs, err := g.formatInputs(set, keys, name, pkg.BuildInputs)
		if err != nil {
			return "", err
		}
		propBuildInputs, err := g.formatInputs(set, keys, name, pkg.PropBuildInputs)
		if err != nil {
			return "", err
		}

		// Packages present in the index are patched in place via an
		// override; absent ones are built from scratch.
		if g.index.HasPackage(name) {
			canonical, err := g.refName(name, version)
			if err != nil {
				return "", err
			}
			blocks = append(blocks, overrideBlock{
				key:             canonical,
				name:            name,
				version:         version,
				buildInputs:     buildInputs,
				propBuildInputs: propBuildInputs,
				disableChecks:   opts.DisableChecks,
			})
			for _, other := range g.otherCandidates(name, canonical) {
				blocks = append(blocks, aliasLine{key: other, canonical: canonical})
			}
		} else {
			blocks = append(blocks, freshBlock{
				name:            name,
				version:         version,
				buildInputs:     buildInputs,
				propBuildInputs: propBuildInputs,
				disableChecks:   opts.DisableChecks,
			})
		}
	}

	blocks = append(blocks, overlayFooter{})

	roots, err := g.rootRefs(set)
	if err != nil {
		return "", err
	}
	blocks = append(blocks, envBlock{pythonAttr: opts.PythonAttr, roots: roots})

	var b strings.Builder
	for _, bl := range blocks {
		bl.render(&b)
	}
	return b.String(), nil
}

// overlayKeys classifies every package of the set once. A package needs an
// overlay entry when the index has no exact match for its version, or when
// more than one index identifier shares its name: some recipe elsewhere in
// the index may depend on one of the other identifiers, so all of them must
// be pinned uniformly.
func (g *Generator) overlayKeys(set *domain.PkgSet) map[string]struct{} {
	keys := make(map[string]struct{})
	for pkg := range set.Walk() {
		if g.needsOverlay(pkg.Name.String(), pkg.Version.String()) {
			keys[pkg.Name.String()] = struct{}{}
		}
	}
	return keys
}

func (g *Generator) needsOverlay(name, version string) bool {
	return !g.index.HasCandidate(name, version) || g.index.HasMultipleCandidates(name)
}

// refName maps a (name, version) pair to the identifier used in generated
// references: the index's canonical identifier when the package exists
// there, the bare name otherwise (it will be defined in the overlay).
func (g *Generator) refName(name, version string) (string, error) {
	if !g.index.HasPackage(name) {
		return name, nil
	}
	id, err := g.index.FindBestCandidate(name, version)
	if err != nil {
		lookupErr := zerr.Wrap(err, domain.ErrIndexInconsistent.Error())
		lookupErr = zerr.With(lookupErr, "package", name)
		return "", zerr.With(lookupErr, "version", version)
	}
	if id == "" {
		lookupErr := zerr.With(domain.ErrIndexInconsistent, "package", name)
		return "", zerr.With(lookupErr, "version", version)
	}
	return id, nil
}

// formatInputs resolves one input set to concrete identifiers and renders it
// as a space-separated list: references defined in this overlay come first,
// bare, then index-drawn ones prefixed with the index namespace.
func (g *Generator) formatInputs(set *domain.PkgSet, keys map[string]struct{}, pkg string, inputs []domain.InternedString) (string, error) {
	var local, external []string
	for _, input := range inputs {
		dep, ok := set.Get(input.String())
		if !ok {
			err := zerr.With(domain.ErrMissingDependencyReference, "package", pkg)
			return "", zerr.With(err, "input", input.String())
		}
		ref, err := g.refName(input.String(), dep.Version.String())
		if err != nil {
			return "", err
		}
		if _, ok := keys[ref]; ok {
			local = append(local, ref)
		} else {
			external = append(external, "python-self."+ref)
		}
	}
	slices.Sort(local)
	slices.Sort(external)
	local = slices.Compact(local)
	external = slices.Compact(external)
	return strings.Join(append(local, external...), " "), nil
}

// otherCandidates returns every colliding index identifier except the
// canonical one, sorted for deterministic alias emission.
func (g *Generator) otherCandidates(name, canonical string) []string {
	var others []string
	for _, id := range g.index.AllCandidates(name) {
		if id != canonical {
			others = append(others, id)
		}
	}
	slices.Sort(others)
	return others
}

// rootRefs resolves the root-flagged packages for the trailing environment
// expression, in name-sorted order.
func (g *Generator) rootRefs(set *domain.PkgSet) ([]string, error) {
	var roots []string
	for _, pkg := range set.Roots() {
		ref, err := g.refName(pkg.Name.String(), pkg.Version.String())
		if err != nil {
			return nil, err
		}
		roots = append(roots, ref)
	}
	return roots, nil
}

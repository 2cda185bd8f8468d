// Package domain contains the core domain models for overlay generation.
package domain

// ResolvedPkg is a single entry of the resolver's output: a concrete package
// version together with its dependency edges. Input slices are expected to be
// sorted and deduplicated; PkgSet.Add enforces this.
type ResolvedPkg struct {
	// Name is the package name, unique within the resolved set.
	Name InternedString

	// Version is the resolved version string (e.g. "2.31.0").
	Version InternedString

	// IsRoot marks packages the user explicitly requested, as opposed to
	// ones pulled in transitively.
	IsRoot bool

	// BuildInputs are packages needed only to build this one.
	BuildInputs []InternedString

	// PropBuildInputs are runtime dependencies that must also be visible to
	// any package depending on this one.
	PropBuildInputs []InternedString
}

// Package ports defines the core interfaces for the application.
package ports

//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks

// PackageIndex answers existence and candidate queries against the base
// package repository. Its matching policy is opaque to the generator; the
// choice of canonical identifier among colliding candidates is entirely the
// index's.
type PackageIndex interface {
	// HasPackage reports whether any candidate exists for the given name.
	HasPackage(name string) bool

	// HasCandidate reports whether a candidate with exactly the given
	// version exists for the name.
	HasCandidate(name, version string) bool

	// FindBestCandidate returns the canonical identifier for the name at or
	// near the given version. It fails when the index holds no candidate
	// for the name.
	FindBestCandidate(name, version string) (string, error)

	// AllCandidates returns every identifier known for the name, in a
	// stable order.
	AllCandidates(name string) []string

	// HasMultipleCandidates reports whether more than one identifier shares
	// the name.
	HasMultipleCandidates(name string) bool

	// Fingerprint identifies the snapshot backing the index. Generated
	// output depends on the snapshot, so cache keys must include it.
	Fingerprint() string
}

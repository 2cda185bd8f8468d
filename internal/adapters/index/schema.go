package index

// candidateDTO is one base-repository attribute in the snapshot file.
type candidateDTO struct {
	// Key is the attribute name recipes use to reference the package
	// (e.g. "requests", "pytest_5").
	Key string `json:"key"`

	// Version is the version the attribute currently builds.
	Version string `json:"version"`
}

// snapshotFile maps package names to their attribute candidates. One name
// can carry several candidates when the repository ships multiple versions.
type snapshotFile map[string][]candidateDTO

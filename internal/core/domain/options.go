package domain

// GenerateOptions carries the precomputed pins and flags one generation run
// needs. All values arrive as configuration; nothing here is fetched.
type GenerateOptions struct {
	// PythonAttr is the nixpkgs attribute of the target interpreter.
	PythonAttr string

	// NixpkgsRev and NixpkgsSHA256 pin the base repository tarball.
	NixpkgsRev    string
	NixpkgsSHA256 string

	// FetcherRev and FetcherSHA256 pin the pypi source-fetch helper tarball.
	FetcherRev    string
	FetcherSHA256 string

	// DisableChecks appends check-disabling directives to every block.
	DisableChecks bool

	// IndexFingerprint identifies the package-index snapshot the run reads
	// from. It never reaches the generated text, but output depends on the
	// snapshot, so cache keys must change when it does.
	IndexFingerprint string
}

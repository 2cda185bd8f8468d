package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicatePackage is returned when a resolved set already contains a
	// package with the same name.
	ErrDuplicatePackage = zerr.New("package already exists in resolved set")

	// ErrMissingDependencyReference is returned when a build input or
	// propagated build input names a package that is not part of the
	// resolved set. Generating anyway would emit a reference to an
	// undefined identifier.
	ErrMissingDependencyReference = zerr.New("missing dependency reference")

	// ErrIndexInconsistent is returned when the package index reports that a
	// package exists but cannot produce a canonical identifier for it.
	ErrIndexInconsistent = zerr.New("package index inconsistency")

	// ErrUnknownEnvironment is returned when a requested environment is not
	// declared in the manifest.
	ErrUnknownEnvironment = zerr.New("unknown environment")

	// ErrManifestInvalid is returned when the manifest is missing required
	// fields or declares no environments.
	ErrManifestInvalid = zerr.New("invalid manifest")

	// ErrLockfileInvalid is returned when the resolver output cannot be
	// parsed or has an unsupported format version.
	ErrLockfileInvalid = zerr.New("invalid lockfile")
)

package tree

import "errors"

// Sentinel errors for package tree.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Configuration errors
	ErrNegativeWeight   = errors.New("weights must be non-negative")
	ErrInfiniteWeight   = errors.New("weights must be finite")
	ErrNoPositiveWeight = errors.New("at least one of weight-file or weight-dir must be positive")
	ErrMDRatio          = errors.New("md-ratio must be in [0, 1]")
	ErrNegativeWords    = errors.New("word counts must be non-negative")
	ErrWordBounds       = errors.New("min-words must be <= max-words")
	ErrMaxFiles         = errors.New("max-files must be >= 1")
	ErrMaxDepth         = errors.New("max-depth must be >= 0")

	// Manifest errors
	ErrManifestVersion = errors.New("unsupported manifest version")
)

// Package primary defines the primary ports (driving interfaces) for the
// application: the services the CLI layer calls into.
package primary

import "errors"

// Failure classes of a submission attempt. Services wrap these with a
// human-readable reason; callers branch with errors.Is.
var (
	// ErrValidation covers user-correctable input problems: bad image type
	// or size, missing image, missing location. Nothing is persisted.
	ErrValidation = errors.New("validation failed")

	// ErrCompression indicates the image could not be re-encoded. Fatal for
	// the attempt; there is no fallback to an uncompressed upload because
	// the backend enforces size limits.
	ErrCompression = errors.New("image compression failed")
)

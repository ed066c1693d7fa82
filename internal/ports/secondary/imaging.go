package secondary

import "context"

// ImageCandidate is a photo as the user supplied it: raw bytes plus the
// declared name and content type.
type ImageCandidate struct {
	Name        string
	ContentType string
	Data        []byte
}

// CompressedImage is the pipeline-ready form of a photo after re-encoding.
type CompressedImage struct {
	Name        string
	ContentType string
	Data        []byte

	// Oversize is set when the processor could not get the result under
	// its size ceiling. Best-effort: the pipeline warns, it does not fail.
	Oversize bool
}

// ValidationResult is the outcome of checking an image candidate. A failed
// validation is an expected, reportable condition, not an error.
type ValidationResult struct {
	OK     bool
	Reason string
}

// CompressOutcome is delivered on the channel returned by CompressAsync.
type CompressOutcome struct {
	Image CompressedImage
	Err   error
}

// ImageProcessor defines the secondary port for image validation,
// compression, and the binary/text codec used by the durable queue.
type ImageProcessor interface {
	// Validate checks the declared content type and raw size against the
	// submission limits.
	Validate(img ImageCandidate) ValidationResult

	// CompressAsync re-encodes the image bounded by the dimension and size
	// limits. The work runs on its own goroutine; the result arrives on the
	// returned channel exactly once. The channel is buffered, so an
	// abandoned result never leaks the worker.
	CompressAsync(ctx context.Context, img ImageCandidate) <-chan CompressOutcome

	// Encode converts image bytes into a storage-safe textual form.
	Encode(data []byte, contentType string) string

	// Decode reverses Encode byte-for-byte, returning the bytes and the
	// content type recorded at encode time.
	Decode(encoded string) (data []byte, contentType string, err error)
}

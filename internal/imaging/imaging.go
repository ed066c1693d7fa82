// Package imaging contains the image pipeline gate: candidate validation,
// bounded re-encoding, and the binary/text codec used by the durable queue.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"regexp"
	"strings"

	"golang.org/x/image/draw"

	"github.com/example/fieldreport/internal/ports/secondary"

	// Decoders for the accepted input formats. AVIF has no registered
	// decoder; a valid AVIF candidate fails at the compression step.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Submission limits enforced before anything enters the pipeline.
const (
	// MaxUploadBytes is the pre-compression size ceiling.
	MaxUploadBytes = 10 << 20

	// MaxCompressedBytes is the post-compression target. Compression is
	// best-effort: a result above this is returned with a warning, not
	// rejected.
	MaxCompressedBytes = 1 << 20

	// MaxDimension bounds the long edge of the re-encoded image in pixels.
	MaxDimension = 1920
)

// jpeg quality ladder, starting at the initial factor and stepping down
// until the result fits MaxCompressedBytes or the ladder is exhausted.
var qualityLadder = []int{80, 65, 50, 35, 25}

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/avif": true,
}

var (
	unsafeChars  = regexp.MustCompile(`[^a-zA-Z0-9.]`)
	repeatedSeps = regexp.MustCompile(`_{2,}`)
)

// Processor implements secondary.ImageProcessor.
type Processor struct{}

// NewProcessor creates a new image processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// Validate checks the declared content type against the allow-list and the
// raw size against the pre-compression ceiling. A failing candidate is an
// expected outcome, reported via the result rather than an error.
func (p *Processor) Validate(img secondary.ImageCandidate) secondary.ValidationResult {
	if !allowedTypes[strings.ToLower(img.ContentType)] {
		return secondary.ValidationResult{
			Reason: "invalid file type: upload a JPEG, PNG, GIF, WEBP, or AVIF image",
		}
	}
	if len(img.Data) > MaxUploadBytes {
		return secondary.ValidationResult{
			Reason: fmt.Sprintf("file size too large: maximum is %d MB", MaxUploadBytes>>20),
		}
	}
	return secondary.ValidationResult{OK: true}
}

// CompressAsync re-encodes the image on its own goroutine so the caller
// stays responsive during the CPU-bound work. The outcome arrives on the
// returned channel exactly once; the channel is buffered so an abandoned
// result never leaks the worker.
func (p *Processor) CompressAsync(ctx context.Context, img secondary.ImageCandidate) <-chan secondary.CompressOutcome {
	out := make(chan secondary.CompressOutcome, 1)
	go func() {
		compressed, err := p.compress(img)
		out <- secondary.CompressOutcome{Image: compressed, Err: err}
	}()
	return out
}

// compress decodes the candidate, scales it to the dimension bound, and
// re-encodes as JPEG, stepping down the quality ladder while the result is
// above the size ceiling. The final rung is returned even if still above
// the ceiling; the pipeline decides whether to warn.
func (p *Processor) compress(img secondary.ImageCandidate) (secondary.CompressedImage, error) {
	src, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return secondary.CompressedImage{}, fmt.Errorf("decode %s image: %w", img.ContentType, err)
	}

	src = scaleToFit(src, MaxDimension)

	var encoded []byte
	for _, quality := range qualityLadder {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: quality}); err != nil {
			return secondary.CompressedImage{}, fmt.Errorf("encode jpeg at quality %d: %w", quality, err)
		}
		encoded = buf.Bytes()
		if len(encoded) <= MaxCompressedBytes {
			break
		}
	}

	return secondary.CompressedImage{
		Name:        jpegName(SanitizeFilename(img.Name)),
		ContentType: "image/jpeg",
		Data:        encoded,
		Oversize:    len(encoded) > MaxCompressedBytes,
	}, nil
}

// Encode converts image bytes into a storage-safe textual representation.
func (p *Processor) Encode(data []byte, contentType string) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}

// Decode reverses Encode, returning the original bytes and the content type
// recorded at encode time.
func (p *Processor) Decode(encoded string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(encoded, "data:")
	if !ok {
		return nil, "", fmt.Errorf("decode image: missing data prefix")
	}
	contentType, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return nil, "", fmt.Errorf("decode image: missing base64 marker")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode image payload: %w", err)
	}
	return data, contentType, nil
}

// SanitizeFilename restricts a filename to letters, digits, and dots, with
// single underscore separators, so it is safe as a storage path component.
func SanitizeFilename(name string) string {
	sanitized := unsafeChars.ReplaceAllString(name, "_")
	return repeatedSeps.ReplaceAllString(sanitized, "_")
}

// scaleToFit returns src scaled so its long edge is at most maxDim pixels,
// preserving aspect ratio. Images already within bounds pass through.
func scaleToFit(src image.Image, maxDim int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}

	var dw, dh int
	if w >= h {
		dw = maxDim
		dh = h * maxDim / w
	} else {
		dh = maxDim
		dw = w * maxDim / h
	}
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

// jpegName swaps the filename extension for .jpg to match the re-encoded
// content type.
func jpegName(name string) string {
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	if name == "" {
		name = "image"
	}
	return name + ".jpg"
}

// Ensure Processor implements the interface
var _ secondary.ImageProcessor = (*Processor)(nil)

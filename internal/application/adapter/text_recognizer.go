package adapter

import "context"

// TextRecognizer is the opaque external text-recognition step applied to
// receipt images. Implementations return the raw recognized text; structured
// field extraction happens in the application layer.
type TextRecognizer interface {
	// IsAvailable reports whether the recognizer is configured and usable.
	// When false, callers degrade to empty text instead of failing.
	IsAvailable() bool

	// Recognize returns the raw text recognized in the image.
	Recognize(ctx context.Context, image []byte, mimeType string) (string, error)
}

package mock

import (
	"context"
	"errors"
)

// Recognizer is a scripted text recognizer: scenarios set the text (or error)
// it should return for the next scan.
type Recognizer struct {
	Available bool
	Text      string
	Fail      bool
}

// NewRecognizer returns a recognizer that is available and reads empty text.
func NewRecognizer() *Recognizer {
	return &Recognizer{Available: true}
}

// Reset restores the default state between scenarios.
func (r *Recognizer) Reset() {
	r.Available = true
	r.Text = ""
	r.Fail = false
}

// IsAvailable reports whether the recognizer is configured.
func (r *Recognizer) IsAvailable() bool {
	return r.Available
}

// Recognize returns the scripted text.
func (r *Recognizer) Recognize(ctx context.Context, image []byte, mimeType string) (string, error) {
	if r.Fail {
		return "", errors.New("scripted recognition failure")
	}
	return r.Text, nil
}

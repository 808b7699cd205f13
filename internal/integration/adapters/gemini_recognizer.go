// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// recognitionPrompt asks the model for a plain-text transcription only, so the
// downstream pattern rules see text shaped like OCR output.
const recognitionPrompt = `Transcribe all text visible in this receipt image.
Return only the raw text, one receipt line per output line, top to bottom.
Do not add commentary, formatting or translation.`

// GeminiRecognizer implements adapter.TextRecognizer using Google Gemini
// vision. It is the opaque external text-recognition step of receipt intake.
type GeminiRecognizer struct {
	apiKey    string
	modelName string
	timeout   time.Duration
}

// NewGeminiRecognizer creates a new Gemini recognizer instance.
func NewGeminiRecognizer(apiKey string, timeout time.Duration) *GeminiRecognizer {
	return &GeminiRecognizer{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
		timeout:   timeout,
	}
}

// IsAvailable checks if the recognizer is configured.
func (s *GeminiRecognizer) IsAvailable() bool {
	return s.apiKey != ""
}

// Recognize returns the raw text recognized in the image.
func (s *GeminiRecognizer) Recognize(ctx context.Context, image []byte, mimeType string) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini recognizer is not configured")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0)

	format := strings.TrimPrefix(mimeType, "image/")

	resp, err := model.GenerateContent(ctx,
		genai.ImageData(format, image),
		genai.Text(recognitionPrompt),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return collectText(resp), nil
}

// collectText flattens the text parts of a generation response.
func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}

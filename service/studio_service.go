package service

import (
	"context"
	"fmt"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// defaultImageModel is the Gemini model used for image edits unless
// GEMINI_IMAGE_MODEL overrides it.
const defaultImageModel = "gemini-2.5-flash-image-preview"

// ImageEditorInterface is the contract the storefront consumes for AI Studio
// edits. The call is opaque, possibly slow and possibly failing; callers own
// the in-flight guard and surface failures to the user without retrying.
type ImageEditorInterface interface {
	// EditImage sends the image and instruction to the remote model and
	// returns the generated PNG bytes.
	EditImage(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, error)
}

// GeminiImageEditor calls the Gemini image model through the official SDK.
type GeminiImageEditor struct {
	client *genai.Client
	model  string
}

// NewGeminiImageEditor creates a Gemini-backed editor.
// apiKey must be a valid Gemini API key.
func NewGeminiImageEditor(ctx context.Context, apiKey string) (*GeminiImageEditor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := os.Getenv("GEMINI_IMAGE_MODEL")
	if model == "" {
		model = defaultImageModel
	}

	return &GeminiImageEditor{
		client: client,
		model:  model,
	}, nil
}

// Ensure GeminiImageEditor implements ImageEditorInterface
var _ ImageEditorInterface = (*GeminiImageEditor)(nil)

// EditImage sends the image plus the free-text instruction and returns the
// first image part of the response. A response without an image part is a
// failure.
func (e *GeminiImageEditor) EditImage(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, error) {
	model := e.client.GenerativeModel(e.model)

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: image},
		genai.Text(instruction),
	)
	if err != nil {
		return nil, fmt.Errorf("image generation request failed: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
				return blob.Data, nil
			}
		}
	}

	return nil, fmt.Errorf("model returned no image")
}

// Close releases the underlying API client.
func (e *GeminiImageEditor) Close() error {
	return e.client.Close()
}

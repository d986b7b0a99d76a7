// Package gemini provides a description writer backed by the Google Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"marketplace_backend/internal/feature/listingassist/usecase"
)

const (
	// DefaultModel is the Gemini model used for description generation.
	DefaultModel = "gemini-2.5-flash"
)

// GeminiWriter generates listing copy through the Gemini API.
type GeminiWriter struct {
	client *genai.Client
	model  string
}

// Compile-time check that GeminiWriter implements DescriptionWriter.
var _ usecase.DescriptionWriter = (*GeminiWriter)(nil)

// NewGeminiWriter creates a writer using application default credentials.
// Requires GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT and
// GOOGLE_CLOUD_LOCATION in the environment.
func NewGeminiWriter(ctx context.Context) (*GeminiWriter, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiWriter{client: client, model: DefaultModel}, nil
}

// Write generates text from the prompt.
func (g *GeminiWriter) Write(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}

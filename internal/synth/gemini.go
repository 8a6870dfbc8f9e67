package synth

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generator produces raw structured output for a serialized item payload.
type Generator interface {
	Generate(ctx context.Context, input string) (string, error)
}

// GeminiGenerator calls the Gemini API with the digest system instruction,
// a strict response schema and low sampling temperature.
type GeminiGenerator struct {
	apiKey string
	model  string
}

// NewGeminiGenerator creates a generator for the given credential and model.
func NewGeminiGenerator(apiKey, model string) *GeminiGenerator {
	return &GeminiGenerator{apiKey: apiKey, model: model}
}

func (g *GeminiGenerator) Generate(ctx context.Context, input string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}

	contents := []*genai.Content{
		{
			Parts: []*genai.Part{{Text: systemInstruction}},
			Role:  "system",
		},
		{
			Parts: []*genai.Part{{Text: "INPUT DATA:\n" + input}},
			Role:  "user",
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
		Temperature:      genai.Ptr[float32](0.1),
	})
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	return resp.Text(), nil
}

package generation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the default model for the Gemini backend.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient implements Service against the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient constructs a Gemini backend. An API key is required.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini backend requires an API key")
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) generate(ctx context.Context, system, user string, temperature float32) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: user}},
		Role:  "user",
	}}
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](temperature),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// GenerateItem implements Service.
func (g *GeminiClient) GenerateItem(ctx context.Context, prompt string) (string, error) {
	system, user := itemPrompts(prompt)
	text, err := g.generate(ctx, system, user, 0.9)
	if err != nil {
		return "", err
	}
	return parseItem(text)
}

// GenerateVariations implements Service.
func (g *GeminiClient) GenerateVariations(ctx context.Context, seed string) ([]string, error) {
	system, user := variationPrompts(seed)
	text, err := g.generate(ctx, system, user, 0.8)
	if err != nil {
		return nil, err
	}
	return parseVariations(text)
}

// GenerateDescription implements Service.
func (g *GeminiClient) GenerateDescription(ctx context.Context, value string) (string, error) {
	system, user := descriptionPrompts(value)
	text, err := g.generate(ctx, system, user, 0.65)
	if err != nil {
		return "", err
	}
	return parseDescription(text)
}

// GenerateCategorySummary implements Service.
func (g *GeminiClient) GenerateCategorySummary(ctx context.Context, label string) (string, error) {
	system, user := summaryPrompts(label)
	text, err := g.generate(ctx, system, user, 0.65)
	if err != nil {
		return "", err
	}
	return parseDescription(text)
}

// GenerateArt implements Service.
func (g *GeminiClient) GenerateArt(ctx context.Context, prompt string, lineWidth int) (string, error) {
	system, user := artPrompts(prompt, lineWidth)
	text, err := g.generate(ctx, system, user, 0.55)
	if err != nil {
		return "", err
	}
	return cleanArt(text)
}

package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultChatEndpoint is any OpenAI-compatible chat completions URL.
const DefaultChatEndpoint = "https://api.openai.com/v1/chat/completions"

// DefaultChatModel is the default model for the chat backend.
const DefaultChatModel = "gpt-4o-mini"

// ChatClient implements Service against an OpenAI-compatible chat
// completions API. With no API key configured it serves deterministic stub
// output so the site stays browsable in local development.
type ChatClient struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewChatClient constructs a chat backend. Empty endpoint and model fall
// back to the defaults; a nil client gets a 45s-timeout http.Client.
func NewChatClient(endpoint, model, apiKey string, client *http.Client) *ChatClient {
	if endpoint == "" {
		endpoint = DefaultChatEndpoint
	}
	if model == "" {
		model = DefaultChatModel
	}
	if client == nil {
		client = &http.Client{Timeout: 45 * time.Second}
	}
	return &ChatClient{endpoint: endpoint, model: model, apiKey: apiKey, httpClient: client}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *ChatClient) complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(buf))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat API error: status %d body %s", resp.StatusCode, truncate(string(body), 512))
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("chat response missing choices")
	}

	content := strings.TrimSpace(cr.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("chat response empty")
	}
	return content, nil
}

// GenerateItem implements Service.
func (c *ChatClient) GenerateItem(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return stubItem(prompt), nil
	}
	system, user := itemPrompts(prompt)
	text, err := c.complete(ctx, system, user, 0.85)
	if err != nil {
		return "", err
	}
	return parseItem(text)
}

// GenerateVariations implements Service.
func (c *ChatClient) GenerateVariations(ctx context.Context, seed string) ([]string, error) {
	if c.apiKey == "" {
		return stubVariations(seed), nil
	}
	system, user := variationPrompts(seed)
	text, err := c.complete(ctx, system, user, 0.8)
	if err != nil {
		return nil, err
	}
	return parseVariations(text)
}

// GenerateDescription implements Service.
func (c *ChatClient) GenerateDescription(ctx context.Context, value string) (string, error) {
	if c.apiKey == "" {
		return stubDescription(value), nil
	}
	system, user := descriptionPrompts(value)
	text, err := c.complete(ctx, system, user, 0.65)
	if err != nil {
		return "", err
	}
	return parseDescription(text)
}

// GenerateCategorySummary implements Service.
func (c *ChatClient) GenerateCategorySummary(ctx context.Context, label string) (string, error) {
	if c.apiKey == "" {
		return stubSummary(label), nil
	}
	system, user := summaryPrompts(label)
	text, err := c.complete(ctx, system, user, 0.65)
	if err != nil {
		return "", err
	}
	return parseDescription(text)
}

// GenerateArt implements Service.
func (c *ChatClient) GenerateArt(ctx context.Context, prompt string, lineWidth int) (string, error) {
	if c.apiKey == "" {
		return stubArt(prompt, lineWidth), nil
	}
	system, user := artPrompts(prompt, lineWidth)
	text, err := c.complete(ctx, system, user, 0.55)
	if err != nil {
		return "", err
	}
	return cleanArt(text)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// Package generation wraps the external text-generation API behind a small
// interface and carries the request state machine used by the generator
// pages. Two backends are provided: an OpenAI-compatible chat completions
// client and a Gemini client.
package generation

import (
	"context"
	"fmt"
	"strings"
)

// Service is the opaque generation collaborator. Every call is
// request/response with no retries; a failure is surfaced once to the
// caller as an error.
type Service interface {
	// GenerateItem produces a single kaomoji for a free-text prompt.
	GenerateItem(ctx context.Context, prompt string) (string, error)
	// GenerateVariations produces a handful of riffs on a seed kaomoji.
	// It fails when no usable variation comes back.
	GenerateVariations(ctx context.Context, seed string) ([]string, error)
	// GenerateDescription produces a one-to-two sentence description of a
	// kaomoji value.
	GenerateDescription(ctx context.Context, value string) (string, error)
	// GenerateCategorySummary produces a paragraph about a category label.
	GenerateCategorySummary(ctx context.Context, label string) (string, error)
	// GenerateArt produces a multi-line text illustration, each line padded
	// to lineWidth characters. It fails on empty output.
	GenerateArt(ctx context.Context, prompt string, lineWidth int) (string, error)
}

// Settings tune how the generator phrases its request. They travel with the
// prompt from the home-page preview into the full generator.
type Settings struct {
	Style      string  // visual flavor hint, see StyleOptions
	Creativity float64 // 0..1, folded into the prompt as a phrasing hint
}

// StyleOptions lists the style presets offered by the generator form.
var StyleOptions = []string{"classic", "cute", "chaotic", "minimal"}

// DefaultSettings returns the generator's initial configuration.
func DefaultSettings() Settings {
	return Settings{Style: "classic", Creativity: 0.85}
}

// ApplyTo folds the settings into the user prompt so both backends receive
// the same instruction text.
func (s Settings) ApplyTo(prompt string) string {
	var hints []string
	if style := strings.TrimSpace(s.Style); style != "" && style != "classic" {
		hints = append(hints, "style: "+style)
	}
	switch {
	case s.Creativity >= 0.95:
		hints = append(hints, "be bold and unconventional")
	case s.Creativity > 0 && s.Creativity <= 0.4:
		hints = append(hints, "keep it simple and conventional")
	}
	if len(hints) == 0 {
		return prompt
	}
	return fmt.Sprintf("%s (%s)", prompt, strings.Join(hints, "; "))
}

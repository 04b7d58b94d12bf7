package generation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var jsonFence = regexp.MustCompile("(?i)```json")

// sanitizeJSON strips markdown code fences models sometimes wrap around
// their JSON replies.
func sanitizeJSON(text string) string {
	text = jsonFence.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

func parseItem(text string) (string, error) {
	var payload struct {
		Kaomoji string `json:"kaomoji"`
	}
	if err := json.Unmarshal([]byte(sanitizeJSON(text)), &payload); err != nil {
		return "", fmt.Errorf("invalid kaomoji response format: %w", err)
	}
	value := strings.TrimSpace(payload.Kaomoji)
	if value == "" {
		return "", fmt.Errorf("response missing kaomoji")
	}
	return value, nil
}

func parseVariations(text string) ([]string, error) {
	var payload struct {
		Variations []string `json:"variations"`
	}
	if err := json.Unmarshal([]byte(sanitizeJSON(text)), &payload); err != nil {
		return nil, fmt.Errorf("invalid variations response format: %w", err)
	}
	var usable []string
	for _, v := range payload.Variations {
		if v = strings.TrimSpace(v); len([]rune(v)) > 1 {
			usable = append(usable, v)
		}
	}
	if len(usable) == 0 {
		return nil, fmt.Errorf("response contained no usable variations")
	}
	return usable, nil
}

func parseDescription(text string) (string, error) {
	var payload struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(sanitizeJSON(text)), &payload); err != nil {
		return "", fmt.Errorf("invalid description response format: %w", err)
	}
	desc := strings.TrimSpace(payload.Description)
	if desc == "" {
		return "", fmt.Errorf("response missing description")
	}
	return desc, nil
}

// cleanArt strips stray code fences and surrounding blank lines from an art
// reply, keeping interior padding intact.
func cleanArt(text string) (string, error) {
	art := strings.ReplaceAll(text, "```", "")
	art = strings.Trim(art, "\r\n")
	if strings.TrimSpace(art) == "" {
		return "", fmt.Errorf("empty art response")
	}
	return art, nil
}

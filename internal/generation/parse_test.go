package generation

import (
	"strings"
	"testing"
)

func TestParseItem(t *testing.T) {
	got, err := parseItem(`{"kaomoji": "(^ω^)"}`)
	if err != nil {
		t.Fatalf("parseItem returned error: %v", err)
	}
	if got != "(^ω^)" {
		t.Fatalf("parseItem = %q", got)
	}
}

func TestParseItemStripsCodeFences(t *testing.T) {
	text := "```json\n{\"kaomoji\": \"(>_<)\"}\n```"
	got, err := parseItem(text)
	if err != nil {
		t.Fatalf("parseItem with fences returned error: %v", err)
	}
	if got != "(>_<)" {
		t.Fatalf("parseItem = %q", got)
	}
}

func TestParseItemRejectsGarbage(t *testing.T) {
	for _, text := range []string{"not json", `{"kaomoji": ""}`, `{"other": "x"}`} {
		if _, err := parseItem(text); err == nil {
			t.Fatalf("parseItem(%q) expected error", text)
		}
	}
}

func TestParseVariationsFiltersUnusable(t *testing.T) {
	got, err := parseVariations(`{"variations": ["(^_^)", " ", "x", "(T_T)"]}`)
	if err != nil {
		t.Fatalf("parseVariations returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 usable variations, got %v", got)
	}
}

func TestParseVariationsAllUnusable(t *testing.T) {
	if _, err := parseVariations(`{"variations": ["", " "]}`); err == nil {
		t.Fatal("expected error for zero usable variations")
	}
}

func TestParseDescription(t *testing.T) {
	got, err := parseDescription(`{"description": "A cheerful face."}`)
	if err != nil {
		t.Fatalf("parseDescription returned error: %v", err)
	}
	if got != "A cheerful face." {
		t.Fatalf("parseDescription = %q", got)
	}
}

func TestCleanArt(t *testing.T) {
	got, err := cleanArt("```\n  (^_^)  \n```")
	if err != nil {
		t.Fatalf("cleanArt returned error: %v", err)
	}
	if strings.Contains(got, "```") {
		t.Fatalf("cleanArt left fences in %q", got)
	}
	if !strings.Contains(got, "  (^_^)  ") {
		t.Fatalf("cleanArt trimmed interior padding: %q", got)
	}
}

func TestCleanArtEmpty(t *testing.T) {
	if _, err := cleanArt("\n\n  \n"); err == nil {
		t.Fatal("expected error for blank art")
	}
}

func TestSettingsApplyTo(t *testing.T) {
	if got := DefaultSettings().ApplyTo("a cat"); got != "a cat" {
		t.Fatalf("default settings should not decorate the prompt, got %q", got)
	}
	got := Settings{Style: "cute", Creativity: 0.5}.ApplyTo("a cat")
	if !strings.Contains(got, "cute") {
		t.Fatalf("style missing from decorated prompt %q", got)
	}
	got = Settings{Style: "classic", Creativity: 1.0}.ApplyTo("a cat")
	if !strings.Contains(got, "bold") {
		t.Fatalf("high creativity missing from decorated prompt %q", got)
	}
}

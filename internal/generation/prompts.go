package generation

import "fmt"

// Prompt pairs used by both backends. The system halves pin the strict JSON
// reply shapes the parsers expect.

func itemPrompts(prompt string) (system, user string) {
	system = `You craft playful kaomojis. Always reply with strict JSON: {"kaomoji": "<value>"} and nothing else.`
	user = fmt.Sprintf("Generate a single, unique kaomoji based on this description: %q.", prompt)
	return
}

func variationPrompts(seed string) (system, user string) {
	system = `You invent kaomoji variations. Always return JSON: {"variations": ["..."]} with exactly four unique entries.`
	user = fmt.Sprintf("Create four creative kaomoji based on %q. Do not repeat the original kaomoji.", seed)
	return
}

func descriptionPrompts(value string) (system, user string) {
	system = `You explain kaomoji meanings. Always return JSON: {"description": "<text>"} describing emotion and usage in 1-2 sentences.`
	user = fmt.Sprintf("Describe the kaomoji %q.", value)
	return
}

func summaryPrompts(label string) (system, user string) {
	system = `You summarize kaomoji categories. Always return JSON: {"description": "<text>"} capturing tone, use cases, and vibe.`
	user = fmt.Sprintf("Explain what the %q kaomoji category represents in one paragraph.", label)
	return
}

func artPrompts(prompt string, lineWidth int) (system, user string) {
	system = fmt.Sprintf("You are an expert ASCII/Unicode artist. ONLY output the art itself without code fences. Every line must be exactly %d characters wide.", lineWidth)
	user = fmt.Sprintf("Create a multi-line text illustration using symbols, kaomojis, and emojis inspired by: %q. Use spaces to pad lines to %d characters.", prompt, lineWidth)
	return
}

// Package library holds the flat emoji and symbol collections and their
// single-level search filter. Unlike the kaomoji catalogue these have no
// subcategory tier: each library is an ordered list of named sections.
package library

import "strings"

// Glyph is one copyable character sequence with its display name.
type Glyph struct {
	Name  string
	Value string
}

// Section is an ordered group of glyphs under one heading.
type Section struct {
	Name   string
	Glyphs []Glyph
}

// Filter narrows sections to glyphs matching the query, dropping sections
// left empty. Matching mirrors the catalogue filter: lowercased name
// containment or verbatim value containment. A blank query returns the
// input unchanged; otherwise the returned sections are fresh copies.
func Filter(sections []Section, query string) []Section {
	if strings.TrimSpace(query) == "" {
		return sections
	}

	needle := strings.ToLower(query)
	var out []Section
	for _, sec := range sections {
		var glyphs []Glyph
		for _, g := range sec.Glyphs {
			if strings.Contains(strings.ToLower(g.Name), needle) ||
				strings.Contains(g.Value, query) {
				glyphs = append(glyphs, g)
			}
		}
		if len(glyphs) > 0 {
			out = append(out, Section{Name: sec.Name, Glyphs: glyphs})
		}
	}
	return out
}

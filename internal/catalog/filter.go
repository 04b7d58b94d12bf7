package catalog

import "strings"

// Filter narrows the catalogue to items matching the query while keeping the
// category hierarchy intact. An item matches when its lowercased name
// contains the lowercased query, or its value contains the query verbatim
// (kaomoji values are rarely alphabetic, so no case folding there).
// Subcategories and categories left with nothing are dropped; relative order
// is preserved throughout.
//
// Filter is pure: a blank query returns the catalogue unchanged, and a
// non-blank query returns freshly allocated containers so the shared static
// catalogue is never mutated.
func Filter(c Catalogue, query string) Catalogue {
	if strings.TrimSpace(query) == "" {
		return c
	}

	needle := strings.ToLower(query)
	var out Catalogue
	for _, top := range c {
		var subs []SubCategory
		for _, sub := range top.SubCategories {
			var items []Item
			for _, it := range sub.Items {
				if matches(it, query, needle) {
					items = append(items, it)
				}
			}
			if len(items) > 0 {
				kept := sub
				kept.Items = items
				subs = append(subs, kept)
			}
		}
		if len(subs) > 0 {
			kept := top
			kept.SubCategories = subs
			out = append(out, kept)
		}
	}
	return out
}

func matches(it Item, raw, lowered string) bool {
	return strings.Contains(strings.ToLower(it.Name), lowered) ||
		strings.Contains(it.Value, raw)
}

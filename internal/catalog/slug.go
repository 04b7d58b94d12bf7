package catalog

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts arbitrary text into a URL-safe slug: lowercase, every run
// of non-alphanumeric characters collapsed to a single dash, dashes trimmed
// from both ends. All-symbolic input yields the empty string; callers are
// expected to substitute a fallback token.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// HashFragment returns a short, deterministic base-36 digest of s, computed
// as a 32-bit rolling hash (h = h*31 + code) over UTF-16 code units. The
// code-unit walk keeps fragments identical to those of the deployed site, so
// existing deep links stay valid. Collisions are possible and accepted; the
// fragment only disambiguates, it is not a security feature.
func HashFragment(s string) string {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}

// ItemSlug builds the stable public slug for an item: the slugified name
// (falling back to "kaomoji" for unnameable items) plus the first six
// characters of the value's hash fragment. Items sharing a display name
// still resolve uniquely as long as their values hash apart.
func ItemSlug(it Item) string {
	base := Slugify(it.Name)
	if base == "" {
		base = "kaomoji"
	}
	suffix := HashFragment(it.Value)
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return base + "-" + suffix
}

// CategorySlug builds the slug for a top-level category.
func CategorySlug(name string) string {
	if s := Slugify(name); s != "" {
		return s
	}
	return "category"
}

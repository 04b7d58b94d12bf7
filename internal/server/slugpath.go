package server

import (
	"errors"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizePathSlug turns a raw URL path segment into a canonical index
// slug: percent-decoded, diacritics stripped, lowercased. Generated slugs
// are already in this form, so the normalization only makes inbound links
// forgiving; anything that still misses the index is a plain not-found.
func normalizePathSlug(raw string) (string, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", errors.New("undecodable slug")
	}

	s := strings.TrimSpace(decoded)
	if s == "" || strings.ContainsAny(s, "/\\?&:#'\"") || strings.Contains(s, "..") {
		return "", errors.New("slug contains invalid path characters")
	}

	s = stripDiacritics(s)
	s = strings.ToLower(s)
	if s == "" {
		return "", errors.New("empty slug")
	}
	return s, nil
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripDiacritics(s string) string {
	stripped, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return stripped
}

package utils

import (
	"net/url"
	"strings"
)

// ValidSlug reports whether a stored or requested slug can be used in a
// link.  Blank slugs and the placeholder strings "undefined" and "null",
// left behind by broken admin saves, are rejected.
func ValidSlug(s string) bool {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "undefined", "null":
		return false
	}
	return true
}

// DecodeSlug undoes URL percent-encoding in a slug taken from a path.  The
// second return value is false when the result is not a valid slug.
func DecodeSlug(raw string) (string, bool) {
	s, err := url.PathUnescape(raw)
	if err != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	if !ValidSlug(s) || strings.Contains(s, "/") {
		return "", false
	}
	return s, true
}

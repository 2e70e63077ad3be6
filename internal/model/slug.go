package model

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	slugWhitespaceRun = regexp.MustCompile(`\s+`)
	slugDisallowed    = regexp.MustCompile(`[^a-z0-9_-]`)
)

// Slugify derives the URL-safe filter token for a category name.
//
// The slug is the stable identity used both for filter selection and for the
// location query value, so it must be deterministic and ASCII-normalizing:
// "Hôtels & Restaurants" and "HOTELS & RESTAURANTS" both reduce to
// "hotels-et-restaurants". Two categories with different ids but the same name
// collapse to the same slug and are filtered together; that keeps locations
// human-readable and is a deliberate simplification.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "&", " et ")

	// Decompose and drop combining marks ("ô" -> "o").
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	s = b.String()

	s = slugWhitespaceRun.ReplaceAllString(s, "-")
	s = slugDisallowed.ReplaceAllString(s, "")
	return strings.Trim(s, "-")
}

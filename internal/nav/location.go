// Package nav re-expresses the browser-side "URL query parameter <-> active
// filter" contract as an in-app location with history. Selecting a filter
// pushes a location; back/forward re-derive the active filter from the
// now-current location, exactly like popstate-driven navigation.
package nav

import (
	"net/url"
	"strings"
)

// AllSlug is the literal filter value meaning "every work".
const AllSlug = "all"

// Location is the client-visible navigation state: the gallery path plus the
// active category filter. A zero Location means "gallery, all works".
type Location struct {
	CategorySlug string
}

// IsAll reports whether the location selects every work.
func (l Location) IsAll() bool {
	s := strings.TrimSpace(l.CategorySlug)
	return s == "" || s == AllSlug
}

// String encodes the location the way the browser URL encoded it: the
// "category" query parameter carries the slug, and choosing "all" drops the
// parameter entirely.
func (l Location) String() string {
	if l.IsAll() {
		return "/gallery"
	}
	q := url.Values{}
	q.Set("category", l.CategorySlug)
	return "/gallery?" + q.Encode()
}

// ParseLocation decodes a location string. Parsing is lenient: anything
// without a usable "category" parameter is the all-works gallery, and the
// literal "all" normalizes to the zero value so comparisons stay simple.
func ParseLocation(raw string) Location {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Location{}
	}
	slug := strings.TrimSpace(u.Query().Get("category"))
	if slug == AllSlug {
		slug = ""
	}
	return Location{CategorySlug: slug}
}

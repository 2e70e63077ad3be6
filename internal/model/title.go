package model

import (
	"strings"
	"unicode"
)

// MaxTitleLen is the title length ceiling, in runes.
const MaxTitleLen = 100

func titleRuneAllowed(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case ' ', '-', '\'', '"', '`':
		return true
	}
	return false
}

// SanitizeTitle reduces free text to the title allow-list: letters (including
// accented), digits, spaces, hyphens and quote characters. Disallowed runes are
// dropped (not replaced), internal whitespace runs collapse to a single space,
// leading whitespace is stripped, and the result is capped at MaxTitleLen runes.
//
// This runs on every keystroke and on paste, so a trailing space is kept as-is:
// trimming it would make it impossible to type multi-word titles.
func SanitizeTitle(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastSpace := false
	n := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			r = ' '
		}
		if !titleRuneAllowed(r) {
			continue
		}
		if r == ' ' {
			// No leading whitespace, no internal runs.
			if n == 0 || lastSpace {
				continue
			}
			lastSpace = true
		} else {
			lastSpace = false
		}
		if n >= MaxTitleLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// ValidTitle reports whether a sanitized title is submittable.
func ValidTitle(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Package genre provides helpers for working with genre labels.
package genre

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Matches any non-alphanumeric character.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	// Matches runs of whitespace inside a label.
	innerWhitespace = regexp.MustCompile(`\s+`)
)

// Slugify converts a genre label to a filesystem-safe slug.
// "Turn Based Strategy" -> "turn-based-strategy".
// "Beat 'em Up" -> "beat-em-up".
func Slugify(s string) string {
	// Normalize unicode (decompose accented characters).
	s = norm.NFKD.String(s)

	// Remove non-ASCII characters.
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)

	s = strings.ToLower(s)

	// Replace non-alphanumeric runs with single hyphens.
	s = nonAlphanumeric.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// Clean normalizes whitespace in a genre label as it appears in the
// source data: surrounding space trimmed, inner runs collapsed.
func Clean(s string) string {
	return innerWhitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}

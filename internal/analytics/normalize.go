package analytics

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gamelens/internal/genre"
)

// playCountPattern matches a non-negative decimal number with an optional
// K or M magnitude suffix, after commas and inner spaces are removed.
var playCountPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)([KkMm]?)$`)

// NormalizePlayCount converts the abbreviated count tokens used by the
// source catalog into exact integers: "1.2K" -> 1200, "3M" -> 3000000,
// "17,500" -> 17500. Suffixes are case-insensitive. Empty or unrecognized
// input returns an error; callers recover with zero and a warning rather
// than failing the run.
func NormalizePlayCount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty count")
	}

	s = strings.NewReplacer(",", "", " ", "").Replace(s)
	m := playCountPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("unrecognized count %q", raw)
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("parse count %q: %w", raw, err)
	}

	switch m[2] {
	case "K", "k":
		value *= 1_000
	case "M", "m":
		value *= 1_000_000
	}

	return int64(math.Round(value)), nil
}

// ParseList decodes the multi-valued cell encodings found in the catalog:
// bracketed list literals with single or double quoted items
// ("['Adventure', 'RPG']") and bare comma-separated text ("Action, RPG").
// Items are whitespace-normalized and empties dropped; malformed input
// degrades to an empty list, never an error.
func ParseList(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" || s == "[]" {
		return nil
	}

	if strings.HasPrefix(s, "[") {
		s = strings.TrimPrefix(s, "[")
		s = strings.TrimSuffix(s, "]")
		return splitQuoted(s)
	}

	return splitBare(s)
}

// splitQuoted splits the interior of a list literal on commas that sit
// outside quoted regions, so items like "Beat 'em Up" survive intact.
func splitQuoted(s string) []string {
	var (
		items   []string
		current strings.Builder
		quote   rune
		escaped bool
	)

	for _, r := range s {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != 0:
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
			current.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			current.WriteRune(r)
		case r == ',':
			items = append(items, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	items = append(items, current.String())

	out := make([]string, 0, len(items))
	for _, item := range items {
		if cleaned := genre.Clean(trimQuotes(item)); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// splitBare handles plain comma-separated cells with no list syntax.
func splitBare(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if cleaned := genre.Clean(part); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// trimQuotes removes one matching pair of surrounding quotes, leaving
// interior apostrophes alone.
func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// ParseRating reads the 0-5 rating cell. A blank cell means the game is
// simply unrated; anything unparseable or out of range also reports false
// so the caller can decide whether a warning is worth logging.
func ParseRating(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || value < 0 || value > 5 {
		return 0, false
	}

	return value, true
}

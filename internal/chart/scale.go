package chart

import (
	"math"
	"strconv"
	"strings"
)

// niceStep returns a rounded tick interval that yields four to six ticks
// up to max.
func niceStep(max float64) float64 {
	if max <= 0 {
		return 1
	}

	raw := max / 5
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	switch {
	case norm < 1.5:
		return mag
	case norm < 3:
		return 2 * mag
	case norm < 7:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// axisMax rounds max up to the next tick boundary so bars never cross the
// last gridline.
func axisMax(max float64) (float64, float64) {
	step := niceStep(max)
	top := step * math.Ceil(max/step)
	if top <= 0 {
		top = step
	}
	return top, step
}

// compactCount abbreviates tick values the way the source data does:
// 1200 -> "1.2K", 3000000 -> "3M".
func compactCount(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e6:
		return trimZero(v/1e6) + "M"
	case abs >= 1e3:
		return trimZero(v/1e3) + "K"
	default:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	}
}

func trimZero(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// groupDigits renders an exact count with thousands separators for bar
// annotations.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// truncateLabel shortens long names so bar labels stay inside the margin.
// Counting runes keeps multi-byte titles intact.
func truncateLabel(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

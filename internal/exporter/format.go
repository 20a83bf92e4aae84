package exporter

import (
	"fmt"
	"strconv"
)

// formatFloat formats a rating value with exactly 2 decimal places so
// values like 4.5 appear as 4.50 in tabular output.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatInt formats an int64 count without separators for machine parsing.
func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

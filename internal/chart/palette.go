package chart

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// rampHex is a viridis-style gradient used for ranked bars; rank 1 takes
// the deep violet end and later ranks walk toward yellow.
var rampHex = []string{
	"#440154", "#46327e", "#365c8d", "#277f8e",
	"#1fa187", "#4ac16d", "#a0da39", "#fde725",
}

// wedgeHex is a Set3-style categorical palette for pie slices and the
// matching rating bars.
var wedgeHex = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462",
	"#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
}

// highlightHex marks the single emphasized series (the most played bar,
// the rating line); seriesHex is the muted bar color next to it.
const (
	highlightHex = "#fb8072"
	seriesHex    = "#365c8d"
)

// rampColor interpolates position i of n across the ramp, returning RGB
// components in [0,1] for gg.SetRGB.
func rampColor(i, n int) (float64, float64, float64) {
	if n <= 1 {
		return hexToRGB(rampHex[0])
	}

	t := float64(i) / float64(n-1)
	scaled := t * float64(len(rampHex)-1)
	lo := int(scaled)
	if lo >= len(rampHex)-1 {
		return hexToRGB(rampHex[len(rampHex)-1])
	}
	frac := scaled - float64(lo)

	r1, g1, b1 := hexToRGB(rampHex[lo])
	r2, g2, b2 := hexToRGB(rampHex[lo+1])
	return r1 + (r2-r1)*frac, g1 + (g2-g1)*frac, b1 + (b2-b1)*frac
}

// wedgeColor returns the categorical color for index i, cycling when the
// palette runs out.
func wedgeColor(i int) string {
	return wedgeHex[i%len(wedgeHex)]
}

// hexToRGB parses "#rrggbb" into [0,1] components. Only the palette
// constants above reach it; a malformed constant panics.
func hexToRGB(s string) (float64, float64, float64) {
	s = strings.TrimPrefix(s, "#")
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 3 {
		panic(fmt.Sprintf("invalid palette color %q", s))
	}
	return float64(raw[0]) / 255, float64(raw[1]) / 255, float64(raw[2]) / 255
}

package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNiceStep(t *testing.T) {
	tests := []struct {
		name string
		max  float64
		want float64
	}{
		{name: "small range", max: 10, want: 2},
		{name: "mid range", max: 48, want: 10},
		{name: "thousands", max: 39000, want: 10000},
		{name: "millions", max: 2500000, want: 500000},
		{name: "zero", max: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, niceStep(tt.max))
		})
	}
}

func TestAxisMax(t *testing.T) {
	top, step := axisMax(39000)
	assert.Equal(t, 40000.0, top)
	assert.Equal(t, 10000.0, step)

	top, step = axisMax(0)
	assert.Equal(t, step, top)
	assert.Greater(t, top, 0.0)
}

func TestCompactCount(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{name: "plain", v: 500, want: "500"},
		{name: "thousands", v: 1200, want: "1.2K"},
		{name: "round thousands", v: 21000, want: "21K"},
		{name: "millions", v: 3000000, want: "3M"},
		{name: "fractional millions", v: 2500000, want: "2.5M"},
		{name: "zero", v: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compactCount(tt.v))
		})
	}
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "0", groupDigits(0))
	assert.Equal(t, "999", groupDigits(999))
	assert.Equal(t, "21,000", groupDigits(21000))
	assert.Equal(t, "1,234,567", groupDigits(1234567))
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "Adventure", truncateLabel("Adventure", 20))
	assert.Equal(t, "Turn Based Strat...", truncateLabel("Turn Based Strategy Games", 19))
	assert.Equal(t, "Tur", truncateLabel("Turn", 3))

	// Multi-byte titles must never be cut mid-rune.
	assert.Equal(t, "Pokémon Lége...", truncateLabel("Pokémon Légendes Arceus", 15))
	assert.Equal(t, "Ōka", truncateLabel("Ōkami", 3))
}

func TestRampColor(t *testing.T) {
	r1, g1, b1 := rampColor(0, 10)
	fr, fg, fb := hexToRGB(rampHex[0])
	assert.Equal(t, fr, r1)
	assert.Equal(t, fg, g1)
	assert.Equal(t, fb, b1)

	r2, g2, b2 := rampColor(9, 10)
	lr, lg, lb := hexToRGB(rampHex[len(rampHex)-1])
	assert.Equal(t, lr, r2)
	assert.Equal(t, lg, g2)
	assert.Equal(t, lb, b2)

	// single entry takes the first stop
	r3, _, _ := rampColor(0, 1)
	assert.Equal(t, fr, r3)
}

func TestWedgeColor_Cycles(t *testing.T) {
	assert.Equal(t, wedgeHex[0], wedgeColor(0))
	assert.Equal(t, wedgeHex[0], wedgeColor(len(wedgeHex)))
	assert.Equal(t, wedgeHex[2], wedgeColor(len(wedgeHex)+2))
}

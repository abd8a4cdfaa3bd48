package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGBA clear color with channels as given on the command line.
type Color struct {
	R, G, B, A float64
}

// FallbackColor is used when the color argument cannot be split into four channels.
var FallbackColor = Color{R: 1, G: 0, B: 0, A: 1}

// ParseColor parses "r,g,b,a". A channel that is not a float becomes 0 while the
// others are kept. Input that does not have exactly four channels yields
// FallbackColor together with a non-nil error describing the problem; callers
// log it and continue.
func ParseColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return FallbackColor, fmt.Errorf("expected 4 comma-separated channels, got %d in %q", len(parts), s)
	}

	var ch [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			v = 0
		}
		ch[i] = v
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// Float32 returns the channels in the order OpenGL expects.
func (c Color) Float32() (r, g, b, a float32) {
	return float32(c.R), float32(c.G), float32(c.B), float32(c.A)
}

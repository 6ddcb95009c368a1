package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGBA color with components in [0,1].
type Color struct {
	R, G, B, A float64
}

// Opaque builds a fully-opaque Color from 0-1 components.
func Opaque(r, g, b float64) Color { return Color{R: r, G: g, B: b, A: 1} }

// ParseHexColor parses a "#RRGGBB" or "#RRGGBBAA" string into a Color. It
// accepts an optional leading '#'. An error is returned for malformed input.
// The builder does not call it: Config.FillColor takes a *Color.
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("layout: invalid hex color %q", s)
	}
	r, err := strconv.ParseUint(s[0:2], 16, 8)
	if err != nil {
		return Color{}, fmt.Errorf("layout: invalid hex color %q: %w", s, err)
	}
	g, err := strconv.ParseUint(s[2:4], 16, 8)
	if err != nil {
		return Color{}, fmt.Errorf("layout: invalid hex color %q: %w", s, err)
	}
	b, err := strconv.ParseUint(s[4:6], 16, 8)
	if err != nil {
		return Color{}, fmt.Errorf("layout: invalid hex color %q: %w", s, err)
	}
	a := uint64(255)
	if len(s) == 8 {
		a, err = strconv.ParseUint(s[6:8], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("layout: invalid hex color %q: %w", s, err)
		}
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

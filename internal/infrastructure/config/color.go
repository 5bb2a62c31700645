package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a "#rrggbb" hex string
type Color string

// ParseHexColor parses "#rrggbb" or "rrggbb" into an opaque color
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// RGBA returns the parsed color, or opaque white if it is malformed.
// Loaded configs are validated, so the fallback only shows up in hand-built configs.
func (c Color) RGBA() color.RGBA {
	rgba, err := ParseHexColor(string(c))
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return rgba
}

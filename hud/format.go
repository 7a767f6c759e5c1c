package hud

import (
	"image/color"
	"strconv"
	"strings"
)

// MaxLevelText replaces the progress fraction once a skill is maxed out.
const MaxLevelText = "max level"

// White is the fallback text colour.
var White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// DisplayText formats progress as "progress/required", or MaxLevelText when
// required is 0.
func DisplayText(progress, required int) string {
	if required == 0 {
		return MaxLevelText
	}
	return strconv.Itoa(progress) + "/" + strconv.Itoa(required)
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB". Anything else yields opaque white.
func ParseHexColor(s string) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return White
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return White
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

// ValidHexColor reports whether s parses without falling back to white.
func ValidHexColor(s string) bool {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}

// Tint scales every channel of c by opacity, producing a premultiplied colour.
func Tint(c color.RGBA, opacity float64) color.RGBA {
	if opacity <= 0 {
		return color.RGBA{}
	}
	if opacity >= 1 {
		return c
	}
	t := uint32(opacity * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return color.RGBA{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: mul(c.A)}
}

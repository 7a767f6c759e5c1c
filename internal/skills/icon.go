package skills

import (
	"image"
	"image/color"

	"skillhud/hud"
)

// Icon describes how a skill is drawn next to its notification.
type Icon struct {
	// Source is the 16x16 cell of the skill in the game's buff icon sheet.
	Source image.Rectangle
	// Tint colours the built-in Mask when no sprite sheet is available.
	Tint color.RGBA
	// Mask is an 8x8 monochrome glyph, bit 7 is the leftmost pixel.
	Mask [8]uint8
}

// IconSize is the logical edge of an icon in sheet pixels.
const IconSize = 16

var icons = [Count]Icon{
	Farming: {
		Source: image.Rect(0, 0, 16, 16),
		Tint:   color.RGBA{R: 0x8B, G: 0xC3, B: 0x4A, A: 0xFF},
		Mask:   [8]uint8{0x18, 0x3C, 0x18, 0x18, 0x5A, 0x3C, 0x18, 0x18},
	},
	Fishing: {
		Source: image.Rect(16, 0, 32, 16),
		Tint:   color.RGBA{R: 0x4F, G: 0xA3, B: 0xE0, A: 0xFF},
		Mask:   [8]uint8{0x00, 0x18, 0x3D, 0x7F, 0x7F, 0x3D, 0x18, 0x00},
	},
	Foraging: {
		Source: image.Rect(80, 0, 96, 16),
		Tint:   color.RGBA{R: 0x3E, G: 0x8E, B: 0x41, A: 0xFF},
		Mask:   [8]uint8{0x0E, 0x1F, 0x3F, 0x7E, 0x7C, 0x38, 0x40, 0x80},
	},
	Mining: {
		Source: image.Rect(32, 0, 48, 16),
		Tint:   color.RGBA{R: 0xA0, G: 0xA0, B: 0xB0, A: 0xFF},
		Mask:   [8]uint8{0x3C, 0x7E, 0xC3, 0x18, 0x18, 0x18, 0x18, 0x18},
	},
	Combat: {
		Source: image.Rect(128, 16, 144, 32),
		Tint:   color.RGBA{R: 0xE0, G: 0x55, B: 0x4F, A: 0xFF},
		Mask:   [8]uint8{0x03, 0x07, 0x0E, 0x1C, 0xB8, 0x70, 0x60, 0x90},
	},
	Luck: {
		Tint: color.RGBA{R: 0xF2, G: 0xC9, B: 0x4C, A: 0xFF},
		Mask: [8]uint8{0x66, 0xFF, 0xFF, 0x7E, 0x7E, 0xFF, 0xFF, 0x66},
	},
}

// IconFor returns the icon of id; unknown skills get an empty icon.
func IconFor(id hud.SkillID) Icon {
	if !Valid(id) {
		return Icon{}
	}
	return icons[id]
}

// Set reports whether the mask pixel at (x, y) in [0,8) is lit.
func (ic Icon) Set(x, y int) bool {
	if x < 0 || x >= 8 || y < 0 || y >= 8 {
		return false
	}
	return ic.Mask[y]&(0x80>>x) != 0
}

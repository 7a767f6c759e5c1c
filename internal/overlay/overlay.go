// Package overlay draws HUD snapshots into an RGB565 framebuffer.
package overlay

import (
	"image"
	"image/color"
	"math"

	"tinygo.org/x/tinyfont"

	"skillhud/hal"
	"skillhud/hud"
	"skillhud/internal/skills"
)

const (
	iconBaseScale = 2.0
	// TomThumb glyphs are 3x5; this brings scale 1 close to the icon height.
	textBaseScale = 3.0
	fontAscent    = 5
	rowGap        = 5
	textGap       = 10
)

// Style is the render configuration.
type Style struct {
	Text   color.RGBA
	Scale  float64
	Origin image.Point
}

// DefaultStyle matches the default configuration.
func DefaultStyle() Style {
	return Style{Text: hud.White, Scale: 1, Origin: image.Pt(50, 100)}
}

// Placement is where one entry lands on screen.
type Placement struct {
	Icon      image.Rectangle
	Text      image.Point
	TextScale float64
}

// Renderer draws snapshots. It is not safe for concurrent use.
type Renderer struct {
	font  tinyfont.Fonter
	style Style
}

func New(style Style) *Renderer {
	r := &Renderer{font: &tinyfont.TomThumb}
	r.SetStyle(style)
	return r
}

func (r *Renderer) Style() Style { return r.style }

func (r *Renderer) SetStyle(s Style) {
	if s.Scale <= 0 {
		s.Scale = 1
	}
	r.style = s
}

// Layout places e according to its slot.
func (r *Renderer) Layout(e hud.Entry) Placement {
	iconPx := int(math.Round(skills.IconSize * iconBaseScale * r.style.Scale))
	x := r.style.Origin.X
	y := r.style.Origin.Y + e.Slot*(iconPx+rowGap)

	textScale := r.style.Scale * textBaseScale
	textH := int(float64(r.font.GetYAdvance()) * textScale)
	return Placement{
		Icon:      image.Rect(x, y, x+iconPx, y+iconPx),
		Text:      image.Pt(x+iconPx+textGap, y+(iconPx-textH)/2),
		TextScale: textScale,
	}
}

// TextWidth returns the on-screen width of s in pixels.
func (r *Renderer) TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(r.font, s)
	return int(float64(outbox) * r.style.Scale * textBaseScale)
}

// Draw composites entries onto fb and returns how many were drawn.
func (r *Renderer) Draw(fb hal.Framebuffer, entries []hud.Entry) int {
	dst := newBlendTarget(fb)
	if dst == nil {
		return 0
	}

	drawn := 0
	for _, e := range entries {
		if e.Opacity <= 0 {
			continue
		}
		p := r.Layout(e)
		r.drawIcon(dst, p.Icon, skills.IconFor(e.Skill), e.Opacity)

		text := &scaledTarget{dst: dst, ox: p.Text.X, oy: p.Text.Y, scale: p.TextScale}
		tinyfont.WriteLine(text, r.font, 0, fontAscent, e.Text, hud.Tint(r.style.Text, e.Opacity))
		drawn++
	}
	return drawn
}

func (r *Renderer) drawIcon(dst *blendTarget, rect image.Rectangle, ic skills.Icon, opacity float64) {
	c := hud.Tint(ic.Tint, opacity)
	if c.A == 0 {
		return
	}
	w := rect.Dx()
	h := rect.Dy()
	for my := 0; my < 8; my++ {
		for mx := 0; mx < 8; mx++ {
			if !ic.Set(mx, my) {
				continue
			}
			x0 := rect.Min.X + mx*w/8
			x1 := rect.Min.X + (mx+1)*w/8
			y0 := rect.Min.Y + my*h/8
			y1 := rect.Min.Y + (my+1)*h/8
			dst.fillRect(x0, y0, x1, y1, c)
		}
	}
}

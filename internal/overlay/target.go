package overlay

import (
	"image/color"

	"tinygo.org/x/drivers"

	"skillhud/hal"
)

var (
	_ drivers.Displayer = (*blendTarget)(nil)
	_ drivers.Displayer = (*scaledTarget)(nil)
)

// blendTarget composites premultiplied colours onto an RGB565 framebuffer.
type blendTarget struct {
	fb     hal.Framebuffer
	buf    []byte
	w, h   int
	stride int
}

func newBlendTarget(fb hal.Framebuffer) *blendTarget {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	return &blendTarget{
		fb:     fb,
		buf:    fb.Buffer(),
		w:      fb.Width(),
		h:      fb.Height(),
		stride: fb.StrideBytes(),
	}
}

func (d *blendTarget) Size() (x, y int16) { return int16(d.w), int16(d.h) }

func (d *blendTarget) SetPixel(x, y int16, c color.RGBA) { d.blend(int(x), int(y), c) }

func (d *blendTarget) Display() error { return nil }

func (d *blendTarget) blend(x, y int, c color.RGBA) {
	if c.A == 0 || x < 0 || x >= d.w || y < 0 || y >= d.h {
		return
	}
	off := y*d.stride + x*2
	if off < 0 || off+1 >= len(d.buf) {
		return
	}

	r, g, b := c.R, c.G, c.B
	if c.A != 0xFF {
		dr, dg, db := hal.RGB888(uint16(d.buf[off]) | uint16(d.buf[off+1])<<8)
		inv := uint32(0xFF - c.A)
		r = sat(uint32(c.R) + uint32(dr)*inv/0xFF)
		g = sat(uint32(c.G) + uint32(dg)*inv/0xFF)
		b = sat(uint32(c.B) + uint32(db)*inv/0xFF)
	}
	pixel := hal.RGB565(r, g, b)
	d.buf[off] = byte(pixel)
	d.buf[off+1] = byte(pixel >> 8)
}

func (d *blendTarget) fillRect(x0, y0, x1, y1 int, c color.RGBA) {
	x0 = clampInt(x0, 0, d.w)
	y0 = clampInt(y0, 0, d.h)
	x1 = clampInt(x1, 0, d.w)
	y1 = clampInt(y1, 0, d.h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			d.blend(px, py, c)
		}
	}
}

// scaledTarget magnifies a logical pixel grid onto a blendTarget at (ox, oy).
type scaledTarget struct {
	dst    *blendTarget
	ox, oy int
	scale  float64
}

func (s *scaledTarget) Size() (x, y int16) { return s.dst.Size() }

func (s *scaledTarget) SetPixel(x, y int16, c color.RGBA) {
	x0 := s.ox + int(float64(x)*s.scale)
	y0 := s.oy + int(float64(y)*s.scale)
	x1 := s.ox + int(float64(x+1)*s.scale)
	y1 := s.oy + int(float64(y+1)*s.scale)
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	s.dst.fillRect(x0, y0, x1, y1, c)
}

func (s *scaledTarget) Display() error { return nil }

func sat(v uint32) uint8 {
	if v > 0xFF {
		return 0xFF
	}
	return uint8(v)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

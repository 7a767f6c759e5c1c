package hal

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	cases := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
	}
	for _, c := range cases {
		r, g, b := RGB888(RGB565(c.r, c.g, c.b))
		if r != c.r || g != c.g || b != c.b {
			t.Fatalf("round trip %v: got (%d,%d,%d)", c, r, g, b)
		}
	}
}

func TestToRGBA(t *testing.T) {
	fb := NewFramebuffer(4, 2)
	fb.ClearRGB(255, 0, 0)

	img := ToRGBA(fb)
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	c := img.RGBAAt(3, 1)
	if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Fatalf("unexpected pixel %v", c)
	}
}

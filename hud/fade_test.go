package hud

import (
	"math"
	"testing"
	"time"
)

func TestFadeKeyPoints(t *testing.T) {
	d := 3 * time.Second
	cases := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{sec(0.6), 1},
		{sec(1.5), 1},
		{sec(2.4), 1},
		{sec(3.0), 0},
		{sec(-1), 0},
		{sec(5), 0},
	}
	for _, c := range cases {
		if got := Fade(c.elapsed, d); got != c.want {
			t.Fatalf("Fade(%v): expected %v, got %v", c.elapsed, c.want, got)
		}
	}
}

func TestFadeContinuousAtBoundaries(t *testing.T) {
	d := 3 * time.Second
	for _, edge := range []time.Duration{sec(0.6), sec(2.4)} {
		before := Fade(edge-time.Microsecond, d)
		after := Fade(edge+time.Microsecond, d)
		if math.Abs(before-1) > 1e-4 || math.Abs(after-1) > 1e-4 {
			t.Fatalf("jump at %v: before=%v after=%v", edge, before, after)
		}
	}
}

func TestFadeMonotonic(t *testing.T) {
	d := 3 * time.Second
	prev := Fade(0, d)
	for ms := 10; ms <= 600; ms += 10 {
		v := Fade(time.Duration(ms)*time.Millisecond, d)
		if v < prev {
			t.Fatalf("ramp-in decreased at %dms: %v < %v", ms, v, prev)
		}
		prev = v
	}
	for ms := 2400; ms <= 3000; ms += 10 {
		v := Fade(time.Duration(ms)*time.Millisecond, d)
		if v > prev {
			t.Fatalf("ramp-out increased at %dms: %v > %v", ms, v, prev)
		}
		if v < 0 || v > 1 {
			t.Fatalf("out of range at %dms: %v", ms, v)
		}
		prev = v
	}
}

func TestFadeEaseShape(t *testing.T) {
	d := 3 * time.Second
	// Halfway up the ramp-in: 1 - 0.5^2.
	if got := Fade(sec(0.3), d); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("expected 0.75, got %v", got)
	}
	// Halfway down the ramp-out: 0.5^2.
	if got := Fade(sec(2.7), d); math.Abs(got-0.25) > 1e-9 {
		t.Fatalf("expected 0.25, got %v", got)
	}
}

func TestFadeZeroDuration(t *testing.T) {
	if got := Fade(time.Second, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

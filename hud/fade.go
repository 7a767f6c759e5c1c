package hud

import "time"

const (
	fadeInEnd    = 0.2
	fadeOutStart = 0.8
)

// Fade maps the time elapsed since a notification was created to an opacity
// in [0, 1]: an ease-out ramp over the first 20% of duration, a plateau at 1,
// and an ease-in ramp down over the last 20%.
func Fade(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	t := float64(elapsed) / float64(duration)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	switch {
	case t < fadeInEnd:
		return easeOutQuad(t / fadeInEnd)
	case t > fadeOutStart:
		// (1-t)/0.2 is 1-u with u = (t-0.8)/0.2, written so t=1 is exactly 0.
		v := (1 - t) / (1 - fadeOutStart)
		if v > 1 {
			v = 1
		}
		return easeInQuad(v)
	default:
		return 1
	}
}

func easeOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

func easeInQuad(t float64) float64 {
	return t * t
}

package app

import (
	"time"

	"skillhud/hud"
	"skillhud/internal/skills"
)

const (
	burstGap = 150 * time.Millisecond
	idleMin  = time.Second
	idleSpan = 2 * time.Second
)

// Gain is one experience award.
type Gain struct {
	Skill  hud.SkillID
	Amount int
}

// DemoSource produces a deterministic stream of experience bursts. Gains in a
// burst are burstGap apart so they land inside one coalescing window.
type DemoSource struct {
	rng  uint32
	next time.Time

	skill  hud.SkillID
	amount int
	left   int
}

func NewDemoSource(seed uint32) *DemoSource {
	return &DemoSource{rng: seed}
}

// Tick returns the gains due at now.
func (d *DemoSource) Tick(now time.Time) []Gain {
	if d.next.IsZero() {
		d.next = now
	}
	if now.Before(d.next) {
		return nil
	}

	if d.left == 0 {
		d.skill = hud.SkillID(d.rand(skills.Count))
		d.amount = 5 + d.rand(36)
		d.left = 1 + d.rand(4)
	}
	g := Gain{Skill: d.skill, Amount: d.amount}
	d.left--
	if d.left > 0 {
		d.next = now.Add(burstGap)
	} else {
		d.next = now.Add(idleMin + time.Duration(d.rand(int(idleSpan/time.Millisecond)))*time.Millisecond)
	}
	return []Gain{g}
}

func (d *DemoSource) rand(n int) int {
	d.rng = xorshift32(d.rng)
	return int(d.rng % uint32(n))
}

func xorshift32(x uint32) uint32 {
	if x == 0 {
		x = 0x6d2b79f5
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}

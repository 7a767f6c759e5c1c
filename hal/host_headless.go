//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Width   int
	Height  int
	// Simulated runs frames back to back on a fixed clock starting at Start
	// instead of pacing them in real time.
	Simulated bool
	Start     time.Time
}

// RunHeadless runs the HUD without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(cfg.Width, cfg.Height)
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	if cfg.Simulated {
		start := cfg.Start
		if start.IsZero() {
			start = time.Unix(0, 0).UTC()
		}
		h.clock.setFixed(start, d)
	}

	step := newApp(h)
	if cfg.Simulated {
		return runSimulated(ctx, h, step, cfg.Ticks)
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.clock.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func runSimulated(ctx context.Context, h *hostHAL, step func() error, ticks uint64) error {
	if ticks == 0 {
		return fmt.Errorf("simulated headless run needs a tick limit")
	}
	for tick := uint64(0); tick < ticks; tick++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		h.clock.step()
		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
	}
	return nil
}

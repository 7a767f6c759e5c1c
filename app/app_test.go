package app

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"skillhud/hal"
	"skillhud/hud"
	"skillhud/internal/config"
	"skillhud/internal/ledger"
	"skillhud/internal/skills"
)

func TestStepCoalescesAndExpires(t *testing.T) {
	ctx := context.Background()
	start := time.Unix(1000, 0).UTC()

	var sys *System
	frame := 0
	err := hal.RunHeadless(ctx, func(h hal.HAL) func() error {
		sys = New(ctx, h, Config{})
		return func() error {
			frame++
			tr := sys.Tracker()
			switch frame {
			case 1:
				tr.GainExperience(ctx, skills.Farming, 3, 1)
			case 3:
				tr.GainExperience(ctx, skills.Farming, 2, 1)
			case 10:
				tr.GainExperience(ctx, skills.Farming, 1, 1)
			}
			if err := sys.Step(); err != nil {
				return err
			}

			switch frame {
			case 1:
				if got := sys.Visible(); len(got) != 1 || got[0].Opacity != 0 {
					t.Errorf("frame 1: visible = %+v", got)
				}
			case 3:
				if got := sys.Visible(); len(got) != 1 || got[0].Text != "5/100" {
					t.Errorf("frame 3: visible = %+v", got)
				}
			case 10:
				rec, ok := sys.Store().Lookup(skills.Farming)
				if !ok || rec.Progress != 6 || !rec.CreatedAt.Equal(start.Add(time.Second)) {
					t.Errorf("frame 10: record = %+v", rec)
				}
			case 20:
				if got := sys.Visible(); len(got) != 1 || got[0].Opacity != 1 {
					t.Errorf("frame 20: visible = %+v", got)
				}
			}
			return nil
		}
	}, hal.HeadlessConfig{Hz: 10, Ticks: 45, Simulated: true, Start: start, Width: 320, Height: 200})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}

	if sys.Frames() != 45 {
		t.Fatalf("frames = %d", sys.Frames())
	}
	if len(sys.Visible()) != 0 || sys.Store().Len() != 0 {
		t.Fatalf("expected empty HUD, visible=%d stored=%d", len(sys.Visible()), sys.Store().Len())
	}
}

func TestStepSnapshotEntries(t *testing.T) {
	ctx := context.Background()

	var got []hud.Entry
	frame := 0
	err := hal.RunHeadless(ctx, func(h hal.HAL) func() error {
		sys := New(ctx, h, Config{})
		return func() error {
			frame++
			if frame == 1 {
				sys.Tracker().GainExperience(ctx, skills.Combat, 1400, 1)
				sys.Tracker().GainExperience(ctx, skills.Farming, 3, 1)
			}
			err := sys.Step()
			if frame == 10 {
				got = sys.Visible()
			}
			return err
		}
	}, hal.HeadlessConfig{Hz: 10, Ticks: 10, Simulated: true})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}

	want := []hud.Entry{
		{Skill: skills.Farming, Name: "Farming", Level: 0, Text: "3/100", Opacity: 1, Slot: 0},
		{Skill: skills.Combat, Name: "Combat", Level: 4, Text: "100/850", Opacity: 1, Slot: 1},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("visible entries mismatch (-want +got):\n%s", diff)
	}
}

func TestStepDrawsIntoFramebuffer(t *testing.T) {
	ctx := context.Background()
	h := hal.New(320, 200)
	sys := New(ctx, h, Config{})

	sys.Tracker().GainExperience(ctx, skills.Combat, 50, 1)
	if err := sys.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	// Opacity is 0 on the creation frame.
	fb := h.Display().Framebuffer()
	for _, b := range fb.Buffer() {
		if b != 0 {
			t.Fatalf("expected blank frame at creation")
		}
	}
}

func TestHandleKeyGrantsExperience(t *testing.T) {
	ctx := context.Background()
	h := hal.New(64, 64)
	sys := New(ctx, h, Config{Announcer: ledger.NewMemory(), Day: 3})
	now := h.Clock().Now()

	sys.handleKey(hal.KeyEvent{Press: true, Rune: '2'}, now)
	if got := sys.Tracker().Experience(skills.Fishing); got != KeyGain {
		t.Fatalf("fishing xp = %d", got)
	}
	sys.handleKey(hal.KeyEvent{Press: false, Rune: '2'}, now)
	if got := sys.Tracker().Experience(skills.Fishing); got != KeyGain {
		t.Fatalf("release changed xp to %d", got)
	}

	// Luck gains experience but never notifies.
	sys.handleKey(hal.KeyEvent{Press: true, Rune: '6'}, now)
	if got := sys.Tracker().Experience(skills.Luck); got != KeyGain {
		t.Fatalf("luck xp = %d", got)
	}
	if got := sys.inbox.Pending(); got != 1 {
		t.Fatalf("pending = %d, want 1", got)
	}
}

func TestMaxLevelAnnouncedOncePerDay(t *testing.T) {
	ctx := context.Background()
	h := hal.New(64, 64)
	sys := New(ctx, h, Config{Announcer: ledger.NewMemory(), Day: 1})
	now := h.Clock().Now()

	sys.handleKey(hal.KeyEvent{Press: true, Rune: 'm'}, now)
	sys.handleKey(hal.KeyEvent{Press: true, Rune: 'm'}, now)
	if got := sys.inbox.Pending(); got != 1 {
		t.Fatalf("pending after same-day gains = %d, want 1", got)
	}

	sys.handleKey(hal.KeyEvent{Press: true, Rune: 'n'}, now)
	if sys.Day(now) != 2 {
		t.Fatalf("day = %d", sys.Day(now))
	}
	sys.handleKey(hal.KeyEvent{Press: true, Rune: 'm'}, now)
	if got := sys.inbox.Pending(); got != 2 {
		t.Fatalf("pending after next day = %d, want 2", got)
	}

	if err := sys.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	rec, ok := sys.Store().Lookup(skills.Mining)
	if !ok || !rec.MaxLevel() || rec.Text() != hud.MaxLevelText {
		t.Fatalf("mining record = %+v", rec)
	}
}

func TestDayAdvancesWithClock(t *testing.T) {
	ctx := context.Background()
	h := hal.New(8, 8)
	sys := New(ctx, h, Config{Day: 5, DayLength: time.Minute})
	start := h.Clock().Now()

	if got := sys.Day(start.Add(59 * time.Second)); got != 5 {
		t.Fatalf("day = %d", got)
	}
	if got := sys.Day(start.Add(2*time.Minute + time.Second)); got != 7 {
		t.Fatalf("day = %d", got)
	}
}

func TestConfigUpdatesApplyLatest(t *testing.T) {
	ctx := context.Background()
	h := hal.New(64, 64)
	updates := make(chan *config.Config, 2)
	sys := New(ctx, h, Config{Updates: updates})

	if got := sys.Renderer().Style(); got.Text != hud.White || got.Scale != 1 || got.Origin != image.Pt(50, 100) {
		t.Fatalf("default style = %+v", got)
	}

	first := config.Default()
	first.FontSize = 2
	second := config.Default()
	second.TextColor = "#FF8000"
	second.FontSize = 1.5
	second.OriginX = 10
	updates <- &first
	updates <- &second
	close(updates)

	if err := sys.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	got := sys.Renderer().Style()
	want := color.RGBA{R: 0xFF, G: 0x80, A: 0xFF}
	if got.Text != want || got.Scale != 1.5 || got.Origin != image.Pt(10, 100) {
		t.Fatalf("style = %+v", got)
	}

	// A closed channel is dropped without blocking.
	if err := sys.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
}

func TestInvalidTextColorRendersWhite(t *testing.T) {
	cfg := config.Default()
	cfg.TextColor = "not-a-colour"
	sys := New(context.Background(), hal.New(8, 8), Config{Settings: &cfg})
	if got := sys.Renderer().Style().Text; got != hud.White {
		t.Fatalf("text colour = %+v", got)
	}
}

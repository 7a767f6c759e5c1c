package app

import (
	"context"
	"image"
	"time"

	"skillhud/hal"
	"skillhud/hud"
	"skillhud/internal/config"
	"skillhud/internal/logx"
	"skillhud/internal/overlay"
	"skillhud/internal/skills"
)

const (
	// KeyGain is the experience granted per key press.
	KeyGain = 25
	// DefaultDayLength is how long one in-game day lasts on the host.
	DefaultDayLength = 10 * time.Minute
)

// Config wires a System. Zero values give a quiet HUD with the default look.
type Config struct {
	// Settings is the initial configuration; nil means config.Default().
	Settings *config.Config
	// Updates delivers reloaded configurations.
	Updates <-chan *config.Config

	// Announcer gates max-level notifications; nil announces every time.
	Announcer skills.Announcer

	Demo      bool
	DemoSeed  uint32
	Day       int
	DayLength time.Duration

	InboxSlots int
	Log        logx.Logger
}

// System owns the notification state and draws it once per frame.
type System struct {
	ctx   context.Context
	fb    hal.Framebuffer
	clock hal.Clock
	keys  <-chan hal.KeyEvent

	store    *hud.Store
	inbox    *hud.Inbox
	tracker  *skills.Tracker
	renderer *overlay.Renderer
	updates  <-chan *config.Config
	demo     *DemoSource
	log      logx.Logger

	start     time.Time
	day       int
	dayLength time.Duration

	frames  uint64
	dropped uint64
	visible []hud.Entry
}

// New builds a System on top of h.
func New(ctx context.Context, h hal.HAL, cfg Config) *System {
	log := cfg.Log
	if log.IsZero() {
		log = logx.Nop()
	}
	log = log.With(logx.String("component", "app"))

	s := &System{
		ctx:       ctx,
		clock:     h.Clock(),
		store:     hud.NewStore(hud.Options{}),
		inbox:     hud.NewInbox(cfg.InboxSlots),
		renderer:  overlay.New(overlay.DefaultStyle()),
		updates:   cfg.Updates,
		log:       log,
		day:       cfg.Day,
		dayLength: cfg.DayLength,
	}
	if s.dayLength <= 0 {
		s.dayLength = DefaultDayLength
	}
	if d := h.Display(); d != nil {
		s.fb = d.Framebuffer()
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.keys = kbd.Events()
		}
	}
	s.tracker = skills.NewTracker(s.inbox, cfg.Announcer, cfg.Log)
	if cfg.Demo {
		s.demo = NewDemoSource(cfg.DemoSeed)
	}

	settings := cfg.Settings
	if settings == nil {
		def := config.Default()
		settings = &def
	}
	s.apply(settings)
	s.start = s.clock.Now()
	return s
}

// Tracker is the experience entry point for game code.
func (s *System) Tracker() *skills.Tracker { return s.tracker }

// Store exposes the notification state for inspection.
func (s *System) Store() *hud.Store { return s.store }

// Renderer returns the overlay renderer.
func (s *System) Renderer() *overlay.Renderer { return s.renderer }

// Visible returns the entries drawn by the last Step.
func (s *System) Visible() []hud.Entry { return s.visible }

// Frames returns the number of completed steps.
func (s *System) Frames() uint64 { return s.frames }

// Day returns the in-game day at now.
func (s *System) Day(now time.Time) int {
	if now.Before(s.start) {
		return s.day
	}
	return s.day + int(now.Sub(s.start)/s.dayLength)
}

// Step advances one frame.
func (s *System) Step() error {
	now := s.clock.Now()

	s.pollConfig()
	s.pollKeys(now)
	if s.demo != nil {
		for _, g := range s.demo.Tick(now) {
			s.tracker.GainExperience(s.ctx, g.Skill, g.Amount, s.Day(now))
		}
	}

	s.inbox.Drain(s.store, now)
	if d := s.inbox.Dropped(); d != s.dropped {
		s.log.Warn("hud updates dropped", logx.Uint64("total", d), logx.Uint64("new", d-s.dropped))
		s.dropped = d
	}

	entries := s.store.Snapshot(now)
	if len(entries) != len(s.visible) {
		s.log.Debug("visible notifications changed", logx.Int("count", len(entries)))
	}
	s.visible = entries
	s.frames++

	if s.fb == nil {
		return nil
	}
	s.fb.ClearRGB(0, 0, 0)
	s.renderer.Draw(s.fb, entries)
	return s.fb.Present()
}

func (s *System) pollConfig() {
	if s.updates == nil {
		return
	}
	var latest *config.Config
drain:
	for {
		select {
		case c, ok := <-s.updates:
			if !ok {
				s.updates = nil
				break drain
			}
			latest = c
		default:
			break drain
		}
	}
	if latest != nil {
		s.apply(latest)
	}
}

// Style converts configuration into overlay settings.
func Style(c *config.Config) overlay.Style {
	return overlay.Style{
		Text:   hud.ParseHexColor(c.TextColor),
		Scale:  c.FontSize,
		Origin: image.Pt(c.OriginX, c.OriginY),
	}
}

func (s *System) apply(c *config.Config) {
	s.renderer.SetStyle(Style(c))
	s.log.Debug("style applied",
		logx.String("text_color", c.TextColor),
		logx.Float64("font_size", c.FontSize),
	)
}

func (s *System) pollKeys(now time.Time) {
	if s.keys == nil {
		return
	}
	for {
		select {
		case ev := <-s.keys:
			s.handleKey(ev, now)
		default:
			return
		}
	}
}

// handleKey maps 1-6 to experience for a skill, 'm' to a large Mining gain and
// 'n' to the next day.
func (s *System) handleKey(ev hal.KeyEvent, now time.Time) {
	if !ev.Press {
		return
	}
	switch {
	case ev.Rune >= '1' && ev.Rune < '1'+rune(skills.Count):
		id := hud.SkillID(ev.Rune - '1')
		s.tracker.GainExperience(s.ctx, id, KeyGain, s.Day(now))
	case ev.Rune == 'm':
		s.tracker.GainExperience(s.ctx, skills.Mining, skills.BaseXP(skills.MaxLevel), s.Day(now))
	case ev.Rune == 'n':
		s.day++
		s.log.Info("day advanced", logx.Int("day", s.Day(now)))
	}
}

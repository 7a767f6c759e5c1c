package skills

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"skillhud/hud"
	"skillhud/internal/logx"
)

var (
	ErrUnknownSkill = errors.New("unknown skill")
	ErrInboxFull    = errors.New("hud inbox full")
)

// Sink receives HUD updates. *hud.Inbox satisfies it.
type Sink interface {
	Post(u hud.Update) bool
}

// Announcer decides whether a max-level update may be shown on day.
type Announcer interface {
	ShouldAnnounce(ctx context.Context, skill hud.SkillID, day int) (bool, error)
}

// Tracker keeps total experience per skill and posts progress updates.
//
// GainExperience is the boundary between the game's experience pathway and the
// HUD: it never panics and never returns an error to the caller.
type Tracker struct {
	sink Sink
	ann  Announcer
	log  logx.Logger

	limiter    *rate.Limiter
	suppressed int

	mu sync.Mutex
	xp [Count]int
}

// NewTracker returns a tracker posting to sink. ann may be nil, in which case
// every max-level gain is announced.
func NewTracker(sink Sink, ann Announcer, log logx.Logger) *Tracker {
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Tracker{
		sink:    sink,
		ann:     ann,
		log:     log.With(logx.String("component", "skills")),
		limiter: rate.NewLimiter(rate.Every(time.Second), 3),
	}
}

// SetExperience seeds the total experience of id, e.g. from a save file.
func (t *Tracker) SetExperience(id hud.SkillID, total int) {
	if !Valid(id) {
		return
	}
	if total < 0 {
		total = 0
	}
	t.mu.Lock()
	t.xp[id] = total
	t.mu.Unlock()
}

// Experience returns the total experience of id.
func (t *Tracker) Experience(id hud.SkillID) int {
	if !Valid(id) {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.xp[id]
}

// GainExperience adds amount experience to id on the given in-game day and
// reports whether a HUD update was posted. Failures are logged and dropped.
func (t *Tracker) GainExperience(ctx context.Context, id hud.SkillID, amount, day int) (posted bool) {
	defer func() {
		if r := recover(); r != nil {
			posted = false
			t.report(fmt.Errorf("panic: %v", r), id)
		}
	}()

	posted, err := t.gain(ctx, id, amount, day)
	if err != nil {
		t.report(err, id)
		return false
	}
	return posted
}

func (t *Tracker) gain(ctx context.Context, id hud.SkillID, amount, day int) (bool, error) {
	if !Valid(id) {
		return false, fmt.Errorf("%w: %d", ErrUnknownSkill, id)
	}

	t.mu.Lock()
	total := t.xp[id] + amount
	if total < 0 {
		total = 0
	}
	t.xp[id] = total
	t.mu.Unlock()

	if !Notifies(id) {
		return false, nil
	}

	level, progress, required := Progress(total)
	if level >= MaxLevel && t.ann != nil {
		ok, err := t.ann.ShouldAnnounce(ctx, id, day)
		if err != nil {
			return false, fmt.Errorf("max level ledger: %w", err)
		}
		if !ok {
			return false, nil
		}
	}

	u := hud.Update{
		Skill:    id,
		Name:     Name(id),
		Level:    level,
		Progress: progress,
		Required: required,
	}
	if t.sink == nil || !t.sink.Post(u) {
		return false, ErrInboxFull
	}
	return true, nil
}

func (t *Tracker) report(err error, id hud.SkillID) {
	t.mu.Lock()
	if !t.limiter.Allow() {
		t.suppressed++
		t.mu.Unlock()
		return
	}
	suppressed := t.suppressed
	t.suppressed = 0
	t.mu.Unlock()

	t.log.Warn("experience update dropped",
		logx.Int("skill", int(id)),
		logx.Int("suppressed", suppressed),
		logx.Err(err),
	)
}

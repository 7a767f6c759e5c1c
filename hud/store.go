package hud

import (
	"sort"
	"time"
)

const (
	// DisplayDuration is how long a notification stays on screen after its
	// last accepted update.
	DisplayDuration = 3 * time.Second
	// CoalesceWindow is how long after creation a notification still absorbs
	// new updates for the same skill.
	CoalesceWindow = 500 * time.Millisecond
)

// SkillID identifies a skill. Negative values are invalid.
type SkillID int

// Update is one progress report for a skill.
type Update struct {
	Skill    SkillID
	Name     string
	Level    int
	Progress int
	// Required is the XP needed for the next level; 0 means max level.
	Required int
}

// Record is the active notification for one skill.
type Record struct {
	Skill    SkillID
	Name     string
	Level    int
	Progress int
	Required int

	CreatedAt     time.Time
	CoalesceUntil time.Time
	ExpiresAt     time.Time
}

// MaxLevel reports whether the record carries the max-level sentinel.
func (r Record) MaxLevel() bool { return r.Required == 0 }

// Text returns the label drawn next to the skill icon.
func (r Record) Text() string { return DisplayText(r.Progress, r.Required) }

// State is the lifecycle position of a record at a given instant.
type State uint8

const (
	StateNone State = iota
	StateCoalescable
	StateStale
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateCoalescable:
		return "coalescable"
	case StateStale:
		return "stale"
	case StateExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// StateAt classifies the record at now.
func (r *Record) StateAt(now time.Time) State {
	if r == nil {
		return StateNone
	}
	if !now.Before(r.ExpiresAt) {
		return StateExpired
	}
	if !now.After(r.CoalesceUntil) {
		return StateCoalescable
	}
	return StateStale
}

// Entry is one visible notification in a snapshot.
type Entry struct {
	Skill   SkillID
	Name    string
	Level   int
	Text    string
	Opacity float64
	// Slot is the entry's position in the snapshot, used for vertical stacking.
	Slot int
}

// Options overrides the store timings. Zero fields use the package defaults.
type Options struct {
	Display  time.Duration
	Coalesce time.Duration
}

// Store holds at most one notification per skill.
type Store struct {
	display  time.Duration
	coalesce time.Duration

	records map[SkillID]*Record
	keys    []SkillID
}

// NewStore returns an empty store.
func NewStore(opts Options) *Store {
	if opts.Display <= 0 {
		opts.Display = DisplayDuration
	}
	if opts.Coalesce <= 0 {
		opts.Coalesce = CoalesceWindow
	}
	return &Store{
		display:  opts.Display,
		coalesce: opts.Coalesce,
		records:  make(map[SkillID]*Record),
	}
}

// DisplayDuration returns the configured display duration.
func (s *Store) DisplayDuration() time.Duration { return s.display }

// Record merges u into the live notification for its skill or starts a new one.
// It returns false if the update was ignored.
func (s *Store) Record(u Update, now time.Time) bool {
	if u.Skill < 0 {
		return false
	}

	r := s.records[u.Skill]
	if r.StateAt(now) == StateCoalescable {
		r.Progress = u.Progress
		r.Required = u.Required
		r.ExpiresAt = now.Add(s.display)
		return true
	}

	s.records[u.Skill] = &Record{
		Skill:         u.Skill,
		Name:          u.Name,
		Level:         u.Level,
		Progress:      u.Progress,
		Required:      u.Required,
		CreatedAt:     now,
		CoalesceUntil: now.Add(s.coalesce),
		ExpiresAt:     now.Add(s.display),
	}
	return true
}

// Snapshot prunes expired records and returns the visible entries ordered by
// skill.
//
// A record whose fade envelope has completed renders at zero opacity; it is
// left out of the snapshot but stays in the store until it expires.
func (s *Store) Snapshot(now time.Time) []Entry {
	s.keys = s.keys[:0]
	for id, r := range s.records {
		if r.StateAt(now) == StateExpired {
			delete(s.records, id)
			continue
		}
		s.keys = append(s.keys, id)
	}
	if len(s.keys) == 0 {
		return nil
	}
	sort.Slice(s.keys, func(i, j int) bool { return s.keys[i] < s.keys[j] })

	out := make([]Entry, 0, len(s.keys))
	for _, id := range s.keys {
		r := s.records[id]
		elapsed := now.Sub(r.CreatedAt)
		if elapsed >= s.display {
			continue
		}
		out = append(out, Entry{
			Skill:   r.Skill,
			Name:    r.Name,
			Level:   r.Level,
			Text:    r.Text(),
			Opacity: Fade(elapsed, s.display),
			Slot:    len(out),
		})
	}
	return out
}

// Lookup returns a copy of the record for skill, expired or not.
func (s *Store) Lookup(skill SkillID) (Record, bool) {
	r, ok := s.records[skill]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// State returns the lifecycle state of skill's record at now.
func (s *Store) State(skill SkillID, now time.Time) State {
	return s.records[skill].StateAt(now)
}

// Len returns the number of stored records, including expired ones not yet pruned.
func (s *Store) Len() int { return len(s.records) }

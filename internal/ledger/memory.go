package ledger

import (
	"context"
	"sort"
	"sync"
	"time"

	"skillhud/hud"
)

// Memory is an in-process Ledger.
type Memory struct {
	mu      sync.Mutex
	entries map[hud.SkillID]Entry
	closed  bool
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[hud.SkillID]Entry), now: time.Now}
}

func (m *Memory) ShouldAnnounce(_ context.Context, skill hud.SkillID, day int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return false, ErrClosed
	}
	if e, ok := m.entries[skill]; ok && e.Day == day {
		return false, nil
	}
	m.entries[skill] = Entry{Skill: skill, Day: day, UpdatedAt: m.now()}
	return true, nil
}

func (m *Memory) Entries(context.Context) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrClosed
	}
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Skill < out[j].Skill })
	return out, nil
}

func (m *Memory) Reset(_ context.Context, skill hud.SkillID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	delete(m.entries, skill)
	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}

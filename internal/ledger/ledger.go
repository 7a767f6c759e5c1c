// Package ledger remembers on which in-game day each skill last announced
// reaching max level, so the announcement is shown at most once per day.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skillhud/hud"
	"skillhud/internal/logx"
)

var (
	ErrClosed        = errors.New("ledger closed")
	ErrUnknownDriver = errors.New("unknown ledger driver")
)

// Entry is the last announcement day of one skill.
type Entry struct {
	Skill     hud.SkillID
	Day       int
	UpdatedAt time.Time
}

// Ledger is the persistence API used by the skill tracker and hudctl.
type Ledger interface {
	// ShouldAnnounce reports whether skill has not been announced on day yet,
	// and if so records day as its last announcement.
	ShouldAnnounce(ctx context.Context, skill hud.SkillID, day int) (bool, error)
	Entries(ctx context.Context) ([]Entry, error)
	Reset(ctx context.Context, skill hud.SkillID) error
	Close() error
}

// Config selects a ledger backend.
//
// Driver values:
//   - "" or "memory": process-local map, lost on exit
//   - "sqlite": SQLite database at Path
type Config struct {
	Driver      string
	Path        string
	BusyTimeout time.Duration
}

// Open initializes the configured ledger.
func Open(cfg Config, log logx.Logger) (Ledger, error) {
	if log.IsZero() {
		log = logx.Nop()
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", "memory":
		return NewMemory(), nil
	case "sqlite", "sqlite3":
		st, err := OpenSQLite(cfg, log)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.Driver)
	}
}

package ledger

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"skillhud/hud"
	"skillhud/internal/logx"
)

//go:embed migrations.sql
var migrationsFS embed.FS

// SQLite is a Ledger stored in a SQLite database file.
type SQLite struct {
	db  *sql.DB
	log logx.Logger
}

// OpenSQLite opens (and migrates) the database at cfg.Path.
func OpenSQLite(cfg Config, log logx.Logger) (*SQLite, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("sqlite ledger path is required")
	}
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create ledger dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if cfg.BusyTimeout > 0 {
		_, _ = db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout.Milliseconds()))
	}
	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")

	st := &SQLite{db: db, log: log}
	if err := st.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate ledger: %w", err)
	}
	log.Debug("ledger opened", logx.String("driver", "sqlite"), logx.String("path", cfg.Path))
	return st, nil
}

func (s *SQLite) migrate(ctx context.Context) error {
	b, err := migrationsFS.ReadFile("migrations.sql")
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, string(b))
	return err
}

func (s *SQLite) ShouldAnnounce(ctx context.Context, skill hud.SkillID, day int) (bool, error) {
	if s == nil || s.db == nil {
		return false, ErrClosed
	}
	// Only rows with a different day are touched, so RowsAffected tells
	// whether this call claimed the announcement.
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO max_level_announcements(skill, day, updated_at) VALUES(?,?,?)
		 ON CONFLICT(skill) DO UPDATE SET day=excluded.day, updated_at=excluded.updated_at
		 WHERE max_level_announcements.day <> excluded.day`,
		int(skill), day, time.Now().UnixMilli(),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQLite) Entries(ctx context.Context) ([]Entry, error) {
	if s == nil || s.db == nil {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT skill, day, updated_at FROM max_level_announcements ORDER BY skill`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			skill, day int
			ms         int64
		)
		if err := rows.Scan(&skill, &day, &ms); err != nil {
			return nil, err
		}
		out = append(out, Entry{Skill: hud.SkillID(skill), Day: day, UpdatedAt: time.UnixMilli(ms)})
	}
	return out, rows.Err()
}

func (s *SQLite) Reset(ctx context.Context, skill hud.SkillID) error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM max_level_announcements WHERE skill = ?`, int(skill))
	return err
}

func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

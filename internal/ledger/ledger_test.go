package ledger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"skillhud/internal/logx"
)

func openBackends(t *testing.T) map[string]Ledger {
	t.Helper()
	sq, err := Open(Config{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "ledger", "hud.db")}, logx.Nop())
	require.NoError(t, err)
	mem, err := Open(Config{}, logx.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = sq.Close()
		_ = mem.Close()
	})
	return map[string]Ledger{"sqlite": sq, "memory": mem}
}

func TestShouldAnnounceOncePerDay(t *testing.T) {
	ctx := context.Background()
	for name, l := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			ok, err := l.ShouldAnnounce(ctx, 3, 10)
			require.NoError(t, err)
			require.True(t, ok, "first announcement of the day")

			ok, err = l.ShouldAnnounce(ctx, 3, 10)
			require.NoError(t, err)
			require.False(t, ok, "same day must be suppressed")

			ok, err = l.ShouldAnnounce(ctx, 4, 10)
			require.NoError(t, err)
			require.True(t, ok, "other skills are independent")

			ok, err = l.ShouldAnnounce(ctx, 3, 11)
			require.NoError(t, err)
			require.True(t, ok, "a new day announces again")

			entries, err := l.Entries(ctx)
			require.NoError(t, err)
			require.Len(t, entries, 2)
			require.EqualValues(t, 3, entries[0].Skill)
			require.Equal(t, 11, entries[0].Day)
			require.EqualValues(t, 4, entries[1].Skill)
		})
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	for name, l := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := l.ShouldAnnounce(ctx, 1, 5)
			require.NoError(t, err)
			require.NoError(t, l.Reset(ctx, 1))

			ok, err := l.ShouldAnnounce(ctx, 1, 5)
			require.NoError(t, err)
			require.True(t, ok, "reset must allow a repeat announcement")
		})
	}
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "hud.db")

	l, err := OpenSQLite(Config{Path: path}, logx.Nop())
	require.NoError(t, err)
	ok, err := l.ShouldAnnounce(ctx, 2, 42)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, l.Close())

	l, err = OpenSQLite(Config{Path: path}, logx.Nop())
	require.NoError(t, err)
	defer l.Close()
	ok, err = l.ShouldAnnounce(ctx, 2, 42)
	require.NoError(t, err)
	require.False(t, ok, "announcement must survive a restart")
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(Config{Driver: "redis"}, logx.Nop())
	require.ErrorIs(t, err, ErrUnknownDriver)

	_, err = Open(Config{Driver: "sqlite"}, logx.Nop())
	require.Error(t, err)
}

func TestMemoryClosed(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Close())
	_, err := m.ShouldAnnounce(context.Background(), 0, 1)
	require.ErrorIs(t, err, ErrClosed)
}

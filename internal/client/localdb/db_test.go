package localdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitAppliesMigrations(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "test.db")

	db, repos, err := Init(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NotNil(t, repos)

	// The reminder ledger table exists and is usable end to end.
	require.NoError(t, repos.Reminders.MarkNotified(ctx, "m1", "2026-03-10"))
	ids, err := repos.Reminders.NotifiedOn(ctx, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1"}, ids)
}

func TestInitIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "test.db")

	db1, _, err := Init(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db1.Close())

	// Reopening the same file must not re-run migrations destructively.
	db2, repos, err := Init(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })
	require.NoError(t, repos.Reminders.MarkNotified(ctx, "m1", "2026-03-10"))
}

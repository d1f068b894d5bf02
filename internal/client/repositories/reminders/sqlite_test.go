package reminders

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE reminder_log (
  meeting_id TEXT NOT NULL,
  day        TEXT NOT NULL,
  PRIMARY KEY (meeting_id, day)
);`)
	require.NoError(t, err)
	return db
}

func TestMarkNotifiedAndNotifiedOn(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.MarkNotified(ctx, "m1", "2026-03-10"))
	require.NoError(t, r.MarkNotified(ctx, "m2", "2026-03-10"))
	require.NoError(t, r.MarkNotified(ctx, "m3", "2026-03-11"))

	ids, err := r.NotifiedOn(ctx, "2026-03-10")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"m1", "m2"}, ids)
}

func TestMarkNotifiedIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.MarkNotified(ctx, "m1", "2026-03-10"))
	require.NoError(t, r.MarkNotified(ctx, "m1", "2026-03-10"))

	ids, err := r.NotifiedOn(ctx, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1"}, ids)
}

func TestNotifiedOnEmptyDay(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	ids, err := r.NotifiedOn(context.Background(), "2026-03-10")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRestoreSweepsOldDays(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.MarkNotified(ctx, "m1", "2026-03-09"))
	require.NoError(t, r.MarkNotified(ctx, "m2", "2026-03-10"))
	require.NoError(t, r.MarkNotified(ctx, "m3", "2026-03-10"))

	ids, err := r.Restore(ctx, "2026-03-10")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"m2", "m3"}, ids)

	old, err := r.NotifiedOn(ctx, "2026-03-09")
	require.NoError(t, err)
	assert.Empty(t, old, "stale rows are gone after the sweep")
}

func TestRestoreEmptyLedger(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	ids, err := r.Restore(context.Background(), "2026-03-10")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

package reminders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, r.MarkNotified(ctx, "m1", "2026-03-10"))
	require.NoError(t, r.MarkNotified(ctx, "m1", "2026-03-10"))
	require.NoError(t, r.MarkNotified(ctx, "m2", "2026-03-09"))

	ids, err := r.NotifiedOn(ctx, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1"}, ids)

	restored, err := r.Restore(ctx, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1"}, restored)

	old, err := r.NotifiedOn(ctx, "2026-03-09")
	require.NoError(t, err)
	assert.Empty(t, old)
}

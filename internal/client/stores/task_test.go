package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzaikin/boardroom/internal/client/gateway"
	"github.com/mzaikin/boardroom/internal/client/models"
	"github.com/mzaikin/boardroom/internal/logging"
)

func newTestTaskStore(t *testing.T, tasks []models.Task) (*TaskStore, *fakeGateway) {
	t.Helper()
	session := gateway.Session{UserID: "user-1", Name: "Alice"}
	gw := newFakeGateway(session)
	gw.tasks = tasks

	s := NewTaskStore(gw, session, logging.NewNop())
	require.NoError(t, s.Load(context.Background()))
	return s, gw
}

func TestTaskStoreCreateDefaults(t *testing.T) {
	s, gw := newTestTaskStore(t, nil)

	created, err := s.Create(context.Background(), models.Task{Title: "Draft agenda"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.TaskPending, created.Status)
	assert.Equal(t, models.PriorityMedium, created.Priority)
	assert.Equal(t, "user-1", created.CreatedBy)
	assert.Len(t, gw.tasks, 1)
}

func TestTaskStoreFilter(t *testing.T) {
	s, _ := newTestTaskStore(t, []models.Task{
		{ID: "t1", Status: models.TaskPending, Priority: models.PriorityHigh, AssigneeID: "user-1"},
		{ID: "t2", Status: models.TaskCompleted, Priority: models.PriorityHigh, AssigneeID: "user-1"},
		{ID: "t3", Status: models.TaskPending, Priority: models.PriorityLow, AssigneeID: "user-2"},
	})

	assert.Len(t, s.Tasks(TaskFilter{}), 3)
	assert.Len(t, s.Tasks(TaskFilter{Status: models.TaskPending}), 2)
	assert.Len(t, s.Tasks(TaskFilter{Priority: models.PriorityHigh}), 2)

	got := s.Tasks(TaskFilter{Status: models.TaskPending, AssigneeID: "user-1"})
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)
}

func TestTaskStoreSortsByDueDate(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	soon := base.Add(24 * time.Hour)
	later := base.Add(72 * time.Hour)

	s, _ := newTestTaskStore(t, []models.Task{
		{ID: "undated", CreatedAt: base},
		{ID: "later", DueDate: &later},
		{ID: "soon", DueDate: &soon},
	})

	got := s.Tasks(TaskFilter{})
	require.Len(t, got, 3)
	assert.Equal(t, "soon", got[0].ID)
	assert.Equal(t, "later", got[1].ID)
	assert.Equal(t, "undated", got[2].ID, "tasks without a due date sort last")
}

func TestTaskStoreComplete(t *testing.T) {
	s, _ := newTestTaskStore(t, []models.Task{
		{ID: "t1", Status: models.TaskPending},
	})

	updated, err := s.Complete(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, updated.Status)

	got, ok := s.Get("t1")
	require.True(t, ok)
	assert.Equal(t, models.TaskCompleted, got.Status)
}

func TestTaskStoreDelete(t *testing.T) {
	s, gw := newTestTaskStore(t, []models.Task{{ID: "t1"}})

	require.NoError(t, s.Delete(context.Background(), "t1"))
	assert.Empty(t, s.Tasks(TaskFilter{}))
	assert.Empty(t, gw.tasks)
}

func TestTaskStoreApplyEvents(t *testing.T) {
	s, _ := newTestTaskStore(t, nil)
	ctx := context.Background()

	s.apply(ctx, models.ChangeEvent{
		Kind:  models.EventInsert,
		Table: gateway.TableTasks,
		New:   mustJSON(models.Task{ID: "t1", Title: "Draft agenda"}),
	})
	require.Len(t, s.Tasks(TaskFilter{}), 1)

	s.apply(ctx, models.ChangeEvent{
		Kind:  models.EventDelete,
		Table: gateway.TableTasks,
		Old:   mustJSON(models.Task{ID: "t1"}),
	})
	assert.Empty(t, s.Tasks(TaskFilter{}))
}

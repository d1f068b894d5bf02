package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mzaikin/boardroom/internal/client/gateway"
	"github.com/mzaikin/boardroom/internal/client/models"
	"github.com/mzaikin/boardroom/internal/logging"
)

// TaskFilter narrows the task listing. Zero values mean "any".
type TaskFilter struct {
	Status     models.TaskStatus
	Priority   models.TaskPriority
	AssigneeID string
}

// TaskStore mirrors the tasks (action items) table.
type TaskStore struct {
	gw      gateway.Gateway
	log     logging.Logger
	session gateway.Session

	mu     sync.RWMutex
	tasks  []models.Task
	closed bool

	cancel context.CancelFunc
	stop   func()
	done   chan struct{}
}

func NewTaskStore(gw gateway.Gateway, session gateway.Session, log logging.Logger) *TaskStore {
	return &TaskStore{gw: gw, session: session, log: log.With("store", "tasks")}
}

// Load replaces the mirror with a fresh snapshot from the backend.
func (s *TaskStore) Load(ctx context.Context) error {
	tasks, err := s.gw.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.tasks = tasks
	return nil
}

// Start loads the mirror and follows the tasks change feed until Close.
func (s *TaskStore) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	if err := s.Load(ctx); err != nil {
		cancel()
		return err
	}

	events, stop, err := s.gw.Subscribe(ctx, gateway.TableTasks, nil)
	if err != nil {
		cancel()
		return fmt.Errorf("subscribing to tasks: %w", err)
	}

	done := make(chan struct{})
	s.mu.Lock()
	s.cancel = cancel
	s.stop = stop
	s.done = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		for ev := range events {
			s.apply(ctx, ev)
		}
	}()

	return nil
}

// Close stops the change feed and marks the store dead.
func (s *TaskStore) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	cancel, stop, done := s.cancel, s.stop, s.done
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Tasks returns the mirror narrowed by filter, due-soonest first; tasks
// without a due date sort last.
func (s *TaskStore) Tasks(filter TaskFilter) []models.Task {
	s.mu.RLock()
	var out []models.Task
	for _, t := range s.tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.AssigneeID != "" && t.AssigneeID != filter.AssigneeID {
			continue
		}
		out = append(out, t)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].DueDate, out[j].DueDate
		switch {
		case a == nil && b == nil:
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return out
}

// Get returns one task by id.
func (s *TaskStore) Get(id string) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// Create adds a task authored by the current user.
func (s *TaskStore) Create(ctx context.Context, t models.Task) (models.Task, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = models.TaskPending
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}
	t.CreatedBy = s.session.UserID

	created, err := s.gw.CreateTask(ctx, t)
	if err != nil {
		return models.Task{}, fmt.Errorf("creating task: %w", err)
	}

	s.applyLocal(created)
	return created, nil
}

// Update patches a task and folds the updated row into the mirror.
func (s *TaskStore) Update(ctx context.Context, id string, patch gateway.Patch) (models.Task, error) {
	updated, err := s.gw.UpdateTask(ctx, id, patch)
	if err != nil {
		return models.Task{}, fmt.Errorf("updating task: %w", err)
	}

	s.applyLocal(updated)
	return updated, nil
}

// Complete marks a task completed.
func (s *TaskStore) Complete(ctx context.Context, id string) (models.Task, error) {
	return s.Update(ctx, id, gateway.Patch{"status": models.TaskCompleted})
}

// Delete removes a task.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	if err := s.gw.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.tasks = removeByID(s.tasks, taskID, id)
	return nil
}

func taskID(t models.Task) string { return t.ID }

func (s *TaskStore) applyLocal(t models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.tasks = upsertByID(s.tasks, taskID, t)
}

// apply folds one change-feed event into the mirror.
func (s *TaskStore) apply(ctx context.Context, ev models.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	switch ev.Kind {
	case models.EventInsert, models.EventUpdate:
		var t models.Task
		if err := json.Unmarshal(ev.New, &t); err != nil {
			s.log.Warn(ctx, "dropping malformed task event", "kind", ev.Kind, "error", err)
			return
		}
		s.tasks = upsertByID(s.tasks, taskID, t)

	case models.EventDelete:
		var t models.Task
		if err := json.Unmarshal(ev.Old, &t); err != nil {
			s.log.Warn(ctx, "dropping malformed task event", "kind", ev.Kind, "error", err)
			return
		}
		s.tasks = removeByID(s.tasks, taskID, t.ID)
	}
}

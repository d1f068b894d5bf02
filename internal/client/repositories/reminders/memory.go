package reminders

import (
	"context"
	"sync"
)

// MemoryRepository is a Repository that lives for one process only. With it
// the reminder dedup set stays purely session-scoped: a reload may notify
// again for a meeting still inside the window.
type MemoryRepository struct {
	mu   sync.Mutex
	seen map[string]map[string]struct{} // day -> meeting ids
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{seen: make(map[string]map[string]struct{})}
}

func (r *MemoryRepository) MarkNotified(_ context.Context, meetingID, day string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids, ok := r.seen[day]
	if !ok {
		ids = make(map[string]struct{})
		r.seen[day] = ids
	}
	ids[meetingID] = struct{}{}
	return nil
}

func (r *MemoryRepository) NotifiedOn(_ context.Context, day string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.seen[day]))
	for id := range r.seen[day] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *MemoryRepository) Restore(_ context.Context, day string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for d := range r.seen {
		if d < day {
			delete(r.seen, d)
		}
	}
	ids := make([]string, 0, len(r.seen[day]))
	for id := range r.seen[day] {
		ids = append(ids, id)
	}
	return ids, nil
}

package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mzaikin/boardroom/internal/client/gateway"
	"github.com/mzaikin/boardroom/internal/client/models"
)

// fakeGateway is an in-memory gateway.Gateway for store tests. Mutations are
// recorded so tests can assert what went over the wire.
type fakeGateway struct {
	mu sync.Mutex

	session gateway.Session

	meetings      []models.Meeting
	tasks         []models.Task
	notifications []models.Notification
	profiles      []models.Profile
	invites       []models.Invite
	audits        []models.AuditRecord

	markedRead     []string
	deletedInvites []string
	profilePatches map[string]gateway.Patch

	failWith error

	subs map[string]chan models.ChangeEvent
}

var _ gateway.Gateway = (*fakeGateway)(nil)

func newFakeGateway(session gateway.Session) *fakeGateway {
	return &fakeGateway{
		session:        session,
		profilePatches: make(map[string]gateway.Patch),
		subs:           make(map[string]chan models.ChangeEvent),
	}
}

func (f *fakeGateway) Close() error { return nil }

func (f *fakeGateway) Login(ctx context.Context, email, password string) (gateway.Session, error) {
	return f.session, nil
}

func (f *fakeGateway) Ping(ctx context.Context) error { return f.failWith }

func (f *fakeGateway) Session() gateway.Session { return f.session }

// patchApply folds a column patch into a row through its JSON form, the same
// way the backend does.
func patchApply[T any](row T, patch gateway.Patch) (T, error) {
	var zero T

	encoded, err := json.Marshal(row)
	if err != nil {
		return zero, err
	}
	asMap := map[string]any{}
	if err := json.Unmarshal(encoded, &asMap); err != nil {
		return zero, err
	}
	for k, v := range patch {
		asMap[k] = v
	}
	merged, err := json.Marshal(asMap)
	if err != nil {
		return zero, err
	}

	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return zero, err
	}
	return out, nil
}

func (f *fakeGateway) ListMeetings(ctx context.Context) ([]models.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]models.Meeting(nil), f.meetings...), nil
}

func (f *fakeGateway) CreateMeeting(ctx context.Context, m models.Meeting) (models.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return models.Meeting{}, f.failWith
	}
	f.meetings = append(f.meetings, m)
	return m, nil
}

func (f *fakeGateway) UpdateMeeting(ctx context.Context, id string, patch gateway.Patch) (models.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return models.Meeting{}, f.failWith
	}
	for i, m := range f.meetings {
		if m.ID == id {
			updated, err := patchApply(m, patch)
			if err != nil {
				return models.Meeting{}, err
			}
			f.meetings[i] = updated
			return updated, nil
		}
	}
	return models.Meeting{}, gateway.ErrNotFound
}

func (f *fakeGateway) DeleteMeeting(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.meetings = removeByID(f.meetings, meetingID, id)
	return nil
}

func (f *fakeGateway) ListTasks(ctx context.Context) ([]models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]models.Task(nil), f.tasks...), nil
}

func (f *fakeGateway) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return models.Task{}, f.failWith
	}
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeGateway) UpdateTask(ctx context.Context, id string, patch gateway.Patch) (models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return models.Task{}, f.failWith
	}
	for i, t := range f.tasks {
		if t.ID == id {
			updated, err := patchApply(t, patch)
			if err != nil {
				return models.Task{}, err
			}
			f.tasks[i] = updated
			return updated, nil
		}
	}
	return models.Task{}, gateway.ErrNotFound
}

func (f *fakeGateway) DeleteTask(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.tasks = removeByID(f.tasks, taskID, id)
	return nil
}

func (f *fakeGateway) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeGateway) MarkNotificationRead(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.notifications {
		if f.notifications[i].ID == id {
			f.notifications[i].Read = true
			f.markedRead = append(f.markedRead, id)
			return nil
		}
	}
	return gateway.ErrNotFound
}

func (f *fakeGateway) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]models.Profile(nil), f.profiles...), nil
}

func (f *fakeGateway) UpdateProfile(ctx context.Context, id string, patch gateway.Patch) (models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return models.Profile{}, f.failWith
	}
	for i, p := range f.profiles {
		if p.ID == id {
			updated, err := patchApply(p, patch)
			if err != nil {
				return models.Profile{}, err
			}
			f.profiles[i] = updated
			f.profilePatches[id] = patch
			return updated, nil
		}
	}
	return models.Profile{}, gateway.ErrNotFound
}

func (f *fakeGateway) ListInvites(ctx context.Context) ([]models.Invite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]models.Invite(nil), f.invites...), nil
}

func (f *fakeGateway) CreateInvite(ctx context.Context, inv models.Invite) (models.Invite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return models.Invite{}, f.failWith
	}
	f.invites = append(f.invites, inv)
	return inv, nil
}

func (f *fakeGateway) DeleteInvite(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.invites = removeByID(f.invites, inviteID, id)
	f.deletedInvites = append(f.deletedInvites, id)
	return nil
}

func (f *fakeGateway) RecordAudit(ctx context.Context, rec models.AuditRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.audits = append(f.audits, rec)
	return nil
}

// Subscribe hands out one channel per table; tests push events with emit.
func (f *fakeGateway) Subscribe(ctx context.Context, table string, filter map[string]string) (<-chan models.ChangeEvent, func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, nil, f.failWith
	}

	ch := make(chan models.ChangeEvent, 16)
	f.subs[table] = ch

	var once sync.Once
	stop := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, table)
			f.mu.Unlock()
			close(ch)
		})
	}
	return ch, stop, nil
}

func (f *fakeGateway) emit(table string, ev models.ChangeEvent) {
	f.mu.Lock()
	ch, ok := f.subs[table]
	f.mu.Unlock()
	if ok {
		ch <- ev
	}
}

func (f *fakeGateway) auditRecords() []models.AuditRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.AuditRecord(nil), f.audits...)
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("marshal: %v", err))
	}
	return b
}

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

// MeetingStore mirrors the meetings table.
type MeetingStore struct {
	gw      gateway.Gateway
	log     logging.Logger
	session gateway.Session

	mu       sync.RWMutex
	meetings []models.Meeting
	closed   bool

	cancel context.CancelFunc
	stop   func()
	done   chan struct{}
}

func NewMeetingStore(gw gateway.Gateway, session gateway.Session, log logging.Logger) *MeetingStore {
	return &MeetingStore{gw: gw, session: session, log: log.With("store", "meetings")}
}

// Load replaces the mirror with a fresh snapshot from the backend.
func (s *MeetingStore) Load(ctx context.Context) error {
	meetings, err := s.gw.ListMeetings(ctx)
	if err != nil {
		return fmt.Errorf("loading meetings: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.meetings = meetings
	return nil
}

// Start loads the mirror and subscribes to the meetings change feed for the
// lifetime of ctx. The subscription is single-owner; Close tears it down.
func (s *MeetingStore) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	if err := s.Load(ctx); err != nil {
		cancel()
		return err
	}

	events, stop, err := s.gw.Subscribe(ctx, gateway.TableMeetings, nil)
	if err != nil {
		cancel()
		return fmt.Errorf("subscribing to meetings: %w", err)
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

// Close stops the change feed and marks the store dead; late events and late
// RPC results are discarded from here on.
func (s *MeetingStore) Close() {
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

// Meetings returns a copy of the mirror sorted by start time.
func (s *MeetingStore) Meetings() []models.Meeting {
	s.mu.RLock()
	out := make([]models.Meeting, len(s.meetings))
	copy(out, s.meetings)
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out
}

// Get returns one meeting by id.
func (s *MeetingStore) Get(id string) (models.Meeting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.meetings {
		if m.ID == id {
			return m, true
		}
	}
	return models.Meeting{}, false
}

// Schedule creates a meeting owned by the current user. The remote write
// happens first; the mirror is updated optimistically on success.
func (s *MeetingStore) Schedule(ctx context.Context, m models.Meeting) (models.Meeting, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = models.MeetingUpcoming
	}
	m.OwnerID = s.session.UserID

	created, err := s.gw.CreateMeeting(ctx, m)
	if err != nil {
		return models.Meeting{}, fmt.Errorf("scheduling meeting: %w", err)
	}

	s.applyLocal(created)
	return created, nil
}

// Update patches a meeting and folds the updated row into the mirror.
func (s *MeetingStore) Update(ctx context.Context, id string, patch gateway.Patch) (models.Meeting, error) {
	updated, err := s.gw.UpdateMeeting(ctx, id, patch)
	if err != nil {
		return models.Meeting{}, fmt.Errorf("updating meeting: %w", err)
	}

	s.applyLocal(updated)
	return updated, nil
}

// Cancel removes a meeting.
func (s *MeetingStore) Cancel(ctx context.Context, id string) error {
	if err := s.gw.DeleteMeeting(ctx, id); err != nil {
		return fmt.Errorf("cancelling meeting: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.meetings = removeByID(s.meetings, meetingID, id)
	return nil
}

func meetingID(m models.Meeting) string { return m.ID }

func (s *MeetingStore) applyLocal(m models.Meeting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.meetings = upsertByID(s.meetings, meetingID, m)
}

// apply folds one change-feed event into the mirror.
func (s *MeetingStore) apply(ctx context.Context, ev models.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	switch ev.Kind {
	case models.EventInsert, models.EventUpdate:
		var m models.Meeting
		if err := json.Unmarshal(ev.New, &m); err != nil {
			s.log.Warn(ctx, "dropping malformed meeting event", "kind", ev.Kind, "error", err)
			return
		}
		s.meetings = upsertByID(s.meetings, meetingID, m)

	case models.EventDelete:
		var m models.Meeting
		if err := json.Unmarshal(ev.Old, &m); err != nil {
			s.log.Warn(ctx, "dropping malformed meeting event", "kind", ev.Kind, "error", err)
			return
		}
		s.meetings = removeByID(s.meetings, meetingID, m.ID)
	}
}

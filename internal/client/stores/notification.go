package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/mzaikin/boardroom/internal/client/gateway"
	"github.com/mzaikin/boardroom/internal/client/models"
	"github.com/mzaikin/boardroom/internal/logging"
)

// NotificationStore mirrors the current user's rows of the notifications
// table, plus session-scoped rows (reminders) that exist only in this
// process. The unread count is never cached; it is recomputed from the
// mirror on every call, so it cannot drift from the rows it summarizes.
type NotificationStore struct {
	gw      gateway.Gateway
	log     logging.Logger
	session gateway.Session

	mu            sync.RWMutex
	notifications []models.Notification
	local         map[string]struct{}
	closed        bool

	cancel context.CancelFunc
	stop   func()
	done   chan struct{}
}

func NewNotificationStore(gw gateway.Gateway, session gateway.Session, log logging.Logger) *NotificationStore {
	return &NotificationStore{
		gw:      gw,
		session: session,
		log:     log.With("store", "notifications"),
		local:   make(map[string]struct{}),
	}
}

// Load replaces the mirror with the user's notifications from the backend.
// Session rows are carried over; the backend never knew about them.
func (s *NotificationStore) Load(ctx context.Context) error {
	notifications, err := s.gw.ListNotifications(ctx, s.session.UserID)
	if err != nil {
		return fmt.Errorf("loading notifications: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	for _, n := range s.notifications {
		if _, ok := s.local[n.ID]; ok {
			notifications = append(notifications, n)
		}
	}
	s.notifications = notifications
	return nil
}

// Start loads the mirror and follows the change feed, filtered to the current
// user, until Close.
func (s *NotificationStore) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	if err := s.Load(ctx); err != nil {
		cancel()
		return err
	}

	events, stop, err := s.gw.Subscribe(ctx, gateway.TableNotifications, map[string]string{"user_id": s.session.UserID})
	if err != nil {
		cancel()
		return fmt.Errorf("subscribing to notifications: %w", err)
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
func (s *NotificationStore) Close() {
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

// Notifications returns a copy of the mirror, newest first.
func (s *NotificationStore) Notifications() []models.Notification {
	s.mu.RLock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// UnreadCount counts the unread rows currently in the mirror.
func (s *NotificationStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// Notify delivers a session-scoped notification addressed to the current
// user. The row is folded into the mirror only and never written to the
// backend, so it cannot inflate the persisted unread state or fan out to the
// user's other sessions. Rows addressed to anyone else are dropped.
func (s *NotificationStore) Notify(_ context.Context, n models.Notification) error {
	if n.UserID != s.session.UserID {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.local[n.ID] = struct{}{}
	s.notifications = upsertByID(s.notifications, notificationID, n)
	return nil
}

// MarkRead flags one notification as read, remote-first. Session rows flip
// in place; there is no backend row to update.
func (s *NotificationStore) MarkRead(ctx context.Context, id string) error {
	s.mu.RLock()
	_, isLocal := s.local[id]
	s.mu.RUnlock()

	if !isLocal {
		if err := s.gw.MarkNotificationRead(ctx, id); err != nil {
			return fmt.Errorf("marking notification read: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			break
		}
	}
	return nil
}

// MarkAllRead flags every unread notification as read, one update per row.
// It stops at the first failed write so already-flagged rows stay flagged and
// the rest remain unread for a retry.
func (s *NotificationStore) MarkAllRead(ctx context.Context) error {
	s.mu.RLock()
	var unread []string
	for _, n := range s.notifications {
		if !n.Read {
			unread = append(unread, n.ID)
		}
	}
	s.mu.RUnlock()

	for _, id := range unread {
		if err := s.MarkRead(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func notificationID(n models.Notification) string { return n.ID }

// apply folds one change-feed event into the mirror, ignoring rows that
// belong to other users.
func (s *NotificationStore) apply(ctx context.Context, ev models.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	switch ev.Kind {
	case models.EventInsert, models.EventUpdate:
		var n models.Notification
		if err := json.Unmarshal(ev.New, &n); err != nil {
			s.log.Warn(ctx, "dropping malformed notification event", "kind", ev.Kind, "error", err)
			return
		}
		if n.UserID != s.session.UserID {
			return
		}
		s.notifications = upsertByID(s.notifications, notificationID, n)

	case models.EventDelete:
		var n models.Notification
		if err := json.Unmarshal(ev.Old, &n); err != nil {
			s.log.Warn(ctx, "dropping malformed notification event", "kind", ev.Kind, "error", err)
			return
		}
		s.notifications = removeByID(s.notifications, notificationID, n.ID)
	}
}

package stores

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mzaikin/boardroom/internal/client/models"
	"github.com/mzaikin/boardroom/internal/client/repositories/reminders"
	"github.com/mzaikin/boardroom/internal/logging"
)

const (
	// ReminderWindow is how far ahead of a meeting's start the reminder fires.
	ReminderWindow = 15 * time.Minute

	// ReminderInterval is how often upcoming meetings are re-evaluated.
	ReminderInterval = time.Minute

	dayFormat = "2006-01-02"
)

// MeetingSource yields the current meeting mirror. *MeetingStore satisfies it.
type MeetingSource interface {
	Meetings() []models.Meeting
}

// Notifier delivers a reminder notification. *NotificationStore satisfies it.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

// Scheduler watches the meeting mirror and emits a "starting soon"
// notification for every Upcoming meeting whose start lies within
// ReminderWindow of now. Each meeting reminds at most once per session; the
// ledger extends that guarantee across same-day restarts.
type Scheduler struct {
	meetings MeetingSource
	notifier Notifier
	ledger   reminders.Repository
	log      logging.Logger

	userID   string
	window   time.Duration
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	notified map[string]struct{}
}

func NewScheduler(meetings MeetingSource, notifier Notifier, ledger reminders.Repository, userID string, log logging.Logger) *Scheduler {
	return &Scheduler{
		meetings: meetings,
		notifier: notifier,
		ledger:   ledger,
		log:      log.With("component", "reminder-scheduler"),
		userID:   userID,
		window:   ReminderWindow,
		interval: ReminderInterval,
		now:      time.Now,
		notified: make(map[string]struct{}),
	}
}

// Configure overrides the reminder window and re-evaluation interval.
// Non-positive values keep the current setting. Call before Run.
func (s *Scheduler) Configure(window, interval time.Duration) {
	if window > 0 {
		s.window = window
	}
	if interval > 0 {
		s.interval = interval
	}
}

// Run evaluates once immediately, then on every tick until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	s.restore(ctx)
	s.Evaluate(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Evaluate(ctx)
		}
	}
}

// restore seeds the notified set from the ledger, dropping stale rows.
func (s *Scheduler) restore(ctx context.Context) {
	day := s.now().Format(dayFormat)

	ids, err := s.ledger.Restore(ctx, day)
	if err != nil {
		s.log.Warn(ctx, "restoring reminder ledger", "error", err)
		return
	}

	s.mu.Lock()
	for _, id := range ids {
		s.notified[id] = struct{}{}
	}
	s.mu.Unlock()
}

// Evaluate runs one pass over the meeting mirror. A meeting triggers a
// reminder iff it is Upcoming, starts more than zero and at most the window
// from now, and has not already been reminded.
func (s *Scheduler) Evaluate(ctx context.Context) {
	now := s.now()

	for _, m := range s.meetings.Meetings() {
		if m.Status != models.MeetingUpcoming {
			continue
		}
		until := m.StartsAt.Sub(now)
		if until <= 0 || until > s.window {
			continue
		}
		if s.alreadyNotified(m.ID) {
			continue
		}
		s.remind(ctx, m, until)
	}
}

func (s *Scheduler) alreadyNotified(meetingID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.notified[meetingID]
	return ok
}

func (s *Scheduler) remind(ctx context.Context, m models.Meeting, until time.Duration) {
	n := models.Notification{
		ID:        uuid.NewString(),
		UserID:    s.userID,
		Title:     "Meeting Reminder",
		Message:   reminderMessage(m.Title, until),
		Kind:      models.KindMeeting,
		CreatedAt: s.now(),
	}

	if err := s.notifier.Notify(ctx, n); err != nil {
		// Not marked as notified, so the next tick retries naturally.
		s.log.Warn(ctx, "delivering reminder", "meeting_id", m.ID, "error", err)
		return
	}

	s.mu.Lock()
	s.notified[m.ID] = struct{}{}
	s.mu.Unlock()

	day := s.now().Format(dayFormat)
	if err := s.ledger.MarkNotified(ctx, m.ID, day); err != nil {
		s.log.Warn(ctx, "recording reminder", "meeting_id", m.ID, "error", err)
	}
}

// reminderMessage renders the lead time rounded up to whole minutes.
func reminderMessage(title string, until time.Duration) string {
	minutes := int((until + time.Minute - 1) / time.Minute)
	unit := "minutes"
	if minutes == 1 {
		unit = "minute"
	}
	return fmt.Sprintf("%q starts in %d %s", title, minutes, unit)
}

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

func newTestNotificationStore(t *testing.T, notifications []models.Notification) (*NotificationStore, *fakeGateway) {
	t.Helper()
	session := gateway.Session{UserID: "user-1", Name: "Alice"}
	gw := newFakeGateway(session)
	gw.notifications = notifications

	s := NewNotificationStore(gw, session, logging.NewNop())
	require.NoError(t, s.Load(context.Background()))
	return s, gw
}

func TestNotificationStoreUnreadCount(t *testing.T) {
	s, _ := newTestNotificationStore(t, []models.Notification{
		{ID: "n1", UserID: "user-1", Read: false},
		{ID: "n2", UserID: "user-1", Read: true},
		{ID: "n3", UserID: "user-1", Read: false},
	})

	assert.Equal(t, 2, s.UnreadCount())
}

func TestNotificationStoreLoadScopesToUser(t *testing.T) {
	s, _ := newTestNotificationStore(t, []models.Notification{
		{ID: "n1", UserID: "user-1"},
		{ID: "n2", UserID: "someone-else"},
	})

	all := s.Notifications()
	require.Len(t, all, 1)
	assert.Equal(t, "n1", all[0].ID)
}

func TestNotificationStoreMarkRead(t *testing.T) {
	s, gw := newTestNotificationStore(t, []models.Notification{
		{ID: "n1", UserID: "user-1", Read: false},
	})

	require.NoError(t, s.MarkRead(context.Background(), "n1"))

	assert.Equal(t, 0, s.UnreadCount())
	assert.Equal(t, []string{"n1"}, gw.markedRead, "write must reach the backend")
}

func TestNotificationStoreMarkAllRead(t *testing.T) {
	s, gw := newTestNotificationStore(t, []models.Notification{
		{ID: "n1", UserID: "user-1", Read: false},
		{ID: "n2", UserID: "user-1", Read: true},
		{ID: "n3", UserID: "user-1", Read: false},
	})
	require.Equal(t, 2, s.UnreadCount())

	require.NoError(t, s.MarkAllRead(context.Background()))

	assert.Equal(t, 0, s.UnreadCount())
	assert.ElementsMatch(t, []string{"n1", "n3"}, gw.markedRead, "one update per unread row, read rows untouched")
}

func TestNotificationStoreApplyIgnoresOtherUsers(t *testing.T) {
	s, _ := newTestNotificationStore(t, nil)

	s.apply(context.Background(), models.ChangeEvent{
		Kind:  models.EventInsert,
		Table: gateway.TableNotifications,
		New:   mustJSON(models.Notification{ID: "n1", UserID: "someone-else"}),
	})
	assert.Equal(t, 0, s.UnreadCount())

	s.apply(context.Background(), models.ChangeEvent{
		Kind:  models.EventInsert,
		Table: gateway.TableNotifications,
		New:   mustJSON(models.Notification{ID: "n2", UserID: "user-1"}),
	})
	assert.Equal(t, 1, s.UnreadCount())
}

func TestNotificationStoreApplyIsIdempotent(t *testing.T) {
	s, _ := newTestNotificationStore(t, nil)

	ev := models.ChangeEvent{
		Kind:  models.EventInsert,
		Table: gateway.TableNotifications,
		New:   mustJSON(models.Notification{ID: "n1", UserID: "user-1"}),
	}
	s.apply(context.Background(), ev)
	s.apply(context.Background(), ev)

	assert.Len(t, s.Notifications(), 1)
}

func TestNotificationStoreNotifyStaysLocal(t *testing.T) {
	s, gw := newTestNotificationStore(t, nil)

	require.NoError(t, s.Notify(context.Background(), models.Notification{ID: "n1", UserID: "user-1", Title: "Reminder"}))
	assert.Equal(t, 1, s.UnreadCount())
	assert.Empty(t, gw.notifications, "session notifications never reach the backend")

	// A row addressed to someone else is dropped outright.
	require.NoError(t, s.Notify(context.Background(), models.Notification{ID: "n2", UserID: "someone-else"}))
	assert.Len(t, s.Notifications(), 1)
}

func TestNotificationStoreLocalRowsSurviveReload(t *testing.T) {
	s, gw := newTestNotificationStore(t, nil)

	require.NoError(t, s.Notify(context.Background(), models.Notification{ID: "n1", UserID: "user-1", Title: "Reminder"}))

	// A reload replaces the mirror with the backend snapshot; the session
	// row is carried over because the backend never knew about it.
	gw.notifications = []models.Notification{{ID: "n2", UserID: "user-1"}}
	require.NoError(t, s.Load(context.Background()))

	ids := make([]string, 0, 2)
	for _, n := range s.Notifications() {
		ids = append(ids, n.ID)
	}
	assert.ElementsMatch(t, []string{"n1", "n2"}, ids)
}

func TestNotificationStoreMarkAllReadSkipsLocalRows(t *testing.T) {
	s, gw := newTestNotificationStore(t, []models.Notification{
		{ID: "n1", UserID: "user-1", Read: false},
	})
	require.NoError(t, s.Notify(context.Background(), models.Notification{ID: "local-1", UserID: "user-1"}))
	require.Equal(t, 2, s.UnreadCount())

	require.NoError(t, s.MarkAllRead(context.Background()))

	assert.Equal(t, 0, s.UnreadCount())
	assert.Equal(t, []string{"n1"}, gw.markedRead, "only the persisted row is updated remotely")
}

func TestNotificationStoreNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s, _ := newTestNotificationStore(t, []models.Notification{
		{ID: "old", UserID: "user-1", CreatedAt: base},
		{ID: "new", UserID: "user-1", CreatedAt: base.Add(time.Hour)},
	})

	all := s.Notifications()
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].ID)
}

func TestNotificationStoreClosedDiscardsEvents(t *testing.T) {
	s, _ := newTestNotificationStore(t, nil)
	s.Close()

	s.apply(context.Background(), models.ChangeEvent{
		Kind: models.EventInsert,
		New:  mustJSON(models.Notification{ID: "n1", UserID: "user-1"}),
	})
	assert.Empty(t, s.Notifications())
}

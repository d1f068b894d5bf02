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

func newTestMeetingStore(t *testing.T, meetings []models.Meeting) (*MeetingStore, *fakeGateway) {
	t.Helper()
	session := gateway.Session{UserID: "user-1", Name: "Alice"}
	gw := newFakeGateway(session)
	gw.meetings = meetings

	s := NewMeetingStore(gw, session, logging.NewNop())
	require.NoError(t, s.Load(context.Background()))
	return s, gw
}

func TestMeetingStoreSortsByStart(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s, _ := newTestMeetingStore(t, []models.Meeting{
		{ID: "later", StartsAt: base.Add(2 * time.Hour)},
		{ID: "sooner", StartsAt: base},
	})

	meetings := s.Meetings()
	require.Len(t, meetings, 2)
	assert.Equal(t, "sooner", meetings[0].ID)
	assert.Equal(t, "later", meetings[1].ID)
}

func TestMeetingStoreScheduleDefaults(t *testing.T) {
	s, gw := newTestMeetingStore(t, nil)

	created, err := s.Schedule(context.Background(), models.Meeting{Title: "Budget Review"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.MeetingUpcoming, created.Status)
	assert.Equal(t, "user-1", created.OwnerID)

	// Remote write happened and the mirror reflects it without waiting for
	// the push echo.
	assert.Len(t, gw.meetings, 1)
	assert.Len(t, s.Meetings(), 1)
}

func TestMeetingStoreScheduleFailureLeavesMirror(t *testing.T) {
	s, gw := newTestMeetingStore(t, nil)
	gw.failWith = gateway.ErrUnavailable

	_, err := s.Schedule(context.Background(), models.Meeting{Title: "Budget Review"})
	require.ErrorIs(t, err, gateway.ErrUnavailable)
	assert.Empty(t, s.Meetings())
}

func TestMeetingStoreUpdateFoldsResult(t *testing.T) {
	s, _ := newTestMeetingStore(t, []models.Meeting{
		{ID: "m1", Title: "Standup", Status: models.MeetingUpcoming},
	})

	updated, err := s.Update(context.Background(), "m1", gateway.Patch{"title": "Daily Standup"})
	require.NoError(t, err)
	assert.Equal(t, "Daily Standup", updated.Title)

	got, ok := s.Get("m1")
	require.True(t, ok)
	assert.Equal(t, "Daily Standup", got.Title)
}

func TestMeetingStoreCancel(t *testing.T) {
	s, gw := newTestMeetingStore(t, []models.Meeting{{ID: "m1"}})

	require.NoError(t, s.Cancel(context.Background(), "m1"))
	assert.Empty(t, s.Meetings())
	assert.Empty(t, gw.meetings)
}

func TestMeetingStoreApplyEvents(t *testing.T) {
	s, _ := newTestMeetingStore(t, nil)
	ctx := context.Background()

	insert := models.ChangeEvent{
		Kind:  models.EventInsert,
		Table: gateway.TableMeetings,
		New:   mustJSON(models.Meeting{ID: "m1", Title: "Standup"}),
	}
	s.apply(ctx, insert)
	s.apply(ctx, insert) // push echo after an optimistic fold replays as a no-op
	require.Len(t, s.Meetings(), 1)

	s.apply(ctx, models.ChangeEvent{
		Kind:  models.EventUpdate,
		Table: gateway.TableMeetings,
		New:   mustJSON(models.Meeting{ID: "m1", Title: "Daily Standup"}),
	})
	got, ok := s.Get("m1")
	require.True(t, ok)
	assert.Equal(t, "Daily Standup", got.Title)

	s.apply(ctx, models.ChangeEvent{
		Kind:  models.EventDelete,
		Table: gateway.TableMeetings,
		Old:   mustJSON(models.Meeting{ID: "m1"}),
	})
	assert.Empty(t, s.Meetings())
}

func TestMeetingStoreApplyDropsMalformed(t *testing.T) {
	s, _ := newTestMeetingStore(t, nil)

	s.apply(context.Background(), models.ChangeEvent{
		Kind: models.EventInsert,
		New:  []byte(`{not json`),
	})
	assert.Empty(t, s.Meetings())
}

func TestMeetingStoreStartAndClose(t *testing.T) {
	s, gw := newTestMeetingStore(t, nil)

	require.NoError(t, s.Start(context.Background()))

	gw.emit(gateway.TableMeetings, models.ChangeEvent{
		Kind:  models.EventInsert,
		Table: gateway.TableMeetings,
		New:   mustJSON(models.Meeting{ID: "m1"}),
	})

	require.Eventually(t, func() bool {
		return len(s.Meetings()) == 1
	}, time.Second, 5*time.Millisecond)

	s.Close()

	// Dead store: nothing mutates anymore.
	s.apply(context.Background(), models.ChangeEvent{
		Kind: models.EventInsert,
		New:  mustJSON(models.Meeting{ID: "m2"}),
	})
	assert.Len(t, s.Meetings(), 1)
}

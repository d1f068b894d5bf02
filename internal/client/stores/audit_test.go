package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzaikin/boardroom/internal/client/gateway"
	"github.com/mzaikin/boardroom/internal/logging"
)

func TestRecorderWritesEntry(t *testing.T) {
	gw := newFakeGateway(gateway.Session{UserID: "user-1"})
	r := NewRecorder(gw, "user-1", logging.NewNop())

	r.Record("meeting.schedule", "m1")
	r.Wait()

	recs := gw.auditRecords()
	require.Len(t, recs, 1)
	assert.Equal(t, "user-1", recs[0].ActorID)
	assert.Equal(t, "meeting.schedule", recs[0].Action)
	assert.Equal(t, "m1", recs[0].Target)
	assert.NotEmpty(t, recs[0].ID)
}

func TestRecorderSwallowsFailures(t *testing.T) {
	gw := newFakeGateway(gateway.Session{UserID: "user-1"})
	gw.failWith = gateway.ErrUnavailable
	r := NewRecorder(gw, "user-1", logging.NewNop())

	// A failed trail write must never surface to the caller.
	r.Record("meeting.schedule", "m1")
	r.Wait()

	assert.Empty(t, gw.auditRecords())
}

package stores

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mzaikin/boardroom/internal/client/gateway"
	"github.com/mzaikin/boardroom/internal/client/models"
	"github.com/mzaikin/boardroom/internal/logging"
)

const auditTimeout = 5 * time.Second

// Recorder writes audit-log entries for user actions. Recording is
// fire-and-forget: each entry goes out on its own goroutine with its own
// timeout, and a failed write is logged, never surfaced. The portal's
// operations must not slow down or fail because the audit trail is behind.
type Recorder struct {
	gw      gateway.Gateway
	log     logging.Logger
	actorID string

	wg sync.WaitGroup
}

func NewRecorder(gw gateway.Gateway, actorID string, log logging.Logger) *Recorder {
	return &Recorder{gw: gw, actorID: actorID, log: log.With("component", "audit")}
}

// Record queues one audit entry for the current user.
func (r *Recorder) Record(action, target string) {
	rec := models.AuditRecord{
		ID:      uuid.NewString(),
		ActorID: r.actorID,
		Action:  action,
		Target:  target,
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()

		if err := r.gw.RecordAudit(ctx, rec); err != nil {
			r.log.Warn(ctx, "audit write failed", "action", action, "target", target, "error", err)
		}
	}()
}

// Wait blocks until all queued entries have been attempted. Call on shutdown.
func (r *Recorder) Wait() {
	r.wg.Wait()
}

package gateway

import (
	"context"

	"github.com/mzaikin/boardroom/internal/client/models"
)

// Backend table names addressed through the generic record API.
const (
	TableMeetings      = "meetings"
	TableTasks         = "tasks"
	TableNotifications = "notifications"
	TableProfiles      = "profiles"
	TableInvites       = "invites"
	TableAuditLog      = "audit_log"
)

// Patch is a partial update applied to a single remote record. Keys are
// column names in the backend schema.
type Patch map[string]any

// Gateway is the API contract the stores program against. The concrete
// implementation is grpcgateway.Client; tests substitute fakes.
type Gateway interface {
	Close() error

	// Auth.
	Login(ctx context.Context, email, password string) (Session, error)
	Ping(ctx context.Context) error
	Session() Session

	// Meetings.
	ListMeetings(ctx context.Context) ([]models.Meeting, error)
	CreateMeeting(ctx context.Context, m models.Meeting) (models.Meeting, error)
	UpdateMeeting(ctx context.Context, id string, patch Patch) (models.Meeting, error)
	DeleteMeeting(ctx context.Context, id string) error

	// Tasks.
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, t models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, id string, patch Patch) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// Notifications, always scoped to one user. Rows are created by the
	// backend; the client only reads and flags them.
	ListNotifications(ctx context.Context, userID string) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error

	// Directory.
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	UpdateProfile(ctx context.Context, id string, patch Patch) (models.Profile, error)
	ListInvites(ctx context.Context) ([]models.Invite, error)
	CreateInvite(ctx context.Context, inv models.Invite) (models.Invite, error)
	DeleteInvite(ctx context.Context, id string) error

	// RecordAudit writes one best-effort trail entry. Callers treat failures
	// as non-fatal; see stores.Recorder.
	RecordAudit(ctx context.Context, rec models.AuditRecord) error

	// Subscribe opens the change feed for a table, optionally narrowed by
	// column equality filters. Events arrive on the returned channel until
	// the stop function is called or the stream breaks; either way the
	// channel is closed.
	Subscribe(ctx context.Context, table string, filter map[string]string) (<-chan models.ChangeEvent, func(), error)
}

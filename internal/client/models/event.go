package models

import "encoding/json"

// EventKind tags a change-feed event.
type EventKind string

const (
	EventInsert EventKind = "insert"
	EventUpdate EventKind = "update"
	EventDelete EventKind = "delete"
)

// ChangeEvent is one push event from the backend change feed. New carries the
// row after the change (insert/update), Old the row before it (update/delete).
// Rows arrive as raw JSON; the owning store decodes them into its model.
type ChangeEvent struct {
	Kind  EventKind
	Table string
	New   json.RawMessage
	Old   json.RawMessage
}

// AuditRecord is a best-effort trail entry written to the audit_log table.
// Writes are fire-and-forget; see the stores.Recorder.
type AuditRecord struct {
	ID      string `json:"id"`
	ActorID string `json:"actor_id"`
	Action  string `json:"action"`
	Target  string `json:"target,omitempty"`
}

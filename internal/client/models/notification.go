package models

import "time"

// NotificationKind is the closed set of notification categories the portal
// renders. Unknown kinds coming off the wire are preserved as-is but display
// like info.
type NotificationKind string

const (
	KindInfo    NotificationKind = "info"
	KindSuccess NotificationKind = "success"
	KindWarning NotificationKind = "warning"
	KindError   NotificationKind = "error"
	KindFile    NotificationKind = "file"
	KindMeeting NotificationKind = "meeting"
	KindComment NotificationKind = "comment"
)

// Notification mirrors a row of the notifications table, scoped to one user.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Kind      NotificationKind `json:"kind"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

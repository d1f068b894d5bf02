// Package models defines client-side mirrors of the backend rows used by the
// Boardroom portal. The backend is authoritative; these types only reflect
// what the change feed and list calls deliver.
package models

import "time"

// MeetingStatus is the lifecycle state of a meeting. It is assigned by the
// backend; the client reads it and never computes transitions.
type MeetingStatus string

const (
	MeetingUpcoming   MeetingStatus = "Upcoming"
	MeetingInProgress MeetingStatus = "In Progress"
	MeetingCompleted  MeetingStatus = "Completed"
)

// DocumentRef points at a file attached to a meeting. The file itself lives
// in the backend's storage; the client only carries the reference.
type DocumentRef struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

// Meeting mirrors a row of the meetings table.
type Meeting struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	StartsAt    time.Time     `json:"starts_at"`
	EndsAt      time.Time     `json:"ends_at"`
	Location    string        `json:"location"`
	Link        string        `json:"link,omitempty"`
	Category    string        `json:"category"`
	Status      MeetingStatus `json:"status"`
	AttendeeIDs []string      `json:"attendee_ids"`
	Documents   []DocumentRef `json:"documents,omitempty"`
	OwnerID     string        `json:"owner_id"`
	CreatedAt   time.Time     `json:"created_at"`
}

// AttendeeCount returns the number of invited attendees.
func (m *Meeting) AttendeeCount() int { return len(m.AttendeeIDs) }

// Package reminders persists which meetings already produced a
// "starting soon" reminder, keyed by meeting id and calendar day, so that a
// same-day restart of the client does not notify twice.
package reminders

import "context"

// Day keys are formatted as "2006-01-02" in the client's local time.

// Repository records delivered reminders.
type Repository interface {
	// MarkNotified records that the meeting's reminder went out on the
	// given day. Recording the same pair twice is a no-op.
	MarkNotified(ctx context.Context, meetingID, day string) error

	// NotifiedOn returns the meeting ids already notified on the given day.
	NotifiedOn(ctx context.Context, day string) ([]string, error)

	// Restore sweeps ledger rows older than the given day and returns the
	// ids already notified on that day, as one atomic operation.
	Restore(ctx context.Context, day string) ([]string, error)
}

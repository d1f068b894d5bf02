package models

import "time"

// ProfileStatus is the account state shown in the user directory.
type ProfileStatus string

const (
	StatusActive   ProfileStatus = "Active"
	StatusInactive ProfileStatus = "Inactive"
	StatusInvited  ProfileStatus = "Invited"
)

// InviteIDPrefix guarantees a synthetic invite identity never collides with
// a real profile id.
const InviteIDPrefix = "invite-"

// PendingJoinDepartment is the sentinel shown for invites that were sent
// without a department.
const PendingJoinDepartment = "Pending Join"

// Profile mirrors a row of the profiles table: an onboarded account.
type Profile struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Department   string        `json:"department"`
	Role         string        `json:"role"`
	Status       ProfileStatus `json:"status"`
	LastActiveAt time.Time     `json:"last_active_at"`
}

// Invite mirrors a row of the invites table: a member who has not onboarded
// yet. The row id addresses the remote record; the directory identity is
// always derived from the email.
type Invite struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department,omitempty"`
	InvitedAt  time.Time `json:"invited_at"`
}

// DirectoryEntry is the tagged union the directory list is made of: either a
// ProfileEntry or an InviteEntry. The marker method seals the set so
// downstream switches stay exhaustive.
type DirectoryEntry interface {
	// EntryID is the display identity: the profile id for profiles, and
	// "invite-<email>" for invites.
	EntryID() string
	DisplayName() string
	EmailAddress() string
	DepartmentName() string
	RoleName() string
	StatusLabel() ProfileStatus

	directoryEntry()
}

// ProfileEntry is the profile variant of DirectoryEntry.
type ProfileEntry struct {
	Profile
}

func (e ProfileEntry) EntryID() string            { return e.ID }
func (e ProfileEntry) DisplayName() string        { return e.Name }
func (e ProfileEntry) EmailAddress() string       { return e.Email }
func (e ProfileEntry) DepartmentName() string     { return e.Department }
func (e ProfileEntry) RoleName() string           { return e.Role }
func (e ProfileEntry) StatusLabel() ProfileStatus { return e.Status }
func (e ProfileEntry) directoryEntry()            {}

// InviteEntry is the invitation variant of DirectoryEntry. Status is always
// Invited and an absent department reads as the pending-join sentinel.
type InviteEntry struct {
	Invite
}

func (e InviteEntry) EntryID() string      { return InviteIDPrefix + e.Email }
func (e InviteEntry) DisplayName() string  { return e.Email }
func (e InviteEntry) EmailAddress() string { return e.Email }

func (e InviteEntry) DepartmentName() string {
	if e.Department == "" {
		return PendingJoinDepartment
	}
	return e.Department
}

func (e InviteEntry) RoleName() string           { return e.Role }
func (e InviteEntry) StatusLabel() ProfileStatus { return StatusInvited }
func (e InviteEntry) directoryEntry()            {}

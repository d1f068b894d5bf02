package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileEntryProjection(t *testing.T) {
	e := ProfileEntry{Profile: Profile{
		ID:         "p1",
		Name:       "Carol Chen",
		Email:      "carol@acme.org",
		Department: "Finance",
		Role:       "Member",
		Status:     StatusActive,
	}}

	assert.Equal(t, "p1", e.EntryID())
	assert.Equal(t, "Carol Chen", e.DisplayName())
	assert.Equal(t, "carol@acme.org", e.EmailAddress())
	assert.Equal(t, "Finance", e.DepartmentName())
	assert.Equal(t, "Member", e.RoleName())
	assert.Equal(t, StatusActive, e.StatusLabel())
}

func TestInviteEntryProjection(t *testing.T) {
	e := InviteEntry{Invite: Invite{
		ID:    "row-7",
		Email: "dana@acme.org",
		Role:  "Member",
	}}

	// The directory identity is derived from the email, never the row id.
	assert.Equal(t, "invite-dana@acme.org", e.EntryID())
	assert.Equal(t, "dana@acme.org", e.DisplayName())
	assert.Equal(t, StatusInvited, e.StatusLabel())
	assert.Equal(t, PendingJoinDepartment, e.DepartmentName())
}

func TestInviteEntryKeepsExplicitDepartment(t *testing.T) {
	e := InviteEntry{Invite: Invite{Email: "dana@acme.org", Department: "Legal"}}
	assert.Equal(t, "Legal", e.DepartmentName())
}

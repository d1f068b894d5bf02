package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzaikin/boardroom/internal/client/gateway"
	"github.com/mzaikin/boardroom/internal/client/models"
	"github.com/mzaikin/boardroom/internal/logging"
)

func newTestDirectory(t *testing.T, profiles []models.Profile, invites []models.Invite) (*Directory, *fakeGateway) {
	t.Helper()
	session := gateway.Session{UserID: "user-1", Name: "Alice", Role: "Admin"}
	gw := newFakeGateway(session)
	gw.profiles = profiles
	gw.invites = invites

	d := NewDirectory(gw, session, logging.NewNop())
	require.NoError(t, d.Load(context.Background()))
	return d, gw
}

func TestDirectoryMergesProfilesAndInvites(t *testing.T) {
	d, _ := newTestDirectory(t,
		[]models.Profile{
			{ID: "p1", Name: "Carol Chen", Email: "carol@acme.org", Department: "Finance", Role: "Member", Status: models.StatusActive},
			{ID: "p2", Name: "Bob Diaz", Email: "bob@acme.org", Department: "Legal", Role: "Admin", Status: models.StatusActive},
		},
		[]models.Invite{
			{ID: "row-7", Email: "dana@acme.org", Role: "Member"},
		},
	)

	entries := d.Entries()
	require.Len(t, entries, 3)

	// Sorted by display name, case-insensitively: Bob, Carol, dana.
	assert.Equal(t, "p2", entries[0].EntryID())
	assert.Equal(t, "p1", entries[1].EntryID())
	assert.Equal(t, "invite-dana@acme.org", entries[2].EntryID())

	invite := entries[2]
	assert.Equal(t, models.StatusInvited, invite.StatusLabel())
	assert.Equal(t, models.PendingJoinDepartment, invite.DepartmentName())
	assert.Equal(t, "dana@acme.org", invite.DisplayName())
}

func TestDirectoryFilterByQuery(t *testing.T) {
	d, _ := newTestDirectory(t,
		[]models.Profile{
			{ID: "p1", Name: "Carol Chen", Email: "carol@acme.org", Department: "Finance"},
			{ID: "p2", Name: "Bob Diaz", Email: "bob@acme.org", Department: "Legal"},
		},
		[]models.Invite{
			{ID: "row-7", Email: "dana@finance-consult.example", Role: "Member"},
		},
	)

	// Query matches name, email and department, case-insensitively.
	got := d.Filter(DirectoryFilter{Query: "finance"})
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].EntryID())
	assert.Equal(t, "invite-dana@finance-consult.example", got[1].EntryID())
}

func TestDirectoryFilterByRole(t *testing.T) {
	d, _ := newTestDirectory(t,
		[]models.Profile{
			{ID: "p1", Name: "Carol", Role: "Member"},
			{ID: "p2", Name: "Bob", Role: "Admin"},
		},
		[]models.Invite{
			// The invite carries a role it has not assumed yet.
			{ID: "row-7", Email: "dana@acme.org", Role: "Admin"},
		},
	)

	admins := d.Filter(DirectoryFilter{Role: "Admin"})
	require.Len(t, admins, 1)
	assert.Equal(t, "p2", admins[0].EntryID())

	invited := d.Filter(DirectoryFilter{Role: "Invited"})
	require.Len(t, invited, 1)
	assert.Equal(t, "invite-dana@acme.org", invited[0].EntryID())
}

func TestDirectoryRemoveProfileRevokes(t *testing.T) {
	d, gw := newTestDirectory(t,
		[]models.Profile{{ID: "p1", Name: "Carol", Status: models.StatusActive}},
		nil,
	)

	require.NoError(t, d.Remove(context.Background(), "p1"))

	// A profile is never deleted: the row stays, flipped to Inactive.
	entries := d.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, models.StatusInactive, entries[0].StatusLabel())
	assert.Equal(t, gateway.Patch{"status": models.StatusInactive}, gw.profilePatches["p1"])
	assert.Empty(t, gw.deletedInvites)
}

func TestDirectoryRemoveInviteCancels(t *testing.T) {
	d, gw := newTestDirectory(t, nil,
		[]models.Invite{{ID: "row-7", Email: "dana@acme.org"}},
	)

	require.NoError(t, d.Remove(context.Background(), "invite-dana@acme.org"))

	// An invite is cancelled outright: the row is gone, addressed by its
	// remote id, not the synthetic directory identity.
	assert.Empty(t, d.Entries())
	assert.Equal(t, []string{"row-7"}, gw.deletedInvites)
	assert.Empty(t, gw.profilePatches)
}

func TestDirectoryRemoveUnknownEntry(t *testing.T) {
	d, _ := newTestDirectory(t, nil, nil)
	err := d.Remove(context.Background(), "nope")
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestDirectoryInvite(t *testing.T) {
	d, gw := newTestDirectory(t, nil, nil)

	created, err := d.Invite(context.Background(), " Dana@Acme.org ", "Member", "")
	require.NoError(t, err)
	assert.Equal(t, "dana@acme.org", created.Email)
	require.Len(t, gw.invites, 1)

	entries := d.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "invite-dana@acme.org", entries[0].EntryID())
}

func TestDirectoryInviteRejectsDuplicates(t *testing.T) {
	d, _ := newTestDirectory(t,
		[]models.Profile{{ID: "p1", Name: "Carol", Email: "carol@acme.org"}},
		[]models.Invite{{ID: "row-7", Email: "dana@acme.org"}},
	)

	_, err := d.Invite(context.Background(), "carol@acme.org", "Member", "")
	assert.ErrorIs(t, err, gateway.ErrInvalidInput)

	_, err = d.Invite(context.Background(), "DANA@acme.org", "Member", "")
	assert.ErrorIs(t, err, gateway.ErrInvalidInput)

	_, err = d.Invite(context.Background(), "   ", "Member", "")
	assert.ErrorIs(t, err, gateway.ErrInvalidInput)
}

func TestDirectoryApproveProfile(t *testing.T) {
	d, gw := newTestDirectory(t,
		[]models.Profile{{ID: "p1", Name: "Carol", Status: models.StatusInvited}},
		nil,
	)

	require.NoError(t, d.Approve(context.Background(), "p1"))

	entries := d.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, models.StatusActive, entries[0].StatusLabel())
	assert.Equal(t, gateway.Patch{"status": models.StatusActive}, gw.profilePatches["p1"])
}

func TestDirectoryApproveInvite(t *testing.T) {
	d, gw := newTestDirectory(t, nil,
		[]models.Invite{{ID: "row-7", Email: "dana@acme.org"}},
	)

	require.NoError(t, d.Approve(context.Background(), "invite-dana@acme.org"))

	assert.Empty(t, d.Entries())
	assert.Equal(t, []string{"row-7"}, gw.deletedInvites)
}

func TestDirectoryApplyInviteEvents(t *testing.T) {
	d, _ := newTestDirectory(t, nil, nil)
	ctx := context.Background()

	d.applyInvite(ctx, models.ChangeEvent{
		Kind:  models.EventInsert,
		Table: gateway.TableInvites,
		New:   mustJSON(models.Invite{ID: "row-7", Email: "dana@acme.org"}),
	})
	require.Len(t, d.Entries(), 1)

	// Onboarding: the invite row is deleted and a profile row appears.
	d.applyInvite(ctx, models.ChangeEvent{
		Kind:  models.EventDelete,
		Table: gateway.TableInvites,
		Old:   mustJSON(models.Invite{ID: "row-7", Email: "dana@acme.org"}),
	})
	d.applyProfile(ctx, models.ChangeEvent{
		Kind:  models.EventInsert,
		Table: gateway.TableProfiles,
		New:   mustJSON(models.Profile{ID: "p9", Name: "Dana", Email: "dana@acme.org", Status: models.StatusActive}),
	})

	entries := d.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "p9", entries[0].EntryID())
	assert.Equal(t, models.StatusActive, entries[0].StatusLabel())
}

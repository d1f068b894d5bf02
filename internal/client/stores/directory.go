package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mzaikin/boardroom/internal/client/gateway"
	"github.com/mzaikin/boardroom/internal/client/models"
	"github.com/mzaikin/boardroom/internal/logging"
)

// DirectoryFilter narrows the directory listing. Query matches name, email
// and department as a case-insensitive substring; Role matches exactly.
type DirectoryFilter struct {
	Query string
	Role  string
}

// Directory merges the profiles and invites tables into one member list.
// Profiles and invites stay in separate mirrors fed by separate
// subscriptions; the merge happens on read.
type Directory struct {
	gw      gateway.Gateway
	log     logging.Logger
	session gateway.Session

	mu       sync.RWMutex
	profiles []models.Profile
	invites  []models.Invite
	closed   bool

	cancel context.CancelFunc
	stops  []func()
	done   []chan struct{}
}

func NewDirectory(gw gateway.Gateway, session gateway.Session, log logging.Logger) *Directory {
	return &Directory{gw: gw, session: session, log: log.With("store", "directory")}
}

// Load replaces both mirrors with fresh snapshots.
func (s *Directory) Load(ctx context.Context) error {
	profiles, err := s.gw.ListProfiles(ctx)
	if err != nil {
		return fmt.Errorf("loading profiles: %w", err)
	}
	invites, err := s.gw.ListInvites(ctx)
	if err != nil {
		return fmt.Errorf("loading invites: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.profiles = profiles
	s.invites = invites
	return nil
}

// Start loads both mirrors and follows both change feeds until Close.
func (s *Directory) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	if err := s.Load(ctx); err != nil {
		cancel()
		return err
	}

	profileEvents, stopProfiles, err := s.gw.Subscribe(ctx, gateway.TableProfiles, nil)
	if err != nil {
		cancel()
		return fmt.Errorf("subscribing to profiles: %w", err)
	}
	inviteEvents, stopInvites, err := s.gw.Subscribe(ctx, gateway.TableInvites, nil)
	if err != nil {
		stopProfiles()
		cancel()
		return fmt.Errorf("subscribing to invites: %w", err)
	}

	profilesDone := make(chan struct{})
	invitesDone := make(chan struct{})

	s.mu.Lock()
	s.cancel = cancel
	s.stops = []func(){stopProfiles, stopInvites}
	s.done = []chan struct{}{profilesDone, invitesDone}
	s.mu.Unlock()

	go func() {
		defer close(profilesDone)
		for ev := range profileEvents {
			s.applyProfile(ctx, ev)
		}
	}()
	go func() {
		defer close(invitesDone)
		for ev := range inviteEvents {
			s.applyInvite(ctx, ev)
		}
	}()

	return nil
}

// Close stops both change feeds and marks the store dead.
func (s *Directory) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	cancel, stops, done := s.cancel, s.stops, s.done
	s.mu.Unlock()

	for _, stop := range stops {
		stop()
	}
	if cancel != nil {
		cancel()
	}
	for _, d := range done {
		<-d
	}
}

// Entries merges both mirrors into one list sorted by display name,
// case-insensitively.
func (s *Directory) Entries() []models.DirectoryEntry {
	s.mu.RLock()
	out := make([]models.DirectoryEntry, 0, len(s.profiles)+len(s.invites))
	for _, p := range s.profiles {
		out = append(out, models.ProfileEntry{Profile: p})
	}
	for _, inv := range s.invites {
		out = append(out, models.InviteEntry{Invite: inv})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].DisplayName()) < strings.ToLower(out[j].DisplayName())
	})
	return out
}

// Filter narrows Entries. A role filter other than Invited can only match
// profiles: invites carry their intended role, but they have not assumed it
// yet, so they surface only under the Invited label itself.
func (s *Directory) Filter(filter DirectoryFilter) []models.DirectoryEntry {
	query := strings.ToLower(filter.Query)

	var out []models.DirectoryEntry
	for _, e := range s.Entries() {
		if filter.Role != "" {
			if _, isInvite := e.(models.InviteEntry); isInvite {
				if filter.Role != string(models.StatusInvited) {
					continue
				}
			} else if e.RoleName() != filter.Role {
				continue
			}
		}
		if query != "" && !matchesQuery(e, query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesQuery(e models.DirectoryEntry, query string) bool {
	return strings.Contains(strings.ToLower(e.DisplayName()), query) ||
		strings.Contains(strings.ToLower(e.EmailAddress()), query) ||
		strings.Contains(strings.ToLower(e.DepartmentName()), query)
}

// Get returns the entry with the given display identity.
func (s *Directory) Get(entryID string) (models.DirectoryEntry, bool) {
	for _, e := range s.Entries() {
		if e.EntryID() == entryID {
			return e, true
		}
	}
	return nil, false
}

// Invite creates an invitation for an email address that is not in the
// directory yet.
func (s *Directory) Invite(ctx context.Context, email, role, department string) (models.Invite, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return models.Invite{}, fmt.Errorf("inviting member: %w", gateway.ErrInvalidInput)
	}

	s.mu.RLock()
	for _, p := range s.profiles {
		if strings.EqualFold(p.Email, email) {
			s.mu.RUnlock()
			return models.Invite{}, fmt.Errorf("inviting member: %s already has a profile: %w", email, gateway.ErrInvalidInput)
		}
	}
	for _, inv := range s.invites {
		if strings.EqualFold(inv.Email, email) {
			s.mu.RUnlock()
			return models.Invite{}, fmt.Errorf("inviting member: %s already invited: %w", email, gateway.ErrInvalidInput)
		}
	}
	s.mu.RUnlock()

	created, err := s.gw.CreateInvite(ctx, models.Invite{
		ID:         uuid.NewString(),
		Email:      email,
		Role:       role,
		Department: department,
	})
	if err != nil {
		return models.Invite{}, fmt.Errorf("inviting member: %w", err)
	}

	s.mu.Lock()
	if !s.closed {
		s.invites = upsertByID(s.invites, inviteID, created)
	}
	s.mu.Unlock()
	return created, nil
}

// Remove takes a member out of the directory. The two variants diverge: an
// invite is cancelled outright (the row is deleted), while a profile is
// revoked (status set Inactive, the row kept for history).
func (s *Directory) Remove(ctx context.Context, entryID string) error {
	entry, ok := s.Get(entryID)
	if !ok {
		return fmt.Errorf("removing member %s: %w", entryID, gateway.ErrNotFound)
	}

	switch e := entry.(type) {
	case models.InviteEntry:
		if err := s.gw.DeleteInvite(ctx, e.Invite.ID); err != nil {
			return fmt.Errorf("cancelling invite: %w", err)
		}
		s.mu.Lock()
		if !s.closed {
			s.invites = removeByID(s.invites, inviteID, e.Invite.ID)
		}
		s.mu.Unlock()
		return nil

	case models.ProfileEntry:
		updated, err := s.gw.UpdateProfile(ctx, e.Profile.ID, gateway.Patch{"status": models.StatusInactive})
		if err != nil {
			return fmt.Errorf("revoking access: %w", err)
		}
		s.mu.Lock()
		if !s.closed {
			s.profiles = upsertByID(s.profiles, profileID, updated)
		}
		s.mu.Unlock()
		return nil

	default:
		return fmt.Errorf("removing member %s: unknown entry variant", entryID)
	}
}

// Approve completes onboarding for a directory entry. Like Remove, it
// branches on the variant: an invite row is deleted once the backend has
// minted the profile, while a profile is flipped to Active.
func (s *Directory) Approve(ctx context.Context, entryID string) error {
	entry, ok := s.Get(entryID)
	if !ok {
		return fmt.Errorf("approving member %s: %w", entryID, gateway.ErrNotFound)
	}

	switch e := entry.(type) {
	case models.InviteEntry:
		if err := s.gw.DeleteInvite(ctx, e.Invite.ID); err != nil {
			return fmt.Errorf("approving invite: %w", err)
		}
		s.mu.Lock()
		if !s.closed {
			s.invites = removeByID(s.invites, inviteID, e.Invite.ID)
		}
		s.mu.Unlock()
		return nil

	case models.ProfileEntry:
		updated, err := s.gw.UpdateProfile(ctx, e.Profile.ID, gateway.Patch{"status": models.StatusActive})
		if err != nil {
			return fmt.Errorf("approving member: %w", err)
		}
		s.mu.Lock()
		if !s.closed {
			s.profiles = upsertByID(s.profiles, profileID, updated)
		}
		s.mu.Unlock()
		return nil

	default:
		return fmt.Errorf("approving member %s: unknown entry variant", entryID)
	}
}

func profileID(p models.Profile) string { return p.ID }
func inviteID(i models.Invite) string   { return i.ID }

func (s *Directory) applyProfile(ctx context.Context, ev models.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	switch ev.Kind {
	case models.EventInsert, models.EventUpdate:
		var p models.Profile
		if err := json.Unmarshal(ev.New, &p); err != nil {
			s.log.Warn(ctx, "dropping malformed profile event", "kind", ev.Kind, "error", err)
			return
		}
		s.profiles = upsertByID(s.profiles, profileID, p)

	case models.EventDelete:
		var p models.Profile
		if err := json.Unmarshal(ev.Old, &p); err != nil {
			s.log.Warn(ctx, "dropping malformed profile event", "kind", ev.Kind, "error", err)
			return
		}
		s.profiles = removeByID(s.profiles, profileID, p.ID)
	}
}

func (s *Directory) applyInvite(ctx context.Context, ev models.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	switch ev.Kind {
	case models.EventInsert, models.EventUpdate:
		var inv models.Invite
		if err := json.Unmarshal(ev.New, &inv); err != nil {
			s.log.Warn(ctx, "dropping malformed invite event", "kind", ev.Kind, "error", err)
			return
		}
		s.invites = upsertByID(s.invites, inviteID, inv)

	case models.EventDelete:
		var inv models.Invite
		if err := json.Unmarshal(ev.Old, &inv); err != nil {
			s.log.Warn(ctx, "dropping malformed invite event", "kind", ev.Kind, "error", err)
			return
		}
		s.invites = removeByID(s.invites, inviteID, inv.ID)
	}
}

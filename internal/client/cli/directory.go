package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mzaikin/boardroom/internal/client/stores"
)

// ListUsers prints the member directory, optionally narrowed by a query that
// matches names, emails and departments.
func (a *App) ListUsers(ctx context.Context, query string) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	entries := a.directory.Filter(stores.DirectoryFilter{Query: query})
	if len(entries) == 0 {
		fmt.Println("No members")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-10s  %s <%s> (%s)\n", e.EntryID(), e.StatusLabel(), e.DisplayName(), e.EmailAddress(), e.DepartmentName())
	}
	return nil
}

// InviteUser interactively collects the invitation fields and sends it.
func (a *App) InviteUser(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Role (empty for Member)", os.Stdout)
	if err != nil {
		return err
	}
	if role == "" {
		role = "Member"
	}
	department, err := getSimpleText(a.reader, "Department (empty for pending)", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.directory.Invite(ctx, email, role, department)
	if err != nil {
		fmt.Println("Could not invite:", err.Error())
		return err
	}

	a.recorder.Record("directory.invite", created.Email)
	fmt.Println("Invited", created.Email)
	return nil
}

// ApproveUser completes onboarding for a directory entry.
func (a *App) ApproveUser(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	if err := a.directory.Approve(ctx, id); err != nil {
		fmt.Println("Could not approve:", err.Error())
		return err
	}

	a.recorder.Record("directory.approve", id)
	fmt.Println("Approved", id)
	return nil
}

// RevokeUser removes a directory entry: profiles are deactivated, invites
// cancelled.
func (a *App) RevokeUser(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	if err := a.directory.Remove(ctx, id); err != nil {
		fmt.Println("Could not revoke:", err.Error())
		return err
	}

	a.recorder.Record("directory.revoke", id)
	fmt.Println("Revoked", id)
	return nil
}

package cli

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var kindTitle = cases.Title(language.English)

// ListNotifications prints the user's notifications, newest first. Unread
// rows are marked with an asterisk.
func (a *App) ListNotifications(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	notifications := a.notifications.Notifications()
	if len(notifications) == 0 {
		fmt.Println("No notifications")
		return nil
	}

	for _, n := range notifications {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Printf("%s %s  [%s]  %s: %s\n", marker, n.ID, kindTitle.String(string(n.Kind)), n.Title, n.Message)
	}
	fmt.Printf("%d unread\n", a.notifications.UnreadCount())
	return nil
}

// MarkRead marks one notification read.
func (a *App) MarkRead(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	if err := a.notifications.MarkRead(ctx, id); err != nil {
		fmt.Println("Could not mark read:", err.Error())
		return err
	}
	return nil
}

// MarkAllRead marks every unread notification read.
func (a *App) MarkAllRead(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	if err := a.notifications.MarkAllRead(ctx); err != nil {
		fmt.Println("Could not mark all read:", err.Error())
		return err
	}
	fmt.Println("All notifications read")
	return nil
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "(not logged in)"
	}
	s := a.session.Name
	if mode := a.getMode(); mode != "" {
		s = fmt.Sprintf("%s %s", s, mode)
	}
	if a.notifications != nil {
		if unread := a.notifications.UnreadCount(); unread > 0 {
			s = fmt.Sprintf("%s, %d unread", s, unread)
		}
	}
	return fmt.Sprintf("(%s)", s)
}

// Root runs the interactive loop on stdin. It prompts for a login first and
// then hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to Boardroom CLI (type 'help' for commands)")

	_ = a.Login(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

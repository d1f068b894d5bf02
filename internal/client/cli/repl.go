package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ListMeetings(ctx context.Context) error
	ScheduleMeeting(ctx context.Context) error
	CancelMeeting(ctx context.Context, id string) error
	ListTasks(ctx context.Context) error
	AddTask(ctx context.Context) error
	CompleteTask(ctx context.Context, id string) error
	ListNotifications(ctx context.Context) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	ListUsers(ctx context.Context, query string) error
	InviteUser(ctx context.Context) error
	ApproveUser(ctx context.Context, id string) error
	RevokeUser(ctx context.Context, id string) error
}

// runREPL starts a simple read–eval–print loop for the Boardroom CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help              — show available commands
//	  - meetings          — list meetings
//	  - schedule          — schedule a meeting (interactive)
//	  - cancel <id>       — cancel a meeting
//	  - tasks             — list action items
//	  - addtask           — add an action item (interactive)
//	  - done <id>         — complete an action item
//	  - notifications     — list notifications
//	  - read <id>         — mark one notification read
//	  - readall           — mark all notifications read
//	  - users [query]     — list the member directory
//	  - invite            — invite a member (interactive)
//	  - approve <id>      — complete onboarding for a member
//	  - revoke <id>       — revoke access or cancel an invite
//	  - logout            — log out
//	  - exit | quit       — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("board> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: meetings, schedule, cancel, tasks, addtask, done, notifications, read, readall, users, invite, approve, revoke, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "m", "meetings":
			_ = a.ListMeetings(ctx)

		case "schedule":
			_ = a.ScheduleMeeting(ctx)

		case "cancel":
			if len(args) == 0 {
				printlnFn("Usage: cancel <id>")
				continue
			}
			_ = a.CancelMeeting(ctx, args[0])

		case "t", "tasks":
			_ = a.ListTasks(ctx)

		case "addtask":
			_ = a.AddTask(ctx)

		case "done":
			if len(args) == 0 {
				printlnFn("Usage: done <id>")
				continue
			}
			_ = a.CompleteTask(ctx, args[0])

		case "n", "notifications":
			_ = a.ListNotifications(ctx)

		case "read":
			if len(args) == 0 {
				printlnFn("Usage: read <id>")
				continue
			}
			_ = a.MarkRead(ctx, args[0])

		case "readall":
			_ = a.MarkAllRead(ctx)

		case "u", "users":
			query := ""
			if len(args) > 0 {
				query = strings.Join(args, " ")
			}
			_ = a.ListUsers(ctx, query)

		case "invite":
			_ = a.InviteUser(ctx)

		case "approve":
			if len(args) == 0 {
				printlnFn("Usage: approve <id>")
				continue
			}
			_ = a.ApproveUser(ctx, args[0])

		case "revoke":
			if len(args) == 0 {
				printlnFn("Usage: revoke <id>")
				continue
			}
			_ = a.RevokeUser(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// Package cli provides the interactive Boardroom command-line client.
//
// It wires configuration, the local database, the backend gateway, and an
// interactive REPL over the entity stores. Typical flow: prompt for
// credentials, activate the stores and the reminder scheduler, and execute
// user commands until exit.
//
// Key features:
//   - Login / Logout
//   - Meetings: list, schedule, cancel
//   - Action items: list, add, complete
//   - Notifications: list, mark read, mark all read
//   - Directory: list, invite, revoke
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

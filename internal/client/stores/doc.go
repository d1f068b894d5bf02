// Package stores holds the in-memory mirrors of the backend tables and the
// client-side logic that runs over them.
//
// Each store owns one slice of rows, guarded by its own mutex; there is no
// cross-store locking. A store is constructed with the current Session
// (identity is explicit, never ambient), loaded with a snapshot fetch, and
// then kept in sync by the backend change feed: push events are applied as
// pure by-identity reducers (append-if-absent, replace-if-present,
// remove-if-present), so an event that was already reflected by a local
// optimistic update replays as a no-op.
//
// User mutations go remote-first: the write is issued against the backend
// and, only on success, folded into the mirror ahead of the push echo. A
// failed write leaves local state untouched.
//
// Teardown: Close cancels the store's context, stops the change-feed
// subscription, and flips a closed flag that is checked before every state
// mutation, so results of in-flight operations are discarded rather than
// applied to a dead store.
package stores

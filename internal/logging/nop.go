package logging

import "log/slog"

// NewNop returns a Logger that discards everything. Intended for tests and
// as a default before configuration is loaded.
func NewNop() Logger {
	return NewSlogLogger(slog.New(slog.DiscardHandler))
}

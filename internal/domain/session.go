package domain

import "context"

// SessionStore keeps the rendered result rows of every session, newest first.
// Implementations must be safe for concurrent use by independent requests.
type SessionStore interface {
	// Append prepends row to the session's history, creating the session if
	// needed and trimming the oldest rows beyond the configured maximum.
	Append(ctx context.Context, sessionID, row string) error
	// Rows returns the session's rows newest first, or nil if the session is unknown.
	Rows(ctx context.Context, sessionID string) ([]string, error)
	// Clear removes the session entirely. Unknown sessions are a no-op.
	Clear(ctx context.Context, sessionID string) error
}

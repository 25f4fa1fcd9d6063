package ports

import "context"

// SessionStore is the single persistent slot holding the session token.
// Implementations never fail: when the slot is unavailable Get reports
// absence and Set/Clear are no-ops.
type SessionStore interface {
	Get(ctx context.Context) (string, bool)
	Set(ctx context.Context, token string)
	Clear(ctx context.Context)
}

// Pinger is implemented by stores backed by a remote service.
type Pinger interface {
	Ping(ctx context.Context) error
}

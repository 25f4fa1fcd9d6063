package ports

import (
	"context"

	"github.com/culturahub/portal/internal/core/domain"
)

// Navigator is the routing capability used by logout to leave the admin area.
type Navigator interface {
	Navigate(path string)
}

// SessionService manages the authentication lifecycle of one client.
type SessionService interface {
	Init(ctx context.Context)
	Login(ctx context.Context, email, password string) (*domain.LoginResult, error)
	Logout(ctx context.Context)
	State() domain.SessionState
	Token(ctx context.Context) (string, bool)
}

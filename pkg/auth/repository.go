package auth

import (
	"context"
	"errors"
	"time"

	"github.com/artem13815/rolepanel/pkg/user"
)

// Common errors used by the login flow
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// UserFinder is the slice of the user store the login flow needs.
type UserFinder interface {
	GetByUsername(ctx context.Context, username string) (user.User, error)
}

// RevocationStore remembers logged out session ids until their tokens expire.
// Implementations may be in-memory or Redis.
type RevocationStore interface {
	Revoke(ctx context.Context, sessionID string, until time.Time) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

package auth

import (
	"slices"
	"time"

	"github.com/artem13815/rolepanel/pkg/user"
)

// Principal is the authenticated identity attached to a single request.
type Principal struct {
	Username string
	Level    user.Level
}

// HasLevel reports whether the principal holds one of the given levels.
func (p Principal) HasLevel(levels ...user.Level) bool {
	return slices.Contains(levels, p.Level)
}

// Session is an issued login session ready to be handed to the client.
type Session struct {
	ID        string
	Token     string
	ExpiresAt time.Time
}

// SessionClaims is what a verified session token asserts.
type SessionClaims struct {
	Principal
	ID        string
	ExpiresAt time.Time
}

package auth

import "context"

// SessionTokens abstracts session token issuing and verification (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type SessionTokens interface {
	Issue(ctx context.Context, p Principal) (Session, error)
	Parse(ctx context.Context, token string) (SessionClaims, error)
}

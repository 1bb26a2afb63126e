package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/artem13815/rolepanel/pkg/user"
)

// UseCase describes the login/session behavior.
type UseCase interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (Principal, error)
}

type LoginResult struct {
	Principal Principal
	Session   Session
}

// PasswordVerifier checks a submitted password against the stored credential.
type PasswordVerifier interface {
	Verify(digest, password string) bool
}

type service struct {
	users     UserFinder
	passwords PasswordVerifier
	tokens    SessionTokens
	revoked   RevocationStore
}

// NewService returns default implementation of UseCase.
func NewService(users UserFinder, passwords PasswordVerifier, tokens SessionTokens, revoked RevocationStore) UseCase {
	return &service{users: users, passwords: passwords, tokens: tokens, revoked: revoked}
}

func (s *service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	if username == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("lookup user: %w", err)
	}
	if !s.passwords.Verify(u.Password, password) {
		return LoginResult{}, ErrInvalidCredentials
	}

	p := Principal{Username: u.Username, Level: u.Level}
	sess, err := s.tokens.Issue(ctx, p)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue session: %w", err)
	}
	return LoginResult{Principal: p, Session: sess}, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(ctx, token)
	if err != nil {
		return ErrInvalidSession
	}
	return s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt)
}

func (s *service) Resolve(ctx context.Context, token string) (Principal, error) {
	if token == "" {
		return Principal{}, ErrInvalidSession
	}
	claims, err := s.tokens.Parse(ctx, token)
	if err != nil {
		return Principal{}, ErrInvalidSession
	}
	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return Principal{}, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return Principal{}, ErrInvalidSession
	}
	// The token only names the account; its level is read from storage on every request.
	u, err := s.users.GetByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Principal{}, ErrInvalidSession
		}
		return Principal{}, fmt.Errorf("lookup session user: %w", err)
	}
	return Principal{Username: u.Username, Level: u.Level}, nil
}

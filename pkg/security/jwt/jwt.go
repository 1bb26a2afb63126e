package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/artem13815/rolepanel/pkg/auth"
	"github.com/artem13815/rolepanel/pkg/user"
)

// Manager issues and verifies HS256 session tokens.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret, issuer string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// Claims carries the standard claims plus the user's level.
type Claims struct {
	jwt.RegisteredClaims
	Level user.Level `json:"level"`
}

func (m *Manager) Issue(_ context.Context, p auth.Principal) (auth.Session, error) {
	now := m.now().UTC()
	exp := now.Add(m.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			Subject:   p.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Level: p.Level,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return auth.Session{}, err
	}
	return auth.Session{ID: claims.ID, Token: token, ExpiresAt: exp}, nil
}

func (m *Manager) Parse(_ context.Context, tokenStr string) (auth.SessionClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return auth.SessionClaims{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return auth.SessionClaims{}, errors.New("invalid token claims")
	}
	level, err := user.ParseLevel(string(claims.Level))
	if err != nil {
		return auth.SessionClaims{}, err
	}
	if claims.Subject == "" || claims.ID == "" {
		return auth.SessionClaims{}, errors.New("token missing subject or id")
	}
	return auth.SessionClaims{
		Principal: auth.Principal{Username: claims.Subject, Level: level},
		ID:        claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/rolepanel/pkg/auth"
	"github.com/artem13815/rolepanel/pkg/user"
)

func TestManager_IssueParseRoundTrip(t *testing.T) {
	m := NewManager("secret", "rolepanel", time.Hour)
	ctx := context.Background()

	sess, err := m.Issue(ctx, auth.Principal{Username: "alice", Level: user.LevelOperator})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.NotEmpty(t, sess.Token)

	claims, err := m.Parse(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, user.LevelOperator, claims.Level)
	assert.Equal(t, sess.ID, claims.ID)
	assert.WithinDuration(t, sess.ExpiresAt, claims.ExpiresAt, time.Second)
}

func TestManager_RejectsWrongSecret(t *testing.T) {
	ctx := context.Background()
	sess, err := NewManager("one", "rolepanel", time.Hour).Issue(ctx, auth.Principal{Username: "a", Level: user.LevelAdmin})
	require.NoError(t, err)

	_, err = NewManager("two", "rolepanel", time.Hour).Parse(ctx, sess.Token)
	assert.Error(t, err)
}

func TestManager_RejectsWrongIssuer(t *testing.T) {
	ctx := context.Background()
	sess, err := NewManager("s", "other", time.Hour).Issue(ctx, auth.Principal{Username: "a", Level: user.LevelAdmin})
	require.NoError(t, err)

	_, err = NewManager("s", "rolepanel", time.Hour).Parse(ctx, sess.Token)
	assert.Error(t, err)
}

func TestManager_RejectsExpired(t *testing.T) {
	ctx := context.Background()
	m := NewManager("s", "rolepanel", time.Minute)
	issued := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issued }
	sess, err := m.Issue(ctx, auth.Principal{Username: "a", Level: user.LevelPlayer})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(ctx, sess.Token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestManager_RejectsUnknownLevel(t *testing.T) {
	ctx := context.Background()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "id",
			Issuer:    "rolepanel",
			Subject:   "a",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Level: "root",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s"))
	require.NoError(t, err)

	_, err = NewManager("s", "rolepanel", time.Hour).Parse(ctx, token)
	assert.Error(t, err)
}

func TestManager_RejectsNoneAlgorithm(t *testing.T) {
	ctx := context.Background()
	claims := jwt.MapClaims{"sub": "a", "level": "admin", "jti": "x", "iss": "rolepanel", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager("s", "rolepanel", time.Hour).Parse(ctx, token)
	assert.Error(t, err)
}

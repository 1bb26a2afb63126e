package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/rolepanel/pkg/auth"
	"github.com/artem13815/rolepanel/pkg/repository/memory"
	"github.com/artem13815/rolepanel/pkg/security/jwt"
	"github.com/artem13815/rolepanel/pkg/session"
	"github.com/artem13815/rolepanel/pkg/user"
)

func newAuth(t *testing.T, users ...user.User) auth.UseCase {
	t.Helper()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	for i := range users {
		digest, err := hasher.Hash(users[i].Password)
		require.NoError(t, err)
		users[i].Password = digest
	}
	return auth.NewService(
		memory.NewUserRepository(users...),
		hasher,
		jwt.NewManager("test-secret", "rolepanel", time.Hour),
		session.NewMemoryStore(),
	)
}

func TestLogin_Success(t *testing.T) {
	svc := newAuth(t, user.User{ID: "1", Name: "Op", Username: "op", Password: "pw", Level: user.LevelOperator})

	res, err := svc.Login(context.Background(), "op", "pw")
	require.NoError(t, err)
	assert.Equal(t, auth.Principal{Username: "op", Level: user.LevelOperator}, res.Principal)
	assert.NotEmpty(t, res.Session.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newAuth(t, user.User{ID: "1", Name: "Op", Username: "op", Password: "pw", Level: user.LevelOperator})
	ctx := context.Background()

	for _, tc := range []struct{ username, password string }{
		{"op", "wrong"},
		{"ghost", "pw"},
		{"", "pw"},
		{"op", ""},
	} {
		_, err := svc.Login(ctx, tc.username, tc.password)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials, "%s/%s", tc.username, tc.password)
	}
}

type brokenFinder struct{}

func (brokenFinder) GetByUsername(context.Context, string) (user.User, error) {
	return user.User{}, errors.New("connection refused")
}

func TestLogin_StorageFailureIsNotInvalidCredentials(t *testing.T) {
	svc := auth.NewService(brokenFinder{}, auth.NewBcryptHasher(bcrypt.MinCost),
		jwt.NewManager("s", "rolepanel", time.Hour), session.NewMemoryStore())

	_, err := svc.Login(context.Background(), "op", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestResolveAndLogout(t *testing.T) {
	svc := newAuth(t, user.User{ID: "1", Name: "Adm", Username: "adm", Password: "pw", Level: user.LevelAdmin})
	ctx := context.Background()

	res, err := svc.Login(ctx, "adm", "pw")
	require.NoError(t, err)

	p, err := svc.Resolve(ctx, res.Session.Token)
	require.NoError(t, err)
	assert.True(t, p.HasLevel(user.LevelAdmin))
	assert.False(t, p.HasLevel(user.LevelPlayer, user.LevelOperator))

	require.NoError(t, svc.Logout(ctx, res.Session.Token))

	_, err = svc.Resolve(ctx, res.Session.Token)
	assert.ErrorIs(t, err, auth.ErrInvalidSession)
}

func TestResolve_Garbage(t *testing.T) {
	svc := newAuth(t)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, "")
	assert.ErrorIs(t, err, auth.ErrInvalidSession)
	_, err = svc.Resolve(ctx, "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidSession)
	assert.ErrorIs(t, svc.Logout(ctx, "not-a-token"), auth.ErrInvalidSession)
}

func TestBcryptHasher(t *testing.T) {
	h := auth.NewBcryptHasher(bcrypt.MinCost)
	digest, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", digest)
	assert.True(t, h.Verify(digest, "secret"))
	assert.False(t, h.Verify(digest, "Secret"))
	// plaintext left in storage never verifies
	assert.False(t, h.Verify("secret", "secret"))
}

func TestResolve_ReadsLevelFromStorage(t *testing.T) {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	digest, err := hasher.Hash("pw")
	require.NoError(t, err)
	repo := memory.NewUserRepository(
		user.User{ID: "1", Name: "Adm", Username: "adm", Password: digest, Level: user.LevelAdmin},
		user.User{ID: "2", Name: "Gone", Username: "gone", Password: digest, Level: user.LevelAdmin},
	)
	svc := auth.NewService(repo, hasher, jwt.NewManager("test-secret", "rolepanel", time.Hour), session.NewMemoryStore())
	ctx := context.Background()

	demoted, err := svc.Login(ctx, "adm", "pw")
	require.NoError(t, err)
	deleted, err := svc.Login(ctx, "gone", "pw")
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, "adm", user.Changes{Name: "Adm", Password: digest, Level: user.LevelPlayer}))
	require.NoError(t, repo.Delete(ctx, "gone"))

	p, err := svc.Resolve(ctx, demoted.Session.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.Principal{Username: "adm", Level: user.LevelPlayer}, p)

	_, err = svc.Resolve(ctx, deleted.Session.Token)
	assert.ErrorIs(t, err, auth.ErrInvalidSession)
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/artem13815/rolepanel/pkg/user"
)

// UserRepository is a threadsafe in-memory user.Repository for tests and local runs.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]user.User // key = username
}

func NewUserRepository(seed ...user.User) *UserRepository {
	r := &UserRepository{users: make(map[string]user.User, len(seed))}
	for _, u := range seed {
		r.users[u.Username] = u
	}
	return r
}

func (r *UserRepository) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[u.Username]; exists {
		return user.ErrUserAlreadyExists
	}
	r.users[u.Username] = u
	return nil
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[username]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) Update(_ context.Context, username string, ch user.Changes) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return user.ErrNotFound
	}
	u.Name = ch.Name
	u.Password = ch.Password
	u.Level = ch.Level
	r.users[username] = u
	return nil
}

func (r *UserRepository) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; !ok {
		return user.ErrNotFound
	}
	delete(r.users, username)
	return nil
}

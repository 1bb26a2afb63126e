package user

import (
	"context"
	"fmt"
	"strings"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// PasswordHasher turns a submitted password into the stored credential.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Draft is the raw form input for a new or edited account.
type Draft struct {
	Name     string
	Username string
	Password string
	Level    string
}

// UseCase covers the admin panel operations on user records.
type UseCase interface {
	Create(ctx context.Context, d Draft) (User, error)
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, username string) (User, error)
	Update(ctx context.Context, username string, d Draft) error
	Delete(ctx context.Context, username string) error
}

type service struct {
	repo   Repository
	hasher PasswordHasher
}

func NewService(repo Repository, hasher PasswordHasher) UseCase {
	return &service{repo: repo, hasher: hasher}
}

func (s *service) Create(ctx context.Context, d Draft) (User, error) {
	// form values may alias request buffers that are reused after the handler returns
	d.Name = strings.Clone(strings.TrimSpace(d.Name))
	d.Username = strings.Clone(strings.TrimSpace(d.Username))
	if d.Username == "" {
		return User{}, ErrValidation("username is required")
	}
	level, err := validate(d)
	if err != nil {
		return User{}, err
	}
	stored, err := s.hasher.Hash(d.Password)
	if err != nil {
		return User{}, err
	}
	u := User{
		ID:       DeriveID(d.Name, d.Username, d.Password, level),
		Name:     d.Name,
		Username: d.Username,
		Password: stored,
		Level:    level,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, username string) (User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *service) Update(ctx context.Context, username string, d Draft) error {
	if _, err := s.repo.GetByUsername(ctx, username); err != nil {
		return err
	}
	d.Name = strings.Clone(strings.TrimSpace(d.Name))
	level, err := validate(d)
	if err != nil {
		return err
	}
	stored, err := s.hasher.Hash(d.Password)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, username, Changes{Name: d.Name, Password: stored, Level: level})
}

func (s *service) Delete(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, username)
}

func validate(d Draft) (Level, error) {
	if d.Name == "" {
		return "", ErrValidation("name is required")
	}
	if d.Password == "" {
		return "", ErrValidation("password is required")
	}
	if len(d.Password) > MaxPasswordBytes {
		return "", ErrValidation(fmt.Sprintf("password must not exceed %d bytes", MaxPasswordBytes))
	}
	return ParseLevel(d.Level)
}

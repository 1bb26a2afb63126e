package user

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Level is the role tag controlling page access.
type Level string

const (
	LevelAdmin    Level = "admin"
	LevelOperator Level = "operator"
	LevelPlayer   Level = "player"
)

// Levels lists every known level in display order.
var Levels = []Level{LevelAdmin, LevelOperator, LevelPlayer}

// ParseLevel converts raw form input into a Level.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case LevelAdmin, LevelOperator, LevelPlayer:
		return l, nil
	default:
		return "", ErrValidation(fmt.Sprintf("unknown level %q", s))
	}
}

func (l Level) String() string { return string(l) }

// HomePath is the landing page for a freshly logged in user of this level.
func (l Level) HomePath() string {
	switch l {
	case LevelAdmin:
		return "/admin"
	case LevelOperator:
		return "/operator"
	default:
		return "/"
	}
}

// User is a persisted account record.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Level    Level  `json:"level"`
}

// DeriveID returns the content-addressed identifier of a new account:
// hex sha256 over name+username+password+level as submitted.
func DeriveID(name, username, password string, level Level) string {
	sum := sha256.Sum256([]byte(name + username + password + string(level)))
	return hex.EncodeToString(sum[:])
}

// Repository is the persistence port for users. Every method is keyed by username.
type Repository interface {
	Create(ctx context.Context, u User) error
	List(ctx context.Context) ([]User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	// Update overwrites name, password and level. Username and id are never touched.
	Update(ctx context.Context, username string, changes Changes) error
	Delete(ctx context.Context, username string) error
}

// Changes carries the mutable part of a User.
type Changes struct {
	Name     string
	Password string
	Level    Level
}

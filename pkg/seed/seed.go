package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2/log"
	"go.yaml.in/yaml/v4"

	"github.com/artem13815/rolepanel/pkg/user"
)

// File is the on-disk layout of a seed file:
//
//	users:
//	  - name: Administrator
//	    username: admin
//	    password: change-me
//	    level: admin
type File struct {
	Users []Entry `yaml:"users"`
}

type Entry struct {
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Level    string `yaml:"level"`
}

// Load reads and parses a seed file.
func Load(path string) (File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("parse seed file: %w", err)
	}
	return f, nil
}

// Apply creates every entry whose username does not exist yet and
// returns how many accounts were created. Existing accounts are left as is.
func Apply(ctx context.Context, users user.UseCase, f File) (int, error) {
	created := 0
	for _, e := range f.Users {
		_, err := users.Get(ctx, e.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, user.ErrNotFound) {
			return created, fmt.Errorf("seed %q: %w", e.Username, err)
		}
		if _, err := users.Create(ctx, user.Draft{
			Name:     e.Name,
			Username: e.Username,
			Password: e.Password,
			Level:    e.Level,
		}); err != nil {
			return created, fmt.Errorf("seed %q: %w", e.Username, err)
		}
		log.Infof("seeded user %q (%s)", e.Username, e.Level)
		created++
	}
	return created, nil
}

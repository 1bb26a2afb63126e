package user

import "errors"

var (
	ErrNotFound          = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// ErrValidation is returned for malformed input.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

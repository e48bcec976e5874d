package host

import (
	"errors"
)

var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrNilParameter      = errors.New("nil parameter")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrNotFound          = errors.New("not found")
)

package clerk

import (
	"errors"
)

var (
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrNilParameter         = errors.New("nil parameter")
	ErrInvalidConfiguration = errors.New("invalid clerk configuration")
	ErrMissingAuthContext   = errors.New("clerk auth context is missing")
	ErrInvalidSessionClaim  = errors.New("invalid or missing session expiry claim")
	ErrMissingPrimaryEmail  = errors.New("user has no primary email address")
	ErrProfileFetch         = errors.New("user profile fetch failed")
)

package errs

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("invalid request")
	ErrUnavailable = errors.New("listing is not available")
	ErrForbidden   = errors.New("forbidden")
	ErrConflict    = errors.New("conflict")
	ErrCredentials = errors.New("invalid credentials")
)

// Package common defines shared constants and sentinel errors used across
// the server layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors. Every specific validation failure wraps ErrInvalidInput.
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidIdentifier  = fmt.Errorf("%w: invalid identifier", ErrInvalidInput)
	ErrMissingField       = fmt.Errorf("%w: missing required field", ErrInvalidInput)
	ErrUserTypeRequired   = fmt.Errorf("%w: user type is required", ErrInvalidInput)
	ErrInvalidUserType    = fmt.Errorf("%w: unknown user type", ErrInvalidInput)
	ErrMissingCredentials = fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	ErrPasswordTooLong    = fmt.Errorf("%w: password is longer than 72 bytes", ErrInvalidInput)

	// Conflicts.
	ErrConflict   = errors.New("conflict")
	ErrUserExists = fmt.Errorf("%w: user already exists", ErrConflict)

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUnauthorized       = errors.New("unauthorized")

	// Service-level errors (store or infrastructure failure).
	ErrInternal = errors.New("internal error")
)

// Internal wraps err so that it matches ErrInternal while keeping the cause
// available for logging.
func Internal(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInternal, err)
}

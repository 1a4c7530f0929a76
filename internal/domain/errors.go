package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when the request is invalid (e.g. rating out of range).
	ErrInvalidInput = errors.New("invalid input")
	// ErrForbidden is returned when the caller may not act on the entity.
	ErrForbidden = errors.New("forbidden")
	// ErrStoreUnavailable is returned when a store query or connection fails.
	// Callers surface it as a 500; no retry is attempted at this layer.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrDuplicateEmail is returned when signing up with an email already in use.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrDuplicateUsername is returned when signing up with a username already in use.
	ErrDuplicateUsername = errors.New("username already in use")
	// ErrInvalidCredentials is returned on a failed username/password login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

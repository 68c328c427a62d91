package common

import "errors"

var (
	// Transport-level errors (no response reached the client).
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Repository/lookup errors.
	ErrNotFound = errors.New("not found")

	// Validation gaps caught client-side before issuing a call.
	ErrRoleRequired = errors.New("action not permitted for this role")
	ErrSelfUpdate   = errors.New("cannot change own account status")
)

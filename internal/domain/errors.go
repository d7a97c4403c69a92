package domain

import "errors"

// Error kinds surfaced by the core. Callers select corrective action with
// errors.Is; the transport layer maps each kind to a status code.
var (
	ErrValidation   = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("not authorized")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("operation not allowed in current state")
	ErrExpired      = errors.New("expired")

	// ErrTransient is returned when the bounded optimistic-concurrency retry
	// is exhausted. The request failed without corrupting state and may be
	// retried by the caller.
	ErrTransient = errors.New("transient failure")

	// ErrVersionConflict signals a lost conditional update. It never leaves
	// the service layer; services retry and eventually surface ErrTransient.
	ErrVersionConflict = errors.New("version conflict")
)

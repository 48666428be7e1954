package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")

	// Precondition failures: descriptive, recoverable, and guaranteed to have
	// written nothing. The caller fixes the condition and retries.
	ErrEventNotLocked = errors.New("event results are not locked")
	ErrAlreadyLocked  = errors.New("event results are already locked")
	ErrResultsMissing = errors.New("race results are missing")
	ErrNoEntries      = errors.New("event has no entries")
)

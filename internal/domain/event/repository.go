package event

import "context"

type Repository interface {
	GetByID(ctx context.Context, eventID string) (Event, bool, error)
	// ListThroughSequence returns the season's events with sequence number
	// less than or equal to maxSequence, ordered by sequence ascending.
	ListThroughSequence(ctx context.Context, seasonID string, maxSequence int) ([]Event, error)
	SetLockState(ctx context.Context, eventID string, state LockState) error
}

package raceresult

import "context"

type Repository interface {
	GetByEvent(ctx context.Context, eventID string) (Result, bool, error)
}

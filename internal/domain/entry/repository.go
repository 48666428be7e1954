package entry

import "context"

type Repository interface {
	ListByEvent(ctx context.Context, eventID string) ([]Entry, error)
}

package scoring

import "context"

// Repository persists event scores. WriteBatch is the store's bounded atomic
// multi-write: the whole slice commits or none of it does, and callers must
// keep batches within the store's write limit.
type Repository interface {
	ListByEvent(ctx context.Context, eventID string) ([]EventScore, error)
	DeleteByEvent(ctx context.Context, eventID string) error
	WriteBatch(ctx context.Context, scores []EventScore) error
}

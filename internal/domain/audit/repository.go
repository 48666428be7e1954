package audit

import "context"

type Repository interface {
	Append(ctx context.Context, record Record) error
	// ListRecent returns the newest records first, at most limit of them.
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}

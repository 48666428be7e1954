package standing

import "context"

// Repository persists season standings. The batch writes share the store's
// bounded atomic multi-write semantics with event scores.
type Repository interface {
	ListPlayersBySeason(ctx context.Context, seasonID string) ([]PlayerStanding, error)
	DeletePlayersBySeason(ctx context.Context, seasonID string) error
	WritePlayerBatch(ctx context.Context, standings []PlayerStanding) error

	ListTeamsBySeason(ctx context.Context, seasonID string) ([]TeamStanding, error)
	DeleteTeamsBySeason(ctx context.Context, seasonID string) error
	WriteTeamBatch(ctx context.Context, standings []TeamStanding) error
}

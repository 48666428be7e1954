package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/btcc-fantasy/league-engine/internal/domain/entry"
)

type EntryRepository struct {
	db *sqlx.DB
}

func NewEntryRepository(db *sqlx.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

func (r *EntryRepository) ListByEvent(ctx context.Context, eventID string) ([]entry.Entry, error) {
	query := `SELECT event_id, player_id, display_name, driver_ids, submitted_at
		FROM entries WHERE event_id = $1 ORDER BY player_id`

	var rows []entryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, eventID); err != nil {
		return nil, fmt.Errorf("list entries by event: %w", err)
	}

	out := make([]entry.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, entryFromRow(row))
	}
	return out, nil
}

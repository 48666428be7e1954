package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/btcc-fantasy/league-engine/internal/domain/raceresult"
)

type RaceResultRepository struct {
	db *sqlx.DB
}

func NewRaceResultRepository(db *sqlx.DB) *RaceResultRepository {
	return &RaceResultRepository{db: db}
}

func (r *RaceResultRepository) GetByEvent(ctx context.Context, eventID string) (raceresult.Result, bool, error) {
	query := `SELECT event_id, qualifying_order, race1_order, race2_order, race3_order, updated_at
		FROM race_results WHERE event_id = $1`

	var row raceResultTableModel
	if err := r.db.GetContext(ctx, &row, query, eventID); err != nil {
		if isNotFound(err) {
			return raceresult.Result{}, false, nil
		}
		return raceresult.Result{}, false, fmt.Errorf("get race result: %w", err)
	}

	return raceResultFromRow(row), true, nil
}

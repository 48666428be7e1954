package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/btcc-fantasy/league-engine/internal/domain/scoring"
)

type EventScoreRepository struct {
	db *sqlx.DB
}

func NewEventScoreRepository(db *sqlx.DB) *EventScoreRepository {
	return &EventScoreRepository{db: db}
}

func (r *EventScoreRepository) ListByEvent(ctx context.Context, eventID string) ([]scoring.EventScore, error) {
	query := `SELECT event_id, player_id, display_name, roster, qualifying_points, race1_points,
			race2_points, race3_points, total_points, breakdown, results_updated_at, engine_version, computed_at
		FROM event_scores WHERE event_id = $1 ORDER BY player_id`

	var rows []eventScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, eventID); err != nil {
		return nil, fmt.Errorf("list event scores: %w", err)
	}

	out := make([]scoring.EventScore, 0, len(rows))
	for _, row := range rows {
		score, err := eventScoreFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, score)
	}
	return out, nil
}

func (r *EventScoreRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM event_scores WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("delete event scores: %w", err)
	}
	return nil
}

// WriteBatch commits the whole slice in one transaction, mirroring the
// bounded atomic multi-write the repository contract promises.
func (r *EventScoreRepository) WriteBatch(ctx context.Context, scores []scoring.EventScore) error {
	if len(scores) == 0 {
		return nil
	}

	const insert = `INSERT INTO event_scores (event_id, player_id, display_name, roster, qualifying_points,
			race1_points, race2_points, race3_points, total_points, breakdown, results_updated_at,
			engine_version, computed_at)
		VALUES (:event_id, :player_id, :display_name, :roster, :qualifying_points, :race1_points,
			:race2_points, :race3_points, :total_points, :breakdown, :results_updated_at,
			:engine_version, :computed_at)
		ON CONFLICT (event_id, player_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			roster = EXCLUDED.roster,
			qualifying_points = EXCLUDED.qualifying_points,
			race1_points = EXCLUDED.race1_points,
			race2_points = EXCLUDED.race2_points,
			race3_points = EXCLUDED.race3_points,
			total_points = EXCLUDED.total_points,
			breakdown = EXCLUDED.breakdown,
			results_updated_at = EXCLUDED.results_updated_at,
			engine_version = EXCLUDED.engine_version,
			computed_at = EXCLUDED.computed_at`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin write event scores: %w", err)
	}
	defer tx.Rollback()

	for _, score := range scores {
		row, err := eventScoreToRow(score)
		if err != nil {
			return err
		}
		if _, err := tx.NamedExecContext(ctx, insert, row); err != nil {
			return fmt.Errorf("write event score %s/%s: %w", score.EventID, score.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit event scores: %w", err)
	}
	return nil
}

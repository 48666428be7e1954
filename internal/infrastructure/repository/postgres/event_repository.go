package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/btcc-fantasy/league-engine/internal/domain/event"
)

const eventSelectColumns = `id, season_id, sequence, venue, round_from, round_to, date_from, date_to,
	status, results_locked, locked_by, locked_at, unlocked_by, unlocked_at, unlock_reason`

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (event.Event, bool, error) {
	query := `SELECT ` + eventSelectColumns + ` FROM events WHERE id = $1`

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, eventID); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get event: %w", err)
	}

	return eventFromRow(row), true, nil
}

func (r *EventRepository) ListThroughSequence(ctx context.Context, seasonID string, maxSequence int) ([]event.Event, error) {
	query := `SELECT ` + eventSelectColumns + `
		FROM events
		WHERE season_id = $1 AND sequence <= $2
		ORDER BY sequence`

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, seasonID, maxSequence); err != nil {
		return nil, fmt.Errorf("list events through sequence: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

func (r *EventRepository) SetLockState(ctx context.Context, eventID string, state event.LockState) error {
	var query string
	var args []any
	if state.ResultsLocked {
		query = `UPDATE events
			SET results_locked = TRUE, status = $2, locked_by = $3, locked_at = $4
			WHERE id = $1`
		args = []any{eventID, state.Status, state.Actor, state.At}
	} else {
		query = `UPDATE events
			SET results_locked = FALSE, status = $2, unlocked_by = $3, unlocked_at = $4, unlock_reason = $5
			WHERE id = $1`
		args = []any{eventID, state.Status, state.Actor, state.At, state.UnlockReason}
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set event lock state: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set event lock state rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("set event lock state: event %s not found", eventID)
	}

	return nil
}

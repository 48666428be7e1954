package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/btcc-fantasy/league-engine/internal/domain/audit"
)

type RunRecordRepository struct {
	db *sqlx.DB
}

func NewRunRecordRepository(db *sqlx.DB) *RunRecordRepository {
	return &RunRecordRepository{db: db}
}

func (r *RunRecordRepository) Append(ctx context.Context, record audit.Record) error {
	const insert = `INSERT INTO engine_runs (id, kind, season_id, event_id, through_event_id,
			through_sequence, entry_count, record_count, event_count, chunk_count, failed_chunks,
			results_updated_at, unlock_reason, actor, engine_version, ran_at)
		VALUES (:id, :kind, :season_id, :event_id, :through_event_id, :through_sequence,
			:entry_count, :record_count, :event_count, :chunk_count, :failed_chunks,
			:results_updated_at, :unlock_reason, :actor, :engine_version, :ran_at)`

	if _, err := r.db.NamedExecContext(ctx, insert, runRecordToRow(record)); err != nil {
		return fmt.Errorf("append engine run: %w", err)
	}
	return nil
}

func (r *RunRecordRepository) ListRecent(ctx context.Context, limit int) ([]audit.Record, error) {
	query := `SELECT id, kind, season_id, event_id, through_event_id, through_sequence, entry_count,
			record_count, event_count, chunk_count, failed_chunks, results_updated_at, unlock_reason,
			actor, engine_version, ran_at
		FROM engine_runs ORDER BY ran_at DESC, id DESC LIMIT $1`

	var rows []runRecordTableModel
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("list engine runs: %w", err)
	}

	out := make([]audit.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, runRecordFromRow(row))
	}
	return out, nil
}

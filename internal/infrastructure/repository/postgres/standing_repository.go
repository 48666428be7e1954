package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/btcc-fantasy/league-engine/internal/domain/standing"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListPlayersBySeason(ctx context.Context, seasonID string) ([]standing.PlayerStanding, error) {
	query := `SELECT season_id, player_id, display_name, total_points, through_event_id,
			through_sequence, event_ids, computed_at, engine_version
		FROM player_standings WHERE season_id = $1 ORDER BY player_id`

	var rows []playerStandingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, seasonID); err != nil {
		return nil, fmt.Errorf("list player standings: %w", err)
	}

	out := make([]standing.PlayerStanding, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerStandingFromRow(row))
	}
	return out, nil
}

func (r *StandingRepository) DeletePlayersBySeason(ctx context.Context, seasonID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM player_standings WHERE season_id = $1`, seasonID); err != nil {
		return fmt.Errorf("delete player standings: %w", err)
	}
	return nil
}

func (r *StandingRepository) WritePlayerBatch(ctx context.Context, standings []standing.PlayerStanding) error {
	if len(standings) == 0 {
		return nil
	}

	const insert = `INSERT INTO player_standings (season_id, player_id, display_name, total_points,
			through_event_id, through_sequence, event_ids, computed_at, engine_version)
		VALUES (:season_id, :player_id, :display_name, :total_points, :through_event_id,
			:through_sequence, :event_ids, :computed_at, :engine_version)
		ON CONFLICT (season_id, player_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			total_points = EXCLUDED.total_points,
			through_event_id = EXCLUDED.through_event_id,
			through_sequence = EXCLUDED.through_sequence,
			event_ids = EXCLUDED.event_ids,
			computed_at = EXCLUDED.computed_at,
			engine_version = EXCLUDED.engine_version`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin write player standings: %w", err)
	}
	defer tx.Rollback()

	for _, s := range standings {
		if _, err := tx.NamedExecContext(ctx, insert, playerStandingToRow(s)); err != nil {
			return fmt.Errorf("write player standing %s/%s: %w", s.SeasonID, s.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit player standings: %w", err)
	}
	return nil
}

func (r *StandingRepository) ListTeamsBySeason(ctx context.Context, seasonID string) ([]standing.TeamStanding, error) {
	query := `SELECT season_id, team_id, team_name, total_points, members, through_event_id,
			through_sequence, computed_at, engine_version
		FROM team_standings WHERE season_id = $1 ORDER BY team_id`

	var rows []teamStandingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, seasonID); err != nil {
		return nil, fmt.Errorf("list team standings: %w", err)
	}

	out := make([]standing.TeamStanding, 0, len(rows))
	for _, row := range rows {
		team, err := teamStandingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, team)
	}
	return out, nil
}

func (r *StandingRepository) DeleteTeamsBySeason(ctx context.Context, seasonID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM team_standings WHERE season_id = $1`, seasonID); err != nil {
		return fmt.Errorf("delete team standings: %w", err)
	}
	return nil
}

func (r *StandingRepository) WriteTeamBatch(ctx context.Context, standings []standing.TeamStanding) error {
	if len(standings) == 0 {
		return nil
	}

	const insert = `INSERT INTO team_standings (season_id, team_id, team_name, total_points, members,
			through_event_id, through_sequence, computed_at, engine_version)
		VALUES (:season_id, :team_id, :team_name, :total_points, :members, :through_event_id,
			:through_sequence, :computed_at, :engine_version)
		ON CONFLICT (season_id, team_id) DO UPDATE SET
			team_name = EXCLUDED.team_name,
			total_points = EXCLUDED.total_points,
			members = EXCLUDED.members,
			through_event_id = EXCLUDED.through_event_id,
			through_sequence = EXCLUDED.through_sequence,
			computed_at = EXCLUDED.computed_at,
			engine_version = EXCLUDED.engine_version`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin write team standings: %w", err)
	}
	defer tx.Rollback()

	for _, s := range standings {
		row, err := teamStandingToRow(s)
		if err != nil {
			return err
		}
		if _, err := tx.NamedExecContext(ctx, insert, row); err != nil {
			return fmt.Errorf("write team standing %s/%s: %w", s.SeasonID, s.TeamID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit team standings: %w", err)
	}
	return nil
}

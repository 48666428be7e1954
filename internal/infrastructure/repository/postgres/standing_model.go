package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/lib/pq"

	"github.com/btcc-fantasy/league-engine/internal/domain/standing"
)

type playerStandingTableModel struct {
	SeasonID        string         `db:"season_id"`
	PlayerID        string         `db:"player_id"`
	DisplayName     string         `db:"display_name"`
	Total           int            `db:"total_points"`
	ThroughEventID  string         `db:"through_event_id"`
	ThroughSequence int            `db:"through_sequence"`
	EventIDs        pq.StringArray `db:"event_ids"`
	ComputedAt      time.Time      `db:"computed_at"`
	EngineVersion   string         `db:"engine_version"`
}

func playerStandingFromRow(row playerStandingTableModel) standing.PlayerStanding {
	return standing.PlayerStanding{
		SeasonID:        row.SeasonID,
		PlayerID:        row.PlayerID,
		DisplayName:     row.DisplayName,
		Total:           row.Total,
		ThroughEventID:  row.ThroughEventID,
		ThroughSequence: row.ThroughSequence,
		EventIDs:        []string(row.EventIDs),
		ComputedAt:      row.ComputedAt,
		EngineVersion:   row.EngineVersion,
	}
}

func playerStandingToRow(s standing.PlayerStanding) playerStandingTableModel {
	return playerStandingTableModel{
		SeasonID:        s.SeasonID,
		PlayerID:        s.PlayerID,
		DisplayName:     s.DisplayName,
		Total:           s.Total,
		ThroughEventID:  s.ThroughEventID,
		ThroughSequence: s.ThroughSequence,
		EventIDs:        pq.StringArray(s.EventIDs),
		ComputedAt:      s.ComputedAt,
		EngineVersion:   s.EngineVersion,
	}
}

type teamStandingTableModel struct {
	SeasonID        string    `db:"season_id"`
	TeamID          string    `db:"team_id"`
	TeamName        string    `db:"team_name"`
	Total           int       `db:"total_points"`
	Members         []byte    `db:"members"`
	ThroughEventID  string    `db:"through_event_id"`
	ThroughSequence int       `db:"through_sequence"`
	ComputedAt      time.Time `db:"computed_at"`
	EngineVersion   string    `db:"engine_version"`
}

func teamStandingFromRow(row teamStandingTableModel) (standing.TeamStanding, error) {
	var members []standing.TeamMember
	if len(row.Members) > 0 {
		if err := sonic.Unmarshal(row.Members, &members); err != nil {
			return standing.TeamStanding{}, fmt.Errorf("decode team members: %w", err)
		}
	}

	return standing.TeamStanding{
		SeasonID:        row.SeasonID,
		TeamID:          row.TeamID,
		TeamName:        row.TeamName,
		Total:           row.Total,
		Members:         members,
		ThroughEventID:  row.ThroughEventID,
		ThroughSequence: row.ThroughSequence,
		ComputedAt:      row.ComputedAt,
		EngineVersion:   row.EngineVersion,
	}, nil
}

func teamStandingToRow(s standing.TeamStanding) (teamStandingTableModel, error) {
	members, err := sonic.Marshal(s.Members)
	if err != nil {
		return teamStandingTableModel{}, fmt.Errorf("encode team members: %w", err)
	}

	return teamStandingTableModel{
		SeasonID:        s.SeasonID,
		TeamID:          s.TeamID,
		TeamName:        s.TeamName,
		Total:           s.Total,
		Members:         members,
		ThroughEventID:  s.ThroughEventID,
		ThroughSequence: s.ThroughSequence,
		ComputedAt:      s.ComputedAt,
		EngineVersion:   s.EngineVersion,
	}, nil
}

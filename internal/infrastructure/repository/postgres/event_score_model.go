package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/lib/pq"

	"github.com/btcc-fantasy/league-engine/internal/domain/scoring"
)

type eventScoreTableModel struct {
	EventID          string         `db:"event_id"`
	PlayerID         string         `db:"player_id"`
	DisplayName      string         `db:"display_name"`
	Roster           pq.StringArray `db:"roster"`
	Qualifying       int            `db:"qualifying_points"`
	Race1            int            `db:"race1_points"`
	Race2            int            `db:"race2_points"`
	Race3            int            `db:"race3_points"`
	Total            int            `db:"total_points"`
	Breakdown        []byte         `db:"breakdown"`
	ResultsUpdatedAt time.Time      `db:"results_updated_at"`
	EngineVersion    string         `db:"engine_version"`
	ComputedAt       time.Time      `db:"computed_at"`
}

func eventScoreFromRow(row eventScoreTableModel) (scoring.EventScore, error) {
	var breakdown scoring.Breakdown
	if len(row.Breakdown) > 0 {
		if err := sonic.Unmarshal(row.Breakdown, &breakdown); err != nil {
			return scoring.EventScore{}, fmt.Errorf("decode score breakdown: %w", err)
		}
	}

	return scoring.EventScore{
		EventID:          row.EventID,
		PlayerID:         row.PlayerID,
		DisplayName:      row.DisplayName,
		Roster:           []string(row.Roster),
		Qualifying:       row.Qualifying,
		Race1:            row.Race1,
		Race2:            row.Race2,
		Race3:            row.Race3,
		Total:            row.Total,
		Breakdown:        breakdown,
		ResultsUpdatedAt: row.ResultsUpdatedAt,
		EngineVersion:    row.EngineVersion,
		ComputedAt:       row.ComputedAt,
	}, nil
}

func eventScoreToRow(s scoring.EventScore) (eventScoreTableModel, error) {
	breakdown, err := sonic.Marshal(s.Breakdown)
	if err != nil {
		return eventScoreTableModel{}, fmt.Errorf("encode score breakdown: %w", err)
	}

	return eventScoreTableModel{
		EventID:          s.EventID,
		PlayerID:         s.PlayerID,
		DisplayName:      s.DisplayName,
		Roster:           pq.StringArray(s.Roster),
		Qualifying:       s.Qualifying,
		Race1:            s.Race1,
		Race2:            s.Race2,
		Race3:            s.Race3,
		Total:            s.Total,
		Breakdown:        breakdown,
		ResultsUpdatedAt: s.ResultsUpdatedAt,
		EngineVersion:    s.EngineVersion,
		ComputedAt:       s.ComputedAt,
	}, nil
}

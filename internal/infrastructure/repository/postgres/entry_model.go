package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/btcc-fantasy/league-engine/internal/domain/entry"
)

type entryTableModel struct {
	EventID     string         `db:"event_id"`
	PlayerID    string         `db:"player_id"`
	DisplayName string         `db:"display_name"`
	DriverIDs   pq.StringArray `db:"driver_ids"`
	SubmittedAt time.Time      `db:"submitted_at"`
}

func entryFromRow(row entryTableModel) entry.Entry {
	return entry.Entry{
		EventID:     row.EventID,
		PlayerID:    row.PlayerID,
		DisplayName: row.DisplayName,
		DriverIDs:   []string(row.DriverIDs),
		SubmittedAt: row.SubmittedAt,
	}
}

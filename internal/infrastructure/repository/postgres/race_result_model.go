package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/btcc-fantasy/league-engine/internal/domain/raceresult"
)

type raceResultTableModel struct {
	EventID    string         `db:"event_id"`
	Qualifying pq.StringArray `db:"qualifying_order"`
	Race1      pq.StringArray `db:"race1_order"`
	Race2      pq.StringArray `db:"race2_order"`
	Race3      pq.StringArray `db:"race3_order"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func raceResultFromRow(row raceResultTableModel) raceresult.Result {
	return raceresult.Result{
		EventID:    row.EventID,
		Qualifying: []string(row.Qualifying),
		Race1:      []string(row.Race1),
		Race2:      []string(row.Race2),
		Race3:      []string(row.Race3),
		UpdatedAt:  row.UpdatedAt,
	}
}

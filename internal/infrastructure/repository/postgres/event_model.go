package postgres

import (
	"time"

	"github.com/btcc-fantasy/league-engine/internal/domain/event"
)

type eventTableModel struct {
	ID            string     `db:"id"`
	SeasonID      string     `db:"season_id"`
	Sequence      int        `db:"sequence"`
	Venue         string     `db:"venue"`
	RoundFrom     int        `db:"round_from"`
	RoundTo       int        `db:"round_to"`
	DateFrom      time.Time  `db:"date_from"`
	DateTo        time.Time  `db:"date_to"`
	Status        string     `db:"status"`
	ResultsLocked bool       `db:"results_locked"`
	LockedBy      string     `db:"locked_by"`
	LockedAt      *time.Time `db:"locked_at"`
	UnlockedBy    string     `db:"unlocked_by"`
	UnlockedAt    *time.Time `db:"unlocked_at"`
	UnlockReason  string     `db:"unlock_reason"`
}

func eventFromRow(row eventTableModel) event.Event {
	return event.Event{
		ID:            row.ID,
		SeasonID:      row.SeasonID,
		Sequence:      row.Sequence,
		Venue:         row.Venue,
		RoundFrom:     row.RoundFrom,
		RoundTo:       row.RoundTo,
		DateFrom:      row.DateFrom,
		DateTo:        row.DateTo,
		Status:        row.Status,
		ResultsLocked: row.ResultsLocked,
		LockedBy:      row.LockedBy,
		LockedAt:      row.LockedAt,
		UnlockedBy:    row.UnlockedBy,
		UnlockedAt:    row.UnlockedAt,
		UnlockReason:  row.UnlockReason,
	}
}

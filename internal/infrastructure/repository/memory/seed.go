package memory

import (
	"time"

	"github.com/btcc-fantasy/league-engine/internal/domain/entry"
	"github.com/btcc-fantasy/league-engine/internal/domain/event"
	"github.com/btcc-fantasy/league-engine/internal/domain/profile"
	"github.com/btcc-fantasy/league-engine/internal/domain/raceresult"
)

// Seed data for local development and tests: the opening rounds of the 2026
// BTCC season with a small paddock of players.
const (
	SeasonID2026 = "btcc-2026"

	EventIDBrandsHatchIndy = "2026-01-brands-hatch-indy"
	EventIDDonington       = "2026-02-donington-park"
	EventIDSnetterton      = "2026-03-snetterton"
	EventIDThruxton        = "2026-04-thruxton"
)

func SeedEvents() []event.Event {
	lockedAt := time.Date(2026, time.April, 6, 19, 0, 0, 0, time.UTC)

	return []event.Event{
		{
			ID:            EventIDBrandsHatchIndy,
			SeasonID:      SeasonID2026,
			Sequence:      1,
			Venue:         "Brands Hatch Indy",
			RoundFrom:     1,
			RoundTo:       3,
			DateFrom:      time.Date(2026, time.April, 4, 0, 0, 0, 0, time.UTC),
			DateTo:        time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC),
			Status:        event.StatusComplete,
			ResultsLocked: true,
			LockedBy:      "seed",
			LockedAt:      &lockedAt,
		},
		{
			ID:        EventIDDonington,
			SeasonID:  SeasonID2026,
			Sequence:  2,
			Venue:     "Donington Park",
			RoundFrom: 4,
			RoundTo:   6,
			DateFrom:  time.Date(2026, time.April, 25, 0, 0, 0, 0, time.UTC),
			DateTo:    time.Date(2026, time.April, 26, 0, 0, 0, 0, time.UTC),
			Status:    event.StatusUpcoming,
		},
		{
			ID:        EventIDSnetterton,
			SeasonID:  SeasonID2026,
			Sequence:  3,
			Venue:     "Snetterton",
			RoundFrom: 7,
			RoundTo:   9,
			DateFrom:  time.Date(2026, time.May, 16, 0, 0, 0, 0, time.UTC),
			DateTo:    time.Date(2026, time.May, 17, 0, 0, 0, 0, time.UTC),
			Status:    event.StatusUpcoming,
		},
		{
			ID:        EventIDThruxton,
			SeasonID:  SeasonID2026,
			Sequence:  4,
			Venue:     "Thruxton",
			RoundFrom: 10,
			RoundTo:   12,
			DateFrom:  time.Date(2026, time.June, 6, 0, 0, 0, 0, time.UTC),
			DateTo:    time.Date(2026, time.June, 7, 0, 0, 0, 0, time.UTC),
			Status:    event.StatusUpcoming,
		},
	}
}

func SeedResults() []raceresult.Result {
	return []raceresult.Result{
		{
			EventID:    EventIDBrandsHatchIndy,
			Qualifying: []string{"drv-sutton", "drv-ingram", "drv-cook", "drv-hill", "drv-turkington", "drv-cammish"},
			Race1:      []string{"drv-sutton", "drv-cook", "drv-ingram", "drv-turkington", "drv-hill", "drv-cammish", "drv-butcher", "drv-jordan"},
			Race2:      []string{"drv-ingram", "drv-sutton", "drv-hill", "drv-cook", "drv-butcher", "drv-turkington", "drv-jordan", "drv-cammish"},
			Race3:      []string{"drv-hill", "drv-butcher", "drv-sutton", "drv-ingram", "drv-jordan", "drv-cook", "drv-cammish", "drv-turkington"},
			UpdatedAt:  time.Date(2026, time.April, 5, 18, 30, 0, 0, time.UTC),
		},
	}
}

func SeedEntries() []entry.Entry {
	submittedAt := time.Date(2026, time.April, 3, 12, 0, 0, 0, time.UTC)

	return []entry.Entry{
		{
			EventID:     EventIDBrandsHatchIndy,
			PlayerID:    "player-amy",
			DisplayName: "Amy",
			DriverIDs:   []string{"drv-sutton", "drv-ingram", "drv-cook"},
			SubmittedAt: submittedAt,
		},
		{
			EventID:     EventIDBrandsHatchIndy,
			PlayerID:    "player-ben",
			DisplayName: "Ben",
			DriverIDs:   []string{"drv-hill", "drv-butcher", "drv-turkington", "drv-jordan"},
			SubmittedAt: submittedAt,
		},
		{
			EventID:     EventIDBrandsHatchIndy,
			PlayerID:    "player-cara",
			DisplayName: "Cara",
			DriverIDs:   []string{"drv-cammish", "drv-cook", "drv-jordan"},
			SubmittedAt: submittedAt,
		},
	}
}

func SeedProfiles() []profile.Profile {
	return []profile.Profile{
		{PlayerID: "player-amy", DisplayName: "Amy", TeamID: "team-apex", TeamName: "Apex Hunters"},
		{PlayerID: "player-ben", DisplayName: "Ben", TeamID: "team-apex", TeamName: "Apex Hunters"},
		{PlayerID: "player-cara", DisplayName: "Cara"},
	}
}

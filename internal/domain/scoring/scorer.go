package scoring

import "github.com/btcc-fantasy/league-engine/internal/domain/raceresult"

// Breakdown maps session name -> driver id -> points earned.
type Breakdown map[string]map[string]int

// SessionTotals holds the per-session subtotals for one entry.
type SessionTotals struct {
	Qualifying int
	Race1      int
	Race2      int
	Race3      int
}

// ScoreRoster computes one validated roster's points against an event's
// finishing orders. A driver missing from a session's order earns zero for
// that session only; an empty roster scores zero everywhere.
func ScoreRoster(roster []string, result raceresult.Result) (SessionTotals, int, Breakdown) {
	breakdown := make(Breakdown, 4)
	subtotals := make(map[string]int, 4)

	for _, session := range result.Sessions() {
		positionByDriver := make(map[string]int, len(session.Order))
		for idx, driverID := range session.Order {
			positionByDriver[driverID] = idx + 1
		}

		perDriver := make(map[string]int, len(roster))
		sessionTotal := 0
		for _, driverID := range roster {
			points := 0
			if position, raced := positionByDriver[driverID]; raced {
				if session.Name == raceresult.SessionQualifying {
					points = QualifyingPoints(position)
				} else {
					points = RacePoints(position)
				}
			}
			perDriver[driverID] = points
			sessionTotal += points
		}

		breakdown[session.Name] = perDriver
		subtotals[session.Name] = sessionTotal
	}

	totals := SessionTotals{
		Qualifying: subtotals[raceresult.SessionQualifying],
		Race1:      subtotals[raceresult.SessionRace1],
		Race2:      subtotals[raceresult.SessionRace2],
		Race3:      subtotals[raceresult.SessionRace3],
	}
	grand := totals.Qualifying + totals.Race1 + totals.Race2 + totals.Race3

	return totals, grand, breakdown
}

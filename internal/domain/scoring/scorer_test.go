package scoring

import (
	"testing"
	"time"

	"github.com/btcc-fantasy/league-engine/internal/domain/raceresult"
)

func TestScoreRoster_QualifyingAndRaceBreakdown(t *testing.T) {
	result := raceresult.Result{
		EventID:    "evt-1",
		Qualifying: []string{"D2", "D1", "D9"},
		Race1:      []string{"D1", "D3", "D2"},
		UpdatedAt:  time.Now(),
	}
	roster := []string{"D1", "D2", "D3"}

	totals, grand, breakdown := ScoreRoster(roster, result)

	if totals.Qualifying != 11 {
		t.Fatalf("qualifying subtotal: got=%d want=11", totals.Qualifying)
	}
	if totals.Race1 != 75 {
		t.Fatalf("race1 subtotal: got=%d want=75", totals.Race1)
	}
	if totals.Race2 != 0 || totals.Race3 != 0 {
		t.Fatalf("empty sessions must score zero, got race2=%d race3=%d", totals.Race2, totals.Race3)
	}
	if grand != 86 {
		t.Fatalf("grand total: got=%d want=86", grand)
	}

	qual := breakdown[raceresult.SessionQualifying]
	if qual["D1"] != 5 || qual["D2"] != 6 || qual["D3"] != 0 {
		t.Fatalf("unexpected qualifying breakdown: %v", qual)
	}
	race1 := breakdown[raceresult.SessionRace1]
	if race1["D1"] != 26 || race1["D2"] != 24 || race1["D3"] != 25 {
		t.Fatalf("unexpected race1 breakdown: %v", race1)
	}
}

func TestScoreRoster_EmptyRoster(t *testing.T) {
	result := raceresult.Result{
		Qualifying: []string{"D1", "D2"},
		Race1:      []string{"D1", "D2"},
		Race2:      []string{"D2", "D1"},
		Race3:      []string{"D1"},
	}

	totals, grand, breakdown := ScoreRoster(nil, result)
	if grand != 0 {
		t.Fatalf("empty roster grand total: got=%d want=0", grand)
	}
	if totals != (SessionTotals{}) {
		t.Fatalf("empty roster subtotals: got=%+v want zeros", totals)
	}
	for session, perDriver := range breakdown {
		if len(perDriver) != 0 {
			t.Fatalf("session %s: expected empty breakdown, got %v", session, perDriver)
		}
	}
}

func TestScoreRoster_WithdrawnDriverScoresZeroPerSession(t *testing.T) {
	result := raceresult.Result{
		Qualifying: []string{"D1"},
		Race1:      []string{"D1", "D9"},
		Race2:      []string{"D9"},
		Race3:      nil,
	}
	roster := []string{"D1", "D9", "D5"}

	totals, grand, _ := ScoreRoster(roster, result)

	// D5 never appears: zero everywhere, without poisoning the entry.
	if totals.Qualifying != 6 {
		t.Fatalf("qualifying subtotal: got=%d want=6", totals.Qualifying)
	}
	if totals.Race1 != 26+25 {
		t.Fatalf("race1 subtotal: got=%d want=51", totals.Race1)
	}
	if totals.Race2 != 26 {
		t.Fatalf("race2 subtotal: got=%d want=26", totals.Race2)
	}
	if grand != 6+51+26 {
		t.Fatalf("grand total: got=%d want=83", grand)
	}
}

func TestScoreRoster_BeyondTopSixQualifyingScoresZero(t *testing.T) {
	order := make([]string, 0, 8)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		order = append(order, id)
	}
	result := raceresult.Result{Qualifying: order}

	totals, _, breakdown := ScoreRoster([]string{"g", "h", "a"}, result)
	if totals.Qualifying != 6 {
		t.Fatalf("qualifying subtotal: got=%d want=6", totals.Qualifying)
	}
	if breakdown[raceresult.SessionQualifying]["g"] != 0 {
		t.Fatalf("7th in qualifying must score zero")
	}
}

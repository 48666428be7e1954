package scoring

import "time"

// EventScore is the engine-owned point breakdown for one (event, player)
// pair. The full set for an event is replaced on every engine run; no other
// writer may touch these documents.
type EventScore struct {
	EventID     string
	PlayerID    string
	DisplayName string
	Roster      []string

	Qualifying int
	Race1      int
	Race2      int
	Race3      int
	Total      int

	Breakdown Breakdown

	// ResultsUpdatedAt mirrors the source result's last-modified timestamp
	// so stale computations can be spotted against later result edits.
	ResultsUpdatedAt time.Time
	EngineVersion    string
	ComputedAt       time.Time
}

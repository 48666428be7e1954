package audit

import "time"

// Run kinds, one per engine operation.
const (
	KindEventScores     = "event_scores"
	KindPlayerStandings = "player_standings"
	KindTeamStandings   = "team_standings"
	KindLock            = "lock"
	KindUnlock          = "unlock"
)

// Record captures one engine invocation for operator inspection. Failed
// chunk counts let an operator decide whether a rerun is needed; reruns are
// always safe because every run fully replaces its output set.
type Record struct {
	ID       string
	Kind     string
	SeasonID string
	EventID  string

	ThroughEventID  string
	ThroughSequence int

	EntryCount   int
	RecordCount  int
	EventCount   int
	ChunkCount   int
	FailedChunks int

	ResultsUpdatedAt *time.Time
	UnlockReason     string

	Actor         string
	EngineVersion string
	RanAt         time.Time
}

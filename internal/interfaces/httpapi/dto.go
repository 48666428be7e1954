package httpapi

import (
	"time"

	"github.com/btcc-fantasy/league-engine/internal/domain/audit"
	"github.com/btcc-fantasy/league-engine/internal/domain/event"
	"github.com/btcc-fantasy/league-engine/internal/domain/scoring"
	"github.com/btcc-fantasy/league-engine/internal/domain/standing"
	"github.com/btcc-fantasy/league-engine/internal/usecase"
)

type eventDTO struct {
	ID            string     `json:"id"`
	SeasonID      string     `json:"season_id"`
	Sequence      int        `json:"sequence"`
	Venue         string     `json:"venue"`
	RoundFrom     int        `json:"round_from"`
	RoundTo       int        `json:"round_to"`
	DateFrom      time.Time  `json:"date_from"`
	DateTo        time.Time  `json:"date_to"`
	Status        string     `json:"status"`
	ResultsLocked bool       `json:"results_locked"`
	LockedBy      string     `json:"locked_by,omitempty"`
	LockedAt      *time.Time `json:"locked_at,omitempty"`
	UnlockedBy    string     `json:"unlocked_by,omitempty"`
	UnlockedAt    *time.Time `json:"unlocked_at,omitempty"`
	UnlockReason  string     `json:"unlock_reason,omitempty"`
}

func eventToDTO(e event.Event) eventDTO {
	return eventDTO{
		ID:            e.ID,
		SeasonID:      e.SeasonID,
		Sequence:      e.Sequence,
		Venue:         e.Venue,
		RoundFrom:     e.RoundFrom,
		RoundTo:       e.RoundTo,
		DateFrom:      e.DateFrom,
		DateTo:        e.DateTo,
		Status:        e.Status,
		ResultsLocked: e.ResultsLocked,
		LockedBy:      e.LockedBy,
		LockedAt:      e.LockedAt,
		UnlockedBy:    e.UnlockedBy,
		UnlockedAt:    e.UnlockedAt,
		UnlockReason:  e.UnlockReason,
	}
}

type eventScoreDTO struct {
	EventID          string                    `json:"event_id"`
	PlayerID         string                    `json:"player_id"`
	DisplayName      string                    `json:"display_name"`
	Roster           []string                  `json:"roster"`
	Qualifying       int                       `json:"qualifying"`
	Race1            int                       `json:"race1"`
	Race2            int                       `json:"race2"`
	Race3            int                       `json:"race3"`
	Total            int                       `json:"total"`
	Breakdown        map[string]map[string]int `json:"breakdown,omitempty"`
	ResultsUpdatedAt time.Time                 `json:"results_updated_at"`
	EngineVersion    string                    `json:"engine_version"`
	ComputedAt       time.Time                 `json:"computed_at"`
}

func eventScoreToDTO(s scoring.EventScore) eventScoreDTO {
	return eventScoreDTO{
		EventID:          s.EventID,
		PlayerID:         s.PlayerID,
		DisplayName:      s.DisplayName,
		Roster:           s.Roster,
		Qualifying:       s.Qualifying,
		Race1:            s.Race1,
		Race2:            s.Race2,
		Race3:            s.Race3,
		Total:            s.Total,
		Breakdown:        s.Breakdown,
		ResultsUpdatedAt: s.ResultsUpdatedAt,
		EngineVersion:    s.EngineVersion,
		ComputedAt:       s.ComputedAt,
	}
}

func eventScoresToDTO(scores []scoring.EventScore) []eventScoreDTO {
	out := make([]eventScoreDTO, 0, len(scores))
	for _, s := range scores {
		out = append(out, eventScoreToDTO(s))
	}
	return out
}

type scoreRunDTO struct {
	EventID          string    `json:"event_id"`
	Entries          int       `json:"entries"`
	Records          int       `json:"records"`
	Chunks           int       `json:"chunks"`
	FailedChunks     int       `json:"failed_chunks"`
	ResultsUpdatedAt time.Time `json:"results_updated_at"`
	EngineVersion    string    `json:"engine_version"`
	RanAt            time.Time `json:"ran_at"`
}

func scoreRunToDTO(run usecase.ScoreRun) scoreRunDTO {
	return scoreRunDTO{
		EventID:          run.EventID,
		Entries:          run.Entries,
		Records:          run.Records,
		Chunks:           run.Chunks,
		FailedChunks:     run.FailedChunks,
		ResultsUpdatedAt: run.ResultsUpdatedAt,
		EngineVersion:    run.EngineVersion,
		RanAt:            run.RanAt,
	}
}

type playerStandingDTO struct {
	SeasonID        string    `json:"season_id"`
	PlayerID        string    `json:"player_id"`
	DisplayName     string    `json:"display_name"`
	Total           int       `json:"total"`
	ThroughEventID  string    `json:"through_event_id"`
	ThroughSequence int       `json:"through_sequence"`
	EventIDs        []string  `json:"event_ids"`
	ComputedAt      time.Time `json:"computed_at"`
	EngineVersion   string    `json:"engine_version"`
}

func playerStandingsToDTO(standings []standing.PlayerStanding) []playerStandingDTO {
	out := make([]playerStandingDTO, 0, len(standings))
	for _, s := range standings {
		out = append(out, playerStandingDTO{
			SeasonID:        s.SeasonID,
			PlayerID:        s.PlayerID,
			DisplayName:     s.DisplayName,
			Total:           s.Total,
			ThroughEventID:  s.ThroughEventID,
			ThroughSequence: s.ThroughSequence,
			EventIDs:        s.EventIDs,
			ComputedAt:      s.ComputedAt,
			EngineVersion:   s.EngineVersion,
		})
	}
	return out
}

type teamMemberDTO struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Total       int    `json:"total"`
}

type teamStandingDTO struct {
	SeasonID        string          `json:"season_id"`
	TeamID          string          `json:"team_id"`
	TeamName        string          `json:"team_name"`
	Total           int             `json:"total"`
	Members         []teamMemberDTO `json:"members"`
	ThroughEventID  string          `json:"through_event_id"`
	ThroughSequence int             `json:"through_sequence"`
	ComputedAt      time.Time       `json:"computed_at"`
	EngineVersion   string          `json:"engine_version"`
}

func teamStandingsToDTO(standings []standing.TeamStanding) []teamStandingDTO {
	out := make([]teamStandingDTO, 0, len(standings))
	for _, s := range standings {
		members := make([]teamMemberDTO, 0, len(s.Members))
		for _, m := range s.Members {
			members = append(members, teamMemberDTO{
				PlayerID:    m.PlayerID,
				DisplayName: m.DisplayName,
				Total:       m.Total,
			})
		}
		out = append(out, teamStandingDTO{
			SeasonID:        s.SeasonID,
			TeamID:          s.TeamID,
			TeamName:        s.TeamName,
			Total:           s.Total,
			Members:         members,
			ThroughEventID:  s.ThroughEventID,
			ThroughSequence: s.ThroughSequence,
			ComputedAt:      s.ComputedAt,
			EngineVersion:   s.EngineVersion,
		})
	}
	return out
}

type standingsRunDTO struct {
	SeasonID        string    `json:"season_id"`
	ThroughEventID  string    `json:"through_event_id"`
	ThroughSequence int       `json:"through_sequence"`
	Events          int       `json:"events,omitempty"`
	Records         int       `json:"records"`
	Chunks          int       `json:"chunks"`
	FailedChunks    int       `json:"failed_chunks"`
	EngineVersion   string    `json:"engine_version"`
	RanAt           time.Time `json:"ran_at"`
}

func standingsRunToDTO(run usecase.StandingsRun) standingsRunDTO {
	return standingsRunDTO{
		SeasonID:        run.SeasonID,
		ThroughEventID:  run.ThroughEventID,
		ThroughSequence: run.ThroughSequence,
		Events:          run.Events,
		Records:         run.Records,
		Chunks:          run.Chunks,
		FailedChunks:    run.FailedChunks,
		EngineVersion:   run.EngineVersion,
		RanAt:           run.RanAt,
	}
}

type runRecordDTO struct {
	ID               string     `json:"id"`
	Kind             string     `json:"kind"`
	SeasonID         string     `json:"season_id,omitempty"`
	EventID          string     `json:"event_id,omitempty"`
	ThroughEventID   string     `json:"through_event_id,omitempty"`
	ThroughSequence  int        `json:"through_sequence,omitempty"`
	EntryCount       int        `json:"entry_count,omitempty"`
	RecordCount      int        `json:"record_count,omitempty"`
	EventCount       int        `json:"event_count,omitempty"`
	ChunkCount       int        `json:"chunk_count,omitempty"`
	FailedChunks     int        `json:"failed_chunks,omitempty"`
	ResultsUpdatedAt *time.Time `json:"results_updated_at,omitempty"`
	UnlockReason     string     `json:"unlock_reason,omitempty"`
	Actor            string     `json:"actor,omitempty"`
	EngineVersion    string     `json:"engine_version"`
	RanAt            time.Time  `json:"ran_at"`
}

func runRecordsToDTO(records []audit.Record) []runRecordDTO {
	out := make([]runRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, runRecordDTO{
			ID:               r.ID,
			Kind:             r.Kind,
			SeasonID:         r.SeasonID,
			EventID:          r.EventID,
			ThroughEventID:   r.ThroughEventID,
			ThroughSequence:  r.ThroughSequence,
			EntryCount:       r.EntryCount,
			RecordCount:      r.RecordCount,
			EventCount:       r.EventCount,
			ChunkCount:       r.ChunkCount,
			FailedChunks:     r.FailedChunks,
			ResultsUpdatedAt: r.ResultsUpdatedAt,
			UnlockReason:     r.UnlockReason,
			Actor:            r.Actor,
			EngineVersion:    r.EngineVersion,
			RanAt:            r.RanAt,
		})
	}
	return out
}

package postgres

import (
	"time"

	"github.com/btcc-fantasy/league-engine/internal/domain/audit"
)

type runRecordTableModel struct {
	ID               string     `db:"id"`
	Kind             string     `db:"kind"`
	SeasonID         string     `db:"season_id"`
	EventID          string     `db:"event_id"`
	ThroughEventID   string     `db:"through_event_id"`
	ThroughSequence  int        `db:"through_sequence"`
	EntryCount       int        `db:"entry_count"`
	RecordCount      int        `db:"record_count"`
	EventCount       int        `db:"event_count"`
	ChunkCount       int        `db:"chunk_count"`
	FailedChunks     int        `db:"failed_chunks"`
	ResultsUpdatedAt *time.Time `db:"results_updated_at"`
	UnlockReason     string     `db:"unlock_reason"`
	Actor            string     `db:"actor"`
	EngineVersion    string     `db:"engine_version"`
	RanAt            time.Time  `db:"ran_at"`
}

func runRecordFromRow(row runRecordTableModel) audit.Record {
	return audit.Record{
		ID:               row.ID,
		Kind:             row.Kind,
		SeasonID:         row.SeasonID,
		EventID:          row.EventID,
		ThroughEventID:   row.ThroughEventID,
		ThroughSequence:  row.ThroughSequence,
		EntryCount:       row.EntryCount,
		RecordCount:      row.RecordCount,
		EventCount:       row.EventCount,
		ChunkCount:       row.ChunkCount,
		FailedChunks:     row.FailedChunks,
		ResultsUpdatedAt: row.ResultsUpdatedAt,
		UnlockReason:     row.UnlockReason,
		Actor:            row.Actor,
		EngineVersion:    row.EngineVersion,
		RanAt:            row.RanAt,
	}
}

func runRecordToRow(record audit.Record) runRecordTableModel {
	return runRecordTableModel{
		ID:               record.ID,
		Kind:             record.Kind,
		SeasonID:         record.SeasonID,
		EventID:          record.EventID,
		ThroughEventID:   record.ThroughEventID,
		ThroughSequence:  record.ThroughSequence,
		EntryCount:       record.EntryCount,
		RecordCount:      record.RecordCount,
		EventCount:       record.EventCount,
		ChunkCount:       record.ChunkCount,
		FailedChunks:     record.FailedChunks,
		ResultsUpdatedAt: record.ResultsUpdatedAt,
		UnlockReason:     record.UnlockReason,
		Actor:            record.Actor,
		EngineVersion:    record.EngineVersion,
		RanAt:            record.RanAt,
	}
}

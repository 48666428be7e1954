package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/btcc-fantasy/league-engine/internal/domain/audit"
	"github.com/btcc-fantasy/league-engine/internal/domain/entry"
	"github.com/btcc-fantasy/league-engine/internal/domain/event"
	"github.com/btcc-fantasy/league-engine/internal/domain/raceresult"
	"github.com/btcc-fantasy/league-engine/internal/domain/scoring"
	"github.com/btcc-fantasy/league-engine/internal/platform/id"
	"github.com/btcc-fantasy/league-engine/internal/platform/logging"
)

// ScoreRun summarizes one scoring run over a single event.
type ScoreRun struct {
	EventID          string
	Entries          int
	Records          int
	Chunks           int
	FailedChunks     int
	ResultsUpdatedAt time.Time
	EngineVersion    string
	RanAt            time.Time
}

// ScoreService computes and persists per-player event scores. Each run fully
// replaces the event's score set, so reruns after result corrections converge
// without leftovers from earlier runs.
type ScoreService struct {
	eventRepo  event.Repository
	resultRepo raceresult.Repository
	entryRepo  entry.Repository
	scoreRepo  scoring.Repository
	auditRepo  audit.Repository
	ids        id.Generator
	logger     *logging.Logger
	now        func() time.Time
	chunkSize  int
	workers    int
}

func NewScoreService(
	eventRepo event.Repository,
	resultRepo raceresult.Repository,
	entryRepo entry.Repository,
	scoreRepo scoring.Repository,
	auditRepo audit.Repository,
	ids id.Generator,
	logger *logging.Logger,
	chunkSize int,
	workers int,
) *ScoreService {
	if logger == nil {
		logger = logging.Default()
	}
	if chunkSize <= 0 {
		chunkSize = DefaultWriteChunkSize
	}
	if workers <= 0 {
		workers = 1
	}

	return &ScoreService{
		eventRepo:  eventRepo,
		resultRepo: resultRepo,
		entryRepo:  entryRepo,
		scoreRepo:  scoreRepo,
		auditRepo:  auditRepo,
		ids:        ids,
		logger:     logger,
		now:        time.Now,
		chunkSize:  chunkSize,
		workers:    workers,
	}
}

// ScoreEvent recomputes every entry's score for one event and replaces the
// stored score set. Preconditions are read fresh on every call: the event must
// exist and be locked, results must exist, and at least one entry must be
// submitted. When some write chunks fail the committed chunks stay in place
// and the returned error reports the damage; rerunning is the recovery.
func (s *ScoreService) ScoreEvent(ctx context.Context, eventID, actor string) (ScoreRun, error) {
	ctx, span := startUsecaseSpan(ctx, "ScoreService.ScoreEvent")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return ScoreRun{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	evt, found, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return ScoreRun{}, fmt.Errorf("get event %s: %w", eventID, err)
	}
	if !found {
		return ScoreRun{}, fmt.Errorf("%w: event %s", ErrNotFound, eventID)
	}
	if !evt.ResultsLocked {
		return ScoreRun{}, fmt.Errorf("%w: event %s", ErrEventNotLocked, eventID)
	}

	result, found, err := s.resultRepo.GetByEvent(ctx, eventID)
	if err != nil {
		return ScoreRun{}, fmt.Errorf("get results for event %s: %w", eventID, err)
	}
	if !found {
		return ScoreRun{}, fmt.Errorf("%w: event %s", ErrResultsMissing, eventID)
	}

	entries, err := s.entryRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return ScoreRun{}, fmt.Errorf("list entries for event %s: %w", eventID, err)
	}
	if len(entries) == 0 {
		return ScoreRun{}, fmt.Errorf("%w: event %s", ErrNoEntries, eventID)
	}

	ranAt := s.now().UTC()
	scores := s.scoreEntries(entries, result, ranAt)

	sort.Slice(scores, func(i, j int) bool { return scores[i].PlayerID < scores[j].PlayerID })

	if err := s.scoreRepo.DeleteByEvent(ctx, eventID); err != nil {
		return ScoreRun{}, fmt.Errorf("delete scores for event %s: %w", eventID, err)
	}

	report := writeChunked(ctx, scores, s.chunkSize, s.scoreRepo.WriteBatch)

	run := ScoreRun{
		EventID:          eventID,
		Entries:          len(entries),
		Records:          report.Records,
		Chunks:           report.Chunks,
		FailedChunks:     len(report.Failed),
		ResultsUpdatedAt: result.UpdatedAt,
		EngineVersion:    EngineVersion,
		RanAt:            ranAt,
	}

	s.appendAudit(ctx, audit.Record{
		Kind:             audit.KindEventScores,
		SeasonID:         evt.SeasonID,
		EventID:          eventID,
		EntryCount:       len(entries),
		RecordCount:      report.Records,
		ChunkCount:       report.Chunks,
		FailedChunks:     len(report.Failed),
		ResultsUpdatedAt: &result.UpdatedAt,
		Actor:            actor,
		EngineVersion:    EngineVersion,
		RanAt:            ranAt,
	})

	if err := report.Err(); err != nil {
		s.logger.ErrorContext(ctx, "event scoring committed partially",
			"event_id", eventID, "failed_chunks", len(report.Failed), "error", err)
		return run, fmt.Errorf("write scores for event %s: %w", eventID, err)
	}

	s.logger.InfoContext(ctx, "event scored",
		"event_id", eventID, "entries", len(entries), "chunks", report.Chunks)

	return run, nil
}

// scoreEntries fans the entries out over a bounded worker pool. Ordering does
// not matter here: each worker writes only its own pre-assigned slot.
func (s *ScoreService) scoreEntries(entries []entry.Entry, result raceresult.Result, ranAt time.Time) []scoring.EventScore {
	scores := make([]scoring.EventScore, len(entries))

	score := func(i int) {
		scores[i] = s.scoreEntry(entries[i], result, ranAt)
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		for i := range entries {
			score(i)
		}
		return scores
	}
	defer pool.Release()

	done := make(chan struct{}, len(entries))
	for i := range entries {
		i := i
		if err := pool.Submit(func() {
			score(i)
			done <- struct{}{}
		}); err != nil {
			score(i)
			done <- struct{}{}
		}
	}
	for range entries {
		<-done
	}

	return scores
}

func (s *ScoreService) scoreEntry(e entry.Entry, result raceresult.Result, ranAt time.Time) scoring.EventScore {
	roster := scoring.ValidateRoster(e.DriverIDs)
	sessions, total, breakdown := scoring.ScoreRoster(roster, result)

	return scoring.EventScore{
		EventID:          e.EventID,
		PlayerID:         e.PlayerID,
		DisplayName:      e.DisplayName,
		Roster:           roster,
		Qualifying:       sessions.Qualifying,
		Race1:            sessions.Race1,
		Race2:            sessions.Race2,
		Race3:            sessions.Race3,
		Total:            total,
		Breakdown:        breakdown,
		ResultsUpdatedAt: result.UpdatedAt,
		EngineVersion:    EngineVersion,
		ComputedAt:       ranAt,
	}
}

// ListEventScores returns the stored score set for one event, sorted by
// player id.
func (s *ScoreService) ListEventScores(ctx context.Context, eventID string) ([]scoring.EventScore, error) {
	ctx, span := startUsecaseSpan(ctx, "ScoreService.ListEventScores")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	_, found, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", eventID, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: event %s", ErrNotFound, eventID)
	}

	scores, err := s.scoreRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list scores for event %s: %w", eventID, err)
	}

	sort.Slice(scores, func(i, j int) bool { return scores[i].PlayerID < scores[j].PlayerID })

	return scores, nil
}

// appendAudit records the run. Audit failures never fail the run itself: the
// scores are the product, the run record is bookkeeping.
func (s *ScoreService) appendAudit(ctx context.Context, record audit.Record) {
	runID, err := s.ids.NewID()
	if err != nil {
		s.logger.WarnContext(ctx, "generate run id failed", "error", err)
		return
	}
	record.ID = runID

	if err := s.auditRepo.Append(ctx, record); err != nil {
		s.logger.WarnContext(ctx, "append run record failed",
			"kind", record.Kind, "event_id", record.EventID, "error", err)
	}
}

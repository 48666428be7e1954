package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/btcc-fantasy/league-engine/internal/domain/audit"
	"github.com/btcc-fantasy/league-engine/internal/domain/event"
	"github.com/btcc-fantasy/league-engine/internal/domain/profile"
	"github.com/btcc-fantasy/league-engine/internal/domain/scoring"
	"github.com/btcc-fantasy/league-engine/internal/domain/standing"
	"github.com/btcc-fantasy/league-engine/internal/platform/id"
	"github.com/btcc-fantasy/league-engine/internal/platform/logging"
)

// StandingsRun summarizes one standings rebuild.
type StandingsRun struct {
	SeasonID        string
	ThroughEventID  string
	ThroughSequence int
	Events          int
	Records         int
	Chunks          int
	FailedChunks    int
	EngineVersion   string
	RanAt           time.Time
}

// StandingsService aggregates stored event scores into season standings.
// Standings are derived data only: rebuilds never touch event scores, and
// every rebuild fully replaces the standings set it produces.
type StandingsService struct {
	eventRepo    event.Repository
	scoreRepo    scoring.Repository
	profileRepo  profile.Repository
	standingRepo standing.Repository
	auditRepo    audit.Repository
	ids          id.Generator
	logger       *logging.Logger
	now          func() time.Time
	chunkSize    int
	readWorkers  int
}

func NewStandingsService(
	eventRepo event.Repository,
	scoreRepo scoring.Repository,
	profileRepo profile.Repository,
	standingRepo standing.Repository,
	auditRepo audit.Repository,
	ids id.Generator,
	logger *logging.Logger,
	chunkSize int,
	readWorkers int,
) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	if chunkSize <= 0 {
		chunkSize = DefaultWriteChunkSize
	}
	if readWorkers <= 0 {
		readWorkers = 1
	}

	return &StandingsService{
		eventRepo:    eventRepo,
		scoreRepo:    scoreRepo,
		profileRepo:  profileRepo,
		standingRepo: standingRepo,
		auditRepo:    auditRepo,
		ids:          ids,
		logger:       logger,
		now:          time.Now,
		chunkSize:    chunkSize,
		readWorkers:  readWorkers,
	}
}

type eventScoreBatch struct {
	sequence int
	eventID  string
	scores   []scoring.EventScore
}

// RebuildPlayerStandings sums stored event scores for every event whose
// sequence is at or below throughSequence and replaces the season's player
// standings. Events without a stored score set contribute nothing; they are
// not an error, only not-yet-scored rounds.
func (s *StandingsService) RebuildPlayerStandings(ctx context.Context, seasonID string, throughSequence int, actor string) (StandingsRun, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.RebuildPlayerStandings")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return StandingsRun{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	if throughSequence < 1 {
		return StandingsRun{}, fmt.Errorf("%w: through sequence must be at least 1", ErrInvalidInput)
	}

	events, err := s.eventRepo.ListThroughSequence(ctx, seasonID, throughSequence)
	if err != nil {
		return StandingsRun{}, fmt.Errorf("list events for season %s: %w", seasonID, err)
	}
	if len(events) == 0 {
		return StandingsRun{}, fmt.Errorf("%w: season %s has no events at or below sequence %d", ErrNotFound, seasonID, throughSequence)
	}

	batches, err := s.readEventScores(ctx, events)
	if err != nil {
		return StandingsRun{}, err
	}

	ranAt := s.now().UTC()
	through := events[len(events)-1]

	standings := foldPlayerStandings(seasonID, batches, through, ranAt)

	if err := s.standingRepo.DeletePlayersBySeason(ctx, seasonID); err != nil {
		return StandingsRun{}, fmt.Errorf("delete player standings for season %s: %w", seasonID, err)
	}

	report := writeChunked(ctx, standings, s.chunkSize, s.standingRepo.WritePlayerBatch)

	run := StandingsRun{
		SeasonID:        seasonID,
		ThroughEventID:  through.ID,
		ThroughSequence: through.Sequence,
		Events:          len(events),
		Records:         report.Records,
		Chunks:          report.Chunks,
		FailedChunks:    len(report.Failed),
		EngineVersion:   EngineVersion,
		RanAt:           ranAt,
	}

	s.appendAudit(ctx, audit.Record{
		Kind:            audit.KindPlayerStandings,
		SeasonID:        seasonID,
		ThroughEventID:  through.ID,
		ThroughSequence: through.Sequence,
		EventCount:      len(events),
		RecordCount:     report.Records,
		ChunkCount:      report.Chunks,
		FailedChunks:    len(report.Failed),
		Actor:           actor,
		EngineVersion:   EngineVersion,
		RanAt:           ranAt,
	})

	if err := report.Err(); err != nil {
		s.logger.ErrorContext(ctx, "player standings committed partially",
			"season_id", seasonID, "failed_chunks", len(report.Failed), "error", err)
		return run, fmt.Errorf("write player standings for season %s: %w", seasonID, err)
	}

	s.logger.InfoContext(ctx, "player standings rebuilt",
		"season_id", seasonID, "through_sequence", through.Sequence, "players", report.Records)

	return run, nil
}

// readEventScores loads each event's stored score set, bounded-parallel.
// Batches come back ordered by event sequence so the fold is deterministic.
func (s *StandingsService) readEventScores(ctx context.Context, events []event.Event) ([]eventScoreBatch, error) {
	p := pool.NewWithResults[eventScoreBatch]().WithContext(ctx).WithMaxGoroutines(s.readWorkers)
	for _, evt := range events {
		evt := evt
		p.Go(func(ctx context.Context) (eventScoreBatch, error) {
			scores, err := s.scoreRepo.ListByEvent(ctx, evt.ID)
			if err != nil {
				return eventScoreBatch{}, fmt.Errorf("list scores for event %s: %w", evt.ID, err)
			}
			return eventScoreBatch{sequence: evt.Sequence, eventID: evt.ID, scores: scores}, nil
		})
	}

	batches, err := p.Wait()
	if err != nil {
		return nil, err
	}

	sort.Slice(batches, func(i, j int) bool { return batches[i].sequence < batches[j].sequence })

	return batches, nil
}

// foldPlayerStandings folds the per-event score batches into one standing per
// player. The later non-empty display name wins so renames propagate without
// a separate profile read.
func foldPlayerStandings(seasonID string, batches []eventScoreBatch, through event.Event, ranAt time.Time) []standing.PlayerStanding {
	byPlayer := map[string]*standing.PlayerStanding{}
	for _, batch := range batches {
		for _, score := range batch.scores {
			st, ok := byPlayer[score.PlayerID]
			if !ok {
				st = &standing.PlayerStanding{
					SeasonID:        seasonID,
					PlayerID:        score.PlayerID,
					ThroughEventID:  through.ID,
					ThroughSequence: through.Sequence,
					ComputedAt:      ranAt,
					EngineVersion:   EngineVersion,
				}
				byPlayer[score.PlayerID] = st
			}
			st.Total += score.Total
			st.EventIDs = append(st.EventIDs, batch.eventID)
			if name := strings.TrimSpace(score.DisplayName); name != "" {
				st.DisplayName = name
			}
		}
	}

	standings := make([]standing.PlayerStanding, 0, len(byPlayer))
	for _, st := range byPlayer {
		standings = append(standings, *st)
	}
	sort.Slice(standings, func(i, j int) bool { return standings[i].PlayerID < standings[j].PlayerID })

	return standings
}

// RebuildTeamStandings regroups the stored player standings by the team each
// player's profile names and replaces the season's team standings. Players
// without a team assignment land in a shared unassigned bucket.
func (s *StandingsService) RebuildTeamStandings(ctx context.Context, seasonID, actor string) (StandingsRun, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.RebuildTeamStandings")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return StandingsRun{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	players, err := s.standingRepo.ListPlayersBySeason(ctx, seasonID)
	if err != nil {
		return StandingsRun{}, fmt.Errorf("list player standings for season %s: %w", seasonID, err)
	}
	if len(players) == 0 {
		return StandingsRun{}, fmt.Errorf("%w: season %s has no player standings, rebuild player standings first", ErrNotFound, seasonID)
	}

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return StandingsRun{}, fmt.Errorf("list player profiles: %w", err)
	}
	profileByPlayer := make(map[string]profile.Profile, len(profiles))
	for _, p := range profiles {
		profileByPlayer[p.PlayerID] = p
	}

	ranAt := s.now().UTC()
	teams := foldTeamStandings(seasonID, players, profileByPlayer, ranAt)

	if err := s.standingRepo.DeleteTeamsBySeason(ctx, seasonID); err != nil {
		return StandingsRun{}, fmt.Errorf("delete team standings for season %s: %w", seasonID, err)
	}

	report := writeChunked(ctx, teams, s.chunkSize, s.standingRepo.WriteTeamBatch)

	throughEventID, throughSequence := throughMarkers(players)

	run := StandingsRun{
		SeasonID:        seasonID,
		ThroughEventID:  throughEventID,
		ThroughSequence: throughSequence,
		Records:         report.Records,
		Chunks:          report.Chunks,
		FailedChunks:    len(report.Failed),
		EngineVersion:   EngineVersion,
		RanAt:           ranAt,
	}

	s.appendAudit(ctx, audit.Record{
		Kind:            audit.KindTeamStandings,
		SeasonID:        seasonID,
		ThroughEventID:  throughEventID,
		ThroughSequence: throughSequence,
		RecordCount:     report.Records,
		ChunkCount:      report.Chunks,
		FailedChunks:    len(report.Failed),
		Actor:           actor,
		EngineVersion:   EngineVersion,
		RanAt:           ranAt,
	})

	if err := report.Err(); err != nil {
		s.logger.ErrorContext(ctx, "team standings committed partially",
			"season_id", seasonID, "failed_chunks", len(report.Failed), "error", err)
		return run, fmt.Errorf("write team standings for season %s: %w", seasonID, err)
	}

	s.logger.InfoContext(ctx, "team standings rebuilt",
		"season_id", seasonID, "teams", report.Records)

	return run, nil
}

func foldTeamStandings(seasonID string, players []standing.PlayerStanding, profileByPlayer map[string]profile.Profile, ranAt time.Time) []standing.TeamStanding {
	throughEventID, throughSequence := throughMarkers(players)

	byTeam := map[string]*standing.TeamStanding{}
	for _, player := range players {
		teamID, teamName := resolveTeam(profileByPlayer[player.PlayerID])

		team, ok := byTeam[teamID]
		if !ok {
			team = &standing.TeamStanding{
				SeasonID:        seasonID,
				TeamID:          teamID,
				TeamName:        teamName,
				ThroughEventID:  throughEventID,
				ThroughSequence: throughSequence,
				ComputedAt:      ranAt,
				EngineVersion:   EngineVersion,
			}
			byTeam[teamID] = team
		}
		team.Total += player.Total
		team.Members = append(team.Members, standing.TeamMember{
			PlayerID:    player.PlayerID,
			DisplayName: player.DisplayName,
			Total:       player.Total,
		})
	}

	teams := make([]standing.TeamStanding, 0, len(byTeam))
	for _, team := range byTeam {
		sort.Slice(team.Members, func(i, j int) bool {
			if team.Members[i].Total != team.Members[j].Total {
				return team.Members[i].Total > team.Members[j].Total
			}
			return team.Members[i].PlayerID < team.Members[j].PlayerID
		})
		teams = append(teams, *team)
	}
	sort.Slice(teams, func(i, j int) bool {
		if teams[i].Total != teams[j].Total {
			return teams[i].Total > teams[j].Total
		}
		return teams[i].TeamID < teams[j].TeamID
	})

	return teams
}

// resolveTeam maps a profile to its team bucket. No profile or a blank team
// id means the unassigned bucket; a team without a name displays its id.
func resolveTeam(p profile.Profile) (teamID, teamName string) {
	teamID = strings.TrimSpace(p.TeamID)
	if teamID == "" {
		return standing.UnassignedTeamID, "Unassigned"
	}
	teamName = strings.TrimSpace(p.TeamName)
	if teamName == "" {
		teamName = teamID
	}
	return teamID, teamName
}

func throughMarkers(players []standing.PlayerStanding) (eventID string, sequence int) {
	for _, player := range players {
		if player.ThroughSequence > sequence {
			sequence = player.ThroughSequence
			eventID = player.ThroughEventID
		}
	}
	return eventID, sequence
}

// ListPlayerStandings returns the stored player standings sorted by total
// descending, ties broken by player id.
func (s *StandingsService) ListPlayerStandings(ctx context.Context, seasonID string) ([]standing.PlayerStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.ListPlayerStandings")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	standings, err := s.standingRepo.ListPlayersBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list player standings for season %s: %w", seasonID, err)
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Total != standings[j].Total {
			return standings[i].Total > standings[j].Total
		}
		return standings[i].PlayerID < standings[j].PlayerID
	})

	return standings, nil
}

// ListTeamStandings returns the stored team standings sorted by total
// descending, ties broken by team id.
func (s *StandingsService) ListTeamStandings(ctx context.Context, seasonID string) ([]standing.TeamStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.ListTeamStandings")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	standings, err := s.standingRepo.ListTeamsBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list team standings for season %s: %w", seasonID, err)
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Total != standings[j].Total {
			return standings[i].Total > standings[j].Total
		}
		return standings[i].TeamID < standings[j].TeamID
	})

	return standings, nil
}

// ListRecentRuns returns the most recent engine run records, newest first.
func (s *StandingsService) ListRecentRuns(ctx context.Context, limit int) ([]audit.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.ListRecentRuns")
	defer span.End()

	if limit <= 0 {
		limit = 50
	}

	records, err := s.auditRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list run records: %w", err)
	}

	return records, nil
}

func (s *StandingsService) appendAudit(ctx context.Context, record audit.Record) {
	runID, err := s.ids.NewID()
	if err != nil {
		s.logger.WarnContext(ctx, "generate run id failed", "error", err)
		return
	}
	record.ID = runID

	if err := s.auditRepo.Append(ctx, record); err != nil {
		s.logger.WarnContext(ctx, "append run record failed",
			"kind", record.Kind, "season_id", record.SeasonID, "error", err)
	}
}

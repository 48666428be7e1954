package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/btcc-fantasy/league-engine/internal/domain/profile"
	"github.com/btcc-fantasy/league-engine/internal/domain/scoring"
	"github.com/btcc-fantasy/league-engine/internal/domain/standing"
	"github.com/btcc-fantasy/league-engine/internal/infrastructure/repository/memory"
	"github.com/btcc-fantasy/league-engine/internal/platform/id"
	"github.com/btcc-fantasy/league-engine/internal/platform/logging"
)

type standingsFixture struct {
	svc          *StandingsService
	scoreRepo    *memory.EventScoreRepository
	profileRepo  *memory.ProfileRepository
	standingRepo *memory.StandingRepository
	auditRepo    *memory.RunRecordRepository
}

func newStandingsFixture() standingsFixture {
	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	scoreRepo := memory.NewEventScoreRepository()
	profileRepo := memory.NewProfileRepository(memory.SeedProfiles())
	standingRepo := memory.NewStandingRepository()
	auditRepo := memory.NewRunRecordRepository()

	svc := NewStandingsService(eventRepo, scoreRepo, profileRepo, standingRepo, auditRepo,
		id.NewRandomGenerator(), logging.NewNop(), DefaultWriteChunkSize, 2)

	return standingsFixture{
		svc:          svc,
		scoreRepo:    scoreRepo,
		profileRepo:  profileRepo,
		standingRepo: standingRepo,
		auditRepo:    auditRepo,
	}
}

func seedEventScore(t *testing.T, repo *memory.EventScoreRepository, eventID, playerID, displayName string, total int) {
	t.Helper()
	err := repo.WriteBatch(t.Context(), []scoring.EventScore{{
		EventID:     eventID,
		PlayerID:    playerID,
		DisplayName: displayName,
		Total:       total,
		ComputedAt:  time.Date(2026, time.April, 6, 20, 0, 0, 0, time.UTC),
	}})
	if err != nil {
		t.Fatalf("seed event score failed: %v", err)
	}
}

func TestStandingsService_RebuildPlayerStandings_SumsAcrossEvents(t *testing.T) {
	fx := newStandingsFixture()
	seedEventScore(t, fx.scoreRepo, memory.EventIDBrandsHatchIndy, "player-amy", "Amy", 232)
	seedEventScore(t, fx.scoreRepo, memory.EventIDDonington, "player-amy", "Amy", 180)
	seedEventScore(t, fx.scoreRepo, memory.EventIDBrandsHatchIndy, "player-ben", "Ben", 150)

	run, err := fx.svc.RebuildPlayerStandings(t.Context(), memory.SeasonID2026, 2, "ops")
	if err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if run.ThroughEventID != memory.EventIDDonington || run.ThroughSequence != 2 {
		t.Fatalf("unexpected through markers: %s/%d", run.ThroughEventID, run.ThroughSequence)
	}

	standings, err := fx.svc.ListPlayerStandings(t.Context(), memory.SeasonID2026)
	if err != nil {
		t.Fatalf("list standings failed: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("unexpected standing count: %d", len(standings))
	}
	if standings[0].PlayerID != "player-amy" || standings[0].Total != 412 {
		t.Fatalf("unexpected leader: %s=%d", standings[0].PlayerID, standings[0].Total)
	}
	if len(standings[0].EventIDs) != 2 {
		t.Fatalf("unexpected contributing events: %v", standings[0].EventIDs)
	}
	if standings[1].PlayerID != "player-ben" || standings[1].Total != 150 {
		t.Fatalf("unexpected runner-up: %s=%d", standings[1].PlayerID, standings[1].Total)
	}
}

func TestStandingsService_RebuildPlayerStandings_ThresholdExcludesLaterEvents(t *testing.T) {
	fx := newStandingsFixture()
	seedEventScore(t, fx.scoreRepo, memory.EventIDBrandsHatchIndy, "player-amy", "Amy", 232)
	seedEventScore(t, fx.scoreRepo, memory.EventIDDonington, "player-amy", "Amy", 180)

	if _, err := fx.svc.RebuildPlayerStandings(t.Context(), memory.SeasonID2026, 1, "ops"); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}

	standings, err := fx.svc.ListPlayerStandings(t.Context(), memory.SeasonID2026)
	if err != nil {
		t.Fatalf("list standings failed: %v", err)
	}
	if len(standings) != 1 || standings[0].Total != 232 {
		t.Fatalf("expected only the round one total, got %+v", standings)
	}
}

func TestStandingsService_RebuildPlayerStandings_UnscoredEventsContributeNothing(t *testing.T) {
	fx := newStandingsFixture()
	seedEventScore(t, fx.scoreRepo, memory.EventIDBrandsHatchIndy, "player-amy", "Amy", 232)

	// Threshold covers four events; only round one has a score set.
	run, err := fx.svc.RebuildPlayerStandings(t.Context(), memory.SeasonID2026, 4, "ops")
	if err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if run.Events != 4 {
		t.Fatalf("unexpected event count: %d", run.Events)
	}

	standings, err := fx.svc.ListPlayerStandings(t.Context(), memory.SeasonID2026)
	if err != nil {
		t.Fatalf("list standings failed: %v", err)
	}
	if len(standings) != 1 || standings[0].Total != 232 {
		t.Fatalf("unscored events must not change totals, got %+v", standings)
	}
	if standings[0].ThroughEventID != memory.EventIDThruxton {
		t.Fatalf("through marker should be the last covered event, got %s", standings[0].ThroughEventID)
	}
}

func TestStandingsService_RebuildPlayerStandings_LaterDisplayNameWins(t *testing.T) {
	fx := newStandingsFixture()
	seedEventScore(t, fx.scoreRepo, memory.EventIDBrandsHatchIndy, "player-amy", "Amy", 100)
	seedEventScore(t, fx.scoreRepo, memory.EventIDDonington, "player-amy", "Amy H.", 100)
	seedEventScore(t, fx.scoreRepo, memory.EventIDSnetterton, "player-amy", "  ", 100)

	if _, err := fx.svc.RebuildPlayerStandings(t.Context(), memory.SeasonID2026, 3, "ops"); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}

	standings, err := fx.svc.ListPlayerStandings(t.Context(), memory.SeasonID2026)
	if err != nil {
		t.Fatalf("list standings failed: %v", err)
	}
	if standings[0].DisplayName != "Amy H." {
		t.Fatalf("blank later name must not erase the last real one, got %q", standings[0].DisplayName)
	}
}

func TestStandingsService_RebuildPlayerStandings_FullyReplaces(t *testing.T) {
	fx := newStandingsFixture()
	seedEventScore(t, fx.scoreRepo, memory.EventIDBrandsHatchIndy, "player-amy", "Amy", 232)
	seedEventScore(t, fx.scoreRepo, memory.EventIDBrandsHatchIndy, "player-ben", "Ben", 150)

	if _, err := fx.svc.RebuildPlayerStandings(t.Context(), memory.SeasonID2026, 1, "ops"); err != nil {
		t.Fatalf("first rebuild failed: %v", err)
	}

	// Ben's score disappears after an event rescore; the rebuild must not
	// leave his old standing behind.
	if err := fx.scoreRepo.DeleteByEvent(t.Context(), memory.EventIDBrandsHatchIndy); err != nil {
		t.Fatalf("delete scores failed: %v", err)
	}
	seedEventScore(t, fx.scoreRepo, memory.EventIDBrandsHatchIndy, "player-amy", "Amy", 232)

	if _, err := fx.svc.RebuildPlayerStandings(t.Context(), memory.SeasonID2026, 1, "ops"); err != nil {
		t.Fatalf("second rebuild failed: %v", err)
	}

	standings, err := fx.svc.ListPlayerStandings(t.Context(), memory.SeasonID2026)
	if err != nil {
		t.Fatalf("list standings failed: %v", err)
	}
	if len(standings) != 1 || standings[0].PlayerID != "player-amy" {
		t.Fatalf("stale standings survived the replace, got %+v", standings)
	}
}

func TestStandingsService_RebuildPlayerStandings_NoEventsInRange(t *testing.T) {
	fx := newStandingsFixture()

	_, err := fx.svc.RebuildPlayerStandings(t.Context(), "btcc-2031", 5, "ops")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = fx.svc.RebuildPlayerStandings(t.Context(), memory.SeasonID2026, 0, "ops")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStandingsService_RebuildTeamStandings_GroupsByProfileTeam(t *testing.T) {
	fx := newStandingsFixture()
	seedEventScore(t, fx.scoreRepo, memory.EventIDBrandsHatchIndy, "player-amy", "Amy", 232)
	seedEventScore(t, fx.scoreRepo, memory.EventIDBrandsHatchIndy, "player-ben", "Ben", 150)
	seedEventScore(t, fx.scoreRepo, memory.EventIDBrandsHatchIndy, "player-cara", "Cara", 90)

	if _, err := fx.svc.RebuildPlayerStandings(t.Context(), memory.SeasonID2026, 1, "ops"); err != nil {
		t.Fatalf("player rebuild failed: %v", err)
	}
	if _, err := fx.svc.RebuildTeamStandings(t.Context(), memory.SeasonID2026, "ops"); err != nil {
		t.Fatalf("team rebuild failed: %v", err)
	}

	teams, err := fx.svc.ListTeamStandings(t.Context(), memory.SeasonID2026)
	if err != nil {
		t.Fatalf("list teams failed: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("unexpected team count: %d", len(teams))
	}

	apex := teams[0]
	if apex.TeamID != "team-apex" || apex.Total != 382 {
		t.Fatalf("unexpected leading team: %s=%d", apex.TeamID, apex.Total)
	}
	if apex.TeamName != "Apex Hunters" {
		t.Fatalf("unexpected team name: %s", apex.TeamName)
	}
	if len(apex.Members) != 2 || apex.Members[0].PlayerID != "player-amy" {
		t.Fatalf("members should sort by total descending, got %+v", apex.Members)
	}

	unassigned := teams[1]
	if unassigned.TeamID != standing.UnassignedTeamID || unassigned.Total != 90 {
		t.Fatalf("expected cara in the unassigned bucket, got %+v", unassigned)
	}

	var sum int
	for _, team := range teams {
		sum += team.Total
	}
	if sum != 232+150+90 {
		t.Fatalf("team totals must sum to player totals, got %d", sum)
	}
}

func TestStandingsService_RebuildTeamStandings_TeamNameFallsBackToID(t *testing.T) {
	fx := newStandingsFixture()
	if err := fx.profileRepo.Put(t.Context(), profile.Profile{
		PlayerID: "player-cara", DisplayName: "Cara", TeamID: "team-nameless",
	}); err != nil {
		t.Fatalf("put profile failed: %v", err)
	}
	seedEventScore(t, fx.scoreRepo, memory.EventIDBrandsHatchIndy, "player-cara", "Cara", 90)

	if _, err := fx.svc.RebuildPlayerStandings(t.Context(), memory.SeasonID2026, 1, "ops"); err != nil {
		t.Fatalf("player rebuild failed: %v", err)
	}
	if _, err := fx.svc.RebuildTeamStandings(t.Context(), memory.SeasonID2026, "ops"); err != nil {
		t.Fatalf("team rebuild failed: %v", err)
	}

	teams, err := fx.svc.ListTeamStandings(t.Context(), memory.SeasonID2026)
	if err != nil {
		t.Fatalf("list teams failed: %v", err)
	}
	if len(teams) != 1 || teams[0].TeamName != "team-nameless" {
		t.Fatalf("expected team name to fall back to the id, got %+v", teams)
	}
}

func TestStandingsService_RebuildTeamStandings_RequiresPlayerStandings(t *testing.T) {
	fx := newStandingsFixture()

	_, err := fx.svc.RebuildTeamStandings(t.Context(), memory.SeasonID2026, "ops")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

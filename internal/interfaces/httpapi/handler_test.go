package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/btcc-fantasy/league-engine/internal/infrastructure/repository/memory"
	"github.com/btcc-fantasy/league-engine/internal/platform/id"
	"github.com/btcc-fantasy/league-engine/internal/platform/logging"
	"github.com/btcc-fantasy/league-engine/internal/usecase"
)

const testAdminToken = "test-admin-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	resultRepo := memory.NewRaceResultRepository(memory.SeedResults())
	entryRepo := memory.NewEntryRepository(memory.SeedEntries())
	scoreRepo := memory.NewEventScoreRepository()
	profileRepo := memory.NewProfileRepository(memory.SeedProfiles())
	standingRepo := memory.NewStandingRepository()
	auditRepo := memory.NewRunRecordRepository()

	ids := id.NewRandomGenerator()
	logger := logging.NewNop()

	scoreService := usecase.NewScoreService(eventRepo, resultRepo, entryRepo, scoreRepo, auditRepo,
		ids, logger, usecase.DefaultWriteChunkSize, 4)
	standingsService := usecase.NewStandingsService(eventRepo, scoreRepo, profileRepo, standingRepo, auditRepo,
		ids, logger, usecase.DefaultWriteChunkSize, 2)
	lockService := usecase.NewLockService(eventRepo, auditRepo, ids, logger)

	handler := NewHandler(scoreService, standingsService, lockService, logger)

	return NewRouter(handler, logger, []string{"*"}, testAdminToken)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string, admin bool) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("X-Admin-Token", testAdminToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RebuildAndReadScores(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost,
		"/v1/events/"+memory.EventIDBrandsHatchIndy+"/scores/rebuild", `{"actor":"ops"}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/v1/events/"+memory.EventIDBrandsHatchIndy+"/scores", "", false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data []eventScoreDTO `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 3)
	require.Equal(t, "player-amy", envelope.Data[0].PlayerID)
	require.Equal(t, 232, envelope.Data[0].Total)
}

func TestRouter_RebuildScoresRequiresAdminToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost,
		"/v1/events/"+memory.EventIDBrandsHatchIndy+"/scores/rebuild", `{"actor":"ops"}`, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RebuildScoresOnUnlockedEventConflicts(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost,
		"/v1/events/"+memory.EventIDDonington+"/scores/rebuild", `{"actor":"ops"}`, true)
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func TestRouter_LockUnlockFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost,
		"/v1/events/"+memory.EventIDDonington+"/lock", `{"actor":"ops"}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data eventDTO `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Data.ResultsLocked)
	require.Equal(t, "complete", envelope.Data.Status)

	// Unlock without a reason is rejected.
	rec = doJSON(t, router, http.MethodPost,
		"/v1/events/"+memory.EventIDDonington+"/unlock", `{"actor":"ops"}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost,
		"/v1/events/"+memory.EventIDDonington+"/unlock", `{"actor":"ops","reason":"timing correction"}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRouter_StandingsFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost,
		"/v1/events/"+memory.EventIDBrandsHatchIndy+"/scores/rebuild", `{"actor":"ops"}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost,
		"/v1/seasons/"+memory.SeasonID2026+"/standings/players/rebuild",
		`{"through_sequence":1,"actor":"ops"}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost,
		"/v1/seasons/"+memory.SeasonID2026+"/standings/teams/rebuild", `{"actor":"ops"}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet,
		"/v1/seasons/"+memory.SeasonID2026+"/standings/players", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var players struct {
		Data []playerStandingDTO `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &players))
	require.Len(t, players.Data, 3)
	require.Equal(t, "player-ben", players.Data[0].PlayerID)

	rec = doJSON(t, router, http.MethodGet,
		"/v1/seasons/"+memory.SeasonID2026+"/standings/teams", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var teams struct {
		Data []teamStandingDTO `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &teams))
	require.Len(t, teams.Data, 2)
	require.Equal(t, "team-apex", teams.Data[0].TeamID)

	rec = doJSON(t, router, http.MethodGet, "/v1/engine/runs", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var runs struct {
		Data []runRecordDTO `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs.Data, 3)
	require.Equal(t, "team_standings", runs.Data[0].Kind)
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
}

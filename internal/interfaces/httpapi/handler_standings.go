package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/btcc-fantasy/league-engine/internal/usecase"
)

type rebuildPlayerStandingsRequest struct {
	ThroughSequence int    `json:"through_sequence" validate:"required,gte=1"`
	Actor           string `json:"actor" validate:"required"`
}

type rebuildTeamStandingsRequest struct {
	Actor string `json:"actor" validate:"required"`
}

func (h *Handler) GetPlayerStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStandings")
	defer span.End()

	seasonID := strings.TrimSpace(r.PathValue("seasonID"))
	standings, err := h.standingsService.ListPlayerStandings(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player standings failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStandingsToDTO(standings))
}

func (h *Handler) GetTeamStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStandings")
	defer span.End()

	seasonID := strings.TrimSpace(r.PathValue("seasonID"))
	standings, err := h.standingsService.ListTeamStandings(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team standings failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamStandingsToDTO(standings))
}

func (h *Handler) RebuildPlayerStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RebuildPlayerStandings")
	defer span.End()

	seasonID := strings.TrimSpace(r.PathValue("seasonID"))

	var req rebuildPlayerStandingsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	run, err := h.standingsService.RebuildPlayerStandings(ctx, seasonID, req.ThroughSequence, req.Actor)
	if err != nil {
		h.logger.WarnContext(ctx, "rebuild player standings failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsRunToDTO(run))
}

func (h *Handler) RebuildTeamStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RebuildTeamStandings")
	defer span.End()

	seasonID := strings.TrimSpace(r.PathValue("seasonID"))

	var req rebuildTeamStandingsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	run, err := h.standingsService.RebuildTeamStandings(ctx, seasonID, req.Actor)
	if err != nil {
		h.logger.WarnContext(ctx, "rebuild team standings failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsRunToDTO(run))
}

func (h *Handler) ListEngineRuns(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEngineRuns")
	defer span.End()

	limit := 50
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(ctx, w, fmt.Errorf("%w: invalid limit %q", usecase.ErrInvalidInput, raw))
			return
		}
		limit = parsed
	}

	records, err := h.standingsService.ListRecentRuns(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list engine runs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, runRecordsToDTO(records))
}

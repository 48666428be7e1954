package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/btcc-fantasy/league-engine/internal/usecase"
)

type rebuildScoresRequest struct {
	Actor string `json:"actor" validate:"required"`
}

func (h *Handler) GetEventScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEventScores")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	scores, err := h.scoreService.ListEventScores(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "list event scores failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventScoresToDTO(scores))
}

func (h *Handler) RebuildEventScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RebuildEventScores")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))

	var req rebuildScoresRequest
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

	run, err := h.scoreService.ScoreEvent(ctx, eventID, req.Actor)
	if err != nil {
		h.logger.WarnContext(ctx, "rebuild event scores failed", "event_id", eventID, "error", err)
		if errors.Is(err, usecase.ErrPartialCommit) {
			// Committed chunks stay in place; the run summary tells the
			// operator how much is missing before they rerun.
			writeJSON(ctx, w, http.StatusInternalServerError, googleResponseEnvelope{
				APIVersion: googleAPIVersion,
				Data:       scoreRunToDTO(run),
				Error: &googleErrorBody{
					Code:    http.StatusInternalServerError,
					Message: err.Error(),
					Status:  "DATA_LOSS",
					Errors: []googleErrorItem{
						{Domain: errorDomain, Reason: "partialCommit", Message: err.Error()},
					},
				},
			})
			return
		}
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoreRunToDTO(run))
}

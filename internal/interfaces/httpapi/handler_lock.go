package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/btcc-fantasy/league-engine/internal/usecase"
)

type lockRequest struct {
	Actor string `json:"actor" validate:"required"`
}

type unlockRequest struct {
	Actor  string `json:"actor" validate:"required"`
	Reason string `json:"reason" validate:"required"`
}

func (h *Handler) LockEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LockEvent")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))

	var req lockRequest
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

	evt, err := h.lockService.Lock(ctx, eventID, req.Actor)
	if err != nil {
		h.logger.WarnContext(ctx, "lock event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(evt))
}

func (h *Handler) UnlockEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnlockEvent")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))

	var req unlockRequest
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

	evt, err := h.lockService.Unlock(ctx, eventID, req.Actor, req.Reason)
	if err != nil {
		h.logger.WarnContext(ctx, "unlock event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(evt))
}

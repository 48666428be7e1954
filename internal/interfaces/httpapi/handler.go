package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/btcc-fantasy/league-engine/internal/platform/logging"
	"github.com/btcc-fantasy/league-engine/internal/usecase"
)

type Handler struct {
	scoreService     *usecase.ScoreService
	standingsService *usecase.StandingsService
	lockService      *usecase.LockService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	scoreService *usecase.ScoreService,
	standingsService *usecase.StandingsService,
	lockService *usecase.LockService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		scoreService:     scoreService,
		standingsService: standingsService,
		lockService:      lockService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

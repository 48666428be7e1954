package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/btcc-fantasy/league-engine/internal/domain/audit"
	"github.com/btcc-fantasy/league-engine/internal/domain/event"
	"github.com/btcc-fantasy/league-engine/internal/platform/id"
	"github.com/btcc-fantasy/league-engine/internal/platform/logging"
)

// LockService moves events between the locked and unlocked result states.
// Scoring reads the lock state fresh on every run, so a lock taken here is
// visible to the next scoring call immediately. Events may be locked and
// unlocked any number of times.
type LockService struct {
	eventRepo event.Repository
	auditRepo audit.Repository
	ids       id.Generator
	logger    *logging.Logger
	now       func() time.Time
}

func NewLockService(
	eventRepo event.Repository,
	auditRepo audit.Repository,
	ids id.Generator,
	logger *logging.Logger,
) *LockService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LockService{
		eventRepo: eventRepo,
		auditRepo: auditRepo,
		ids:       ids,
		logger:    logger,
		now:       time.Now,
	}
}

// Lock marks an event's results as final and its status as complete. Locking
// an already locked event is rejected so two operators cannot silently race
// each other.
func (s *LockService) Lock(ctx context.Context, eventID, actor string) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "LockService.Lock")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	actor = strings.TrimSpace(actor)
	if eventID == "" {
		return event.Event{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if actor == "" {
		return event.Event{}, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	evt, found, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return event.Event{}, fmt.Errorf("get event %s: %w", eventID, err)
	}
	if !found {
		return event.Event{}, fmt.Errorf("%w: event %s", ErrNotFound, eventID)
	}
	if evt.ResultsLocked {
		return event.Event{}, fmt.Errorf("%w: event %s", ErrAlreadyLocked, eventID)
	}

	at := s.now().UTC()
	state := event.LockState{
		ResultsLocked: true,
		Status:        event.StatusComplete,
		Actor:         actor,
		At:            at,
	}
	if err := s.eventRepo.SetLockState(ctx, eventID, state); err != nil {
		return event.Event{}, fmt.Errorf("lock event %s: %w", eventID, err)
	}

	s.appendAudit(ctx, audit.Record{
		Kind:          audit.KindLock,
		SeasonID:      evt.SeasonID,
		EventID:       eventID,
		Actor:         actor,
		EngineVersion: EngineVersion,
		RanAt:         at,
	})

	s.logger.InfoContext(ctx, "event locked", "event_id", eventID, "actor", actor)

	evt, _, err = s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return event.Event{}, fmt.Errorf("get event %s: %w", eventID, err)
	}

	return evt, nil
}

// Unlock reopens a locked event for result corrections. The reason is
// mandatory: unlocked-and-rescored rounds need an operator trail.
func (s *LockService) Unlock(ctx context.Context, eventID, actor, reason string) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "LockService.Unlock")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	actor = strings.TrimSpace(actor)
	reason = strings.TrimSpace(reason)
	if eventID == "" {
		return event.Event{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if actor == "" {
		return event.Event{}, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}
	if reason == "" {
		return event.Event{}, fmt.Errorf("%w: unlock reason is required", ErrInvalidInput)
	}

	evt, found, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return event.Event{}, fmt.Errorf("get event %s: %w", eventID, err)
	}
	if !found {
		return event.Event{}, fmt.Errorf("%w: event %s", ErrNotFound, eventID)
	}
	if !evt.ResultsLocked {
		return event.Event{}, fmt.Errorf("%w: event %s", ErrEventNotLocked, eventID)
	}

	at := s.now().UTC()
	state := event.LockState{
		ResultsLocked: false,
		Status:        evt.Status,
		Actor:         actor,
		At:            at,
		UnlockReason:  reason,
	}
	if err := s.eventRepo.SetLockState(ctx, eventID, state); err != nil {
		return event.Event{}, fmt.Errorf("unlock event %s: %w", eventID, err)
	}

	s.appendAudit(ctx, audit.Record{
		Kind:          audit.KindUnlock,
		SeasonID:      evt.SeasonID,
		EventID:       eventID,
		UnlockReason:  reason,
		Actor:         actor,
		EngineVersion: EngineVersion,
		RanAt:         at,
	})

	s.logger.InfoContext(ctx, "event unlocked", "event_id", eventID, "actor", actor, "reason", reason)

	evt, _, err = s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return event.Event{}, fmt.Errorf("get event %s: %w", eventID, err)
	}

	return evt, nil
}

func (s *LockService) appendAudit(ctx context.Context, record audit.Record) {
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

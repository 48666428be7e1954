package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/btcc-fantasy/league-engine/internal/domain/event"
)

type EventRepository struct {
	mu    sync.RWMutex
	items map[string]event.Event
}

func NewEventRepository(events []event.Event) *EventRepository {
	items := make(map[string]event.Event, len(events))
	for _, e := range events {
		items[e.ID] = e
	}

	return &EventRepository{items: items}
}

func (r *EventRepository) GetByID(_ context.Context, eventID string) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[eventID]
	if !ok {
		return event.Event{}, false, nil
	}

	return cloneEvent(e), true, nil
}

func (r *EventRepository) ListThroughSequence(_ context.Context, seasonID string, maxSequence int) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0, len(r.items))
	for _, e := range r.items {
		if e.SeasonID != seasonID || e.Sequence > maxSequence {
			continue
		}
		out = append(out, cloneEvent(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })

	return out, nil
}

func (r *EventRepository) SetLockState(_ context.Context, eventID string, state event.LockState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[eventID]
	if !ok {
		return errNotFound
	}

	e.ResultsLocked = state.ResultsLocked
	e.Status = state.Status
	at := state.At
	if state.ResultsLocked {
		e.LockedBy = state.Actor
		e.LockedAt = &at
	} else {
		e.UnlockedBy = state.Actor
		e.UnlockedAt = &at
		e.UnlockReason = state.UnlockReason
	}
	r.items[eventID] = e

	return nil
}

func cloneEvent(e event.Event) event.Event {
	out := e
	if e.LockedAt != nil {
		at := *e.LockedAt
		out.LockedAt = &at
	}
	if e.UnlockedAt != nil {
		at := *e.UnlockedAt
		out.UnlockedAt = &at
	}
	return out
}

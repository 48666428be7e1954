package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/btcc-fantasy/league-engine/internal/domain/scoring"
)

// maxWriteBatch mirrors the backing store's atomic multi-write bound. Batches
// above it are a caller bug: the usecase layer chunks before writing.
const maxWriteBatch = 500

type EventScoreRepository struct {
	mu    sync.RWMutex
	items map[string]scoring.EventScore
}

func NewEventScoreRepository() *EventScoreRepository {
	return &EventScoreRepository{items: make(map[string]scoring.EventScore)}
}

func (r *EventScoreRepository) ListByEvent(_ context.Context, eventID string) ([]scoring.EventScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.EventScore, 0)
	for _, s := range r.items {
		if s.EventID != eventID {
			continue
		}
		out = append(out, cloneEventScore(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })

	return out, nil
}

func (r *EventScoreRepository) DeleteByEvent(_ context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, s := range r.items {
		if s.EventID == eventID {
			delete(r.items, key)
		}
	}

	return nil
}

func (r *EventScoreRepository) WriteBatch(_ context.Context, scores []scoring.EventScore) error {
	if len(scores) > maxWriteBatch {
		return fmt.Errorf("%w: %d records", errBatchTooLarge, len(scores))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range scores {
		r.items[scoreKey(s.EventID, s.PlayerID)] = cloneEventScore(s)
	}

	return nil
}

func scoreKey(eventID, playerID string) string {
	return eventID + "::" + playerID
}

func cloneEventScore(s scoring.EventScore) scoring.EventScore {
	out := s
	out.Roster = slices.Clone(s.Roster)
	if s.Breakdown != nil {
		out.Breakdown = make(scoring.Breakdown, len(s.Breakdown))
		for session, drivers := range s.Breakdown {
			copied := make(map[string]int, len(drivers))
			for driverID, points := range drivers {
				copied[driverID] = points
			}
			out.Breakdown[session] = copied
		}
	}
	return out
}

package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/btcc-fantasy/league-engine/internal/domain/raceresult"
)

type RaceResultRepository struct {
	mu    sync.RWMutex
	items map[string]raceresult.Result
}

func NewRaceResultRepository(results []raceresult.Result) *RaceResultRepository {
	items := make(map[string]raceresult.Result, len(results))
	for _, res := range results {
		items[res.EventID] = res
	}

	return &RaceResultRepository{items: items}
}

func (r *RaceResultRepository) GetByEvent(_ context.Context, eventID string) (raceresult.Result, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.items[eventID]
	if !ok {
		return raceresult.Result{}, false, nil
	}

	return cloneResult(res), true, nil
}

// Put exists for tests and seeding; result ingestion itself is out of scope
// for the engine.
func (r *RaceResultRepository) Put(_ context.Context, result raceresult.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[result.EventID] = cloneResult(result)

	return nil
}

func cloneResult(res raceresult.Result) raceresult.Result {
	out := res
	out.Qualifying = slices.Clone(res.Qualifying)
	out.Race1 = slices.Clone(res.Race1)
	out.Race2 = slices.Clone(res.Race2)
	out.Race3 = slices.Clone(res.Race3)
	return out
}

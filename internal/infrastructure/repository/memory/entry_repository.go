package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/btcc-fantasy/league-engine/internal/domain/entry"
)

type EntryRepository struct {
	mu    sync.RWMutex
	items map[string]entry.Entry
}

func NewEntryRepository(entries []entry.Entry) *EntryRepository {
	repo := &EntryRepository{items: make(map[string]entry.Entry, len(entries))}
	for _, e := range entries {
		repo.items[entryKey(e.EventID, e.PlayerID)] = e
	}

	return repo
}

func (r *EntryRepository) ListByEvent(_ context.Context, eventID string) ([]entry.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entry.Entry, 0)
	for _, e := range r.items {
		if e.EventID != eventID {
			continue
		}
		out = append(out, cloneEntry(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })

	return out, nil
}

func (r *EntryRepository) Put(_ context.Context, e entry.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[entryKey(e.EventID, e.PlayerID)] = cloneEntry(e)

	return nil
}

func entryKey(eventID, playerID string) string {
	return eventID + "::" + playerID
}

func cloneEntry(e entry.Entry) entry.Entry {
	out := e
	out.DriverIDs = slices.Clone(e.DriverIDs)
	return out
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/btcc-fantasy/league-engine/internal/domain/profile"
)

type ProfileRepository struct {
	mu    sync.RWMutex
	items map[string]profile.Profile
}

func NewProfileRepository(profiles []profile.Profile) *ProfileRepository {
	items := make(map[string]profile.Profile, len(profiles))
	for _, p := range profiles {
		items[p.PlayerID] = p
	}

	return &ProfileRepository{items: items}
}

func (r *ProfileRepository) List(_ context.Context) ([]profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]profile.Profile, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })

	return out, nil
}

func (r *ProfileRepository) Put(_ context.Context, p profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[p.PlayerID] = p

	return nil
}

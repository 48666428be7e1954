package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/btcc-fantasy/league-engine/internal/domain/standing"
)

type StandingRepository struct {
	mu      sync.RWMutex
	players map[string]standing.PlayerStanding
	teams   map[string]standing.TeamStanding
}

func NewStandingRepository() *StandingRepository {
	return &StandingRepository{
		players: make(map[string]standing.PlayerStanding),
		teams:   make(map[string]standing.TeamStanding),
	}
}

func (r *StandingRepository) ListPlayersBySeason(_ context.Context, seasonID string) ([]standing.PlayerStanding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standing.PlayerStanding, 0)
	for _, s := range r.players {
		if s.SeasonID != seasonID {
			continue
		}
		out = append(out, clonePlayerStanding(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })

	return out, nil
}

func (r *StandingRepository) DeletePlayersBySeason(_ context.Context, seasonID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, s := range r.players {
		if s.SeasonID == seasonID {
			delete(r.players, key)
		}
	}

	return nil
}

func (r *StandingRepository) WritePlayerBatch(_ context.Context, standings []standing.PlayerStanding) error {
	if len(standings) > maxWriteBatch {
		return fmt.Errorf("%w: %d records", errBatchTooLarge, len(standings))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range standings {
		r.players[standingKey(s.SeasonID, s.PlayerID)] = clonePlayerStanding(s)
	}

	return nil
}

func (r *StandingRepository) ListTeamsBySeason(_ context.Context, seasonID string) ([]standing.TeamStanding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standing.TeamStanding, 0)
	for _, s := range r.teams {
		if s.SeasonID != seasonID {
			continue
		}
		out = append(out, cloneTeamStanding(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })

	return out, nil
}

func (r *StandingRepository) DeleteTeamsBySeason(_ context.Context, seasonID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, s := range r.teams {
		if s.SeasonID == seasonID {
			delete(r.teams, key)
		}
	}

	return nil
}

func (r *StandingRepository) WriteTeamBatch(_ context.Context, standings []standing.TeamStanding) error {
	if len(standings) > maxWriteBatch {
		return fmt.Errorf("%w: %d records", errBatchTooLarge, len(standings))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range standings {
		r.teams[standingKey(s.SeasonID, s.TeamID)] = cloneTeamStanding(s)
	}

	return nil
}

func standingKey(seasonID, ownerID string) string {
	return seasonID + "::" + ownerID
}

func clonePlayerStanding(s standing.PlayerStanding) standing.PlayerStanding {
	out := s
	out.EventIDs = slices.Clone(s.EventIDs)
	return out
}

func cloneTeamStanding(s standing.TeamStanding) standing.TeamStanding {
	out := s
	out.Members = slices.Clone(s.Members)
	return out
}

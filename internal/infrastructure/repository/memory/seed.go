package memory

import (
	"context"
	"errors"

	"github.com/riskibarqy/football-league/internal/domain/seed"
)

var errStoreNotEmpty = errors.New("store already holds leagues")

type SeedRepository struct {
	store *Store
}

func NewSeedRepository(store *Store) *SeedRepository {
	return &SeedRepository{store: store}
}

func (r *SeedRepository) IsEmpty(_ context.Context) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.leagues) == 0, nil
}

// Write loads the dataset with its ids as given. It refuses to write into a
// store that already has leagues.
func (r *SeedRepository) Write(_ context.Context, data seed.Dataset) error {
	if err := data.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if len(r.store.leagues) > 0 {
		return errStoreNotEmpty
	}

	for _, l := range data.Leagues {
		r.store.leagues[l.ID] = l
	}
	for _, t := range data.Teams {
		r.store.teams[t.ID] = cloneTeam(t)
		r.store.nextTeamID = max(r.store.nextTeamID, t.ID+1)
	}
	for _, p := range data.Players {
		r.store.players[p.ID] = clonePlayer(p)
		r.store.nextPlayerID = max(r.store.nextPlayerID, p.ID+1)
	}
	for _, m := range data.Matches {
		r.store.matches[m.ID] = cloneMatch(m)
	}
	for _, g := range data.Goals {
		r.store.goals[g.ID] = g
		r.store.nextGoalID = max(r.store.nextGoalID, g.ID+1)
	}

	return nil
}

package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/standing"
)

// StandingRepository runs every table rebuild under the store's write lock.
type StandingRepository struct {
	store *Store
}

func NewStandingRepository(store *Store) *StandingRepository {
	return &StandingRepository{store: store}
}

func (r *StandingRepository) Recompute(_ context.Context, leagueID string, compute standing.RecordsFunc) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.recomputeLocked(leagueID, compute)
}

func (r *StandingRepository) SaveResult(_ context.Context, matchID int64, homeScore, awayScore int, compute standing.RecordsFunc) (match.Match, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	previous, ok := r.store.matches[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	m := cloneMatch(previous)
	m.Status = match.StatusFinished
	m.HomeScore = &homeScore
	m.AwayScore = &awayScore
	r.store.matches[matchID] = m

	if err := r.recomputeLocked(m.LeagueID, compute); err != nil {
		r.store.matches[matchID] = previous
		return match.Match{}, false, err
	}

	return cloneMatch(m), true, nil
}

func (r *StandingRepository) recomputeLocked(leagueID string, compute standing.RecordsFunc) error {
	teamIDs := make([]int64, 0)
	for id, t := range r.store.teams {
		if t.LeagueID == leagueID {
			teamIDs = append(teamIDs, id)
		}
	}
	sort.Slice(teamIDs, func(i, j int) bool { return teamIDs[i] < teamIDs[j] })

	finished := make([]match.Match, 0)
	for _, m := range r.store.matches {
		if m.LeagueID == leagueID && m.IsFinished() {
			finished = append(finished, cloneMatch(m))
		}
	}
	sort.Slice(finished, func(i, j int) bool { return finished[i].ID < finished[j].ID })

	records := compute(teamIDs, finished)
	for id := range records {
		if _, ok := r.store.teams[id]; !ok {
			return fmt.Errorf("recompute league %s: team %d not found", leagueID, id)
		}
	}
	for id, record := range records {
		t := r.store.teams[id]
		t.Record = record
		r.store.teams[id] = t
	}

	return nil
}

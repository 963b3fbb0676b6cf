package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-league/internal/domain/goal"
)

type GoalRepository struct {
	store *Store
}

func NewGoalRepository(store *Store) *GoalRepository {
	return &GoalRepository{store: store}
}

func (r *GoalRepository) ListByMatch(_ context.Context, matchID int64) ([]goal.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]goal.Entry, 0)
	for _, g := range r.store.goals {
		if g.MatchID != matchID {
			continue
		}
		out = append(out, goal.Entry{
			Goal:       g,
			PlayerName: r.store.players[g.PlayerID].Name,
			TeamName:   r.store.teams[g.TeamID].Name,
		})
	}
	goal.SortEntries(out)

	return out, nil
}

func (r *GoalRepository) CountByPlayer(_ context.Context, playerID int64) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, g := range r.store.goals {
		if g.PlayerID == playerID {
			count++
		}
	}

	return count, nil
}

func (r *GoalRepository) Create(_ context.Context, g goal.Goal) (goal.Goal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.matches[g.MatchID]; !ok {
		return goal.Goal{}, fmt.Errorf("create goal: match %d not found", g.MatchID)
	}
	if _, ok := r.store.players[g.PlayerID]; !ok {
		return goal.Goal{}, fmt.Errorf("create goal: player %d not found", g.PlayerID)
	}

	g.ID = r.store.nextGoalID
	r.store.nextGoalID++
	r.store.goals[g.ID] = g

	return g, nil
}

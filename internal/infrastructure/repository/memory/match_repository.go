package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-league/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.matches[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return cloneMatch(m), true, nil
}

func (r *MatchRepository) GetSummary(_ context.Context, matchID int64) (match.Summary, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.matches[matchID]
	if !ok {
		return match.Summary{}, false, nil
	}

	return r.summaryLocked(m), true, nil
}

func (r *MatchRepository) ListUpcomingByTeam(_ context.Context, teamID int64, limit int) ([]match.Summary, error) {
	return r.listByTeam(teamID, limit, false), nil
}

func (r *MatchRepository) ListFinishedByTeam(_ context.Context, teamID int64, limit int) ([]match.Summary, error) {
	return r.listByTeam(teamID, limit, true), nil
}

// listByTeam orders upcoming matches soonest first and finished matches most
// recent first.
func (r *MatchRepository) listByTeam(teamID int64, limit int, finished bool) []match.Summary {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]match.Summary, 0)
	for _, m := range r.store.matches {
		if m.Involves(teamID) && m.IsFinished() == finished {
			out = append(out, r.summaryLocked(m))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if finished {
			a, b = b, a
		}
		if !a.MatchDate.Equal(b.MatchDate) {
			return a.MatchDate.Before(b.MatchDate)
		}
		return a.ID < b.ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

func (r *MatchRepository) summaryLocked(m match.Match) match.Summary {
	l := r.store.leagues[m.LeagueID]
	return match.Summary{
		Match:         cloneMatch(m),
		HomeName:      r.store.teams[m.HomeTeamID].Name,
		AwayName:      r.store.teams[m.AwayTeamID].Name,
		LeagueName:    l.Name,
		LeagueCountry: l.Country,
	}
}

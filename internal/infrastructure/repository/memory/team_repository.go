package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-league/internal/domain/team"
	"github.com/riskibarqy/football-league/internal/platform/nocase"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Summary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]team.Summary, 0, len(r.store.teams))
	for _, t := range r.store.teams {
		l := r.store.leagues[t.LeagueID]
		item := team.Summary{
			Team:          cloneTeam(t),
			LeagueName:    l.Name,
			LeagueCountry: l.Country,
		}
		if t.CaptainPlayerID != nil {
			item.CaptainName = r.store.players[*t.CaptainPlayerID].Name
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := nocase.Compare(out[i].Name, out[j].Name); c != 0 {
			return c < 0
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, t := range r.store.teams {
		if t.LeagueID == leagueID {
			out = append(out, cloneTeam(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.teams[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return cloneTeam(t), true, nil
}

package seed

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-league/internal/domain/goal"
	"github.com/riskibarqy/football-league/internal/domain/league"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/team"
)

// Dataset is the full sample content written to an empty store.
type Dataset struct {
	Leagues []league.League
	Teams   []team.Team
	Players []player.Player
	Matches []match.Match
	Goals   []goal.Goal
}

// Validate checks the cross-entity relationships of the dataset.
func (d Dataset) Validate() error {
	leagues := make(map[string]struct{}, len(d.Leagues))
	for _, l := range d.Leagues {
		if err := l.Validate(); err != nil {
			return err
		}
		leagues[l.ID] = struct{}{}
	}

	teamLeague := make(map[int64]string, len(d.Teams))
	for _, t := range d.Teams {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("team %d: %w", t.ID, err)
		}
		if _, ok := leagues[t.LeagueID]; !ok {
			return fmt.Errorf("team %d references unknown league %s", t.ID, t.LeagueID)
		}
		teamLeague[t.ID] = t.LeagueID
	}

	playerTeam := make(map[int64]int64, len(d.Players))
	for _, p := range d.Players {
		if p.TeamID != nil {
			if _, ok := teamLeague[*p.TeamID]; !ok {
				return fmt.Errorf("player %d references unknown team %d", p.ID, *p.TeamID)
			}
			playerTeam[p.ID] = *p.TeamID
		}
	}

	matches := make(map[int64]match.Match, len(d.Matches))
	for _, m := range d.Matches {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("match %d: %w", m.ID, err)
		}
		if teamLeague[m.HomeTeamID] != m.LeagueID || teamLeague[m.AwayTeamID] != m.LeagueID {
			return fmt.Errorf("match %d teams must belong to league %s", m.ID, m.LeagueID)
		}
		matches[m.ID] = m
	}

	for _, g := range d.Goals {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("goal %d: %w", g.ID, err)
		}
		m, ok := matches[g.MatchID]
		if !ok {
			return fmt.Errorf("goal %d references unknown match %d", g.ID, g.MatchID)
		}
		if !m.Involves(g.TeamID) {
			return fmt.Errorf("goal %d team %d did not play match %d", g.ID, g.TeamID, g.MatchID)
		}
		if playerTeam[g.PlayerID] != g.TeamID {
			return fmt.Errorf("goal %d scorer %d is not on team %d", g.ID, g.PlayerID, g.TeamID)
		}
	}

	return nil
}

// Repository writes sample data into an empty store.
type Repository interface {
	IsEmpty(ctx context.Context) (bool, error)
	Write(ctx context.Context, data Dataset) error
}

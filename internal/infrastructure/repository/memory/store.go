package memory

import (
	"sync"

	"github.com/riskibarqy/football-league/internal/domain/goal"
	"github.com/riskibarqy/football-league/internal/domain/league"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/team"
)

// Store holds every table behind one lock so roster transitions that touch
// teams and players stay atomic. The repositories in this package are views
// over a shared Store.
type Store struct {
	mu sync.RWMutex

	leagues map[string]league.League
	teams   map[int64]team.Team
	players map[int64]player.Player
	matches map[int64]match.Match
	goals   map[int64]goal.Goal

	nextTeamID   int64
	nextPlayerID int64
	nextGoalID   int64
}

func NewStore() *Store {
	return &Store{
		leagues:      make(map[string]league.League),
		teams:        make(map[int64]team.Team),
		players:      make(map[int64]player.Player),
		matches:      make(map[int64]match.Match),
		goals:        make(map[int64]goal.Goal),
		nextTeamID:   1,
		nextPlayerID: 1,
		nextGoalID:   1,
	}
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneTeam(t team.Team) team.Team {
	t.CaptainPlayerID = cloneInt64(t.CaptainPlayerID)
	return t
}

func clonePlayer(p player.Player) player.Player {
	p.TeamID = cloneInt64(p.TeamID)
	return p
}

func cloneMatch(m match.Match) match.Match {
	m.HomeScore = cloneInt(m.HomeScore)
	m.AwayScore = cloneInt(m.AwayScore)
	return m
}

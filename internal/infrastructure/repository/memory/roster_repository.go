package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-league/internal/domain/roster"
	"github.com/riskibarqy/football-league/internal/domain/team"
)

// RosterRepository checks and applies membership changes under the store
// write lock.
type RosterRepository struct {
	store *Store
}

func NewRosterRepository(store *Store) *RosterRepository {
	return &RosterRepository{store: store}
}

func (r *RosterRepository) CreateTeamWithCaptain(_ context.Context, t team.Team, captainID int64) (team.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.leagues[t.LeagueID]; !ok {
		return team.Team{}, fmt.Errorf("create team: league %s not found", t.LeagueID)
	}
	captain, ok := r.store.players[captainID]
	if !ok {
		return team.Team{}, fmt.Errorf("create team: player %d not found", captainID)
	}
	if !captain.IsFreeAgent() {
		return team.Team{}, roster.ErrAlreadyOnTeam
	}

	t.ID = r.store.nextTeamID
	r.store.nextTeamID++
	t.Name = team.NormalizeName(t.Name)
	t.Record = team.Record{}
	t.CaptainPlayerID = &captainID
	r.store.teams[t.ID] = cloneTeam(t)

	teamID := t.ID
	captain.TeamID = &teamID
	r.store.players[captainID] = captain

	return cloneTeam(t), nil
}

func (r *RosterRepository) AssignToTeam(_ context.Context, playerID, teamID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teams[teamID]; !ok {
		return fmt.Errorf("assign to team: team %d not found", teamID)
	}
	p, ok := r.store.players[playerID]
	if !ok {
		return fmt.Errorf("assign to team: player %d not found", playerID)
	}
	if !p.IsFreeAgent() {
		return roster.ErrAlreadyOnTeam
	}

	p.TeamID = &teamID
	r.store.players[playerID] = p

	return nil
}

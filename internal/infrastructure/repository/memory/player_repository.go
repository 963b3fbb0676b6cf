package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/platform/nocase"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, taken := r.findByEmailLocked(p.Email); taken {
		return player.Player{}, player.ErrEmailTaken
	}
	if p.TeamID != nil {
		if _, ok := r.store.teams[*p.TeamID]; !ok {
			return player.Player{}, fmt.Errorf("create player: team %d not found", *p.TeamID)
		}
	}

	p.ID = r.store.nextPlayerID
	r.store.nextPlayerID++
	r.store.players[p.ID] = clonePlayer(p)

	return clonePlayer(p), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.players[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return clonePlayer(p), true, nil
}

func (r *PlayerRepository) GetByEmail(_ context.Context, email string) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.findByEmailLocked(email)
	if !ok {
		return player.Player{}, false, nil
	}

	return clonePlayer(p), true, nil
}

func (r *PlayerRepository) EmailTakenByOther(_ context.Context, email string, playerID int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.findByEmailLocked(email)
	return ok && p.ID != playerID, nil
}

func (r *PlayerRepository) UpdateCredentials(_ context.Context, playerID int64, update player.CredentialsUpdate) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.players[playerID]
	if !ok {
		return player.Player{}, fmt.Errorf("update credentials: player %d not found", playerID)
	}
	if update.Email != nil {
		if other, taken := r.findByEmailLocked(*update.Email); taken && other.ID != playerID {
			return player.Player{}, player.ErrEmailTaken
		}
		p.Email = *update.Email
	}
	if update.PasswordHash != nil {
		p.PasswordHash = *update.PasswordHash
	}
	r.store.players[playerID] = p

	return clonePlayer(p), nil
}

func (r *PlayerRepository) ListProfiles(_ context.Context) ([]player.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Profile, 0, len(r.store.players))
	for _, p := range r.store.players {
		out = append(out, r.profileLocked(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if c := nocase.Compare(out[i].Name, out[j].Name); c != 0 {
			return c < 0
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *PlayerRepository) GetProfile(_ context.Context, playerID int64) (player.Profile, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.players[playerID]
	if !ok {
		return player.Profile{}, false, nil
	}

	return r.profileLocked(p), true, nil
}

func (r *PlayerRepository) GetProfileByEmail(_ context.Context, email string) (player.Profile, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.findByEmailLocked(email)
	if !ok {
		return player.Profile{}, false, nil
	}

	return r.profileLocked(p), true, nil
}

// Emails compare case-insensitively, matching the NOCASE index of the SQL store.
func (r *PlayerRepository) findByEmailLocked(email string) (player.Player, bool) {
	for _, p := range r.store.players {
		if nocase.Equal(p.Email, email) {
			return p, true
		}
	}
	return player.Player{}, false
}

func (r *PlayerRepository) profileLocked(p player.Player) player.Profile {
	profile := player.Profile{ID: p.ID, Name: p.Name, Email: p.Email}
	if p.TeamID == nil {
		return profile
	}
	if t, ok := r.store.teams[*p.TeamID]; ok {
		profile.Team = &player.TeamRef{
			ID:         t.ID,
			Name:       t.Name,
			LeagueName: r.store.leagues[t.LeagueID].Name,
		}
	}
	return profile
}

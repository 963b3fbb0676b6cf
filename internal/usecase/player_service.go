package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-league/internal/domain/goal"
	"github.com/riskibarqy/football-league/internal/domain/player"
)

type PlayerService struct {
	playerRepo player.Repository
	goalRepo   goal.Repository
}

func NewPlayerService(playerRepo player.Repository, goalRepo goal.Repository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		goalRepo:   goalRepo,
	}
}

// ListPlayers returns every player ordered by name, case-insensitively.
func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	players, err := s.playerRepo.ListProfiles(ctx)
	if err != nil {
		return nil, storeError("list players", err)
	}

	return players, nil
}

func (s *PlayerService) FindByEmail(ctx context.Context, email string) (player.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.FindByEmail")
	defer span.End()

	email = player.NormalizeEmail(email)
	if email == "" {
		return player.Profile{}, withMessage(fmt.Errorf("%w: email is required", ErrInvalidInput), MsgMissingData)
	}

	profile, exists, err := s.playerRepo.GetProfileByEmail(ctx, email)
	if err != nil {
		return player.Profile{}, storeError("get player by email", err)
	}
	if !exists {
		return player.Profile{}, withMessage(fmt.Errorf("%w: player email=%s", ErrNotFound, email), MsgPlayerNotFound)
	}

	return profile, nil
}

// GetPlayer returns the profile of one player with the number of goals scored.
func (s *PlayerService) GetPlayer(ctx context.Context, playerID int64) (player.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	profile, exists, err := s.playerRepo.GetProfile(ctx, playerID)
	if err != nil {
		return player.Profile{}, storeError("get player", err)
	}
	if !exists {
		return player.Profile{}, withMessage(fmt.Errorf("%w: player id=%d", ErrNotFound, playerID), MsgPlayerNotFound)
	}

	goals, err := s.goalRepo.CountByPlayer(ctx, playerID)
	if err != nil {
		return player.Profile{}, storeError("count goals", err)
	}
	profile.Goals = goals

	return profile, nil
}

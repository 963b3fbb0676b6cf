package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-league/internal/domain/league"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	"github.com/riskibarqy/football-league/internal/domain/team"
)

// LeagueTable is a league with its teams in standings order.
type LeagueTable struct {
	League league.League
	Teams  []team.Team
}

type LeagueService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
}

func NewLeagueService(leagueRepo league.Repository, teamRepo team.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
	}
}

// ListTables returns every league with its standings table.
func (s *LeagueService) ListTables(ctx context.Context) ([]LeagueTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListTables")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, storeError("list leagues", err)
	}

	out := make([]LeagueTable, 0, len(leagues))
	for _, item := range leagues {
		teams, err := s.teamRepo.ListByLeague(ctx, item.ID)
		if err != nil {
			return nil, storeError("list teams by league", err)
		}
		standing.Order(teams)
		out = append(out, LeagueTable{League: item, Teams: teams})
	}

	return out, nil
}

func (s *LeagueService) ListTeamsByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, withMessage(fmt.Errorf("%w: league id is required", ErrInvalidInput), MsgMissingData)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, storeError("get league", err)
	}
	if !exists {
		return nil, withMessage(fmt.Errorf("%w: league=%s", ErrNotFound, leagueID), MsgLeagueNotFound)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, storeError("list teams by league", err)
	}
	standing.Order(teams)

	return teams, nil
}

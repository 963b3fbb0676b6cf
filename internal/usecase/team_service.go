package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-league/internal/domain/league"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/team"
	"github.com/sourcegraph/conc/pool"
)

// TeamScheduleLimit caps each of the upcoming and previous match lists.
const TeamScheduleLimit = 10

type TeamDetails struct {
	Team     team.Team
	League   league.League
	Upcoming []match.Summary
	Previous []match.Summary
}

type TeamService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	matchRepo  match.Repository
}

func NewTeamService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
) *TeamService {
	return &TeamService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
	}
}

// ListTeams returns every team ordered by name with league and captain names.
func (s *TeamService) ListTeams(ctx context.Context) ([]team.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, storeError("list teams", err)
	}

	return teams, nil
}

// GetTeamDetails loads a team with its league and both schedule lists. The
// lists are fetched concurrently.
func (s *TeamService) GetTeamDetails(ctx context.Context, teamID int64) (TeamDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamDetails")
	defer span.End()

	teamItem, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamDetails{}, storeError("get team", err)
	}
	if !exists {
		return TeamDetails{}, withMessage(fmt.Errorf("%w: team id=%d", ErrNotFound, teamID), MsgTeamNotFound)
	}

	details := TeamDetails{Team: teamItem}

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		item, exists, err := s.leagueRepo.GetByID(ctx, teamItem.LeagueID)
		if err != nil {
			return storeError("get league", err)
		}
		if !exists {
			return fmt.Errorf("team %d references missing league %s", teamItem.ID, teamItem.LeagueID)
		}
		details.League = item
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.ListUpcomingByTeam(ctx, teamItem.ID, TeamScheduleLimit)
		if err != nil {
			return storeError("list upcoming matches", err)
		}
		details.Upcoming = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.ListFinishedByTeam(ctx, teamItem.ID, TeamScheduleLimit)
		if err != nil {
			return storeError("list finished matches", err)
		}
		details.Previous = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return TeamDetails{}, err
	}

	if details.Upcoming == nil {
		details.Upcoming = []match.Summary{}
	}
	if details.Previous == nil {
		details.Previous = []match.Summary{}
	}
	return details, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/football-league/internal/domain/league"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/roster"
	"github.com/riskibarqy/football-league/internal/domain/team"
	"github.com/riskibarqy/football-league/internal/platform/logging"
)

// ListingInvalidator drops cached league and team listings after a write.
type ListingInvalidator interface {
	InvalidateListings(ctx context.Context)
}

type noopInvalidator struct{}

func (noopInvalidator) InvalidateListings(context.Context) {}

type CreateTeamInput struct {
	PlayerID int64
	LeagueID string
	Name     string
}

type RecruitInput struct {
	CaptainID int64
	TeamID    int64
	PlayerID  int64
}

// RosterService moves players from free agency onto teams. The membership
// checks here give early, specific errors; the repository re-checks them
// atomically at write time.
type RosterService struct {
	leagueRepo  league.Repository
	teamRepo    team.Repository
	playerRepo  player.Repository
	rosterRepo  roster.Repository
	invalidator ListingInvalidator
	logger      *logging.Logger
}

func NewRosterService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	invalidator ListingInvalidator,
	logger *logging.Logger,
) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}

	return &RosterService{
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		rosterRepo:  rosterRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// CreateTeam founds a team in a league with the calling free agent as captain.
func (s *RosterService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.CreateTeam")
	defer span.End()

	candidate := team.Team{
		LeagueID: input.LeagueID,
		Name:     team.NormalizeName(input.Name),
	}
	if input.PlayerID <= 0 || candidate.Validate() != nil {
		return team.Team{}, withMessage(fmt.Errorf("%w: name, league id and player id are required", ErrInvalidInput), MsgMissingData)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, candidate.LeagueID)
	if err != nil {
		return team.Team{}, storeError("get league", err)
	}
	if !exists {
		return team.Team{}, withMessage(fmt.Errorf("%w: league id=%s", ErrNotFound, candidate.LeagueID), MsgLeagueNotFound)
	}

	founder, err := s.mustGetPlayer(ctx, input.PlayerID)
	if err != nil {
		return team.Team{}, err
	}
	if roster.StateOf(founder) != roster.FreeAgent {
		return team.Team{}, withMessage(fmt.Errorf("%w: player id=%d", ErrAlreadyOnTeam, founder.ID), MsgOnlyFreeAgentCreates)
	}

	created, err := s.rosterRepo.CreateTeamWithCaptain(ctx, candidate, founder.ID)
	if err != nil {
		if errors.Is(err, roster.ErrAlreadyOnTeam) {
			return team.Team{}, withMessage(fmt.Errorf("%w: player id=%d", ErrAlreadyOnTeam, founder.ID), MsgOnlyFreeAgentCreates)
		}
		return team.Team{}, storeError("create team", err)
	}

	s.invalidator.InvalidateListings(ctx)
	s.logger.InfoContext(ctx, "team created",
		"team_id", created.ID,
		"league_id", created.LeagueID,
		"captain_id", founder.ID,
	)
	return created, nil
}

// JoinTeam puts a free agent on a team.
func (s *RosterService) JoinTeam(ctx context.Context, teamID, playerID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.JoinTeam")
	defer span.End()

	if playerID <= 0 {
		return withMessage(fmt.Errorf("%w: player id is required", ErrInvalidInput), MsgPlayerIDMissing)
	}

	if _, err := s.mustGetTeam(ctx, teamID); err != nil {
		return err
	}
	p, err := s.mustGetPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	if roster.StateOf(p) != roster.FreeAgent {
		return withMessage(fmt.Errorf("%w: player id=%d", ErrAlreadyOnTeam, p.ID), MsgAlreadyMember)
	}

	if err := s.rosterRepo.AssignToTeam(ctx, p.ID, teamID); err != nil {
		if errors.Is(err, roster.ErrAlreadyOnTeam) {
			return withMessage(fmt.Errorf("%w: player id=%d", ErrAlreadyOnTeam, p.ID), MsgAlreadyMember)
		}
		return storeError("assign player to team", err)
	}

	s.invalidator.InvalidateListings(ctx)
	s.logger.InfoContext(ctx, "player joined team", "team_id", teamID, "player_id", p.ID)
	return nil
}

// Recruit lets a team captain add a free agent to the team.
func (s *RosterService) Recruit(ctx context.Context, input RecruitInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Recruit")
	defer span.End()

	if input.CaptainID <= 0 || input.PlayerID <= 0 {
		return withMessage(fmt.Errorf("%w: captain id and player id are required", ErrInvalidInput), MsgMissingData)
	}

	t, err := s.mustGetTeam(ctx, input.TeamID)
	if err != nil {
		return err
	}
	if !t.IsCaptain(input.CaptainID) {
		return withMessage(fmt.Errorf("%w: player id=%d team id=%d", ErrNotCaptain, input.CaptainID, t.ID), MsgOnlyCaptainRecruits)
	}

	recruit, err := s.mustGetPlayer(ctx, input.PlayerID)
	if err != nil {
		return err
	}
	if roster.StateOf(recruit) != roster.FreeAgent {
		return withMessage(fmt.Errorf("%w: player id=%d", ErrAlreadyOnTeam, recruit.ID), MsgPlayerAlreadyMember)
	}

	if err := s.rosterRepo.AssignToTeam(ctx, recruit.ID, t.ID); err != nil {
		if errors.Is(err, roster.ErrAlreadyOnTeam) {
			return withMessage(fmt.Errorf("%w: player id=%d", ErrAlreadyOnTeam, recruit.ID), MsgPlayerAlreadyMember)
		}
		return storeError("assign player to team", err)
	}

	s.invalidator.InvalidateListings(ctx)
	s.logger.InfoContext(ctx, "player recruited",
		"team_id", t.ID,
		"captain_id", input.CaptainID,
		"player_id", recruit.ID,
	)
	return nil
}

func (s *RosterService) mustGetTeam(ctx context.Context, teamID int64) (team.Team, error) {
	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, storeError("get team", err)
	}
	if !exists {
		return team.Team{}, withMessage(fmt.Errorf("%w: team id=%d", ErrNotFound, teamID), MsgTeamNotFound)
	}
	return t, nil
}

func (s *RosterService) mustGetPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, storeError("get player", err)
	}
	if !exists {
		return player.Player{}, withMessage(fmt.Errorf("%w: player id=%d", ErrNotFound, playerID), MsgPlayerNotFound)
	}
	return p, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-league/internal/domain/goal"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/platform/logging"
)

// ResultRecorder stores a match result together with the league table it
// changes.
type ResultRecorder interface {
	RecordResult(ctx context.Context, matchID int64, homeScore, awayScore int) (match.Match, bool, error)
}

type MatchDetails struct {
	Match match.Summary
	Goals []goal.Entry
}

type RecordResultInput struct {
	MatchID   int64
	HomeScore int
	AwayScore int
}

type RecordGoalInput struct {
	MatchID  int64
	TeamID   int64
	PlayerID int64
	Minute   int
}

type MatchService struct {
	matchRepo  match.Repository
	goalRepo   goal.Repository
	playerRepo player.Repository
	results    ResultRecorder
	logger     *logging.Logger
}

func NewMatchService(
	matchRepo match.Repository,
	goalRepo goal.Repository,
	playerRepo player.Repository,
	results ResultRecorder,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		matchRepo:  matchRepo,
		goalRepo:   goalRepo,
		playerRepo: playerRepo,
		results:    results,
		logger:     logger,
	}
}

// GetMatchDetails returns the match with names and its goals in minute order.
func (s *MatchService) GetMatchDetails(ctx context.Context, matchID int64) (MatchDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatchDetails")
	defer span.End()

	summary, exists, err := s.matchRepo.GetSummary(ctx, matchID)
	if err != nil {
		return MatchDetails{}, storeError("get match", err)
	}
	if !exists {
		return MatchDetails{}, withMessage(fmt.Errorf("%w: match id=%d", ErrNotFound, matchID), MsgMatchNotFound)
	}

	goals, err := s.goalRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchDetails{}, storeError("list goals", err)
	}
	goal.SortEntries(goals)
	if goals == nil {
		goals = []goal.Entry{}
	}

	return MatchDetails{Match: summary, Goals: goals}, nil
}

// RecordResult finishes a match with the given score and rebuilds the
// standings of its league. Recording again overwrites the previous score.
func (s *MatchService) RecordResult(ctx context.Context, input RecordResultInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordResult")
	defer span.End()

	if input.HomeScore < 0 || input.AwayScore < 0 {
		return match.Match{}, withMessage(fmt.Errorf("%w: scores cannot be negative", ErrInvalidInput), MsgInvalidScore)
	}

	updated, exists, err := s.results.RecordResult(ctx, input.MatchID, input.HomeScore, input.AwayScore)
	if err != nil {
		return match.Match{}, fmt.Errorf("record result of match %d: %w", input.MatchID, err)
	}
	if !exists {
		return match.Match{}, withMessage(fmt.Errorf("%w: match id=%d", ErrNotFound, input.MatchID), MsgMatchNotFound)
	}

	s.logger.InfoContext(ctx, "match result recorded",
		"match_id", updated.ID,
		"league_id", updated.LeagueID,
		"home_score", input.HomeScore,
		"away_score", input.AwayScore,
	)
	return updated, nil
}

// RecordGoal adds a goal for a player who is currently on one of the two
// teams of the match.
func (s *MatchService) RecordGoal(ctx context.Context, input RecordGoalInput) (goal.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordGoal")
	defer span.End()

	candidate := goal.Goal{
		MatchID:  input.MatchID,
		TeamID:   input.TeamID,
		PlayerID: input.PlayerID,
		Minute:   input.Minute,
	}
	if err := candidate.Validate(); err != nil {
		return goal.Goal{}, withMessage(fmt.Errorf("%w: %v", ErrInvalidInput, err), MsgInvalidGoal)
	}

	m, err := s.mustGetMatch(ctx, input.MatchID)
	if err != nil {
		return goal.Goal{}, err
	}
	if !m.Involves(input.TeamID) {
		return goal.Goal{}, withMessage(fmt.Errorf("%w: team %d does not play in match %d", ErrInvalidInput, input.TeamID, m.ID), MsgInvalidGoal)
	}

	scorer, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		return goal.Goal{}, storeError("get player", err)
	}
	if !exists {
		return goal.Goal{}, withMessage(fmt.Errorf("%w: player id=%d", ErrNotFound, input.PlayerID), MsgPlayerNotFound)
	}
	if scorer.TeamID == nil || *scorer.TeamID != input.TeamID {
		return goal.Goal{}, withMessage(fmt.Errorf("%w: player %d is not on team %d", ErrInvalidInput, scorer.ID, input.TeamID), MsgInvalidGoal)
	}

	created, err := s.goalRepo.Create(ctx, candidate)
	if err != nil {
		return goal.Goal{}, storeError("create goal", err)
	}

	s.logger.InfoContext(ctx, "goal recorded",
		"goal_id", created.ID,
		"match_id", created.MatchID,
		"player_id", created.PlayerID,
		"minute", created.Minute,
	)
	return created, nil
}

func (s *MatchService) mustGetMatch(ctx context.Context, matchID int64) (match.Match, error) {
	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, storeError("get match", err)
	}
	if !exists {
		return match.Match{}, withMessage(fmt.Errorf("%w: match id=%d", ErrNotFound, matchID), MsgMatchNotFound)
	}
	return m, nil
}

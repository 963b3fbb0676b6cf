package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-league/internal/domain/league"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	"github.com/riskibarqy/football-league/internal/domain/team"
	"github.com/riskibarqy/football-league/internal/platform/logging"
)

const defaultRecomputeWorkers = 4

// StandingsService rebuilds team counters from finished matches. It is the
// only writer of team records and of match results, so each result lands in
// the same store transaction as the table it changes.
type StandingsService struct {
	leagueRepo   league.Repository
	standingRepo standing.Repository
	invalidator  ListingInvalidator
	workers      int
	logger       *logging.Logger
}

func NewStandingsService(
	leagueRepo league.Repository,
	standingRepo standing.Repository,
	invalidator ListingInvalidator,
	workers int,
	logger *logging.Logger,
) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}
	if workers <= 0 {
		workers = defaultRecomputeWorkers
	}

	return &StandingsService{
		leagueRepo:   leagueRepo,
		standingRepo: standingRepo,
		invalidator:  invalidator,
		workers:      workers,
		logger:       logger,
	}
}

// Recompute derives fresh records for every team of leagueID and saves them
// together.
func (s *StandingsService) Recompute(ctx context.Context, leagueID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Recompute")
	defer span.End()

	if err := s.recompute(ctx, leagueID); err != nil {
		return err
	}
	s.invalidator.InvalidateListings(ctx)
	return nil
}

// RecordResult finishes matchID with the given score and rebuilds its league
// table atomically. It reports false when the match does not exist.
func (s *StandingsService) RecordResult(ctx context.Context, matchID int64, homeScore, awayScore int) (match.Match, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.RecordResult")
	defer span.End()

	updated, ok, err := s.standingRepo.SaveResult(ctx, matchID, homeScore, awayScore, standing.Compute)
	if err != nil {
		return match.Match{}, false, storeError("save match result", err)
	}
	if !ok {
		return match.Match{}, false, nil
	}

	s.invalidator.InvalidateListings(ctx)
	return updated, true, nil
}

// RecomputeAll runs Recompute for every league on a bounded worker pool and
// returns the joined errors of the leagues that failed.
func (s *StandingsService) RecomputeAll(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.RecomputeAll")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return storeError("list leagues", err)
	}
	if len(leagues) == 0 {
		return nil
	}

	pool, err := ants.NewPool(min(s.workers, len(leagues)))
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	start := time.Now()
	var (
		workers sync.WaitGroup
		mu      sync.Mutex
		errs    []error
		done    atomic.Int32
	)
	for _, item := range leagues {
		leagueID := item.ID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if err := s.recompute(ctx, leagueID); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("league %s: %w", leagueID, err))
				mu.Unlock()
				return
			}
			done.Add(1)
		}); err != nil {
			workers.Done()
			mu.Lock()
			errs = append(errs, fmt.Errorf("submit league %s to worker pool: %w", leagueID, err))
			mu.Unlock()
		}
	}
	workers.Wait()

	s.invalidator.InvalidateListings(ctx)
	s.logger.InfoContext(ctx, "standings recomputed",
		"leagues", len(leagues),
		"succeeded", int(done.Load()),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return errors.Join(errs...)
}

func (s *StandingsService) recompute(ctx context.Context, leagueID string) error {
	var teams, finished int
	err := s.standingRepo.Recompute(ctx, leagueID, func(teamIDs []int64, matches []match.Match) map[int64]team.Record {
		teams, finished = len(teamIDs), len(matches)
		return standing.Compute(teamIDs, matches)
	})
	if err != nil {
		return storeError("recompute standings", err)
	}

	s.logger.DebugContext(ctx, "league standings recomputed",
		"league_id", leagueID,
		"teams", teams,
		"finished_matches", finished,
	)
	return nil
}

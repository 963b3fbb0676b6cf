package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/seed"
	"github.com/riskibarqy/football-league/internal/platform/logging"
)

// StandingsRebuilder rebuilds the tables of every league.
type StandingsRebuilder interface {
	RecomputeAll(ctx context.Context) error
}

type SeedService struct {
	seedRepo  seed.Repository
	standings StandingsRebuilder
	leagues   []seed.LeagueSpec
	logger    *logging.Logger
	now       func() time.Time
}

func NewSeedService(seedRepo seed.Repository, standings StandingsRebuilder, logger *logging.Logger) *SeedService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SeedService{
		seedRepo:  seedRepo,
		standings: standings,
		leagues:   seed.DefaultLeagues(),
		logger:    logger,
		now:       time.Now,
	}
}

// Run fills an empty store with the sample leagues and recomputes the
// tables. It reports false without writing when the store already has data.
func (s *SeedService) Run(ctx context.Context) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeedService.Run")
	defer span.End()

	empty, err := s.seedRepo.IsEmpty(ctx)
	if err != nil {
		return false, storeError("check store is empty", err)
	}
	if !empty {
		s.logger.DebugContext(ctx, "store already seeded, skipping")
		return false, nil
	}

	start := s.now().UTC().Truncate(24 * time.Hour)
	dataset, err := seed.Generate(s.leagues, start)
	if err != nil {
		return false, fmt.Errorf("generate seed dataset: %w", err)
	}
	if err := dataset.Validate(); err != nil {
		return false, fmt.Errorf("validate seed dataset: %w", err)
	}

	if err := s.seedRepo.Write(ctx, dataset); err != nil {
		return false, storeError("write seed dataset", err)
	}

	if err := s.standings.RecomputeAll(ctx); err != nil {
		return true, fmt.Errorf("recompute standings after seed: %w", err)
	}

	s.logger.InfoContext(ctx, "store seeded",
		"leagues", len(dataset.Leagues),
		"teams", len(dataset.Teams),
		"players", len(dataset.Players),
		"matches", len(dataset.Matches),
		"goals", len(dataset.Goals),
	)
	return true, nil
}

package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/config"
	"github.com/riskibarqy/football-league/internal/domain/goal"
	"github.com/riskibarqy/football-league/internal/domain/league"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/roster"
	"github.com/riskibarqy/football-league/internal/domain/seed"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	"github.com/riskibarqy/football-league/internal/domain/team"
	"github.com/riskibarqy/football-league/internal/infrastructure/auth"
	"github.com/riskibarqy/football-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-league/internal/infrastructure/repository/sqlite"
	"github.com/riskibarqy/football-league/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/football-league/internal/platform/cache"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"github.com/riskibarqy/football-league/internal/usecase"
)

// App is the assembled API: the HTTP server plus the resources it owns.
type App struct {
	Server *http.Server
	db     *sqlx.DB
}

// Close releases the database connection, if any.
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

type repositories struct {
	leagues   league.Repository
	teams     team.Repository
	players   player.Repository
	matches   match.Repository
	standings standing.Repository
	goals     goal.Repository
	rosters   roster.Repository
	seeds     seed.Repository
	health    httpapi.HealthChecker
}

// New opens the configured store, seeds it when empty and wires the HTTP
// server on top of it.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	app := &App{}
	repos, err := app.openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	// Standings write records through the standing repository and drop the
	// cached listings afterwards.
	leagueRepo := repos.leagues
	teamRepo := repos.teams
	var invalidator usecase.ListingInvalidator
	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		leagueRepo = cache.NewLeagueRepository(repos.leagues, store)
		teamRepo = cache.NewTeamRepository(repos.teams, store)
		invalidator = cache.NewInvalidator(store)
	}

	standingsSvc := usecase.NewStandingsService(
		repos.leagues,
		repos.standings,
		invalidator,
		cfg.SeedWorkers,
		logger.Named("standings"),
	)

	if cfg.SeedEnabled {
		seeded, err := usecase.NewSeedService(repos.seeds, standingsSvc, logger.Named("seed")).Run(ctx)
		if err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("seed store: %w", err)
		}
		if !seeded {
			logger.Info("seed skipped", "reason", "store not empty")
		}
	}

	authSvc := usecase.NewAuthService(
		repos.players,
		auth.NewBcryptHasher(cfg.AuthBcryptCost),
		auth.NewJWTIssuer(cfg.AuthJWTSecret, cfg.AuthTokenTTL),
		logger.Named("auth"),
	)
	leagueSvc := usecase.NewLeagueService(leagueRepo, teamRepo)
	playerSvc := usecase.NewPlayerService(repos.players, repos.goals)
	teamSvc := usecase.NewTeamService(leagueRepo, teamRepo, repos.matches)
	rosterSvc := usecase.NewRosterService(leagueRepo, teamRepo, repos.players, repos.rosters, invalidator, logger.Named("roster"))
	matchSvc := usecase.NewMatchService(repos.matches, repos.goals, repos.players, standingsSvc, logger.Named("match"))

	handler := httpapi.NewHandler(authSvc, leagueSvc, playerSvc, teamSvc, rosterSvc, matchSvc, repos.health, logger.Named("httpapi"))
	router := httpapi.NewRouter(handler, authSvc, logger.Named("http"), httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout:     cfg.RequestTimeout,
		RequestIDs:         idgen.NewUUIDGenerator(),
	})

	app.Server = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	return app, nil
}

func (a *App) openStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.DBDriver {
	case config.DBDriverMemory:
		store := memory.NewStore()
		logger.Info("store ready", "driver", config.DBDriverMemory)
		return repositories{
			leagues:   memory.NewLeagueRepository(store),
			teams:     memory.NewTeamRepository(store),
			players:   memory.NewPlayerRepository(store),
			matches:   memory.NewMatchRepository(store),
			standings: memory.NewStandingRepository(store),
			goals:     memory.NewGoalRepository(store),
			rosters:   memory.NewRosterRepository(store),
			seeds:     memory.NewSeedRepository(store),
		}, nil
	case config.DBDriverSQLite:
		db, err := sqlite.Open(ctx, sqlite.Options{Path: cfg.DBPath, BusyTimeout: cfg.DBBusyTimeout})
		if err != nil {
			return repositories{}, err
		}
		if cfg.DBAutoMigrate {
			if err := sqlite.Migrate(db); err != nil {
				_ = db.Close()
				return repositories{}, err
			}
		}
		a.db = db
		logger.Info("store ready", "driver", config.DBDriverSQLite, "path", cfg.DBPath, "auto_migrate", cfg.DBAutoMigrate)
		return repositories{
			leagues:   sqlite.NewLeagueRepository(db),
			teams:     sqlite.NewTeamRepository(db),
			players:   sqlite.NewPlayerRepository(db),
			matches:   sqlite.NewMatchRepository(db),
			standings: sqlite.NewStandingRepository(db),
			goals:     sqlite.NewGoalRepository(db),
			rosters:   sqlite.NewRosterRepository(db),
			seeds:     sqlite.NewSeedRepository(db),
			health:    db,
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}

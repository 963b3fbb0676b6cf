package httpapi

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"github.com/riskibarqy/football-league/internal/usecase"
)

// HealthChecker reports whether the backing store answers.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	authService   *usecase.AuthService
	leagueService *usecase.LeagueService
	playerService *usecase.PlayerService
	teamService   *usecase.TeamService
	rosterService *usecase.RosterService
	matchService  *usecase.MatchService
	health        HealthChecker
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	leagueService *usecase.LeagueService,
	playerService *usecase.PlayerService,
	teamService *usecase.TeamService,
	rosterService *usecase.RosterService,
	matchService *usecase.MatchService,
	health HealthChecker,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:   authService,
		leagueService: leagueService,
		playerService: playerService,
		teamService:   teamService,
		rosterService: rosterService,
		matchService:  matchService,
		health:        health,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	if h.health != nil {
		if err := h.health.PingContext(ctx); err != nil {
			h.logger.ErrorContext(ctx, "health check failed", "error", err)
			writeJSON(ctx, w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// fail logs err at a level matching its kind and renders it.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

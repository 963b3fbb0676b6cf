package httpapi

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	tables, err := h.leagueService.ListTables(ctx)
	if err != nil {
		h.fail(ctx, w, "list leagues failed", err)
		return
	}

	items := make([]leagueDTO, 0, len(tables))
	for _, table := range tables {
		items = append(items, leagueTableToDTO(table))
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{"leagues": items})
}

func (h *Handler) ListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	leagueID := strings.TrimSpace(r.PathValue("id"))
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByLeague", attribute.String("league.id", leagueID))
	defer span.End()

	teams, err := h.leagueService.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		h.fail(ctx, w, "list league teams failed", err, "league_id", leagueID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{"teams": standingTeamsToDTO(teams)})
}

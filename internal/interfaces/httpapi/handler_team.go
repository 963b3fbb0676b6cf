package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-league/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.rosterService.CreateTeam(ctx, usecase.CreateTeamInput{
		PlayerID: req.PlayerID.Int64(),
		LeagueID: req.LeagueID,
		Name:     req.Name,
	})
	if err != nil {
		h.fail(ctx, w, "create team failed", err, "league_id", req.LeagueID, "player_id", req.PlayerID.Int64())
		return
	}

	writeJSON(ctx, w, http.StatusCreated, map[string]any{"success": true, "teamId": created.ID})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.fail(ctx, w, "list teams failed", err)
		return
	}

	items := make([]teamListItemDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamSummaryToDTO(t))
	}
	writeJSON(ctx, w, http.StatusOK, map[string]any{"teams": items})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID := pathID(r, "id")
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam", attribute.Int64("team.id", teamID))
	defer span.End()

	details, err := h.teamService.GetTeamDetails(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "get team failed", err, "team_id", teamID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"team": teamDetailDTO{
			standingTeamDTO: standingTeamToDTO(details.Team),
			CaptainPlayerID: details.Team.CaptainPlayerID,
			League:          leagueToRefDTO(details.League),
		},
		"upcomingMatches": matchSummariesToDTO(details.Upcoming),
		"previousMatches": matchSummariesToDTO(details.Previous),
	})
}

func (h *Handler) JoinTeam(w http.ResponseWriter, r *http.Request) {
	teamID := pathID(r, "id")
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinTeam", attribute.Int64("team.id", teamID))
	defer span.End()

	var req joinTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.rosterService.JoinTeam(ctx, teamID, req.PlayerID.Int64()); err != nil {
		h.fail(ctx, w, "join team failed", err, "team_id", teamID, "player_id", req.PlayerID.Int64())
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) RecruitPlayer(w http.ResponseWriter, r *http.Request) {
	teamID := pathID(r, "id")
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecruitPlayer", attribute.Int64("team.id", teamID))
	defer span.End()

	var req recruitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err := h.rosterService.Recruit(ctx, usecase.RecruitInput{
		CaptainID: req.CaptainID.Int64(),
		TeamID:    teamID,
		PlayerID:  req.PlayerID.Int64(),
	})
	if err != nil {
		h.fail(ctx, w, "recruit player failed", err,
			"team_id", teamID,
			"captain_id", req.CaptainID.Int64(),
			"player_id", req.PlayerID.Int64(),
		)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{"success": true})
}

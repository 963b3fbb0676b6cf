package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-league/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := pathID(r, "id")
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch", attribute.Int64("match.id", matchID))
	defer span.End()

	details, err := h.matchService.GetMatchDetails(ctx, matchID)
	if err != nil {
		h.fail(ctx, w, "get match failed", err, "match_id", matchID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{"match": matchDetailsToDTO(details)})
}

func (h *Handler) RecordMatchResult(w http.ResponseWriter, r *http.Request) {
	matchID := pathID(r, "id")
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchResult", attribute.Int64("match.id", matchID))
	defer span.End()

	var req recordResultRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req, usecase.MsgInvalidScore); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.RecordResult(ctx, usecase.RecordResultInput{
		MatchID:   matchID,
		HomeScore: *req.HomeScore,
		AwayScore: *req.AwayScore,
	})
	if err != nil {
		h.fail(ctx, w, "record match result failed", err, "match_id", matchID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{"success": true, "match": matchToDTO(updated)})
}

func (h *Handler) RecordGoal(w http.ResponseWriter, r *http.Request) {
	matchID := pathID(r, "id")
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordGoal", attribute.Int64("match.id", matchID))
	defer span.End()

	var req recordGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req, usecase.MsgInvalidGoal); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.RecordGoal(ctx, usecase.RecordGoalInput{
		MatchID:  matchID,
		TeamID:   req.TeamID.Int64(),
		PlayerID: req.PlayerID.Int64(),
		Minute:   *req.Minute,
	})
	if err != nil {
		h.fail(ctx, w, "record goal failed", err, "match_id", matchID)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, map[string]any{"success": true, "goalId": created.ID})
}

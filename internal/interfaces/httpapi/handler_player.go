package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/football-league/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

// ListPlayers lists every player, or looks one up when ?email= is given.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	if email := strings.TrimSpace(r.URL.Query().Get("email")); email != "" {
		profile, err := h.playerService.FindByEmail(ctx, email)
		if err != nil {
			h.fail(ctx, w, "find player by email failed", err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, map[string]any{"player": playerToDTO(profile)})
		return
	}

	players, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.fail(ctx, w, "list players failed", err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	writeJSON(ctx, w, http.StatusOK, map[string]any{"players": items})
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := pathID(r, "id")
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer", attribute.Int64("player.id", playerID))
	defer span.End()

	profile, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "get player failed", err, "player_id", playerID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"player": playerDetailDTO{playerDTO: playerToDTO(profile), Goals: profile.Goals},
	})
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := pathID(r, "id")
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer", attribute.Int64("player.id", playerID))
	defer span.End()

	var req updatePlayerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.authService.UpdateCredentials(ctx, usecase.UpdateCredentialsInput{
		PlayerID: playerID,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.fail(ctx, w, "update player failed", err, "player_id", playerID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"success": true,
		"player":  updatedPlayerDTO{ID: updated.ID, Email: updated.Email},
	})
}

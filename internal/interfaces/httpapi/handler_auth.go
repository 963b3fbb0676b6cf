package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-league/internal/usecase"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Signup")
	defer span.End()

	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sess, err := h.authService.Register(ctx, usecase.CredentialsInput{Email: req.Email, Password: req.Password})
	if err != nil {
		h.fail(ctx, w, "signup failed", err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, sessionToDTO(sess))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sess, err := h.authService.Authenticate(ctx, usecase.CredentialsInput{Email: req.Email, Password: req.Password})
	if err != nil {
		h.fail(ctx, w, "login failed", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, sessionToDTO(sess))
}

// Session returns the player behind the bearer token.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Session")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	profile, err := h.authService.CurrentPlayer(ctx, principal)
	if err != nil {
		h.fail(ctx, w, "load session player failed", err, "player_id", principal.PlayerID)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{"player": playerToDTO(profile)})
}

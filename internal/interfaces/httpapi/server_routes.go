package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /auth/signup", handler.Signup)
	mux.HandleFunc("POST /auth/login", handler.Login)

	mux.HandleFunc("GET /leagues", handler.ListLeagues)
	mux.HandleFunc("GET /leagues/{id}/teams", handler.ListTeamsByLeague)

	mux.HandleFunc("GET /players", handler.ListPlayers)
	mux.HandleFunc("GET /players/{id}", handler.GetPlayer)
	mux.HandleFunc("PUT /players/{id}", handler.UpdatePlayer)

	mux.HandleFunc("POST /teams", handler.CreateTeam)
	mux.HandleFunc("GET /teams-list", handler.ListTeams)
	mux.HandleFunc("GET /teams/{id}", handler.GetTeam)
	mux.HandleFunc("POST /teams/{id}/join", handler.JoinTeam)
	mux.HandleFunc("POST /teams/{id}/recruit", handler.RecruitPlayer)

	mux.HandleFunc("GET /matches/{id}", handler.GetMatch)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /auth/session", RequireAuth(verifier, http.HandlerFunc(handler.Session)))
	mux.Handle("POST /matches/{id}/result", RequireAuth(verifier, http.HandlerFunc(handler.RecordMatchResult)))
	mux.Handle("POST /matches/{id}/goals", RequireAuth(verifier, http.HandlerFunc(handler.RecordGoal)))
}

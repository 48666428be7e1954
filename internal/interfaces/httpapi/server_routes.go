package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/events/{eventID}/scores", handler.GetEventScores)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/standings/players", handler.GetPlayerStandings)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/standings/teams", handler.GetTeamStandings)
	mux.HandleFunc("GET /v1/engine/runs", handler.ListEngineRuns)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /v1/events/{eventID}/lock", RequireAdminToken(adminToken, http.HandlerFunc(handler.LockEvent)))
	mux.Handle("POST /v1/events/{eventID}/unlock", RequireAdminToken(adminToken, http.HandlerFunc(handler.UnlockEvent)))
	mux.Handle("POST /v1/events/{eventID}/scores/rebuild", RequireAdminToken(adminToken, http.HandlerFunc(handler.RebuildEventScores)))
	mux.Handle("POST /v1/seasons/{seasonID}/standings/players/rebuild", RequireAdminToken(adminToken, http.HandlerFunc(handler.RebuildPlayerStandings)))
	mux.Handle("POST /v1/seasons/{seasonID}/standings/teams/rebuild", RequireAdminToken(adminToken, http.HandlerFunc(handler.RebuildTeamStandings)))
}

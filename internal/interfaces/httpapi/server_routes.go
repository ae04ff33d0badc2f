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

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /equipos", handler.CreateTeam)
	mux.HandleFunc("POST /equipos/{$}", handler.CreateTeam)
	mux.HandleFunc("GET /equipos", handler.ListTeams)
	mux.HandleFunc("GET /equipos/{$}", handler.ListTeams)
	mux.HandleFunc("GET /equipos/inactivos", handler.ListInactiveTeams)
	mux.HandleFunc("GET /equipos/buscar", handler.FindTeamByName)
	mux.HandleFunc("GET /equipos/pais/{pais}", handler.ListTeamsByCountry)
	mux.HandleFunc("GET /equipos/{id}", handler.GetTeam)
	mux.HandleFunc("PUT /equipos/{id}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /equipos/{id}", handler.DeleteTeam)
	mux.HandleFunc("POST /equipos/{id}/restaurar", handler.RestoreTeam)
	mux.HandleFunc("POST /equipos/{id}/recalcular", handler.RecalculateTeam)
	mux.HandleFunc("POST /equipos/{id}/logo", handler.UploadTeamLogo)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /partidos", handler.CreateMatch)
	mux.HandleFunc("POST /partidos/{$}", handler.CreateMatch)
	mux.HandleFunc("GET /partidos", handler.ListMatches)
	mux.HandleFunc("GET /partidos/{$}", handler.ListMatches)
	mux.HandleFunc("GET /partidos/inactivos", handler.ListInactiveMatches)
	mux.HandleFunc("GET /partidos/{id}", handler.GetMatch)
	mux.HandleFunc("PUT /partidos/{id}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /partidos/{id}", handler.DeleteMatch)
	mux.HandleFunc("POST /partidos/{id}/restaurar", handler.RestoreMatch)
}

func registerReportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /reportes/pais/{$}", handler.ListCountryReports)
	mux.HandleFunc("GET /reportes/pais/{pais}", handler.GetCountryReport)
	mux.HandleFunc("GET /reportes/fase/{$}", handler.ListPhaseReports)
	mux.HandleFunc("GET /reportes/fase/{fase}", handler.GetPhaseReport)
	mux.HandleFunc("GET /reportes/posiciones", handler.ListStandings)
	mux.HandleFunc("GET /reportes/posiciones/{grupo}", handler.ListStandings)
	mux.HandleFunc("POST /reportes/regenerar", handler.RebuildReports)
}

func registerImportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /importaciones/sportmonks/equipos", handler.ImportSportMonksTeams)
}

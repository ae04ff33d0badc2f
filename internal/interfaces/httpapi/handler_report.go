package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetCountryReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetCountryReport")
	defer span.End()

	country, err := pathCountry(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.reportService.GetCountry(ctx, country)
	if err != nil {
		h.logger.WarnContext(ctx, "get country report failed", "country", country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, countryReportToDTO(item))
}

func (h *Handler) ListCountryReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListCountryReports")
	defer span.End()

	items, err := h.reportService.ListCountries(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list country reports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]countryReportDTO, 0, len(items))
	for _, item := range items {
		out = append(out, countryReportToDTO(item))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) GetPhaseReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetPhaseReport")
	defer span.End()

	phase, err := pathPhase(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.reportService.GetPhase(ctx, phase)
	if err != nil {
		h.logger.WarnContext(ctx, "get phase report failed", "phase", phase, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, phaseReportToDTO(item))
}

func (h *Handler) ListPhaseReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListPhaseReports")
	defer span.End()

	items, err := h.reportService.ListPhases(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list phase reports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]phaseReportDTO, 0, len(items))
	for _, item := range items {
		out = append(out, phaseReportToDTO(item))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListStandings")
	defer span.End()

	group := strings.TrimSpace(r.PathValue("grupo"))
	groups, err := h.reportService.Standings(ctx, group)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "group", group, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, standingsToDTO(groups))
}

func (h *Handler) RebuildReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "RebuildReports")
	defer span.End()

	result, err := h.reportService.RebuildAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "rebuild reports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, result)
}

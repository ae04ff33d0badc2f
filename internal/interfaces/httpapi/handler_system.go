package httpapi

import (
	"net/http"

	"github.com/riskibarqy/copa-admin/internal/usecase"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	_, span := startHandlerSpan(r, "Healthz")
	defer span.End()

	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ImportSportMonksTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ImportSportMonksTeams")
	defer span.End()

	var req importTeamsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.teamImportService.ImportTeams(ctx, usecase.ImportTeamsInput{
		SeasonID: req.SeasonID,
		Group:    req.Group,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "import sportmonks teams failed", "season_id", req.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, result)
}

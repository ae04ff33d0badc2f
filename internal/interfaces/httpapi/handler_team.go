package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/copa-admin/internal/usecase"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.Create(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "name", input.Name, "country", input.Country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTeams")
	defer span.End()

	items, err := h.teamService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teamsToDTO(items))
}

func (h *Handler) ListInactiveTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListInactiveTeams")
	defer span.End()

	items, err := h.teamService.ListInactive(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list inactive teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teamsToDTO(items))
}

func (h *Handler) ListTeamsByCountry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTeamsByCountry")
	defer span.End()

	country, err := pathCountry(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.teamService.ListByCountry(ctx, country)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams by country failed", "country", country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teamsToDTO(items))
}

func (h *Handler) FindTeamByName(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "FindTeamByName")
	defer span.End()

	name := strings.TrimSpace(r.URL.Query().Get("nombre"))
	if name == "" {
		writeError(ctx, w, fmt.Errorf("%w: query parameter nombre is required", usecase.ErrInvalidInput))
		return
	}

	item, err := h.teamService.FindByName(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "find team by name failed", "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetTeam")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.Get(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdateTeam")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updateTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.Update(ctx, id, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeleteTeam")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.teamService.SoftDelete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, deletedDTO{OK: true})
}

func (h *Handler) RestoreTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "RestoreTeam")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.Restore(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "restore team failed", "team_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) RecalculateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "RecalculateTeam")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.statisticsService.Recalculate(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "recalculate team failed", "team_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) UploadTeamLogo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UploadTeamLogo")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	// Multipart framing needs headroom above the file limit itself.
	r.Body = http.MaxBytesReader(w, r.Body, h.logoMaxBytes+64<<10)
	file, header, err := r.FormFile("logo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(ctx, w, fmt.Errorf("%w: logo exceeds %d bytes", usecase.ErrInvalidInput, h.logoMaxBytes))
			return
		}
		writeError(ctx, w, fmt.Errorf("%w: multipart field logo is required: %v", usecase.ErrInvalidInput, err))
		return
	}
	defer file.Close()

	if header.Size > h.logoMaxBytes {
		writeError(ctx, w, fmt.Errorf("%w: logo exceeds %d bytes", usecase.ErrInvalidInput, h.logoMaxBytes))
		return
	}

	item, err := h.teamService.UploadLogo(ctx, id, usecase.UploadLogoInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upload team logo failed", "team_id", id, "size", header.Size, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teamToDTO(item))
}

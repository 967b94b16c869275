package handlers

import (
	"net/http"

	"github.com/aidosk/courtscore/models"
	"github.com/aidosk/courtscore/services"
)

type MatchUpHandler struct {
	matchUpService services.MatchUpService
}

func NewMatchUpHandler(matchUpService services.MatchUpService) *MatchUpHandler {
	return &MatchUpHandler{matchUpService: matchUpService}
}

type createMatchUpInput struct {
	Side1Name  string `json:"side1_name"`
	Side2Name  string `json:"side2_name"`
	FormatCode string `json:"format_code"`
}

func (h *MatchUpHandler) Create(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := urlParamInt(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input createMatchUpInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matchUp := &models.MatchUp{
		TournamentID: tournamentID,
		Side1Name:    input.Side1Name,
		Side2Name:    input.Side2Name,
		FormatCode:   input.FormatCode,
	}
	if err := h.matchUpService.Create(r.Context(), matchUp); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"matchup": matchUp}, nil)
}

func (h *MatchUpHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matchUp, err := h.matchUpService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"matchup": matchUp}, nil)
}

func (h *MatchUpHandler) ListByTournament(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := urlParamInt(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var statusFilter *models.MatchUpStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := models.MatchUpStatus(raw)
		statusFilter = &status
	}

	matchUps, err := h.matchUpService.ListByTournament(r.Context(), tournamentID, statusFilter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"matchups": matchUps}, nil)
}

func (h *MatchUpHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.matchUpService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

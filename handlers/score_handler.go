package handlers

import (
	"errors"
	"net/http"

	"github.com/aidosk/courtscore/models"
	"github.com/aidosk/courtscore/scoring"
	"github.com/aidosk/courtscore/services"
)

type ScoreHandler struct {
	scoreService services.ScoreService
}

func NewScoreHandler(scoreService services.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

// tokenInput carries one entry token plus the optional per-call options.
// Omitted options fall back to the engine defaults.
type tokenInput struct {
	Token       string `json:"token"`
	Shifted     bool   `json:"shifted"`
	LowSide     *int   `json:"low_side"`
	ShiftFirst  bool   `json:"shift_first"`
	Auto        *bool  `json:"auto"`
	CheckFormat *bool  `json:"check_format"`
}

type tokenResponse struct {
	Updated     bool                 `json:"updated"`
	Message     string               `json:"message,omitempty"`
	Score       string               `json:"score"`
	Sets        []models.Set         `json:"sets"`
	WinningSide models.Side          `json:"winning_side,omitempty"`
	Status      models.MatchUpStatus `json:"status"`
}

// ApplyToken handles POST /matchups/{id}/tokens.
func (h *ScoreHandler) ApplyToken(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input tokenInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	cfg := scoring.DefaultConfig()
	if input.LowSide != nil {
		switch *input.LowSide {
		case 1:
			cfg.LowSide = models.Side1
		case 2:
			cfg.LowSide = models.Side2
		default:
			badRequestResponse(w, r, errors.New("low_side must be 1 or 2"))
			return
		}
	}
	cfg.ShiftFirst = input.ShiftFirst
	if input.Auto != nil {
		cfg.Auto = *input.Auto
	}
	if input.CheckFormat != nil {
		cfg.CheckFormat = *input.CheckFormat
	}

	token := scoring.Token{Raw: input.Token, Shifted: input.Shifted}
	result, err := h.scoreService.ApplyToken(r.Context(), id, token, cfg)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	status := http.StatusOK
	if !result.Updated {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, tokenResponse{
		Updated:     result.Updated,
		Message:     result.Message,
		Score:       result.Score.ScoreString,
		Sets:        result.Score.Sets,
		WinningSide: result.Score.WinningSide,
		Status:      result.Score.Status,
	}, nil)
}

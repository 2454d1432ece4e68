package game

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/flag-quiz/internal/country"
	"github.com/gokatarajesh/flag-quiz/internal/quiz"
	httperr "github.com/gokatarajesh/flag-quiz/pkg/http/errors"
)

// HTTPHandlers exposes game launch, replay and settings endpoints.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for game endpoints.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "game_http").Logger(),
	}
}

// Register mounts the game routes on mux.
func (h *HTTPHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/games", h.Launch)
	mux.HandleFunc("GET /v1/games/{id}/rounds/{n}", h.GetRound)
	mux.HandleFunc("DELETE /v1/games/{id}", h.Abandon)
	mux.HandleFunc("GET /v1/countries/{code}/similar", h.Similar)
	mux.HandleFunc("GET /v1/players/{id}/settings", h.GetSettings)
	mux.HandleFunc("PUT /v1/players/{id}/settings", h.PutSettings)
}

type launchResponse struct {
	GameID      string         `json:"game_id"`
	Mode        quiz.Kind      `json:"mode"`
	Family      string         `json:"family"`
	Category    *quiz.Category `json:"category,omitempty"`
	Settings    quiz.Settings  `json:"settings"`
	Rounds      int            `json:"rounds"`
	OptionCount int            `json:"option_count"`
}

type roundResponse struct {
	Round    int               `json:"round"`
	Total    int               `json:"total"`
	Question country.Country   `json:"question"`
	Options  []country.Country `json:"options"`
}

// Launch handles POST /v1/games
func (h *HTTPHandlers) Launch(w http.ResponseWriter, r *http.Request) {
	var req LaunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.RespondBadRequest(w, httperr.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	g, err := h.service.Launch(r.Context(), req)
	switch {
	case err == nil:
	case errors.Is(err, quiz.ErrUnknownMode):
		httperr.RespondValidationError(w, httperr.ErrCodeValidationFailed, err.Error(), "mode")
		return
	case errors.Is(err, quiz.ErrInvalidCategory):
		httperr.RespondValidationError(w, httperr.ErrCodeValidationFailed, err.Error(), "category")
		return
	case errors.Is(err, quiz.ErrInfeasible):
		httperr.RespondErrorWithDetails(w, http.StatusUnprocessableEntity, httperr.ErrCodeInsufficientData,
			"Not enough data for this configuration", map[string]interface{}{"reason": err.Error()})
		return
	default:
		h.logger.Error().Err(err).Str("mode", req.Mode).Msg("failed to launch game")
		httperr.RespondInternalError(w, "Failed to launch game")
		return
	}

	httperr.RespondJSON(w, http.StatusCreated, launchResponse{
		GameID:      g.ID.String(),
		Mode:        g.Mode,
		Family:      g.Family,
		Category:    g.Category,
		Settings:    g.Settings,
		Rounds:      len(g.Plan),
		OptionCount: g.Plan.OptionCount(),
	})
}

// GetRound handles GET /v1/games/{id}/rounds/{n}
func (h *HTTPHandlers) GetRound(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httperr.RespondBadRequest(w, httperr.ErrCodeInvalidGameID, "Invalid game ID")
		return
	}
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil {
		httperr.RespondBadRequest(w, httperr.ErrCodeInvalidRound, "Round must be a number")
		return
	}

	item, total, err := h.service.Round(r.Context(), id, n)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	httperr.RespondJSON(w, http.StatusOK, roundResponse{
		Round:    n,
		Total:    total,
		Question: item.Question,
		Options:  item.Options,
	})
}

// Abandon handles DELETE /v1/games/{id}
func (h *HTTPHandlers) Abandon(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httperr.RespondBadRequest(w, httperr.ErrCodeInvalidGameID, "Invalid game ID")
		return
	}
	if err := h.service.Abandon(r.Context(), id); err != nil {
		h.logger.Error().Err(err).Str("game_id", id.String()).Msg("failed to abandon game")
		httperr.RespondInternalError(w, "Failed to abandon game")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Similar handles GET /v1/countries/{code}/similar?n=5
func (h *HTTPHandlers) Similar(w http.ResponseWriter, r *http.Request) {
	n := 0
	if raw := r.URL.Query().Get("n"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 50 {
			n = parsed
		}
	}

	similar, err := h.service.Similar(r.Context(), r.PathValue("code"), n)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}
	httperr.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"code":    r.PathValue("code"),
		"similar": similar,
	})
}

// GetSettings handles GET /v1/players/{id}/settings
func (h *HTTPHandlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httperr.RespondBadRequest(w, httperr.ErrCodeInvalidPlayerID, "Invalid player ID")
		return
	}
	settings, err := h.service.PlayerSettings(r.Context(), playerID)
	if err != nil {
		h.logger.Error().Err(err).Str("player_id", playerID.String()).Msg("failed to load settings")
		httperr.RespondInternalError(w, "Failed to load settings")
		return
	}
	httperr.RespondJSON(w, http.StatusOK, settings)
}

// PutSettings handles PUT /v1/players/{id}/settings
func (h *HTTPHandlers) PutSettings(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httperr.RespondBadRequest(w, httperr.ErrCodeInvalidPlayerID, "Invalid player ID")
		return
	}
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		httperr.RespondBadRequest(w, httperr.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}
	settings, err := h.service.SavePlayerSettings(r.Context(), playerID, raw)
	if err != nil {
		h.logger.Error().Err(err).Str("player_id", playerID.String()).Msg("failed to save settings")
		httperr.RespondInternalError(w, "Failed to save settings")
		return
	}
	httperr.RespondJSON(w, http.StatusOK, settings)
}

func (h *HTTPHandlers) respondLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrGameNotFound):
		httperr.RespondNotFound(w, httperr.ErrCodeGameNotFound, "Game not found")
	case errors.Is(err, ErrRoundOutOfRange):
		httperr.RespondNotFound(w, httperr.ErrCodeRoundNotFound, "Round out of range")
	case errors.Is(err, ErrCountryNotFound):
		httperr.RespondNotFound(w, httperr.ErrCodeCountryNotFound, "Country not found")
	default:
		h.logger.Error().Err(err).Msg("lookup failed")
		httperr.RespondInternalError(w, "Lookup failed")
	}
}

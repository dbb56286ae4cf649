package handler

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/mcoot/yahtzee-scorekeeper/internal/api/apierr"
	"github.com/mcoot/yahtzee-scorekeeper/internal/api/request"
	"github.com/mcoot/yahtzee-scorekeeper/internal/api/response"
	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
	"github.com/mcoot/yahtzee-scorekeeper/internal/services/session"
)

// SessionHandler handles session, roster and score endpoints
type SessionHandler struct {
	controller *session.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *session.Controller) *SessionHandler {
	return &SessionHandler{
		controller: controller,
	}
}

// pathVar returns a decoded route variable; the router matches on the encoded
// path so player names may contain escaped slashes
func pathVar(r *http.Request, name string) string {
	raw := mux.Vars(r)[name]
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

func sessionCode(r *http.Request) model.SessionCode {
	return model.NormalizeSessionCode(pathVar(r, "code"))
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.CreateSession(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(s))
}

// Get handles GET /api/v1/sessions/{code}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.GetSession(r.Context(), sessionCode(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// AddPlayer handles POST /api/v1/sessions/{code}/players
func (h *SessionHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := request.Decode(r, &req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError(err.Error()))
		return
	}

	player, err := h.controller.AddPlayer(r.Context(), sessionCode(r), *req.Name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Player{Name: player.Name})
}

// Start handles POST /api/v1/sessions/{code}/start
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.StartSession(r.Context(), sessionCode(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// SetScore handles PUT /api/v1/sessions/{code}/players/{player}/scores/{category}
func (h *SessionHandler) SetScore(w http.ResponseWriter, r *http.Request) {
	player := pathVar(r, "player")

	category, err := model.ParseCategory(pathVar(r, "category"))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var req request.SetScoreRequest
	if err := request.Decode(r, &req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError(err.Error()))
		return
	}

	cell, err := h.controller.SetScore(r.Context(), sessionCode(r), player, category, *req.Value)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Score{
		Player:   player,
		Category: string(category),
		Value:    cell,
	})
}

// GetScore handles GET /api/v1/sessions/{code}/players/{player}/scores/{category}
func (h *SessionHandler) GetScore(w http.ResponseWriter, r *http.Request) {
	player := pathVar(r, "player")

	category, err := model.ParseCategory(pathVar(r, "category"))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	cell, err := h.controller.GetScore(r.Context(), sessionCode(r), player, category)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Score{
		Player:   player,
		Category: string(category),
		Value:    cell,
	})
}

// Total handles GET /api/v1/sessions/{code}/players/{player}/total
func (h *SessionHandler) Total(w http.ResponseWriter, r *http.Request) {
	total, err := h.controller.TotalScore(r.Context(), sessionCode(r), pathVar(r, "player"))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TotalFromModel(total))
}

// Standings handles GET /api/v1/sessions/{code}/standings
func (h *SessionHandler) Standings(w http.ResponseWriter, r *http.Request) {
	results, err := h.controller.Standings(r.Context(), sessionCode(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StandingsFromModel(results))
}

// Categories handles GET /api/v1/categories
func Categories(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.CategoriesFromModel())
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
	"github.com/mcoot/yahtzee-scorekeeper/internal/services/scoring"
	"github.com/mcoot/yahtzee-scorekeeper/internal/services/session"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web/middleware"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web/templates/components"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web/templates/layout"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web/templates/pages"
)

// SessionHandler handles the session page and its form posts
type SessionHandler struct {
	controller     *session.Controller
	scoringService *scoring.Service
	logger         *slog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(controller *session.Controller, scoringService *scoring.Service, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		controller:     controller,
		scoringService: scoringService,
		logger:         logger,
	}
}

// View renders the session page
func (h *SessionHandler) View(w http.ResponseWriter, r *http.Request) {
	code := sessionCode(r)

	s, err := h.controller.GetSession(r.Context(), code)
	if err != nil {
		middleware.SetFlash(w, "error", flashMessage(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := pages.SessionData{
		PageData: layout.PageData{
			Title: "Game " + string(s.Code),
			Flash: middleware.GetFlash(r.Context()),
		},
		Session: s,
	}

	if s.IsStarted() {
		data.Scorecards = make([]components.ScorecardData, 0, len(s.Players))
		for _, p := range s.Players {
			upper, lower := h.scoringService.SectionTotals(s, p.Name)
			data.Scorecards = append(data.Scorecards, components.ScorecardData{
				Code:   s.Code,
				Player: p.Name,
				Card:   s.Scorecard(p.Name),
				Upper:  upper,
				Lower:  lower,
				Total:  h.scoringService.TotalScore(s, p.Name),
			})
		}
		results := h.controller.Results(s)
		data.Standings = results.Standings
		data.Leader = results.Leader
	}

	render(w, r, pages.Session(data))
}

// AddPlayer handles the add-player form
func (h *SessionHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	code := sessionCode(r)

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, sessionPath(code), http.StatusSeeOther)
		return
	}

	player, err := h.controller.AddPlayer(r.Context(), code, r.FormValue("name"))
	if err != nil {
		middleware.SetFlash(w, "error", flashMessage(err))
		http.Redirect(w, r, sessionPath(code), http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Added "+player.Name)
	http.Redirect(w, r, sessionPath(code), http.StatusSeeOther)
}

// Start handles the start-game form
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	code := sessionCode(r)

	if _, err := h.controller.StartSession(r.Context(), code); err != nil {
		middleware.SetFlash(w, "error", flashMessage(err))
		http.Redirect(w, r, sessionPath(code), http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Game started!")
	http.Redirect(w, r, sessionPath(code), http.StatusSeeOther)
}

// SetScore handles a scorecard cell form; the raw input goes through untouched
func (h *SessionHandler) SetScore(w http.ResponseWriter, r *http.Request) {
	code := sessionCode(r)

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, sessionPath(code), http.StatusSeeOther)
		return
	}

	category, err := model.ParseCategory(r.FormValue("category"))
	if err != nil {
		middleware.SetFlash(w, "error", flashMessage(err))
		http.Redirect(w, r, sessionPath(code), http.StatusSeeOther)
		return
	}

	player := r.FormValue("player")
	if _, err := h.controller.SetScore(r.Context(), code, player, category, r.FormValue("score")); err != nil {
		h.logger.Warn("score rejected",
			slog.String("session", string(code)),
			slog.String("player", player),
			slog.String("category", string(category)),
			slog.Any("error", err),
		)
		middleware.SetFlash(w, "error", flashMessage(err))
		http.Redirect(w, r, sessionPath(code), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, sessionPath(code), http.StatusSeeOther)
}

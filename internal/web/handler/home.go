package handler

import (
	"net/http"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
	"github.com/mcoot/yahtzee-scorekeeper/internal/services/session"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web/middleware"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web/templates/layout"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web/templates/pages"
)

// HomeHandler handles the home page and session creation
type HomeHandler struct {
	controller *session.Controller
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(controller *session.Controller) *HomeHandler {
	return &HomeHandler{controller: controller}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		PageData: layout.PageData{
			Title: "Home",
			Flash: middleware.GetFlash(r.Context()),
		},
	}

	render(w, r, pages.Home(data))
}

// Create starts a new session in setup and redirects to it
func (h *HomeHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.CreateSession(r.Context())
	if err != nil {
		middleware.SetFlash(w, "error", "Failed to create game")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Game created! Add players to begin.")
	http.Redirect(w, r, sessionPath(s.Code), http.StatusSeeOther)
}

// Open redirects a code typed on the home page to its session
func (h *HomeHandler) Open(w http.ResponseWriter, r *http.Request) {
	code := model.NormalizeSessionCode(r.URL.Query().Get("code"))
	if code == "" {
		middleware.SetFlash(w, "error", "Game code is required")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, sessionPath(code), http.StatusSeeOther)
}

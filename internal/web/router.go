package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/yahtzee-scorekeeper/internal/services/scoring"
	"github.com/mcoot/yahtzee-scorekeeper/internal/services/session"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web/handler"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
	ScoringService    *scoring.Service
	StaticDir         string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	homeHandler := handler.NewHomeHandler(cfg.SessionController)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController, cfg.ScoringService, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.Flash())
	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/session", homeHandler.Create).Methods(http.MethodPost)
	pages.HandleFunc("/session", homeHandler.Open).Methods(http.MethodGet)

	pages.HandleFunc("/session/{code}", sessionHandler.View).Methods(http.MethodGet)
	pages.HandleFunc("/session/{code}/players", sessionHandler.AddPlayer).Methods(http.MethodPost)
	pages.HandleFunc("/session/{code}/start", sessionHandler.Start).Methods(http.MethodPost)
	pages.HandleFunc("/session/{code}/scores", sessionHandler.SetScore).Methods(http.MethodPost)

	return r
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/yahtzee-scorekeeper/internal/api/handler"
	"github.com/mcoot/yahtzee-scorekeeper/internal/api/middleware"
	"github.com/mcoot/yahtzee-scorekeeper/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter().UseEncodedPath()

	sessionHandler := handler.NewSessionHandler(cfg.SessionController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/categories", handler.Categories).Methods(http.MethodGet)

	// Session routes
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", sessionHandler.Create).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{code}/players", sessionHandler.AddPlayer).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/start", sessionHandler.Start).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/standings", sessionHandler.Standings).Methods(http.MethodGet)

	// Score routes
	sessions.HandleFunc("/{code}/players/{player}/scores/{category}", sessionHandler.SetScore).Methods(http.MethodPut)
	sessions.HandleFunc("/{code}/players/{player}/scores/{category}", sessionHandler.GetScore).Methods(http.MethodGet)
	sessions.HandleFunc("/{code}/players/{player}/total", sessionHandler.Total).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

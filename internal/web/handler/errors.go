package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
)

// flashMessage turns a domain error into text for the flash banner
func flashMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrEmptyName):
		return "Player name must not be empty"
	case errors.Is(err, model.ErrDuplicateName):
		return "A player with that name already exists"
	case errors.Is(err, model.ErrRosterFrozen):
		return "Players cannot be added after the game has started"
	case errors.Is(err, model.ErrNoPlayers):
		return "Add at least one player before starting"
	case errors.Is(err, model.ErrSessionStarted):
		return "Game has already started"
	case errors.Is(err, model.ErrSessionNotStarted):
		return "Start the game before entering scores"
	case errors.Is(err, model.ErrUnknownPlayer):
		return "Player is not in this game"
	case errors.Is(err, model.ErrUnknownCategory):
		return "Unknown scoring category"
	case errors.Is(err, model.ErrSessionNotFound):
		return "Game not found"
	default:
		return "Something went wrong"
	}
}

func sessionCode(r *http.Request) model.SessionCode {
	return model.NormalizeSessionCode(mux.Vars(r)["code"])
}

func sessionPath(code model.SessionCode) string {
	return "/session/" + url.PathEscape(string(code))
}

func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

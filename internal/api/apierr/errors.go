package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeEmptyName         = "EMPTY_NAME"
	CodeDuplicateName     = "DUPLICATE_NAME"
	CodeNoPlayers         = "NO_PLAYERS"
	CodeUnknownPlayer     = "UNKNOWN_PLAYER"
	CodeUnknownCategory   = "UNKNOWN_CATEGORY"
	CodeRosterFrozen      = "ROSTER_FROZEN"
	CodeSessionStarted    = "SESSION_STARTED"
	CodeSessionNotStarted = "SESSION_NOT_STARTED"
	CodeSessionNotFound   = "SESSION_NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrEmptyName):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyName, "Player name must not be empty"}}
	case errors.Is(err, model.ErrDuplicateName):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateName, "A player with that name already exists"}}
	case errors.Is(err, model.ErrNoPlayers):
		return &httpError{http.StatusConflict, APIError{CodeNoPlayers, "Add at least one player before starting"}}
	case errors.Is(err, model.ErrUnknownPlayer):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownPlayer, "Player is not in this game"}}
	case errors.Is(err, model.ErrUnknownCategory):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownCategory, "Unknown scoring category"}}
	case errors.Is(err, model.ErrRosterFrozen):
		return &httpError{http.StatusConflict, APIError{CodeRosterFrozen, "Players cannot be added after the game has started"}}
	case errors.Is(err, model.ErrSessionStarted):
		return &httpError{http.StatusConflict, APIError{CodeSessionStarted, "Game has already started"}}
	case errors.Is(err, model.ErrSessionNotStarted):
		return &httpError{http.StatusConflict, APIError{CodeSessionNotStarted, "Game has not started"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

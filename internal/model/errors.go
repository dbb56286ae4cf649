package model

import "errors"

// Common errors used across the application
var (
	// Roster errors
	ErrEmptyName     = errors.New("player name is empty")
	ErrDuplicateName = errors.New("player name already exists")
	ErrRosterFrozen  = errors.New("roster is frozen once the game has started")
	ErrUnknownPlayer = errors.New("player is not in the roster")

	// Session errors
	ErrSessionNotFound   = errors.New("session not found")
	ErrNoPlayers         = errors.New("cannot start a game with no players")
	ErrSessionStarted    = errors.New("game has already started")
	ErrSessionNotStarted = errors.New("game has not started")

	// Scorecard errors
	ErrUnknownCategory = errors.New("unknown scoring category")
)

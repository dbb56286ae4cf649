package model

import (
	"strings"
	"time"
)

// SessionCode is a human-readable identifier for a scorekeeping session
type SessionCode string

// NormalizeSessionCode trims and upper-cases a code as typed by a user
func NormalizeSessionCode(raw string) SessionCode {
	return SessionCode(strings.ToUpper(strings.TrimSpace(raw)))
}

// Phase represents the current phase of a session
type Phase string

const (
	PhaseSetup      Phase = "setup"       // Roster is being assembled
	PhaseInProgress Phase = "in_progress" // Roster frozen, scores being entered
)

// GameSession is one game's roster plus a scorecard per player
type GameSession struct {
	Code       SessionCode
	Phase      Phase
	Players    []Player             // Insertion order
	Scorecards map[string]Scorecard // Keyed by player name
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewGameSession returns an empty session in the setup phase
func NewGameSession(code SessionCode, now time.Time) *GameSession {
	return &GameSession{
		Code:       code,
		Phase:      PhaseSetup,
		Players:    []Player{},
		Scorecards: make(map[string]Scorecard),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsStarted returns true once the roster has been frozen
func (s *GameSession) IsStarted() bool {
	return s.Phase == PhaseInProgress
}

// HasPlayer reports whether a player with exactly this name is in the roster
func (s *GameSession) HasPlayer(name string) bool {
	for _, p := range s.Players {
		if p.Name == name {
			return true
		}
	}
	return false
}

// AddPlayer trims the name and appends a new player with an empty scorecard
func (s *GameSession) AddPlayer(name string) (Player, error) {
	if s.IsStarted() {
		return Player{}, ErrRosterFrozen
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Player{}, ErrEmptyName
	}
	if s.HasPlayer(trimmed) {
		return Player{}, ErrDuplicateName
	}

	if s.Scorecards == nil {
		s.Scorecards = make(map[string]Scorecard)
	}

	player := Player{Name: trimmed}
	s.Players = append(s.Players, player)
	s.Scorecards[trimmed] = Scorecard{}
	return player, nil
}

// Start moves the session from setup to in progress
func (s *GameSession) Start() error {
	if s.IsStarted() {
		return ErrSessionStarted
	}
	if len(s.Players) == 0 {
		return ErrNoPlayers
	}
	s.Phase = PhaseInProgress
	return nil
}

// SetScore parses raw input into the player's cell for the category.
// Unparseable input clears the cell rather than failing.
func (s *GameSession) SetScore(player string, category Category, raw string) (ScoreCell, error) {
	if !s.HasPlayer(player) {
		return Unset, ErrUnknownPlayer
	}
	if !category.IsValid() {
		return Unset, ErrUnknownCategory
	}
	if !s.IsStarted() {
		return Unset, ErrSessionNotStarted
	}

	cell := ParseScoreInput(raw)
	card := s.Scorecards[player]
	if card == nil {
		card = Scorecard{}
		s.Scorecards[player] = card
	}
	card.Put(category, cell)
	return cell, nil
}

// Score returns the player's cell for the category, or Unset
func (s *GameSession) Score(player string, category Category) ScoreCell {
	return s.Scorecards[player].Get(category)
}

// Scorecard returns the player's scorecard (nil for unknown players)
func (s *GameSession) Scorecard(player string) Scorecard {
	return s.Scorecards[player]
}

// Standing is one row of the ranked results
type Standing struct {
	Rank   int // 1-based position; ties still get consecutive positions
	Player Player
	Total  int
}

package response

import (
	"time"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
	"github.com/mcoot/yahtzee-scorekeeper/internal/services/session"
)

// Category represents a scoring category in API responses
type Category struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	Section string `json:"section"`
}

// CategoriesFromModel lists every category in display order
func CategoriesFromModel() []Category {
	cats := model.Categories()
	out := make([]Category, 0, len(cats))
	for _, c := range cats {
		out = append(out, Category{
			Slug:    string(c),
			Name:    c.DisplayName(),
			Section: string(c.Section()),
		})
	}
	return out
}

// Player represents a player in API responses
type Player struct {
	Name string `json:"name"`
}

// PlayerScorecard is one player's cells plus their total.
// Unset cells are encoded as null.
type PlayerScorecard struct {
	Player string                     `json:"player"`
	Scores map[string]model.ScoreCell `json:"scores"`
	Total  int                        `json:"total"`
}

// Session represents a game session
type Session struct {
	Code       string            `json:"code"`
	Phase      string            `json:"phase"`
	Players    []Player          `json:"players"`
	Scorecards []PlayerScorecard `json:"scorecards"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// SessionFromModel converts a model.GameSession; scorecards follow roster order
func SessionFromModel(s *model.GameSession) Session {
	resp := Session{
		Code:       string(s.Code),
		Phase:      string(s.Phase),
		Players:    make([]Player, 0, len(s.Players)),
		Scorecards: make([]PlayerScorecard, 0, len(s.Players)),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
	for _, p := range s.Players {
		resp.Players = append(resp.Players, Player{Name: p.Name})

		card := s.Scorecard(p.Name)
		scores := make(map[string]model.ScoreCell, len(model.Categories()))
		for _, c := range model.Categories() {
			scores[string(c)] = card.Get(c)
		}
		resp.Scorecards = append(resp.Scorecards, PlayerScorecard{
			Player: p.Name,
			Scores: scores,
			Total:  card.Total(),
		})
	}
	return resp
}

// Score is a single cell lookup
type Score struct {
	Player   string          `json:"player"`
	Category string          `json:"category"`
	Value    model.ScoreCell `json:"value"`
}

// Total is a player's total with section subtotals
type Total struct {
	Player string `json:"player"`
	Total  int    `json:"total"`
	Upper  int    `json:"upper"`
	Lower  int    `json:"lower"`
}

// TotalFromModel converts a session.PlayerTotal
func TotalFromModel(t session.PlayerTotal) Total {
	return Total{
		Player: t.Player.Name,
		Total:  t.Total,
		Upper:  t.Upper,
		Lower:  t.Lower,
	}
}

// Standing is one ranked row
type Standing struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	Total  int    `json:"total"`
}

// Standings is the ranked results of a session
type Standings struct {
	Standings []Standing `json:"standings"`
	Leader    *string    `json:"leader"`
}

// StandingsFromModel converts session.Results
func StandingsFromModel(r *session.Results) Standings {
	resp := Standings{Standings: make([]Standing, 0, len(r.Standings))}
	for _, st := range r.Standings {
		resp.Standings = append(resp.Standings, Standing{
			Rank:   st.Rank,
			Player: st.Player.Name,
			Total:  st.Total,
		})
	}
	if r.Leader != nil {
		name := r.Leader.Name
		resp.Leader = &name
	}
	return resp
}

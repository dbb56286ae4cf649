package scoring

import (
	"sort"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
)

// Service aggregates scorecards into totals and standings
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// TotalScore sums a player's set cells, treating unset cells as zero.
// Unknown players total zero.
func (s *Service) TotalScore(session *model.GameSession, player string) int {
	return session.Scorecard(player).Total()
}

// SectionTotals returns the upper (Aces..Sixes) and lower subtotals.
// They always add up to TotalScore; no upper-section bonus is applied.
func (s *Service) SectionTotals(session *model.GameSession, player string) (upper, lower int) {
	for category, cell := range session.Scorecard(player) {
		if category.Section() == model.SectionUpper {
			upper += cell.Points()
		} else {
			lower += cell.Points()
		}
	}
	return upper, lower
}

// Standings ranks every roster player by descending total.
// Equal totals keep roster insertion order.
func (s *Service) Standings(session *model.GameSession) []model.Standing {
	standings := make([]model.Standing, 0, len(session.Players))
	for _, p := range session.Players {
		standings = append(standings, model.Standing{
			Player: p,
			Total:  s.TotalScore(session, p.Name),
		})
	}

	// Stable: Standings relies on roster order as the tie-break
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Total > standings[j].Total
	})

	for i := range standings {
		standings[i].Rank = i + 1
	}

	return standings
}

// DetermineLeader returns the sole leader, or false if there are no players
// or the top total is shared
func (s *Service) DetermineLeader(standings []model.Standing) (model.Player, bool) {
	if len(standings) == 0 {
		return model.Player{}, false
	}

	topScore := standings[0].Total
	tieCount := 0
	for _, st := range standings {
		if st.Total == topScore {
			tieCount++
		}
	}

	if tieCount > 1 {
		return model.Player{}, false // Tie
	}

	return standings[0].Player, true
}

// Interface for dependency injection
type ServiceInterface interface {
	TotalScore(session *model.GameSession, player string) int
	SectionTotals(session *model.GameSession, player string) (upper, lower int)
	Standings(session *model.GameSession) []model.Standing
	DetermineLeader(standings []model.Standing) (model.Player, bool)
}

var _ ServiceInterface = (*Service)(nil)

package components

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web/templates"
)

// ScorecardData is one player's column of cells
type ScorecardData struct {
	Code   model.SessionCode
	Player string
	Card   model.Scorecard
	Upper  int
	Lower  int
	Total  int
}

// Scorecard renders a player's 13 cells, each an inline form posting a raw score
func Scorecard(data ScorecardData) templ.Component {
	return templates.Component(func(ctx context.Context, m *templates.Writer) {
		action := "/session/" + string(data.Code) + "/scores"

		m.Raw(`<section class="scorecard" data-player="`)
		m.Text(data.Player)
		m.Raw(`"><h3 class="scorecard-player">`)
		m.Text(data.Player)
		m.Raw(`</h3><table><tbody>`)

		for _, c := range model.Categories() {
			cell := data.Card.Get(c)
			value := ""
			if cell.Set {
				value = strconv.Itoa(cell.Value)
			}

			m.Raw(`<tr data-category="`)
			m.Text(string(c))
			m.Raw(`"><th scope="row">`)
			m.Text(c.DisplayName())
			m.Raw(`</th><td><form method="post" action="`)
			m.Text(action)
			m.Raw(`"><input type="hidden" name="player" value="`)
			m.Text(data.Player)
			m.Raw(`"><input type="hidden" name="category" value="`)
			m.Text(string(c))
			m.Raw(`"><input type="text" name="score" inputmode="numeric" value="`)
			m.Text(value)
			m.Raw(`"><button type="submit">Save</button></form></td></tr>`)

			if c == model.CategorySixes {
				m.Raw(`<tr class="subtotal"><th scope="row">Upper</th><td class="upper-total">`)
				m.Text(strconv.Itoa(data.Upper))
				m.Raw(`</td></tr>`)
			}
		}

		m.Raw(`<tr class="subtotal"><th scope="row">Lower</th><td class="lower-total">`)
		m.Text(strconv.Itoa(data.Lower))
		m.Raw(`</td></tr><tr class="total"><th scope="row">Total</th><td class="total-score">`)
		m.Text(strconv.Itoa(data.Total))
		m.Raw(`</td></tr></tbody></table></section>`)
	})
}

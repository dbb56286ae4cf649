package components

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web/templates"
)

// Standings renders the ranked table. leader is nil when the top total is shared.
func Standings(standings []model.Standing, leader *model.Player) templ.Component {
	return templates.Component(func(ctx context.Context, m *templates.Writer) {
		m.Raw(`<table id="standings"><thead><tr><th>#</th><th>Player</th><th>Total</th></tr></thead><tbody>`)
		for _, st := range standings {
			if leader != nil && st.Player == *leader {
				m.Raw(`<tr class="standing leader">`)
			} else {
				m.Raw(`<tr class="standing">`)
			}
			m.Raw(`<td class="rank">`)
			m.Text(strconv.Itoa(st.Rank))
			m.Raw(`</td><td class="player">`)
			m.Text(st.Player.Name)
			m.Raw(`</td><td class="total">`)
			m.Text(strconv.Itoa(st.Total))
			m.Raw(`</td></tr>`)
		}
		m.Raw(`</tbody></table>`)
	})
}

package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web/templates"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web/templates/components"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web/templates/layout"
)

// SessionData is the data for a game session page
type SessionData struct {
	layout.PageData
	Session    *model.GameSession
	Scorecards []components.ScorecardData
	Standings  []model.Standing
	Leader     *model.Player
}

// Session renders setup or scoring depending on the session phase
func Session(data SessionData) templ.Component {
	body := templates.Component(func(ctx context.Context, m *templates.Writer) {
		code := string(data.Session.Code)

		m.Raw(`<h1>Game <span id="session-code">`)
		m.Text(code)
		m.Raw(`</span></h1>`)

		if !data.Session.IsStarted() {
			m.Render(ctx, setup(data.Session))
			return
		}

		m.Raw(`<div id="scorecards">`)
		for _, card := range data.Scorecards {
			m.Render(ctx, components.Scorecard(card))
		}
		m.Raw(`</div><h2>Standings</h2>`)
		m.Render(ctx, components.Standings(data.Standings, data.Leader))
	})
	return layout.Base(data.PageData, body)
}

func setup(s *model.GameSession) templ.Component {
	return templates.Component(func(ctx context.Context, m *templates.Writer) {
		base := "/session/" + string(s.Code)

		m.Raw(`<section id="setup"><h2>Players</h2><ul id="roster">`)
		for _, p := range s.Players {
			m.Raw(`<li class="player-chip">`)
			m.Text(p.Name)
			m.Raw(`</li>`)
		}
		m.Raw(`</ul>`)

		m.Raw(`<form id="add-player" method="post" action="`)
		m.Text(base + "/players")
		m.Raw(`"><label for="name">Name</label>`)
		m.Raw(`<input type="text" id="name" name="name" autocomplete="off" autofocus>`)
		m.Raw(`<button type="submit">Add player</button></form>`)

		if len(s.Players) > 0 {
			m.Raw(`<form id="start-game" method="post" action="`)
			m.Text(base + "/start")
			m.Raw(`"><button type="submit">Start game</button></form>`)
		}
		m.Raw(`</section>`)
	})
}

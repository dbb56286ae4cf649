package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/mcoot/yahtzee-scorekeeper/internal/web/templates"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web/templates/layout"
)

// HomeData is the data for the home page
type HomeData struct {
	layout.PageData
}

// Home renders the landing page with new-game and open-game forms
func Home(data HomeData) templ.Component {
	body := templates.Component(func(ctx context.Context, m *templates.Writer) {
		m.Raw(`<h1>Yahtzee Scorekeeper</h1>`)
		m.Raw(`<form id="new-session" method="post" action="/session">`)
		m.Raw(`<button type="submit">New game</button></form>`)
		m.Raw(`<form id="open-session" method="get" action="/session">`)
		m.Raw(`<label for="code">Game code</label>`)
		m.Raw(`<input type="text" id="code" name="code" maxlength="6" autocomplete="off">`)
		m.Raw(`<button type="submit">Open</button></form>`)
	})
	return layout.Base(data.PageData, body)
}

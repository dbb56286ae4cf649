package layout

import (
	"context"

	"github.com/a-h/templ"

	"github.com/mcoot/yahtzee-scorekeeper/internal/web/templates"
)

// FlashMessage is a one-shot notice shown at the top of the next page
type FlashMessage struct {
	Type    string // success, error, info
	Message string
}

// PageData is common to every page
type PageData struct {
	Title string
	Flash *FlashMessage
}

// Base wraps body in the site chrome
func Base(data PageData, body templ.Component) templ.Component {
	return templates.Component(func(ctx context.Context, m *templates.Writer) {
		m.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		m.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.Raw(`<title>`)
		m.Text(data.Title)
		m.Raw(` - Yahtzee Scorekeeper</title>`)
		m.Raw(`<link rel="stylesheet" href="/static/css/style.css"></head><body>`)
		m.Raw(`<nav><a href="/" class="brand">Yahtzee Scorekeeper</a></nav><main>`)
		if data.Flash != nil {
			m.Raw(`<div id="flash" class="flash flash-`)
			m.Text(data.Flash.Type)
			m.Raw(`" role="alert">`)
			m.Text(data.Flash.Message)
			m.Raw(`</div>`)
		}
		m.Render(ctx, body)
		m.Raw(`</main></body></html>`)
	})
}

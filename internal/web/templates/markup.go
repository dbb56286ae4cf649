// Package templates holds the HTML components rendered by the web UI.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Writer writes markup and keeps the first write error
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as is
func (m *Writer) Raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Text writes escaped text
func (m *Writer) Text(s string) {
	m.Raw(templ.EscapeString(s))
}

// Textf formats then escapes
func (m *Writer) Textf(format string, args ...any) {
	m.Text(fmt.Sprintf(format, args...))
}

// Render renders a nested component into the same writer
func (m *Writer) Render(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

// Err returns the first error encountered
func (m *Writer) Err() error {
	return m.err
}

// Component adapts a markup function into a templ.Component
func Component(fn func(ctx context.Context, m *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := NewWriter(w)
		fn(ctx, m)
		return m.Err()
	})
}

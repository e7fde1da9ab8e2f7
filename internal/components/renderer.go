// Package components implements the presentation components of the activity
// feed. Every component is a pure render: a props struct goes in, a rendered
// HTML fragment comes out. Components hold no state between renders; event
// callbacks are HTMX endpoint URLs carried in the props, and an absent URL
// renders the inert variant.
package components

import (
	"bytes"
	"fmt"
	"html/template"

	"walletview/web"
)

// Renderer executes the embedded component templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates. Call once at startup.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse component templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page renders one of the embedded page templates ("feed", "preview").
func (r *Renderer) Page(name string, data interface{}) (template.HTML, error) {
	return r.execute(name, data)
}

func (r *Renderer) execute(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %q: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

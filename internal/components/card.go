package components

import (
	"fmt"
	"html/template"
)

// Default card geometry, in pixels.
const (
	DefaultCardPadding      = 16
	DefaultCardCornerRadius = 12
)

// Card is a generic container: interior padding, corner radius, surface
// background and a drop shadow. When TapURL is set the whole card becomes a
// single tap target with press feedback; otherwise it is purely decorative.
// Content is opaque to the container.
type Card struct {
	Padding      int
	CornerRadius int
	TapURL       string
	Content      template.HTML
}

// NewCard returns a static card with default geometry around content.
func NewCard(content template.HTML) Card {
	return Card{
		Padding:      DefaultCardPadding,
		CornerRadius: DefaultCardCornerRadius,
		Content:      content,
	}
}

// Tappable returns a copy of the card wired to a tap endpoint.
func (c Card) Tappable(tapURL string) Card {
	c.TapURL = tapURL
	return c
}

// Style returns the inline geometry for the card element.
func (c Card) Style() template.CSS {
	return template.CSS(fmt.Sprintf("padding:%dpx;border-radius:%dpx", c.Padding, c.CornerRadius))
}

// Card renders the container, resolving the tappable versus static variant
// once per render.
func (r *Renderer) Card(card Card) (template.HTML, error) {
	return r.execute("card", card)
}

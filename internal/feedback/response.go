// Package feedback builds HTMX responses that carry client trigger events.
// Haptic pulses travel this way: the server names the pulse in the HX-Trigger
// header and the client fires the device vibration, fire-and-forget with no
// ordering guarantees.
package feedback

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
)

// PulseStrength selects the haptic pattern fired on the client.
type PulseStrength string

const (
	PulseLight  PulseStrength = "light"
	PulseMedium PulseStrength = "medium"
)

// Builder provides a fluent API for building trigger-carrying responses.
type Builder struct {
	triggers   map[string]interface{}
	headers    map[string]string
	statusCode int
	body       []byte
}

// New creates a response builder with a default 200 status.
func New() *Builder {
	return &Builder{
		triggers:   make(map[string]interface{}),
		headers:    make(map[string]string),
		statusCode: http.StatusOK,
	}
}

// Status sets the HTTP status code for the response.
func (b *Builder) Status(code int) *Builder {
	b.statusCode = code
	return b
}

// Trigger adds a named trigger with optional data to the HX-Trigger header.
func (b *Builder) Trigger(name string, data interface{}) *Builder {
	b.triggers[name] = data
	return b
}

// Pulse adds a haptic pulse trigger of the given strength.
func (b *Builder) Pulse(strength PulseStrength) *Builder {
	return b.Trigger("haptic", map[string]string{"strength": string(strength)})
}

// Header adds a custom header to the response.
func (b *Builder) Header(name, value string) *Builder {
	b.headers[name] = value
	return b
}

// HTML sets a rendered fragment as the response body.
func (b *Builder) HTML(fragment template.HTML) *Builder {
	b.body = []byte(fragment)
	return b
}

// Write sends the built response on the echo context.
func (b *Builder) Write(c echo.Context) error {
	if len(b.triggers) > 0 {
		payload, err := json.Marshal(b.triggers)
		if err != nil {
			return fmt.Errorf("failed to marshal triggers: %w", err)
		}
		c.Response().Header().Set("HX-Trigger", string(payload))
	}

	for name, value := range b.headers {
		c.Response().Header().Set(name, value)
	}

	return c.Blob(b.statusCode, echo.MIMETextHTMLCharsetUTF8, b.body)
}

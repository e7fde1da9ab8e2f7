package components

import (
	"html/template"

	"walletview/internal/theme"
)

// ActionTile is a circular tinted icon with a label below, wired to an
// activation endpoint. Activation fires a medium haptic pulse on the client.
// Press feedback scales the tile down slightly unless ReducedMotion is set.
type ActionTile struct {
	Icon          string
	Label         string
	Tint          theme.Color
	IconColor     theme.Color
	ActivateURL   string
	ReducedMotion bool
}

// ActionTile renders the tile.
func (r *Renderer) ActionTile(tile ActionTile) (template.HTML, error) {
	return r.execute("action_tile", tile)
}

package components

import (
	"html/template"

	"walletview/internal/theme"
)

// Badge glyphs indicating transaction direction.
const (
	BadgeGlyphIncoming = "+"
	BadgeGlyphOutgoing = "-"
)

// TransactionRow is the fully derived view model for one feed row. The
// presenter computes every field from a Transaction; the template only lays
// them out. An empty TapURL renders the row inert.
type TransactionRow struct {
	ID           string
	Title        string
	StatusLabel  string
	Icon         string
	IconColor    theme.Color
	AmountText   string
	AmountColor  theme.Color
	BadgeGlyph   string
	BadgeColor   theme.Color
	RelativeTime string
	Incoming     bool
	Recurring    bool
	TapURL       string
}

// TransactionRow renders the row: a 48px category icon circle with a
// direction badge layered bottom-trailing, title and status on the left,
// amount and relative time right-aligned.
func (r *Renderer) TransactionRow(row TransactionRow) (template.HTML, error) {
	return r.execute("transaction_row", row)
}

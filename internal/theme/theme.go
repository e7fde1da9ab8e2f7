// Package theme holds the design tokens shared by the component layer and the
// stylesheet. Components never embed raw hex values; they reference named
// tokens which the stylesheet resolves to CSS custom properties.
package theme

// Color is a named color token.
type Color string

const (
	ColorSuccess Color = "success"
	ColorError   Color = "error"
	ColorAccent  Color = "accent"
	ColorSurface Color = "surface"
	ColorText    Color = "text"
	ColorMuted   Color = "muted"
)

// Per-category hues. Kept separate from the semantic colors above so a
// category can be re-tinted without touching success/error semantics.
const (
	ColorGroceries      Color = "groceries"
	ColorDining         Color = "dining"
	ColorTransportation Color = "transportation"
	ColorEntertainment  Color = "entertainment"
	ColorShopping       Color = "shopping"
	ColorBills          Color = "bills"
	ColorHealthcare     Color = "healthcare"
	ColorEducation      Color = "education"
	ColorTravel         Color = "travel"
	ColorIncome         Color = "income"
	ColorFees           Color = "fees"
	ColorOther          Color = "other"
)

// palette maps every token to its reference hex value. The stylesheet mirrors
// this table as CSS custom properties; the map is the single source of truth
// for which tokens exist.
var palette = map[Color]string{
	ColorSuccess: "#2da44e",
	ColorError:   "#cf222e",
	ColorAccent:  "#0969da",
	ColorSurface: "#ffffff",
	ColorText:    "#1f2328",
	ColorMuted:   "#656d76",

	ColorGroceries:      "#2da44e",
	ColorDining:         "#fb8500",
	ColorTransportation: "#0969da",
	ColorEntertainment:  "#8250df",
	ColorShopping:       "#e85aad",
	ColorBills:          "#9a6700",
	ColorHealthcare:     "#cf222e",
	ColorEducation:      "#1a7f37",
	ColorTravel:         "#218bff",
	ColorIncome:         "#2da44e",
	ColorFees:           "#57606a",
	ColorOther:          "#6e7781",
}

// Valid reports whether c is a registered token.
func (c Color) Valid() bool {
	_, ok := palette[c]
	return ok
}

// Hex returns the reference hex value for the token.
// Unknown tokens resolve to the muted color.
func (c Color) Hex() string {
	if hex, ok := palette[c]; ok {
		return hex
	}
	return palette[ColorMuted]
}

// CSSVar returns the CSS custom property reference for the token,
// e.g. "var(--color-success)".
func (c Color) CSSVar() string {
	return "var(--color-" + string(c) + ")"
}

// Font is a named typography token resolved by the stylesheet.
type Font string

const (
	FontTitle   Font = "title"
	FontBody    Font = "body"
	FontCaption Font = "caption"
)

// Class returns the CSS class carrying the font token.
func (f Font) Class() string {
	return "font-" + string(f)
}

// Colors returns every registered color token. Order is not significant.
func Colors() []Color {
	out := make([]Color, 0, len(palette))
	for c := range palette {
		out = append(out, c)
	}
	return out
}

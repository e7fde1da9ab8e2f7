package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_Valid(t *testing.T) {
	assert.True(t, ColorSuccess.Valid())
	assert.True(t, ColorGroceries.Valid())
	assert.False(t, Color("hotpink").Valid())
}

func TestColor_Hex(t *testing.T) {
	assert.Equal(t, "#2da44e", ColorSuccess.Hex())
	assert.Equal(t, "#cf222e", ColorError.Hex())

	// Unknown tokens resolve to the muted color rather than empty output.
	assert.Equal(t, ColorMuted.Hex(), Color("hotpink").Hex())
}

func TestColor_CSSVar(t *testing.T) {
	assert.Equal(t, "var(--color-success)", ColorSuccess.CSSVar())
}

func TestFont_Class(t *testing.T) {
	assert.Equal(t, "font-title", FontTitle.Class())
	assert.Equal(t, "font-caption", FontCaption.Class())
}

func TestColors_AllRegistered(t *testing.T) {
	for _, c := range Colors() {
		assert.True(t, c.Valid(), "token %q should be valid", c)
		assert.NotEmpty(t, c.Hex())
	}
}

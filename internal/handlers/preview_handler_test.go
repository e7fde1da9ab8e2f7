package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletview/internal/components"
	"walletview/internal/config"
	"walletview/internal/services"
)

func newPreviewHandler(t *testing.T) *PreviewHandler {
	t.Helper()

	renderer, err := components.NewRenderer()
	require.NoError(t, err)

	presenter := services.NewPresenterService("$", services.WithClock(func() time.Time {
		return handlerTestNow
	}))

	return NewPreviewHandler(renderer, presenter, config.UIConfig{CurrencySymbol: "$"})
}

func previewRequest(t *testing.T, h *PreviewHandler, component string) (int, string) {
	t.Helper()

	c, rec := newContext(http.MethodGet, "/", nil)
	c.SetPath("/preview/:component")
	c.SetParamNames("component")
	c.SetParamValues(component)

	require.NoError(t, h.Preview(c))
	return rec.Code, rec.Body.String()
}

func TestPreview_Card(t *testing.T) {
	code, out := previewRequest(t, newPreviewHandler(t), "card")

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, out, "Static card content")
	assert.Contains(t, out, "Tappable card content")
	assert.Contains(t, out, "card-tappable")
}

func TestPreview_Tile(t *testing.T) {
	code, out := previewRequest(t, newPreviewHandler(t), "tile")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3, strings.Count(out, "tile-circle"))
	// The reduced-motion tile renders without press feedback.
	assert.Equal(t, 2, strings.Count(out, "pressable"))
}

func TestPreview_Selector(t *testing.T) {
	code, out := previewRequest(t, newPreviewHandler(t), "selector")

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, out, "category-selector")
	assert.Equal(t, 1, strings.Count(out, `aria-checked="true"`))
}

func TestPreview_Row(t *testing.T) {
	code, out := previewRequest(t, newPreviewHandler(t), "row")

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, out, "Whole Foods Market")
	assert.Contains(t, out, "Payroll Deposit")
	assert.Contains(t, out, "Netflix")
	// Three tappable rows plus one inert variant.
	assert.Equal(t, 4, strings.Count(out, "tx-row"))
	assert.Equal(t, 3, strings.Count(out, "/tap"))
}

func TestPreview_Group(t *testing.T) {
	code, out := previewRequest(t, newPreviewHandler(t), "group")

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, out, ">Empty section</h2>")
	assert.Contains(t, out, "No transactions yet")
}

func TestPreview_UnknownComponent(t *testing.T) {
	h := newPreviewHandler(t)

	c, rec := newContext(http.MethodGet, "/", nil)
	c.SetPath("/preview/:component")
	c.SetParamNames("component")
	c.SetParamValues("carousel")

	require.NoError(t, h.Preview(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "COMPONENT_001", errorCodeFrom(t, rec))
}

package feedback

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, b *Builder) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, b.Write(e.NewContext(req, rec)))
	return rec
}

func decodeTriggers(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	header := rec.Header().Get("HX-Trigger")
	require.NotEmpty(t, header)

	var triggers map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(header), &triggers))
	return triggers
}

func TestBuilder_Defaults(t *testing.T) {
	rec := record(t, New())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("HX-Trigger"))
	assert.Empty(t, rec.Body.String())
}

func TestBuilder_HTMLBody(t *testing.T) {
	rec := record(t, New().HTML("<p>done</p>"))

	assert.Equal(t, "<p>done</p>", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
}

func TestBuilder_Status(t *testing.T) {
	rec := record(t, New().Status(http.StatusUnprocessableEntity))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestBuilder_PulseTrigger(t *testing.T) {
	tests := []struct {
		name     string
		strength PulseStrength
	}{
		{"light pulse", PulseLight},
		{"medium pulse", PulseMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record(t, New().Pulse(tt.strength))

			triggers := decodeTriggers(t, rec)
			haptic, ok := triggers["haptic"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, string(tt.strength), haptic["strength"])
		})
	}
}

func TestBuilder_MultipleTriggers(t *testing.T) {
	rec := record(t, New().
		Pulse(PulseLight).
		Trigger("category:changed", map[string]string{"category": "dining"}))

	triggers := decodeTriggers(t, rec)
	assert.Len(t, triggers, 2)
	assert.Contains(t, triggers, "haptic")
	assert.Contains(t, triggers, "category:changed")
}

func TestBuilder_CustomHeader(t *testing.T) {
	rec := record(t, New().Header("HX-Reswap", "none"))

	assert.Equal(t, "none", rec.Header().Get("HX-Reswap"))
}

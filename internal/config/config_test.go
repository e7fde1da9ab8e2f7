package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)

	assert.Equal(t, "walletview.db", cfg.Database.Path)
	assert.True(t, cfg.Database.Seed)

	assert.Equal(t, "$", cfg.UI.CurrencySymbol)
	assert.False(t, cfg.UI.ReducedMotion)
	assert.Equal(t, 50, cfg.UI.FeedLimit)
	assert.Equal(t, "Walletview", cfg.UI.AppName)

	assert.Equal(t, 20, cfg.Security.RateLimitPerSecond)
	assert.Equal(t, 40, cfg.Security.RateLimitBurst)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UI_CURRENCY_SYMBOL", "€")
	t.Setenv("UI_REDUCED_MOTION", "true")
	t.Setenv("UI_FEED_LIMIT", "10")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "€", cfg.UI.CurrencySymbol)
	assert.True(t, cfg.UI.ReducedMotion)
	assert.Equal(t, 10, cfg.UI.FeedLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("UI_FEED_LIMIT", "plenty")
	t.Setenv("UI_REDUCED_MOTION", "sometimes")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 50, cfg.UI.FeedLimit)
	assert.False(t, cfg.UI.ReducedMotion)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

package test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-backend/config"
)

func TestConfigDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 4, cfg.PageSize)
	assert.Equal(t, 0, cfg.SimulatedLatencyMs)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PAGE_SIZE", "8")
	t.Setenv("SIMULATED_LATENCY_MS", "300")
	t.Setenv("ALLOW_ALL_ORIGINS", "false")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg := config.Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 8, cfg.PageSize)
	assert.Equal(t, 300, cfg.SimulatedLatencyMs)
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestConfigValidate(t *testing.T) {
	cfg := config.Load()

	cfg.JWTSecret = ""
	assert.Error(t, cfg.Validate())

	cfg = config.Load()
	cfg.PageSize = 0
	assert.Error(t, cfg.Validate())

	cfg = config.Load()
	cfg.Environment = "staging"
	assert.Error(t, cfg.Validate())
}

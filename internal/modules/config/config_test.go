package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mt5_bridge/internal/models"
)

func TestDefaultsWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does_not_exist.yaml")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Service.Port)
	assert.True(t, cfg.Terminal.Enabled)
	assert.Equal(t, "ws://127.0.0.1:8765/mt5", cfg.Terminal.GatewayURL)
	assert.Equal(t, models.BridgeMagic, cfg.Trade.Magic)
	assert.Equal(t, "GainZAlgo Signal", cfg.Trade.DefaultComment)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does_not_exist.yaml")
	t.Setenv("PORT", "9001")
	t.Setenv("TERMINAL_ENABLED", "false")
	t.Setenv("MT5_GATEWAY_URL", "ws://10.0.0.5:9000/mt5")
	t.Setenv("TELEGRAM_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Service.Port)
	assert.False(t, cfg.Terminal.Enabled)
	assert.Equal(t, "ws://10.0.0.5:9000/mt5", cfg.Terminal.GatewayURL)
	assert.Equal(t, "tok", cfg.Telegram.Token)
	assert.Equal(t, int64(42), cfg.Telegram.ChatID)
}

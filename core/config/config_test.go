package config

import (
	"testing"

	"parking-api/core/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetForTest() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
}

func TestLoadDefaults(t *testing.T) {
	resetForTest()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "parking", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, constants.DefaultSlotCapacity, cfg.Parking.Capacity)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	resetForTest()
	t.Setenv("SERVER_PORT", "8085")
	t.Setenv("PARKING_CAPACITY", "50")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8085, cfg.Server.Port)
	assert.Equal(t, 50, cfg.Parking.Capacity)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoadIsIdempotent(t *testing.T) {
	resetForTest()

	first, err := Load()
	require.NoError(t, err)

	second, err := Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestGetSafeBeforeLoad(t *testing.T) {
	resetForTest()

	cfg, ok := GetSafe()
	assert.Nil(t, cfg)
	assert.False(t, ok)
}

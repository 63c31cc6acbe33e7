package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "magazyn", cfg.App.Name)
	assert.Equal(t, "magazyn.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, int64(100), cfg.Stock.WarnAt)
	assert.Equal(t, int64(50), cfg.Stock.DangerAt)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MAGAZYN_DATABASE_PATH", "/tmp/state.db")
	t.Setenv("MAGAZYN_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/state.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_RejectsBadLevel(t *testing.T) {
	t.Setenv("MAGAZYN_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestLoad_RejectsInvertedThresholds(t *testing.T) {
	t.Setenv("MAGAZYN_STOCK_WARN_AT", "10")
	t.Setenv("MAGAZYN_STOCK_DANGER_AT", "20")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "danger_at")
}

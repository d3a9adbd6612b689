package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"inventory-tracker/core/config"
	"inventory-tracker/core/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Inventory.RestockThreshold)
	assert.Equal(t, inventory.DefaultCategories, cfg.Inventory.Categories)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "inventory", cfg.Metrics.Namespace)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("INVENTORY_RESTOCK_THRESHOLD", "25")
	t.Setenv("INVENTORY_CATEGORIES", "Electronics, Books,")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Inventory.RestockThreshold)
	assert.Equal(t, []string{"Electronics", "Books"}, cfg.Inventory.Categories)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	// Registers a restore of the variable the .env file is about to set.
	t.Setenv("INVENTORY_RESTOCK_THRESHOLD", "")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("INVENTORY_RESTOCK_THRESHOLD=3\n"), 0o600))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Inventory.RestockThreshold)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Duplicate categories", "INVENTORY_CATEGORIES", "Books,Books"},
		{"Blank categories", "INVENTORY_CATEGORIES", " , "},
		{"Non-numeric threshold", "INVENTORY_RESTOCK_THRESHOLD", "ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.LoadConfig(t.TempDir())
			assert.Error(t, err)
		})
	}
}

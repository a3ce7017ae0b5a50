package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.False(t, cfg.App.IsDevelopment())
	assert.Equal(t, DriverFile, cfg.Catalog.Driver)
	assert.Equal(t, "data/products.json", cfg.Catalog.DataFile)
	assert.Equal(t, "catalog:products", cfg.Redis.Key)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_EnvFileAndOverrides(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=8080\nAPP_ENV=development\nCATALOG_DRIVER=SQLite\nCORS_ALLOWED_ORIGINS=https://shop.example.com, https://admin.example.com\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	t.Setenv("APP_PORT", "9090")

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, DriverSQLite, cfg.Catalog.Driver)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "chef")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "recettes")
	t.Setenv("EXPOSE_STORE_ERRORS", "false")
	t.Setenv("STATS_AVERAGE_RATING", "4.2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment())
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "chef", cfg.DBUser)
	assert.Equal(t, "secret", cfg.DBPassword)
	assert.False(t, cfg.ExposeStoreErrors)
	assert.Equal(t, 4.2, cfg.StatsAverageRating)
	assert.Contains(t, cfg.PostgresDSN(), "host=db port=5433 user=chef password=secret dbname=recettes")
}

func TestLoadConfigWithDefaults(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SECRETS_DIR", t.TempDir())
	for _, key := range []string{"SERVER_PORT", "DB_DRIVER", "DB_HOST", "DB_PASSWORD", "REQUEST_TIMEOUT", "STATS_AVERAGE_TIME"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.ExposeStoreErrors)
	assert.Equal(t, 4.8, cfg.StatsAverageRating)
	assert.Equal(t, 30, cfg.StatsAverageTime)
	assert.Empty(t, cfg.DBPassword)
}

func TestLoadConfigReadsPasswordSecret(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db_password"), []byte("from-secret\n"), 0o600))

	t.Setenv("ENV", "test")
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("DB_PASSWORD", "")
	os.Unsetenv("DB_PASSWORD")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secret", cfg.DBPassword)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Env:                "development",
			ServerPort:         "8080",
			RequestTimeout:     time.Second,
			DBDriver:           DriverSQLite,
			SQLitePath:         "test.db",
			StatsAverageRating: 4.8,
			StatsAverageTime:   30,
		}
	}

	assert.NoError(t, ValidateConfig(valid()))

	cfg := valid()
	cfg.DBDriver = "mysql"
	cfg.ServerPort = "http"
	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
	assert.Contains(t, err.Error(), "SERVER_PORT: must be numeric")

	cfg = valid()
	cfg.Env = "production"
	cfg.DBDriver = DriverPostgres
	cfg.DBHost, cfg.DBName, cfg.DBUser = "db", "recettes", "postgres"
	err = ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db_password secret is required")

	cfg = valid()
	cfg.StatsAverageRating = 7
	assert.Error(t, ValidateConfig(cfg))
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "INFO", cfg.LogLevel)
		assert.Equal(t, "configs", cfg.DataDir)
		assert.Equal(t, "pollpeak", cfg.DBName)
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DATA_DIR", "/data")
		t.Setenv("DB_NAME", "pollpeak_test")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "/data", cfg.DataDir)
		assert.Equal(t, "pollpeak_test", cfg.DBName)
	})

	t.Run("rejects invalid port", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")

		_, err := Load()
		require.Error(t, err)
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "user",
		DBPassword: "pass",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "pollpeak",
	}

	assert.Equal(t, "postgres://user:pass@db:5433/pollpeak?sslmode=disable", cfg.GetDBConnString())
}

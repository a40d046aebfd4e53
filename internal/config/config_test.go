package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LISTEN_ADDR", "LOG_LEVEL", "ENV", "CATALOG_SEED_PATH", "SHUTDOWN_TIMEOUT",
		"UI_ENABLED", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.UIEnabled)
	assert.InDelta(t, 100.0, cfg.RateLimitRPS, 0)
	assert.Equal(t, 200, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.CatalogSeedPath)
	assert.NotEmpty(t, cfg.Warnings, "built-in catalog should be flagged")
}

func TestLoadFromEnv_AllVarsSet(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CATALOG_SEED_PATH", " /etc/explorer/catalog.yaml ")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("UI_ENABLED", "off")
	t.Setenv("RATE_LIMIT_RPS", "5.5")
	t.Setenv("RATE_LIMIT_BURST", "7")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.ListenAddr)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "/etc/explorer/catalog.yaml", cfg.CatalogSeedPath)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.UIEnabled)
	assert.InDelta(t, 5.5, cfg.RateLimitRPS, 0.0001)
	assert.Equal(t, 7, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	t.Run("bad_rate_limit_warns", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RATE_LIMIT_RPS", "fast")

		cfg, err := LoadFromEnv()
		require.NoError(t, err)
		assert.InDelta(t, 100.0, cfg.RateLimitRPS, 0)
		assert.Contains(t, cfg.Warnings[0], "RATE_LIMIT_RPS")
	})

	t.Run("non_positive_rate_limit_warns", func(t *testing.T) {
		tests := []struct {
			rps   string
			burst string
		}{
			{rps: "-1", burst: "-5"},
			{rps: "0", burst: "0"},
			{rps: "NaN", burst: "-1"},
		}
		for _, tt := range tests {
			t.Run(tt.rps+"_"+tt.burst, func(t *testing.T) {
				clearEnv(t)
				t.Setenv("RATE_LIMIT_RPS", tt.rps)
				t.Setenv("RATE_LIMIT_BURST", tt.burst)

				cfg, err := LoadFromEnv()
				require.NoError(t, err)
				assert.InDelta(t, 100.0, cfg.RateLimitRPS, 0)
				assert.Equal(t, 200, cfg.RateLimitBurst)
				require.GreaterOrEqual(t, len(cfg.Warnings), 2)
				assert.Contains(t, cfg.Warnings[0], "RATE_LIMIT_RPS")
				assert.Contains(t, cfg.Warnings[1], "RATE_LIMIT_BURST")
			})
		}
	})

	t.Run("bad_shutdown_timeout_fails", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		_, err := LoadFromEnv()
		require.Error(t, err)
	})
}

func TestLoadFromEnv_Production(t *testing.T) {
	t.Run("wildcard_cors_rejected", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ENV", "production")
		t.Setenv("CATALOG_SEED_PATH", "/catalog.yaml")

		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CORS")
	})

	t.Run("seed_path_required", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ENV", "production")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://explorer.example")

		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CATALOG_SEED_PATH")
	})

	t.Run("valid", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ENV", "Production")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://explorer.example")
		t.Setenv("CATALOG_SEED_PATH", "/catalog.yaml")

		cfg, err := LoadFromEnv()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.level}
			assert.Equal(t, tt.want, cfg.SlogLevel())
		})
	}
}

func TestLoadDotEnv_FileNotFound(t *testing.T) {
	err := LoadDotEnv("/nonexistent/.env")
	assert.NoError(t, err, "missing .env is not an error")
}

func TestLoadDotEnv_ParsesKeyValue(t *testing.T) {
	t.Setenv("TEST_KEY", "")
	t.Setenv("TEST_QUOTED_KEY", "")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("# comment\n\nTEST_KEY=test_value\nTEST_QUOTED_KEY=\"quoted value\"\nnot a pair\n"), 0o600))

	require.NoError(t, LoadDotEnv(envFile))

	assert.Equal(t, "test_value", os.Getenv("TEST_KEY"))
	assert.Equal(t, "quoted value", os.Getenv("TEST_QUOTED_KEY"))
}

func TestLoadDotEnv_EnvVarPrecedence(t *testing.T) {
	t.Setenv("TEST_PRECEDENCE_KEY", "from_env")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TEST_PRECEDENCE_KEY=from_file\n"), 0o600))

	require.NoError(t, LoadDotEnv(envFile))

	assert.Equal(t, "from_env", os.Getenv("TEST_PRECEDENCE_KEY"))
}

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/mathadventures/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                ":8000",
		DBPath:              "file:test?mode=memory&cache=shared",
		LogLevel:            "INFO",
		FastResponseSeconds: 5,
		PromoteStreak:       2,
		DemoteStreak:        2,
		ArchiveWorkerCount:  1,
		ArchiveQueueSize:    256,
		AllowedOrigins:      []string{"*"},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_InvalidFields(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*config.Config)
		expectedError string
	}{
		{"empty addr", func(c *config.Config) { c.Addr = "" }, "ADDR cannot be empty"},
		{"empty db path", func(c *config.Config) { c.DBPath = " " }, "DB_PATH cannot be empty"},
		{"unknown log level", func(c *config.Config) { c.LogLevel = "LOUD" }, "LOG_LEVEL"},
		{"zero fast threshold", func(c *config.Config) { c.FastResponseSeconds = 0 }, "FAST_RESPONSE_SECONDS"},
		{"zero promote streak", func(c *config.Config) { c.PromoteStreak = 0 }, "PROMOTE_STREAK"},
		{"negative demote streak", func(c *config.Config) { c.DemoteStreak = -1 }, "DEMOTE_STREAK"},
		{"zero archive workers", func(c *config.Config) { c.ArchiveWorkerCount = 0 }, "ARCHIVE_WORKER_COUNT"},
		{"zero archive queue", func(c *config.Config) { c.ArchiveQueueSize = 0 }, "ARCHIVE_QUEUE_SIZE"},
		{"no origins", func(c *config.Config) { c.AllowedOrigins = nil }, "ALLOWED_ORIGINS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""
	cfg.PromoteStreak = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR")
	assert.Contains(t, err.Error(), "PROMOTE_STREAK")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_PATH", "LOG_LEVEL", "FAST_RESPONSE_SECONDS", "PROMOTE_STREAK",
		"DEMOTE_STREAK", "ARCHIVE_WORKER_COUNT", "ARCHIVE_QUEUE_SIZE", "ALLOWED_ORIGINS", "RANDOM_SEED"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, "file:mathadventures?mode=memory&cache=shared", cfg.DBPath)
	assert.Equal(t, 5.0, cfg.FastResponseSeconds)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, uint64(0), cfg.RandomSeed)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("FAST_RESPONSE_SECONDS", "3.5")
	t.Setenv("PROMOTE_STREAK", "3")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://example.com")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("DEMOTE_STREAK", "not-a-number")

	cfg := config.Load()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, uint64(42), cfg.RandomSeed)
	assert.Equal(t, 2, cfg.DemoteStreak)

	policy := cfg.Policy()
	assert.Equal(t, 3.5, policy.FastResponseSeconds)
	assert.Equal(t, 3, policy.PromoteStreak)
}

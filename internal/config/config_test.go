package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("CLUBRANK_TEST_SET", "value")
	assert.Equal(t, "value", getEnvDefault("CLUBRANK_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", getEnvDefault("CLUBRANK_TEST_UNSET", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		t.Setenv("CLUBRANK_TEST_INT", "64")
		assert.Equal(t, 64, getEnvInt("CLUBRANK_TEST_INT", 1))
	})
	t.Run("zero disables", func(t *testing.T) {
		t.Setenv("CLUBRANK_TEST_INT", "0")
		assert.Equal(t, 0, getEnvInt("CLUBRANK_TEST_INT", 1))
	})
	t.Run("invalid falls back", func(t *testing.T) {
		t.Setenv("CLUBRANK_TEST_INT", "lots")
		assert.Equal(t, 1, getEnvInt("CLUBRANK_TEST_INT", 1))
	})
	t.Run("negative falls back", func(t *testing.T) {
		t.Setenv("CLUBRANK_TEST_INT", "-3")
		assert.Equal(t, 1, getEnvInt("CLUBRANK_TEST_INT", 1))
	})
	t.Run("unset", func(t *testing.T) {
		assert.Equal(t, 7, getEnvInt("CLUBRANK_TEST_INT_UNSET", 7))
	})
}

func TestGetEnvDuration(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		t.Setenv("CLUBRANK_TEST_TTL", "30s")
		assert.Equal(t, 30*time.Second, getEnvDuration("CLUBRANK_TEST_TTL", time.Minute))
	})
	t.Run("zero keeps entries until invalidated", func(t *testing.T) {
		t.Setenv("CLUBRANK_TEST_TTL", "0s")
		assert.Equal(t, time.Duration(0), getEnvDuration("CLUBRANK_TEST_TTL", time.Minute))
	})
	t.Run("invalid falls back", func(t *testing.T) {
		t.Setenv("CLUBRANK_TEST_TTL", "soon")
		assert.Equal(t, time.Minute, getEnvDuration("CLUBRANK_TEST_TTL", time.Minute))
	})
	t.Run("negative falls back", func(t *testing.T) {
		t.Setenv("CLUBRANK_TEST_TTL", "-5m")
		assert.Equal(t, time.Minute, getEnvDuration("CLUBRANK_TEST_TTL", time.Minute))
	})
	t.Run("unset", func(t *testing.T) {
		assert.Equal(t, time.Minute, getEnvDuration("CLUBRANK_TEST_TTL_UNSET", time.Minute))
	})
}

func TestLoad(t *testing.T) {
	for key, value := range map[string]string{
		"DB_NAME":              "clubrank.db",
		"PORT":                 "8080",
		"CLUB_ID":              "club1",
		"SLACK_BOT_TOKEN":      "xoxb-test",
		"SLACK_CHANNEL_ID":     "C123",
		"SLACK_SIGNING_SECRET": "secret",
		"GCP_PROJECT":          "proj",
		"RANKING_CACHE_SIZE":   "32",
		"RANKING_CACHE_TTL":    "90s",
	} {
		t.Setenv(key, value)
	}

	cfg := Load()
	assert.Equal(t, "clubrank.db", cfg.DBName)
	assert.Equal(t, "./migrations", cfg.MigrationsDir)
	assert.Equal(t, "club1", cfg.ClubID)
	assert.Equal(t, 32, cfg.RankingCacheSize)
	assert.Equal(t, 90*time.Second, cfg.RankingCacheTTL)
	assert.Equal(t, "secret", cfg.Slack.SigningSecret)
	assert.Equal(t, "proj", cfg.ProjectID)
}

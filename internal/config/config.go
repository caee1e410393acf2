package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultRankingCacheSize = 256
	defaultRankingCacheTTL  = 5 * time.Minute
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	return Config{
		DBName:           getEnv("DB_NAME"),
		MigrationsDir:    getEnvDefault("MIGRATIONS_DIR", "./migrations"),
		Port:             getEnv("PORT"),
		ClubID:           getEnv("CLUB_ID"),
		RankingCacheSize: getEnvInt("RANKING_CACHE_SIZE", defaultRankingCacheSize),
		RankingCacheTTL:  getEnvDuration("RANKING_CACHE_TTL", defaultRankingCacheTTL),
		Slack: SlackConfig{
			Token:         getEnv("SLACK_BOT_TOKEN"),
			ChannelID:     getEnv("SLACK_CHANNEL_ID"),
			SigningSecret: getEnv("SLACK_SIGNING_SECRET"),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
		ProjectID: getEnv("GCP_PROJECT"),
	}
}

// getEnvDefault returns the value of key, or fallback when it is unset.
func getEnvDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.Warn("Ignoring invalid integer environment variable", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Warn("Ignoring invalid duration environment variable", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return d
}

package config

import (
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// Settings holds the service configuration, read from MONOPOLY_-prefixed
// environment variables (a .env file is picked up automatically). Game rule
// constants live in the game package; only deployment knobs are here.
type Settings struct {
	Port     string
	LogLevel string

	EnableParallel bool
	MaxWorkers     int // 0 means one worker per CPU

	RateLimitEnabled bool
	RateLimitMax     int
	RateLimitWindow  time.Duration
}

func Load() Settings {
	return Settings{
		Port:             envString("MONOPOLY_PORT", "8000"),
		LogLevel:         envString("MONOPOLY_LOG_LEVEL", "info"),
		EnableParallel:   envBool("MONOPOLY_ENABLE_PARALLEL", true),
		MaxWorkers:       envInt("MONOPOLY_MAX_WORKERS", 0),
		RateLimitEnabled: envBool("MONOPOLY_RATE_LIMIT_ENABLED", true),
		RateLimitMax:     envInt("MONOPOLY_RATE_LIMIT_MAX", 100),
		RateLimitWindow:  envDuration("MONOPOLY_RATE_LIMIT_WINDOW", time.Minute),
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	StoragePostgres = "postgres"
	StorageLocal    = "local"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL    string
	Port           string
	StorageDriver  string
	LocalStorePath string
	SeedSampleData bool
	PhoneRegion    string
	DialCooldown   time.Duration
	RateLimitDial  RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           getEnv("PORT", "8080"),
		StorageDriver:  strings.ToLower(getEnv("STORAGE_DRIVER", StoragePostgres)),
		LocalStorePath: getEnv("LOCAL_STORE_PATH", "dialer-store.json"),
		SeedSampleData: parseBool(getEnv("SEED_SAMPLE_DATA", "true")),
		PhoneRegion:    strings.ToUpper(getEnv("PHONE_REGION", "US")),
		DialCooldown:   parseDuration(getEnv("DIAL_COOLDOWN", "30s")),
	}

	switch cfg.StorageDriver {
	case StoragePostgres, StorageLocal:
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER value: %q", cfg.StorageDriver)
	}

	if cfg.StorageDriver == StoragePostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_DIAL", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_DIAL value: %w", err)
	}
	cfg.RateLimitDial = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d < 0 {
		return 30 * time.Second
	}
	return d
}

func parseBool(input string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(input))
	if err != nil {
		return true
	}
	return b
}

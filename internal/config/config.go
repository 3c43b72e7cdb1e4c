package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr      = ":8080"
	defaultJWTTTL        = "24h"
	defaultCacheTTL      = "10m"
	defaultRawgTimeout   = "10s"
	defaultRatePerMinute = "5"
	defaultRawgBaseURL   = "https://api.rawg.io/api"
)

// Config carries everything the process reads from the environment.
// It is loaded once at startup and injected; no component reads env
// vars after this.
type Config struct {
	HTTPAddr    string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	RawgBaseURL string
	RawgAPIKey  string
	RawgTimeout time.Duration

	CacheTTL      time.Duration
	RatePerMinute int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:    getEnv("HTTP_ADDR", defaultHTTPAddr),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		RawgBaseURL: getEnv("RAWG_API_HTTP", defaultRawgBaseURL),
		RawgAPIKey:  strings.TrimSpace(os.Getenv("RAWG_API_KEY")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.RawgAPIKey == "" {
		return nil, fmt.Errorf("RAWG_API_KEY is required")
	}

	var err error
	if cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = parseDurationEnv("CACHE_TTL", defaultCacheTTL); err != nil {
		return nil, err
	}
	if cfg.RawgTimeout, err = parseDurationEnv("RAWG_TIMEOUT", defaultRawgTimeout); err != nil {
		return nil, err
	}
	if cfg.RatePerMinute, err = parseIntEnv("RATE_LIMIT_PER_MINUTE", defaultRatePerMinute); err != nil {
		return nil, err
	}
	if cfg.RatePerMinute <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be > 0")
	}

	return cfg, nil
}

func getEnv(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := getEnv(name, fallback)
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := getEnv(name, fallback)
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

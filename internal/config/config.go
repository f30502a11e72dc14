package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env      string // "development", "production", etc.
	LogLevel slog.Level

	// Server
	ServerAddr string
	BaseURL    string

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "खोज"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER

	// Seed data
	SeedFile     string // Optional YAML file of extra webpages
	SeedDefaults bool   // Load the built-in Rajasthan pages

	// Search
	DefaultPageSize int

	// Metrics
	MetricsEnabled bool

	// Fetcher
	FetchUserAgent    string
	FetchTimeout      time.Duration
	FetchAllowPrivate bool

	// Rate limiting, off when RateLimitMax is 0
	RateLimitMax    int
	RateLimitWindow time.Duration
	RedisURL        string // Limiter storage; in-memory when empty
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: parseLevel(getEnv("LOG_LEVEL", "info")),

		ServerAddr:  serverAddr(),
		BaseURL:     getEnv("BASE_URL", "http://localhost:5000"),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		SiteTitle:   getEnv("SITE_TITLE", "खोज"),
		SiteTagline: getEnv("SITE_TAGLINE", "राजस्थान की जानकारी खोजें"),
		SiteFooter:  getEnv("SITE_FOOTER", "खोज - एक डेमो सर्च इंजन"),

		SeedFile:     getEnv("SEED_FILE", "seed.yaml"),
		SeedDefaults: getBool("SEED_DEFAULTS", true),

		DefaultPageSize: getInt("DEFAULT_PAGE_SIZE", 10),
		MetricsEnabled:  getBool("METRICS_ENABLED", true),

		FetchUserAgent:    getEnv("FETCH_USER_AGENT", "searchportal-fetcher/1.0"),
		FetchTimeout:      getDuration("FETCH_TIMEOUT", 10*time.Second),
		FetchAllowPrivate: getBool("FETCH_ALLOW_PRIVATE", false),

		RateLimitMax:    getInt("RATE_LIMIT_MAX", 0),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", time.Minute),
		RedisURL:        getEnv("REDIS_URL", ""),
	}
}

// serverAddr honours PORT, which hosting platforms set, over the default
// address but not over an explicit SERVER_ADDR.
func serverAddr() string {
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		return addr
	}
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":5000"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsRateLimited returns true if the request limiter should be installed.
func (c *Config) IsRateLimited() bool {
	return c.RateLimitMax > 0
}

package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Upstream lookup services
	MobileInfoURL  string // mobile-record lookup, keyed by phone number
	AadhaarInfoURL string // personal-record lookup, keyed by Aadhaar number
	FamilyInfoURL  string // family-record lookup, keyed by Aadhaar number
	FamilyAPIKey   string // fixed key the family service requires

	// Timeout applied to each outbound upstream call
	UpstreamTimeout time.Duration

	// Interval between upstream reachability probes; 0 disables probing
	ProbeInterval time.Duration

	// CORS
	CORSOrigins string // Comma-separated allowed origins
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", "development"),
		ServerAddr:      getEnv("SERVER_ADDR", ":3000"),
		MobileInfoURL:   getEnv("MOBILE_INFO_URL", "http://localhost:8081/search"),
		AadhaarInfoURL:  getEnv("AADHAAR_INFO_URL", "http://localhost:8081/search"),
		FamilyInfoURL:   getEnv("FAMILY_INFO_URL", "http://localhost:8082/fetch"),
		FamilyAPIKey:    getEnv("FAMILY_API_KEY", ""),
		UpstreamTimeout: time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 10)) * time.Second,
		ProbeInterval:   time.Duration(getEnvInt("UPSTREAM_PROBE_INTERVAL_SECONDS", 60)) * time.Second,
		CORSOrigins:     getEnv("CORS_ORIGINS", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

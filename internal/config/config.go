package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the server
type Config struct {
	// CoinDCX API
	APIKey    string
	SecretKey string
	BaseURL   string
	PublicURL string

	// HTTP
	Timeout time.Duration

	// Mode
	SandboxMode bool
	Debug       bool
}

// Load loads configuration from environment variables. Credentials are
// optional at startup: public endpoints work without them and private
// endpoints fail per call. Half-configured credentials are rejected here
// because they can never produce a valid signature.
func Load() (*Config, error) {
	cfg := &Config{
		APIKey:    os.Getenv("COINDCX_API_KEY"),
		SecretKey: os.Getenv("COINDCX_SECRET_KEY"),
		BaseURL:   getEnv("COINDCX_BASE_URL", "https://api.coindcx.com"),
		PublicURL: getEnv("COINDCX_PUBLIC_URL", "https://public.coindcx.com"),

		Timeout: getEnvDuration("COINDCX_TIMEOUT", 30*time.Second),

		SandboxMode: getEnvBool("COINDCX_SANDBOX_MODE", false),
		Debug:       getEnvBool("DEBUG", false),
	}

	if (cfg.APIKey == "") != (cfg.SecretKey == "") {
		return nil, fmt.Errorf("COINDCX_API_KEY and COINDCX_SECRET_KEY must be set together")
	}

	return cfg, nil
}

// HasCredentials reports whether both credentials are present.
func (c *Config) HasCredentials() bool {
	return c.APIKey != "" && c.SecretKey != ""
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

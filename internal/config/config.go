package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the client's runtime settings, read from the environment
type Config struct {
	APIURL     string
	APIToken   string
	APITimeout time.Duration
}

// Load reads configuration from a .env file (if present) and the
// environment. CAMPUS_API_URL is required; everything else has defaults.
func Load() (*Config, error) {
	// Missing .env is fine, real env vars still apply
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:     os.Getenv("CAMPUS_API_URL"),
		APIToken:   os.Getenv("CAMPUS_API_TOKEN"),
		APITimeout: 15 * time.Second,
	}

	if raw := os.Getenv("CAMPUS_API_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CAMPUS_API_TIMEOUT %q: %w", raw, err)
		}
		cfg.APITimeout = d
	}

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("CAMPUS_API_URL is required")
	}

	return cfg, nil
}

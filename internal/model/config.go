package model

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration
type Config struct {
	// APIBaseURL is the base URL for all PokeAPI requests
	APIBaseURL string `env:"DEXR_API_BASE_URL"`

	// CacheDir is the directory holding the species and variant cache files.
	// Empty means the application data directory.
	CacheDir string `env:"DEXR_CACHE_DIR"`

	// OutputPath is the destination of the generated listing
	OutputPath string `env:"DEXR_OUTPUT"`

	// RequestDelay is the fixed pause enforced between API requests
	RequestDelay time.Duration `env:"DEXR_REQUEST_DELAY"`

	// HTTPTimeout is the per-request timeout for API calls
	HTTPTimeout time.Duration `env:"DEXR_HTTP_TIMEOUT"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		APIBaseURL:   "https://pokeapi.co/api/v2",
		CacheDir:     "",
		OutputPath:   "pokedex_by_family.txt",
		RequestDelay: 200 * time.Millisecond,
		HTTPTimeout:  30 * time.Second,
	}
}

// LoadConfig returns the default configuration overridden by DEXR_* environment variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

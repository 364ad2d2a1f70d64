package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.APIBaseURL)
	assert.Equal(t, "pokedex_by_family.txt", cfg.OutputPath)
	assert.Equal(t, 200*time.Millisecond, cfg.RequestDelay)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Empty(t, cfg.CacheDir)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DEXR_API_BASE_URL", "http://localhost:8080/api/v2")
	t.Setenv("DEXR_OUTPUT", "out.txt")
	t.Setenv("DEXR_REQUEST_DELAY", "50ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/v2", cfg.APIBaseURL)
	assert.Equal(t, "out.txt", cfg.OutputPath)
	assert.Equal(t, 50*time.Millisecond, cfg.RequestDelay)
	// Untouched fields keep their defaults
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

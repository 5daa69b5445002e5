package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing API URL", func(t *testing.T) {
		t.Setenv("CAMPUS_API_URL", "")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CAMPUS_API_URL")
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CAMPUS_API_URL", "https://campus.example.edu")
		t.Setenv("CAMPUS_API_TOKEN", "")
		t.Setenv("CAMPUS_API_TIMEOUT", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "https://campus.example.edu", cfg.APIURL)
		assert.Empty(t, cfg.APIToken)
		assert.Equal(t, 15*time.Second, cfg.APITimeout)
	})

	t.Run("explicit timeout", func(t *testing.T) {
		t.Setenv("CAMPUS_API_URL", "https://campus.example.edu")
		t.Setenv("CAMPUS_API_TIMEOUT", "30s")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, cfg.APITimeout)
	})

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("CAMPUS_API_URL", "https://campus.example.edu")
		t.Setenv("CAMPUS_API_TIMEOUT", "soon")

		_, err := Load()
		assert.Error(t, err)
	})
}

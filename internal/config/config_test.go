package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 45*time.Second, cfg.OracleTimeout)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.BackoffBase)
	assert.Equal(t, 12, cfg.MaxPhotos)
	assert.Equal(t, 12, cfg.ResultCap)
	assert.Equal(t, 6, cfg.GroupSize)
	assert.Equal(t, 200*time.Millisecond, cfg.PhotoStagger)
	assert.Equal(t, time.Second, cfg.GroupPause)
	assert.Equal(t, 500, cfg.MinDimension)
	assert.Equal(t, 2048, cfg.DownscaleThreshold)
	assert.Equal(t, 1536, cfg.DownscaleTarget)
	assert.Equal(t, int64(10<<20), cfg.MaxEncodedBytes)

	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PHOTORANKER_MODEL", "gemini-2.5-pro")
	t.Setenv("PHOTORANKER_MAX_PHOTOS", "6")
	t.Setenv("PHOTORANKER_ORACLE_TIMEOUT", "30s")
	t.Setenv("PHOTORANKER_LISTEN_ADDR", ":9000")
	t.Setenv("PHOTORANKER_MIN_DIMENSION", "400")
	t.Setenv("PHOTORANKER_DOWNSCALE_THRESHOLD", "4096")
	t.Setenv("PHOTORANKER_DOWNSCALE_TARGET", "2048")
	t.Setenv("PHOTORANKER_MAX_ENCODED_BYTES", "5242880")

	cfg := Load()

	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 6, cfg.MaxPhotos)
	assert.Equal(t, 30*time.Second, cfg.OracleTimeout)
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, 400, cfg.MinDimension)
	assert.Equal(t, 4096, cfg.DownscaleThreshold)
	assert.Equal(t, 2048, cfg.DownscaleTarget)
	assert.Equal(t, int64(5<<20), cfg.MaxEncodedBytes)
	assert.Equal(t, 3, cfg.MaxAttempts, "untouched values keep defaults")
}

func TestLoad_MalformedEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("PHOTORANKER_MAX_PHOTOS", "a dozen")
	t.Setenv("PHOTORANKER_GROUP_PAUSE", "soon")

	cfg := Load()

	assert.Equal(t, 12, cfg.MaxPhotos)
	assert.Equal(t, time.Second, cfg.GroupPause)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults pass", func(c *Config) {}, ""},
		{"zero max photos", func(c *Config) { c.MaxPhotos = 0 }, "max photos"},
		{"zero group size", func(c *Config) { c.GroupSize = 0 }, "group size"},
		{"zero result cap", func(c *Config) { c.ResultCap = 0 }, "result cap"},
		{"zero attempts", func(c *Config) { c.MaxAttempts = 0 }, "max attempts"},
		{"negative timeout", func(c *Config) { c.OracleTimeout = -time.Second }, "oracle timeout"},
		{"target above threshold", func(c *Config) { c.DownscaleTarget = 4096 }, "downscale target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

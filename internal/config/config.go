// Package config provides configuration loading and validation for the
// analysis service. Values come from defaults, optionally overridden by
// environment variables (PHOTORANKER_* plus GEMINI_API_KEY).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds every tunable of the analysis pipeline and HTTP server.
type Config struct {
	// Oracle
	GeminiAPIKey  string        // Gemini API key (GEMINI_API_KEY)
	Model         string        // Gemini model name
	OracleTimeout time.Duration // Per-invocation deadline
	MaxAttempts   int           // Attempts per photo before falling back
	BackoffBase   time.Duration // Backoff unit; wait is base * attempt number

	// Batch orchestration
	MaxPhotos    int           // Maximum photos accepted per request
	ResultCap    int           // Maximum results returned per request
	GroupSize    int           // Photos analyzed concurrently per group
	PhotoStagger time.Duration // Launch offset between photos in a group
	GroupPause   time.Duration // Pause between consecutive groups

	// Imaging
	MinDimension       int   // Reject images whose larger side is below this
	DownscaleThreshold int   // Downscale images whose larger side exceeds this
	DownscaleTarget    int   // Larger side after downscaling
	MaxEncodedBytes    int64 // Hard cap on encoded JPEG size

	// Server
	ListenAddr string // host:port for the HTTP server
}

// Default returns the configuration the service ships with.
func Default() Config {
	return Config{
		Model:         "gemini-2.5-flash",
		OracleTimeout: 45 * time.Second,
		MaxAttempts:   3,
		BackoffBase:   2 * time.Second,

		MaxPhotos:    12,
		ResultCap:    12,
		GroupSize:    6,
		PhotoStagger: 200 * time.Millisecond,
		GroupPause:   time.Second,

		MinDimension:       500,
		DownscaleThreshold: 2048,
		DownscaleTarget:    1536,
		MaxEncodedBytes:    10 << 20,

		ListenAddr: ":8080",
	}
}

// Load builds the effective configuration: defaults overridden by
// environment variables. Malformed env values fall back to the default.
func Load() Config {
	cfg := Default()

	cfg.GeminiAPIKey = getEnvString("GEMINI_API_KEY", cfg.GeminiAPIKey)
	cfg.Model = getEnvString("PHOTORANKER_MODEL", cfg.Model)
	cfg.OracleTimeout = getEnvDuration("PHOTORANKER_ORACLE_TIMEOUT", cfg.OracleTimeout)
	cfg.MaxAttempts = getEnvInt("PHOTORANKER_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.BackoffBase = getEnvDuration("PHOTORANKER_BACKOFF_BASE", cfg.BackoffBase)

	cfg.MaxPhotos = getEnvInt("PHOTORANKER_MAX_PHOTOS", cfg.MaxPhotos)
	cfg.ResultCap = getEnvInt("PHOTORANKER_RESULT_CAP", cfg.ResultCap)
	cfg.GroupSize = getEnvInt("PHOTORANKER_GROUP_SIZE", cfg.GroupSize)
	cfg.PhotoStagger = getEnvDuration("PHOTORANKER_PHOTO_STAGGER", cfg.PhotoStagger)
	cfg.GroupPause = getEnvDuration("PHOTORANKER_GROUP_PAUSE", cfg.GroupPause)

	cfg.MinDimension = getEnvInt("PHOTORANKER_MIN_DIMENSION", cfg.MinDimension)
	cfg.DownscaleThreshold = getEnvInt("PHOTORANKER_DOWNSCALE_THRESHOLD", cfg.DownscaleThreshold)
	cfg.DownscaleTarget = getEnvInt("PHOTORANKER_DOWNSCALE_TARGET", cfg.DownscaleTarget)
	cfg.MaxEncodedBytes = int64(getEnvInt("PHOTORANKER_MAX_ENCODED_BYTES", int(cfg.MaxEncodedBytes)))

	cfg.ListenAddr = getEnvString("PHOTORANKER_LISTEN_ADDR", cfg.ListenAddr)

	return cfg
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.MaxPhotos < 1 {
		return fmt.Errorf("config error: max photos must be at least 1, got %d", c.MaxPhotos)
	}
	if c.GroupSize < 1 {
		return fmt.Errorf("config error: group size must be at least 1, got %d", c.GroupSize)
	}
	if c.ResultCap < 1 {
		return fmt.Errorf("config error: result cap must be at least 1, got %d", c.ResultCap)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("config error: max attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.OracleTimeout <= 0 {
		return fmt.Errorf("config error: oracle timeout must be positive, got %s", c.OracleTimeout)
	}
	if c.DownscaleTarget > c.DownscaleThreshold {
		return fmt.Errorf("config error: downscale target %d exceeds threshold %d", c.DownscaleTarget, c.DownscaleThreshold)
	}
	return nil
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

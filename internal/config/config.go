// Package config loads client settings from the environment. Every value has
// a working default so the CLI runs against a local analysis server with no
// setup; a .env file is honored by the root command before this runs.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the settings for a scan session.
type Config struct {
	// APIURL is the base URL of the analysis server.
	APIURL string
	// HealthTimeout bounds the connectivity probe.
	HealthTimeout time.Duration
	// AnalyzeTimeout bounds a single analysis upload.
	AnalyzeTimeout time.Duration
	// MaxImageWidth is the width captured photos are downscaled to before upload.
	MaxImageWidth int
	// JPEGQuality is the re-encode quality for prepared photos.
	JPEGQuality int
	// UseSampleData short-circuits analysis with built-in sample artifacts.
	UseSampleData bool
	// LogLevel is the slog level name (debug, info, warn, error).
	LogLevel string
}

// Load reads configuration from the environment, falling back to defaults.
func Load() Config {
	return Config{
		APIURL:         getenv("ZYARAT_API_URL", "http://localhost:8000"),
		HealthTimeout:  getenvDuration("ZYARAT_HEALTH_TIMEOUT", 5*time.Second),
		AnalyzeTimeout: getenvDuration("ZYARAT_API_TIMEOUT", 60*time.Second),
		MaxImageWidth:  getenvInt("ZYARAT_MAX_IMAGE_WIDTH", 900),
		JPEGQuality:    getenvInt("ZYARAT_JPEG_QUALITY", 80),
		UseSampleData:  getenvBool("ZYARAT_USE_SAMPLE_DATA", false),
		LogLevel:       getenv("ZYARAT_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	// Accept plain seconds for parity with the server's API_TIMEOUT setting.
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	switch v {
	case "1", "t", "T", "true", "True", "TRUE":
		return true
	case "0", "f", "F", "false", "False", "FALSE":
		return false
	}
	return fallback
}

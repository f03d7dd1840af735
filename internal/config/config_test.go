package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.HealthTimeout)
	assert.Equal(t, 60*time.Second, cfg.AnalyzeTimeout)
	assert.Equal(t, 900, cfg.MaxImageWidth)
	assert.Equal(t, 80, cfg.JPEGQuality)
	assert.False(t, cfg.UseSampleData)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ZYARAT_API_URL", "http://192.168.1.38:8000")
	t.Setenv("ZYARAT_API_TIMEOUT", "30")
	t.Setenv("ZYARAT_HEALTH_TIMEOUT", "2s")
	t.Setenv("ZYARAT_MAX_IMAGE_WIDTH", "640")
	t.Setenv("ZYARAT_USE_SAMPLE_DATA", "true")

	cfg := Load()

	assert.Equal(t, "http://192.168.1.38:8000", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.AnalyzeTimeout)
	assert.Equal(t, 2*time.Second, cfg.HealthTimeout)
	assert.Equal(t, 640, cfg.MaxImageWidth)
	assert.True(t, cfg.UseSampleData)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("ZYARAT_API_TIMEOUT", "not-a-number")
	t.Setenv("ZYARAT_MAX_IMAGE_WIDTH", "-5")
	t.Setenv("ZYARAT_USE_SAMPLE_DATA", "maybe")

	cfg := Load()

	assert.Equal(t, 60*time.Second, cfg.AnalyzeTimeout)
	assert.Equal(t, 900, cfg.MaxImageWidth)
	assert.False(t, cfg.UseSampleData)
}

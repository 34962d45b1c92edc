package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "development")
	t.Setenv("API_BASE_URL", "http://api.local/api")
	t.Setenv("SESSION_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg := Load()

	assert.Equal(t, "OptiFit", cfg.AppName)
	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "http://api.local/api", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 168*time.Hour, cfg.SessionExpiry)
	assert.Equal(t, 5, cfg.AuthRateLimit)
	assert.True(t, cfg.ChatEnabled)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.ExportEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9000")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("AUTH_RATE_LIMIT", "10")
	t.Setenv("CHAT_ENABLED", "false")
	t.Setenv("S3_BUCKET", "exports")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, 10, cfg.AuthRateLimit)
	assert.False(t, cfg.ChatEnabled)
	assert.True(t, cfg.ExportEnabled())
}

func TestEnvHelpers_InvalidFallsBack(t *testing.T) {
	t.Setenv("X_BOOL", "maybe")
	t.Setenv("X_INT", "ten")
	t.Setenv("X_DURATION", "soon")

	assert.True(t, envBool("X_BOOL", true))
	assert.Equal(t, 3, envInt("X_INT", 3))
	assert.Equal(t, time.Minute, envDuration("X_DURATION", time.Minute))
	assert.Equal(t, "def", envString("X_UNSET_STRING", "def"))
}

func TestSanitized_DropsSecrets(t *testing.T) {
	cfg := &Config{
		AppName:       "OptiFit",
		SessionSecret: "secret",
		APIBaseURL:    "http://internal",
		S3SecretKey:   "s3-secret",
		S3Endpoint:    "http://minio:9000",
	}

	safe := cfg.Sanitized()

	require.NotNil(t, safe)
	assert.Equal(t, "OptiFit", safe.AppName)
	assert.Empty(t, safe.SessionSecret)
	assert.Empty(t, safe.APIBaseURL)
	assert.Empty(t, safe.S3SecretKey)
	assert.Equal(t, "http://minio:9000", safe.S3Endpoint)
}

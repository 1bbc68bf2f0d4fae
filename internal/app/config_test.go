package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SESSION_SECRET", "session-secret")
	t.Setenv("CSRF_SECRET", "csrf-secret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, "Asia/Tokyo", cfg.AppTimezone)
	assert.Equal(t, "Asia/Tokyo", cfg.Location.String())
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Equal(t, 600, cfg.QuoteRateLimitPerMinute)
	assert.Equal(t, 720*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.ProductName)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("ORDERFORM_PRODUCT_NAME", "ゴールド会員")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, "ゴールド会員", cfg.ProductName)
	assert.Equal(t, 10, cfg.RateLimitPerMinute)
	assert.Equal(t, time.UTC, cfg.Now().Location())
}

func TestLoadConfigRequiresSecrets(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("CSRF_SECRET", "csrf-secret")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownTimezone(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "Mars/Olympus")
}

func TestLoadConfigRejectsNonPositiveRateLimit(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsNonPositiveQuoteRateLimit(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("QUOTE_RATE_LIMIT_PER_MINUTE", "-1")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "quote rate limit")
}

package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`
	AppTimezone       string        `envconfig:"APP_TIMEZONE" default:"Asia/Tokyo"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	SessionSecret string        `envconfig:"SESSION_SECRET" required:"true"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"720h"`

	CSRFSecret string `envconfig:"CSRF_SECRET" required:"true"`

	ProductName        string `envconfig:"ORDERFORM_PRODUCT_NAME"`
	RateLimitPerMinute int    `envconfig:"RATE_LIMIT_PER_MINUTE" default:"60"`
	// QuoteRateLimitPerMinute budgets POST /api/quote separately.
	QuoteRateLimitPerMinute int `envconfig:"QUOTE_RATE_LIMIT_PER_MINUTE" default:"600"`

	// Location is resolved from AppTimezone by LoadConfig.
	Location *time.Location `ignored:"true"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("session secret must be provided")
	}
	if cfg.CSRFSecret == "" {
		return nil, errors.New("csrf secret must be provided")
	}
	if cfg.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.QuoteRateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("quote rate limit must be positive, got %d", cfg.QuoteRateLimitPerMinute)
	}
	loc, err := time.LoadLocation(cfg.AppTimezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.AppTimezone, err)
	}
	cfg.Location = loc
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// Now returns the current time in the configured timezone.
func (c *Config) Now() time.Time {
	if c == nil || c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

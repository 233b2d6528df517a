package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ServerPort != "5000" {
		t.Errorf("expected port 5000, got %s", cfg.ServerPort)
	}
	if cfg.RateLimit.RequestsPerMinute != 10 {
		t.Errorf("expected 10 requests per minute, got %d", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.RateLimit.RequestsPerDay != 200 {
		t.Errorf("expected 200 requests per day, got %d", cfg.RateLimit.RequestsPerDay)
	}
	if cfg.Fetch.Timeout != 30*time.Second {
		t.Errorf("expected 30s fetch timeout, got %s", cfg.Fetch.Timeout)
	}
	if len(cfg.Fetch.PreferredLanguages) != 1 || cfg.Fetch.PreferredLanguages[0] != "en" {
		t.Errorf("expected default language en, got %v", cfg.Fetch.PreferredLanguages)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("READ_TIMEOUT", "10s")
	t.Setenv("RATE_LIMIT_RPM", "25")
	t.Setenv("RATE_LIMIT_RPD", "500")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("FETCH_LANGUAGES", "de,en")
	t.Setenv("SENTRY_DSN", "https://key@sentry.example.com/1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ServerPort != "9090" {
		t.Errorf("expected 9090, got %s", cfg.ServerPort)
	}
	if cfg.ReadTimeout != 10*time.Second {
		t.Errorf("expected 10s, got %s", cfg.ReadTimeout)
	}
	if cfg.RateLimit.RequestsPerMinute != 25 {
		t.Errorf("expected 25, got %d", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.RateLimit.RequestsPerDay != 500 {
		t.Errorf("expected 500, got %d", cfg.RateLimit.RequestsPerDay)
	}
	if cfg.Fetch.Timeout != 5*time.Second {
		t.Errorf("expected 5s, got %s", cfg.Fetch.Timeout)
	}
	if len(cfg.Fetch.PreferredLanguages) != 2 || cfg.Fetch.PreferredLanguages[0] != "de" {
		t.Errorf("expected [de en], got %v", cfg.Fetch.PreferredLanguages)
	}
	if cfg.SentryDSN != "https://key@sentry.example.com/1" {
		t.Errorf("unexpected sentry DSN %s", cfg.SentryDSN)
	}
}

func TestProductionMiddleware(t *testing.T) {
	t.Setenv("ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if !cfg.Middleware.EnableRateLimit {
		t.Error("rate limiting should be enabled in production")
	}
	if !cfg.Middleware.EnableCompress {
		t.Error("compression should be enabled in production")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"bad port", func(c *Config) { c.ServerPort = "abc" }, true},
		{"zero read timeout", func(c *Config) { c.ReadTimeout = 0 }, true},
		{"zero fetch timeout", func(c *Config) { c.Fetch.Timeout = 0 }, true},
		{"zero quota while enabled", func(c *Config) { c.RateLimit.RequestsPerMinute = 0 }, true},
		{
			"zero quota while disabled",
			func(c *Config) {
				c.RateLimit.Enabled = false
				c.RateLimit.RequestsPerMinute = 0
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server settings
	ServerPort   string        `json:"server_port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
	Debug        bool          `json:"debug"`

	// Application paths
	LogDir string `json:"log_dir"`

	// Middleware settings
	Middleware MiddlewareConfig `json:"middleware"`

	// CORS Configuration
	CORS CORSConfig `json:"cors"`

	// Rate Limiting
	RateLimit RateLimitConfig `json:"rate_limit"`

	// Transcript fetching
	Fetch FetchConfig `json:"fetch"`

	// Error reporting
	SentryDSN string `json:"sentry_dsn"`

	// Application version
	Version string `json:"version"`

	// Shutdown timeout
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type MiddlewareConfig struct {
	EnableRecover   bool `json:"enable_recover"`
	EnableRequestID bool `json:"enable_request_id"`
	EnableLogger    bool `json:"enable_logger"`
	EnableCORS      bool `json:"enable_cors"`
	EnableRateLimit bool `json:"enable_rate_limit"`
	EnableCompress  bool `json:"enable_compress"`
	EnableETag      bool `json:"enable_etag"`
}

type CORSConfig struct {
	Enabled          bool     `json:"enabled"`
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowedMethods   []string `json:"allowed_methods"`
	AllowedHeaders   []string `json:"allowed_headers"`
	ExposedHeaders   []string `json:"exposed_headers"`
	AllowCredentials bool     `json:"allow_credentials"`
	MaxAge           int      `json:"max_age"`
}

type RateLimitConfig struct {
	Enabled           bool `json:"enabled"`
	RequestsPerMinute int  `json:"requests_per_minute"`
	RequestsPerDay    int  `json:"requests_per_day"`
}

type FetchConfig struct {
	Timeout            time.Duration `json:"timeout"`
	RequestsPerSecond  int           `json:"requests_per_second"`
	PreferredLanguages []string      `json:"preferred_languages"`
}

// Default configurations
func defaultDevConfig() MiddlewareConfig {
	return MiddlewareConfig{
		EnableRecover:   true,
		EnableRequestID: true,
		EnableLogger:    true,
		EnableCORS:      true,
		EnableRateLimit: false, // Disabled for testing
		EnableCompress:  false, // Not needed for development
		EnableETag:      false, // Not needed for development
	}
}

func defaultProdConfig() MiddlewareConfig {
	return MiddlewareConfig{
		EnableRecover:   true,
		EnableRequestID: true,
		EnableLogger:    true,
		EnableCORS:      true,
		EnableRateLimit: true,
		EnableCompress:  true,
		EnableETag:      true,
	}
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Server settings
		ServerPort:   getEnv("PORT", "5000"),
		ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:  getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		Debug:        getEnvAsBool("DEBUG", false),

		// Application paths
		LogDir: getEnv("LOG_DIR", "/var/log/yt-transcript"),

		// Error reporting
		SentryDSN: getEnv("SENTRY_DSN", ""),

		// Application version
		Version: getEnv("VERSION", "1.0.0"),

		// Shutdown timeout
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		// CORS Configuration
		CORS: CORSConfig{
			Enabled:          getEnvAsBool("CORS_ENABLED", true),
			AllowedOrigins:   getEnvAsStringSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getEnvAsStringSlice("CORS_ALLOWED_METHODS", []string{"GET", "OPTIONS"}),
			AllowedHeaders:   getEnvAsStringSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type"}),
			ExposedHeaders:   getEnvAsStringSlice("CORS_EXPOSED_HEADERS", []string{}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 86400),
		},

		// Rate Limiting
		RateLimit: RateLimitConfig{
			Enabled:           getEnvAsBool("RATE_LIMIT_ENABLED", true),
			RequestsPerMinute: getEnvAsInt("RATE_LIMIT_RPM", 10),
			RequestsPerDay:    getEnvAsInt("RATE_LIMIT_RPD", 200),
		},

		// Transcript fetching
		Fetch: FetchConfig{
			Timeout:            getEnvAsDuration("FETCH_TIMEOUT", 30*time.Second),
			RequestsPerSecond:  getEnvAsInt("FETCH_RPS", 5),
			PreferredLanguages: getEnvAsStringSlice("FETCH_LANGUAGES", []string{"en"}),
		},

		// Middleware
		Middleware: defaultDevConfig(),
	}

	if os.Getenv("ENV") == "production" {
		cfg.Middleware = defaultProdConfig()
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("invalid server port %q", c.ServerPort)
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive")
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive")
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive")
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("rate limit per minute must be positive")
		}
		if c.RateLimit.RequestsPerDay <= 0 {
			return fmt.Errorf("rate limit per day must be positive")
		}
	}
	return nil
}

// Helper functions for reading environment variables
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists {
		if value = strings.TrimSpace(value); value != "" {
			return strings.Split(value, ",")
		}
	}
	return defaultValue
}

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

type Config struct {
	// HTTP Server
	Port           string
	Environment    string
	LogLevel       string
	AllowedOrigins []string

	// Database
	SQLiteDBPath      string
	DBBusyTimeout     time.Duration
	DBMaxOpenConns    int
	DBConnectAttempts int

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// Rate limiting
	RateLimitWindow      time.Duration
	RateLimitMaxRequests int
	LoginRateLimitMax    int

	// Sync
	SyncMaxBatch int

	// Reports
	ReportLocale    string
	ReportCacheTTL  time.Duration
	ReportCacheSize int

	// AMQP, disabled when AMQPURL is empty
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Event relay. RelayEmbedded runs the relay inside the API process;
	// cmd/cakue-relay runs it standalone.
	RelayEmbedded     bool
	RelayPollInterval time.Duration
	RelayBatchSize    int
	RelayMaxRetries   int
}

func Load() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "5000"),
		Environment:    getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),

		SQLiteDBPath:      getEnv("SQLITE_DB_PATH", "./data/cakue.db"),
		DBBusyTimeout:     getEnvDuration("DB_BUSY_TIMEOUT", 5*time.Second),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 4),
		DBConnectAttempts: getEnvInt("DB_CONNECT_ATTEMPTS", 5),

		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getEnvDuration("TOKEN_TTL", 24*time.Hour),

		RateLimitWindow:      getEnvDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		RateLimitMaxRequests: getEnvInt("RATE_LIMIT_MAX_REQUESTS", 100),
		LoginRateLimitMax:    getEnvInt("LOGIN_RATE_LIMIT_MAX", 5),

		SyncMaxBatch: getEnvInt("SYNC_MAX_BATCH", 500),

		ReportLocale:    getEnv("REPORT_LOCALE", "en"),
		ReportCacheTTL:  getEnvDuration("REPORT_CACHE_TTL", 5*time.Minute),
		ReportCacheSize: getEnvInt("REPORT_CACHE_SIZE", 256),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "cakue"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "sync_completed"),

		RelayEmbedded:     getEnvBool("RELAY_EMBEDDED", true),
		RelayPollInterval: getEnvDuration("RELAY_POLL_INTERVAL", 5*time.Second),
		RelayBatchSize:    getEnvInt("RELAY_BATCH_SIZE", 20),
		RelayMaxRetries:   getEnvInt("RELAY_MAX_RETRIES", 5),
	}

	return cfg
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AMQPEnabled reports whether sync events are published.
func (c *Config) AMQPEnabled() bool {
	return c.AMQPURL != ""
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.Environment {
	case "development", "production", "test":
	default:
		errors = append(errors, fmt.Sprintf("invalid environment '%s': must be one of development, production, test", c.Environment))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty")
	} else {
		// Check if directory exists or can be created
		dir := filepath.Dir(c.SQLiteDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	}
	if c.DBBusyTimeout < 0 {
		errors = append(errors, fmt.Sprintf("invalid database busy timeout %v: must not be negative", c.DBBusyTimeout))
	}
	if c.DBMaxOpenConns < 1 {
		errors = append(errors, fmt.Sprintf("invalid database pool size %d: must be at least 1", c.DBMaxOpenConns))
	}
	if c.DBConnectAttempts < 1 {
		errors = append(errors, fmt.Sprintf("invalid database connect attempts %d: must be at least 1", c.DBConnectAttempts))
	}

	if c.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET is required")
	} else if len(c.JWTSecret) < 32 {
		errors = append(errors, "JWT_SECRET must be at least 32 characters")
	}
	if c.TokenTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid token TTL %v: must be at least 1 minute", c.TokenTTL))
	}

	if c.RateLimitWindow < time.Second {
		errors = append(errors, fmt.Sprintf("invalid rate limit window %v: must be at least 1 second", c.RateLimitWindow))
	}
	if c.RateLimitMaxRequests < 1 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %d: must be at least 1", c.RateLimitMaxRequests))
	}
	if c.LoginRateLimitMax < 1 {
		errors = append(errors, fmt.Sprintf("invalid login rate limit %d: must be at least 1", c.LoginRateLimitMax))
	}

	if c.SyncMaxBatch < 1 {
		errors = append(errors, fmt.Sprintf("invalid sync batch limit %d: must be at least 1", c.SyncMaxBatch))
	} else if c.SyncMaxBatch > 5000 {
		errors = append(errors, fmt.Sprintf("invalid sync batch limit %d: must be at most 5000", c.SyncMaxBatch))
	}

	if _, err := language.Parse(c.ReportLocale); err != nil {
		errors = append(errors, fmt.Sprintf("invalid report locale '%s': %v", c.ReportLocale, err))
	}
	if c.ReportCacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid report cache size %d: must be at least 1", c.ReportCacheSize))
	}
	if c.ReportCacheTTL <= 0 {
		errors = append(errors, fmt.Sprintf("invalid report cache TTL %v: must be positive", c.ReportCacheTTL))
	}

	for _, origin := range c.AllowedOrigins {
		if u, err := url.Parse(origin); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, fmt.Sprintf("invalid allowed origin '%s': must be scheme://host", origin))
		}
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}

		if c.RelayBatchSize < 1 || c.RelayBatchSize > 1000 {
			errors = append(errors, fmt.Sprintf("invalid relay batch size %d: must be between 1 and 1000", c.RelayBatchSize))
		}
		if c.RelayPollInterval < 100*time.Millisecond {
			errors = append(errors, fmt.Sprintf("invalid relay poll interval %v: must be at least 100ms", c.RelayPollInterval))
		}
		if c.RelayMaxRetries < 1 {
			errors = append(errors, fmt.Sprintf("invalid relay max retries %d: must be at least 1", c.RelayMaxRetries))
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated value, dropping empty entries.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

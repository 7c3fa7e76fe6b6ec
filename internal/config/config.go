package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Key-value driver constants
const (
	KVDriverRueidis = "rueidis"
	KVDriverGoRedis = "goredis"
	KVDriverMemory  = "memory"
)

// Log level constants
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

type Config struct {
	// Key-value backend
	KVDriver    string // "rueidis", "goredis" or "memory"
	KVKeyPrefix string // Prepended to every key; empty keeps the shared OAuth2 key layout

	// Redis connection
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	RedisConnTimeout     time.Duration // Bound for the initial PING
	RedisDialTimeout     time.Duration
	RedisWriteTimeout    time.Duration
	RedisPoolSize        int  // go-redis pool size / rueidis blocking pool size (0 = client default)
	RedisInstrumentation bool // Record per-command metrics

	// Metrics
	MetricsEnabled bool

	// Logging
	LogLevel       string
	LogDevelopment bool
}

func Load() *Config {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		// Key-value backend
		KVDriver:    getEnv("KV_DRIVER", KVDriverRueidis),
		KVKeyPrefix: getEnv("KV_KEY_PREFIX", ""),

		// Redis connection
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:        getEnv("REDIS_PASSWORD", ""),
		RedisDB:              getEnvInt("REDIS_DB", 0),
		RedisConnTimeout:     getEnvDuration("REDIS_CONN_TIMEOUT", 5*time.Second),
		RedisDialTimeout:     getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisWriteTimeout:    getEnvDuration("REDIS_WRITE_TIMEOUT", 10*time.Second),
		RedisPoolSize:        getEnvInt("REDIS_POOL_SIZE", 0),
		RedisInstrumentation: getEnvBool("REDIS_INSTRUMENTATION", true),

		// Metrics
		MetricsEnabled: getEnvBool("METRICS_ENABLED", false),

		// Logging
		LogLevel:       getEnv("LOG_LEVEL", LogLevelInfo),
		LogDevelopment: getEnvBool("LOG_DEVELOPMENT", false),
	}
}

// Validate checks the configuration for values the bootstrap cannot work with.
func (c *Config) Validate() error {
	switch c.KVDriver {
	case KVDriverRueidis, KVDriverGoRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when KV_DRIVER=%s", c.KVDriver)
		}
		if c.RedisDB < 0 {
			return fmt.Errorf("invalid REDIS_DB value: %d (must be >= 0)", c.RedisDB)
		}
		if c.RedisConnTimeout <= 0 {
			return fmt.Errorf(
				"invalid REDIS_CONN_TIMEOUT value: %s (must be positive)",
				c.RedisConnTimeout,
			)
		}
		if c.RedisPoolSize < 0 {
			return fmt.Errorf("invalid REDIS_POOL_SIZE value: %d (must be >= 0)", c.RedisPoolSize)
		}
	case KVDriverMemory:
		// No additional validation needed
	default:
		return fmt.Errorf(
			"invalid KV_DRIVER value: %q (must be: rueidis, goredis, memory)",
			c.KVDriver,
		)
	}

	switch c.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf(
			"invalid LOG_LEVEL value: %q (must be: debug, info, warn, error)",
			c.LogLevel,
		)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var i int
		if _, err := fmt.Sscanf(value, "%d", &i); err == nil {
			return i
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

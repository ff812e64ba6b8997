// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Session backends.
const (
	BackendDynamoDB = "dynamodb"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	Port             string
	SessionBackend   string
	SessionTTL       time.Duration
	StateTable       string
	Redis            RedisConfig
	ParamPrefix      string // empty disables the SSM answer override
	MaxMessageLength int
}

// RedisConfig holds the Redis session backend settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads configuration from environment variables. defaultBackend is
// used when SESSION_BACKEND is unset.
func Load(defaultBackend string) (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		SessionBackend: strings.ToLower(strings.TrimSpace(getEnv("SESSION_BACKEND", defaultBackend))),
		SessionTTL:     getEnvDuration("SESSION_TTL", 30*time.Minute),
		StateTable:     getEnv("STATE_TABLE", ""),
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		ParamPrefix:      strings.TrimRight(strings.TrimSpace(getEnv("PARAM_PREFIX", "")), "/"),
		MaxMessageLength: getEnvInt("MAX_MESSAGE_LENGTH", 300),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the selected backend has what it needs.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if c.MaxMessageLength <= 0 {
		return fmt.Errorf("MAX_MESSAGE_LENGTH must be > 0")
	}
	switch c.SessionBackend {
	case BackendDynamoDB:
		if c.StateTable == "" {
			return fmt.Errorf("STATE_TABLE is required for the %s backend", BackendDynamoDB)
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the %s backend", BackendRedis)
		}
		if c.Redis.DB < 0 {
			return fmt.Errorf("REDIS_DB must be >= 0")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("SESSION_BACKEND must be one of %s, %s, %s; got %q",
			BackendDynamoDB, BackendRedis, BackendMemory, c.SessionBackend)
	}
	return nil
}

// UsesParamStore reports whether answers should be loaded from SSM.
func (c *Config) UsesParamStore() bool {
	return c.ParamPrefix != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}

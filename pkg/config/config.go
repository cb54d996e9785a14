// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, storage, history and logging

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Store contains preference storage configuration
	Store StoreConfig

	// History contains recent history cache configuration
	History HistoryConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the sustained number of requests per second per client
	RateLimit float64

	// RateBurst is the number of requests a client may burst above RateLimit
	RateBurst int
}

// StoreConfig holds preference storage backend configuration
type StoreConfig struct {
	// Type specifies the storage backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file location
	Path string
}

// HistoryConfig holds recent history cache configuration
type HistoryConfig struct {
	// Capacity is the number of URLs retained
	Capacity int

	// EvictBatch is how many of the oldest URLs are dropped once capacity is exceeded
	EvictBatch int

	// Policy is insertion or lru
	Policy string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsFloatOrDefault("RATE_LIMIT", 20),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 40),
		},
		Store: StoreConfig{
			Type: strings.ToLower(getEnvOrDefault("STORE_TYPE", "memory")),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "autoreader.db"),
			},
		},
		History: HistoryConfig{
			Capacity:   getEnvAsIntOrDefault("HISTORY_CAPACITY", 50),
			EvictBatch: getEnvAsIntOrDefault("HISTORY_EVICT_BATCH", 5),
			Policy:     strings.ToLower(getEnvOrDefault("HISTORY_POLICY", "insertion")),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit <= 0 {
		return errors.New("rate limit must be positive")
	}

	if c.Server.RateBurst < 1 {
		return errors.New("rate burst must be at least 1")
	}

	switch c.Store.Type {
	case "memory":
	case "redis":
		if c.Store.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis store")
		}
	case "sqlite":
		if c.Store.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite store")
		}
	default:
		return errors.New("store type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.History.Capacity < 1 {
		return errors.New("history capacity must be at least 1")
	}

	if c.History.EvictBatch < 1 {
		return errors.New("history evict batch must be at least 1")
	}

	if c.History.Policy != "insertion" && c.History.Policy != "lru" {
		return errors.New("history policy must be 'insertion' or 'lru'")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}

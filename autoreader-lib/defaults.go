// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default store and logger implementations

package autoreader

import (
	"io"
	"os"

	"autoreader-api/core/interfaces"
	"autoreader-api/infrastructure/cache/memory"
	"autoreader-api/infrastructure/cache/redis"
	"autoreader-api/infrastructure/cache/sqlite"
	"autoreader-api/infrastructure/logger/structured"
	"autoreader-api/pkg/config"
)

// DefaultMemoryCache creates a default in-memory store. Preferences do not survive the process.
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultSQLiteCache creates a SQLite store at the given file path
func DefaultSQLiteCache(filePath string) (interfaces.Cache, error) {
	return sqlite.NewSQLiteCache(filePath)
}

// DefaultRedisCache connects to a Redis store
func DefaultRedisCache(address, password string, db int) (interfaces.Cache, error) {
	return redis.NewRedisCache(config.RedisConfig{
		Address:  address,
		Password: password,
		DB:       db,
	})
}

// DefaultLogger creates a default logger that writes text to stderr
func DefaultLogger() interfaces.Logger {
	return structured.NewLogger(structured.Options{Level: "info", Output: os.Stderr})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return structured.NewQuietLogger()
}

// CacheOption represents store configuration options
type CacheOption struct {
	Type     CacheType
	FilePath string // For SQLite

	RedisAddress  string
	RedisPassword string
	RedisDB       int
}

// CacheType represents the type of store
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeSQLite CacheType = "sqlite"
	CacheTypeRedis  CacheType = "redis"
)

// WithCacheOption opens a store based on the provided options. The client closes it.
func WithCacheOption(opt CacheOption) Option {
	return func(c *Config) error {
		var (
			cache interfaces.Cache
			err   error
		)
		switch opt.Type {
		case CacheTypeMemory:
			cache = DefaultMemoryCache()
		case CacheTypeSQLite:
			if opt.FilePath == "" {
				opt.FilePath = "autoreader.db"
			}
			cache, err = DefaultSQLiteCache(opt.FilePath)
		case CacheTypeRedis:
			if opt.RedisAddress == "" {
				opt.RedisAddress = "localhost:6379"
			}
			cache, err = DefaultRedisCache(opt.RedisAddress, opt.RedisPassword, opt.RedisDB)
		default:
			return NewError(ErrorTypeConfiguration, "invalid cache type").
				WithContext("type", string(opt.Type))
		}
		if err != nil {
			return NewError(ErrorTypeStorage, "failed to open store").
				WithCause(err).
				WithContext("type", string(opt.Type))
		}

		c.Cache = cache
		if closer, ok := cache.(io.Closer); ok {
			c.closers = append(c.closers, closer)
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

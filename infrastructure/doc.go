// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as persistence, the browser host, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory store backed by patrickmn/go-cache
// - cache/redis: Redis store backed by go-redis
// - cache/sqlite: SQLite store backed by mattn/go-sqlite3
// - host/outbox: Per-request host that queues commands for the HTTP response
// - logger/structured: Leveled logger backed by logrus
//
// # Cache Implementations
//
// Every store returns an error wrapping interfaces.ErrNotFound for missing
// keys, so callers can tell an absent collection from a failing backend.
// A TTL of zero keeps the value forever.
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 0)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	})
//
// SQLite Cache Example:
//
//	cache, err := sqlite.NewSQLiteCache("autoreader.db")
//	defer cache.Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := structured.NewLogger(structured.Options{Level: "debug", Format: "json"})
//	logger.Info("Toggling reading mode", map[string]interface{}{
//	    "tab_id": 7,
//	    "url":    "https://example.com/post",
//	})
package infrastructure

// ABOUTME: Main entry point for the auto reader view API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autoreader-api/api"
	"autoreader-api/api/handlers"
	"autoreader-api/core/history"
	"autoreader-api/core/interfaces"
	"autoreader-api/core/toggle"
	"autoreader-api/infrastructure/cache/memory"
	"autoreader-api/infrastructure/cache/redis"
	"autoreader-api/infrastructure/cache/sqlite"
	"autoreader-api/infrastructure/logger/structured"
	"autoreader-api/pkg/config"
	"autoreader-api/pkg/featureflags"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	logger.Info("Starting Auto Reader View API", map[string]interface{}{
		"port":           cfg.Server.Port,
		"store_type":     cfg.Store.Type,
		"history_policy": cfg.History.Policy,
	})

	store, closeStore, err := newStore(cfg.Store, logger)
	if err != nil {
		logger.Error("Failed to open preference store", map[string]interface{}{
			"store_type": cfg.Store.Type,
			"error":      err.Error(),
		})
		os.Exit(1)
	}
	defer closeStore()

	recent, err := history.New(history.Options{
		Capacity:   cfg.History.Capacity,
		EvictBatch: cfg.History.EvictBatch,
		Policy:     history.Policy(cfg.History.Policy),
	})
	if err != nil {
		logger.Error("Invalid history configuration", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	deps := interfaces.Dependencies{
		Cache:   store,
		History: recent,
		Logger:  logger.With(map[string]interface{}{"component": "core"}),
	}
	engine, prefs := toggle.NewFromDependencies(deps)

	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	err = prefs.InitializeIfEmpty(initCtx)
	cancelInit()
	if err != nil {
		logger.Error("Failed to initialize domain preferences", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	flags := featureflags.NewEnvManager("FEATURE_")
	ctx := featureflags.WithManager(context.Background(), flags)

	apiConfig := api.APIConfig{}
	if featureflags.IsEnabled(ctx, featureflags.RequestLoggingEnabled) {
		apiConfig.Logger = logger
	}
	if featureflags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
		apiConfig.RateBurst = cfg.Server.RateBurst
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewEventHandler(engine).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(prefs, logger).RegisterRoutes(humaAPI)

	panelHandler := handlers.NewPanelHandler(engine, prefs)
	panelHandler.RegisterRoutes(humaAPI)
	if featureflags.IsEnabled(ctx, featureflags.PanelAPIEnabled) {
		panelHandler.RegisterPreferenceRoutes(humaAPI)
	}

	logger.Info("Feature flags", map[string]interface{}{
		"flags": flags.GetAllFlags(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newStore opens the configured key-value backend. The returned func releases it.
func newStore(cfg config.StoreConfig, logger interfaces.Logger) (interfaces.Cache, func(), error) {
	switch cfg.Type {
	case "redis":
		c, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using Redis store", map[string]interface{}{
			"address": cfg.Redis.Address,
			"db":      cfg.Redis.DB,
		})
		return c, closer(c, logger), nil

	case "sqlite":
		c, err := sqlite.NewSQLiteCacheWithLogger(cfg.SQLite.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using SQLite store", map[string]interface{}{
			"path": cfg.SQLite.Path,
		})
		return c, closer(c, logger), nil

	default:
		logger.Warn("Using memory store, preferences are lost on restart", nil)
		return memory.NewMemoryCache(), func() {}, nil
	}
}

func closer(c io.Closer, logger interfaces.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn("Failed to close preference store", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

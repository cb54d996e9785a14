// Package core contains the business logic for the auto reader view service.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Tab snapshots, decisions, badges and URL helpers
// - history: Bounded set of URLs recently placed into reading mode
// - preferences: Allow-list of domains persisted in a key-value store
// - toggle: The decision engine that consumes history and preferences
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, host, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No web framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "autoreader-api/core/history"
//	    "autoreader-api/core/interfaces"
//	    "autoreader-api/core/toggle"
//	)
//
//	recent, _ := history.New(history.Options{})
//
//	deps := interfaces.Dependencies{
//	    Cache:   myCache,  // implements interfaces.Cache
//	    History: recent,
//	    Logger:  myLogger, // implements interfaces.Logger
//	}
//
//	engine, prefs := toggle.NewFromDependencies(deps)
//	_ = prefs.InitializeIfEmpty(ctx)
//
//	decision, err := engine.HandleArticleDetected(ctx, myHost, tab)
package core

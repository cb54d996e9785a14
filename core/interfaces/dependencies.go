// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache is the key-value store the domain preferences persist into
	Cache Cache

	// History remembers reading-mode URLs to detect manual exits
	History History

	// Logger provides structured logging
	Logger Logger
}

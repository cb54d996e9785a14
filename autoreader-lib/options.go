// ABOUTME: Configuration options for the auto reader library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package autoreader

import (
	"autoreader-api/core/history"
	"autoreader-api/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets the key-value store preferences persist into
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithHost sets the browser host events are executed against
func WithHost(host Host) Option {
	return func(c *Config) error {
		c.Host = host
		return nil
	}
}

// WithHistory sets the recent history capacity, eviction batch and policy
func WithHistory(capacity, evictBatch int, policy string) Option {
	return func(c *Config) error {
		switch history.Policy(policy) {
		case "", history.PolicyInsertion, history.PolicyLRU:
		default:
			return NewError(ErrorTypeConfiguration, "invalid history policy").
				WithContext("policy", policy)
		}
		c.History = history.Options{
			Capacity:   capacity,
			EvictBatch: evictBatch,
			Policy:     history.Policy(policy),
		}
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Logger:  DefaultLogger(),
		History: history.Options{},
	}
}

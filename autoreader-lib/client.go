// ABOUTME: Main client for the auto reader library
// ABOUTME: Runs the toggle engine in-process without the HTTP service

package autoreader

import (
	"context"
	"io"
	"sync"
	"time"

	"autoreader-api/core/history"
	"autoreader-api/core/interfaces"
	"autoreader-api/core/preferences"
	"autoreader-api/core/toggle"
)

// initTimeout bounds the first-run preference write in NewClient
const initTimeout = 10 * time.Second

// Client is the main entry point for the auto reader library
type Client struct {
	engine  *toggle.Engine
	prefs   *preferences.Store
	history *history.Cache
	host    hostAdapter

	config Config

	mu     sync.RWMutex
	closed bool
}

// Config holds the configuration for the client
type Config struct {
	// Cache is where domain preferences persist. Defaults to memory.
	Cache interfaces.Cache

	// Logger configuration
	Logger interfaces.Logger

	// Host executes commands. Required for event methods.
	Host Host

	// History configures the recent reading-mode URL cache
	History history.Options

	closers []io.Closer
}

// NewClient creates a new client with the given options.
// The preference collection is created empty if the store has none.
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			closeAll(config.closers)
			return nil, err
		}
	}

	if config.Cache == nil {
		config.Cache = DefaultMemoryCache()
	}

	if err := validateConfig(&config); err != nil {
		closeAll(config.closers)
		return nil, err
	}

	recent, err := history.New(config.History)
	if err != nil {
		closeAll(config.closers)
		return nil, NewError(ErrorTypeConfiguration, "invalid history options").WithCause(err)
	}

	engine, prefs := toggle.NewFromDependencies(interfaces.Dependencies{
		Cache:   config.Cache,
		History: recent,
		Logger:  config.Logger,
	})

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()
	if err := prefs.InitializeIfEmpty(ctx); err != nil {
		closeAll(config.closers)
		return nil, wrapCoreError(err, "initialize preferences")
	}

	return &Client{
		engine:  engine,
		prefs:   prefs,
		history: recent,
		host:    hostAdapter{host: config.Host},
		config:  config,
	}, nil
}

// Close releases stores opened through WithCacheOption
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return closeAll(c.config.closers)
}

// ArticleDetected handles a tab that finished loading article content
func (c *Client) ArticleDetected(ctx context.Context, tab Tab) (Decision, error) {
	if err := c.ready(true); err != nil {
		return NoOp, err
	}
	decision, err := c.engine.HandleArticleDetected(ctx, c.host, tab.toDomain())
	return Decision(decision), wrapCoreError(err, "article detected")
}

// PreferenceChanged enables or disables a domain. Enabling may put the active tab into reading mode.
func (c *Client) PreferenceChanged(ctx context.Context, domainName string, enabled bool) (Decision, error) {
	if err := c.ready(true); err != nil {
		return NoOp, err
	}
	decision, err := c.engine.HandlePreferenceChanged(ctx, c.host, domainName, enabled)
	return Decision(decision), wrapCoreError(err, "preference changed")
}

// TabFocusChanged refreshes the badge for a newly focused tab and reports its domain preference
func (c *Client) TabFocusChanged(ctx context.Context, tab Tab) (bool, error) {
	if err := c.ready(true); err != nil {
		return false, err
	}
	enabled, err := c.engine.HandleTabFocusChanged(ctx, c.host, tab.toDomain())
	return enabled, wrapCoreError(err, "tab focus changed")
}

// DomainState reports the active tab's domain for a settings panel
func (c *Client) DomainState(ctx context.Context) (DomainState, error) {
	if err := c.ready(true); err != nil {
		return DomainState{}, err
	}
	state, err := c.engine.DomainState(ctx, c.host)
	if err != nil {
		return DomainState{}, wrapCoreError(err, "domain state")
	}
	return DomainState{
		Valid:   state.Valid,
		Domain:  state.Domain,
		Enabled: state.Enabled,
	}, nil
}

// IsEnabled reports whether a domain auto-enters reading mode
func (c *Client) IsEnabled(ctx context.Context, domainName string) (bool, error) {
	if err := c.ready(false); err != nil {
		return false, err
	}
	enabled, err := c.prefs.IsEnabled(ctx, domainName)
	return enabled, wrapCoreError(err, "is enabled")
}

// Domains lists the enabled domains
func (c *Client) Domains(ctx context.Context) ([]string, error) {
	if err := c.ready(false); err != nil {
		return nil, err
	}
	domains, err := c.prefs.Domains(ctx)
	return domains, wrapCoreError(err, "list domains")
}

// ReplaceDomains overwrites the enabled domain list and returns it as stored
func (c *Client) ReplaceDomains(ctx context.Context, domains []string) ([]string, error) {
	if err := c.ready(false); err != nil {
		return nil, err
	}
	stored, err := c.prefs.ReplaceAll(ctx, domains)
	return stored, wrapCoreError(err, "replace domains")
}

// RecentURLs returns the reading-mode URLs currently remembered, oldest first
func (c *Client) RecentURLs() []string {
	return c.history.Keys()
}

func (c *Client) ready(needHost bool) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}
	if needHost && c.host.host == nil {
		return ErrNoHost
	}
	return nil
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	// Host is optional; preference management works without one

	return nil
}

func closeAll(closers []io.Closer) error {
	var first error
	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ABOUTME: Feature flags gating optional API surfaces and middleware
// ABOUTME: Flags are read from FEATURE_-prefixed environment variables at startup

package featureflags

import (
	"context"
	"os"
	"strings"
)

// FeatureFlag names an optional part of the service
type FeatureFlag string

const (
	// RateLimitEnabled enables per-client rate limiting
	RateLimitEnabled FeatureFlag = "rate_limit_enabled"

	// RequestLoggingEnabled logs every request with its request ID
	RequestLoggingEnabled FeatureFlag = "request_logging_enabled"

	// PanelAPIEnabled exposes the bulk preference list endpoints
	PanelAPIEnabled FeatureFlag = "panel_api_enabled"
)

// All lists every flag the service reads
var All = []FeatureFlag{RateLimitEnabled, RequestLoggingEnabled, PanelAPIEnabled}

// Manager reports flag states
type Manager interface {
	IsEnabled(ctx context.Context, flag FeatureFlag) bool
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager reads flags from environment variables named prefix + FLAG_NAME
type EnvManager struct {
	prefix string
}

// NewEnvManager creates an environment-backed manager. An empty prefix means FEATURE_.
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{prefix: prefix}
}

// IsEnabled accepts true, 1 and enabled in any case
func (m *EnvManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(m.EnvKey(flag))))
	return value == "true" || value == "1" || value == "enabled"
}

// EnvKey returns the environment variable consulted for flag
func (m *EnvManager) EnvKey(flag FeatureFlag) string {
	return m.prefix + strings.ToUpper(string(flag))
}

// GetAllFlags returns the state of every flag in All
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	flags := make(map[FeatureFlag]bool, len(All))
	for _, flag := range All {
		flags[flag] = m.IsEnabled(ctx, flag)
	}
	return flags
}

// StaticManager serves a fixed set of flag states. Missing flags are disabled.
type StaticManager map[FeatureFlag]bool

// IsEnabled reports the configured state of flag
func (m StaticManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	return m[flag]
}

// GetAllFlags returns a copy of the configured states
func (m StaticManager) GetAllFlags() map[FeatureFlag]bool {
	result := make(map[FeatureFlag]bool, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

type contextKey struct{}

// WithManager adds a feature flag manager to the context
func WithManager(ctx context.Context, manager Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, manager)
}

// FromContext returns the manager stored in ctx, or one with every flag disabled
func FromContext(ctx context.Context) Manager {
	if manager, ok := ctx.Value(contextKey{}).(Manager); ok {
		return manager
	}
	return StaticManager(nil)
}

// IsEnabled checks flag against the manager stored in ctx
func IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	return FromContext(ctx).IsEnabled(ctx, flag)
}

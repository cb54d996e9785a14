// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"autoreader-api/core/domain"
)

// PreferenceStore is the persistent allow-list of domains that auto-enter reading mode
type PreferenceStore interface {
	IsEnabled(ctx context.Context, domain string) (bool, error)
	Enable(ctx context.Context, domain string) error
	Disable(ctx context.Context, domain string) error
	InitializeIfEmpty(ctx context.Context) error
	Domains(ctx context.Context) ([]string, error)
	ReplaceAll(ctx context.Context, domains []string) ([]string, error)
}

// ToggleService reacts to host events and decides whether reading mode is entered
type ToggleService interface {
	HandleArticleDetected(ctx context.Context, host Host, tab domain.TabView) (domain.ToggleDecision, error)
	HandlePreferenceChanged(ctx context.Context, host Host, domainName string, enabled bool) (domain.ToggleDecision, error)
	HandleTabFocusChanged(ctx context.Context, host Host, tab domain.TabView) (bool, error)
	DomainState(ctx context.Context, host Host) (domain.DomainState, error)
}

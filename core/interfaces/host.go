// ABOUTME: Host collaborator contract for the browser running the extension
// ABOUTME: Inbound tab queries and outbound fire-and-forget commands

package interfaces

import (
	"context"

	"autoreader-api/core/domain"
)

// Host is the browser side of the system. The core asks it for the active tab
// and hands it toggle and badge commands.
type Host interface {
	// ActiveTab returns the tab in the currently focused window.
	ActiveTab(ctx context.Context) (domain.TabView, error)

	// ToggleReadingMode flips reading mode for the tab. Failures are only logged.
	ToggleReadingMode(ctx context.Context, tabID int) error

	// SetBadge updates the extension icon badge.
	SetBadge(ctx context.Context, badge domain.Badge) error
}

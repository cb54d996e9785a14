// ABOUTME: Per-request host that answers tab queries from the request body
// ABOUTME: Queues toggle and badge commands for the HTTP response

package outbox

import (
	"context"
	"errors"
	"sync"

	"autoreader-api/core/domain"
	coreerrors "autoreader-api/core/errors"
)

// ErrNoActiveTab is returned when the request carried no active tab
var ErrNoActiveTab = errors.New("request did not include an active tab")

// Host collects the commands issued while one request is processed.
// The browser extension executes them after the response arrives.
type Host struct {
	mu        sync.Mutex
	activeTab *domain.TabView
	commands  []domain.Command
}

// New creates a host. activeTab may be nil when the event does not need one.
func New(activeTab *domain.TabView) *Host {
	return &Host{activeTab: activeTab}
}

// ActiveTab returns the tab the extension reported as focused
func (h *Host) ActiveTab(ctx context.Context) (domain.TabView, error) {
	if h.activeTab == nil {
		return domain.TabView{}, ErrNoActiveTab
	}
	return *h.activeTab, nil
}

// ToggleReadingMode queues a toggle. Tabs without a positive ID are gone and get rejected.
func (h *Host) ToggleReadingMode(ctx context.Context, tabID int) error {
	if tabID <= 0 {
		return &coreerrors.HostCommandRejectedError{
			Command: string(domain.CommandToggleReadingMode),
			TabID:   tabID,
			Reason:  "tab no longer exists",
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.commands = append(h.commands, domain.Command{
		Type:  domain.CommandToggleReadingMode,
		TabID: tabID,
	})
	return nil
}

// SetBadge queues a badge update, replacing any earlier one from the same request
func (h *Host) SetBadge(ctx context.Context, badge domain.Badge) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	b := badge
	for i := range h.commands {
		if h.commands[i].Type == domain.CommandSetBadge {
			h.commands[i].Badge = &b
			return nil
		}
	}
	h.commands = append(h.commands, domain.Command{
		Type:  domain.CommandSetBadge,
		Badge: &b,
	})
	return nil
}

// Commands returns the queued commands in issue order
func (h *Host) Commands() []domain.Command {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]domain.Command, len(h.commands))
	copy(out, h.commands)
	return out
}

// ABOUTME: Public types for the auto reader library API
// ABOUTME: Provides caller-facing types that wrap internal domain models

package autoreader

import (
	"context"

	"autoreader-api/core/domain"
)

// Tab is a snapshot of one browser tab
type Tab struct {
	ID              int    `json:"id"`
	URL             string `json:"url"`
	IsInReadingMode bool   `json:"isInReadingMode"`
	IsArticle       bool   `json:"isArticle"`
}

// Decision is the outcome of an event
type Decision string

const (
	// EnterReadingMode means a toggle command was issued for the tab
	EnterReadingMode Decision = Decision(domain.EnterReadingMode)

	// ExitNoAction means the user left reading mode for this page; nothing was issued
	ExitNoAction Decision = Decision(domain.ExitNoAction)

	// NoOp means nothing happened
	NoOp Decision = Decision(domain.NoOp)
)

// Badge is the toolbar indicator. The zero value clears it.
type Badge struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// DomainState describes the active tab for a settings panel
type DomainState struct {
	Valid   bool   `json:"valid"`
	Domain  string `json:"domain,omitempty"`
	Enabled bool   `json:"enabled"`
}

// Host is implemented by the embedding application to expose the browser
type Host interface {
	// ActiveTab returns the focused tab of the focused window
	ActiveTab(ctx context.Context) (Tab, error)

	// ToggleReadingMode flips reading mode for the tab
	ToggleReadingMode(ctx context.Context, tabID int) error

	// SetBadge updates the toolbar indicator
	SetBadge(ctx context.Context, badge Badge) error
}

// hostAdapter presents a Host to the core engine
type hostAdapter struct {
	host Host
}

func (a hostAdapter) ActiveTab(ctx context.Context) (domain.TabView, error) {
	tab, err := a.host.ActiveTab(ctx)
	if err != nil {
		return domain.TabView{}, err
	}
	return tab.toDomain(), nil
}

func (a hostAdapter) ToggleReadingMode(ctx context.Context, tabID int) error {
	return a.host.ToggleReadingMode(ctx, tabID)
}

func (a hostAdapter) SetBadge(ctx context.Context, badge domain.Badge) error {
	return a.host.SetBadge(ctx, Badge{Text: badge.Text, Color: badge.Color})
}

func (t Tab) toDomain() domain.TabView {
	return domain.TabView{
		ID:              t.ID,
		URL:             t.URL,
		IsInReadingMode: t.IsInReadingMode,
		IsArticle:       t.IsArticle,
	}
}

// DomainOf returns the host of a URL after reading-mode unwrapping, or "" if it has none
func DomainOf(url string) string {
	return domain.DomainFromURL(url)
}

// ReaderURL wraps url in the browser's reading-mode scheme
func ReaderURL(url string) string {
	return domain.WrapReaderURL(url)
}

// ABOUTME: Toggle decision engine that reacts to host tab events
// ABOUTME: Decides whether to enter reading mode using domain preferences and recent history

package toggle

import (
	"context"
	"sync"

	"autoreader-api/core/domain"
	coreerrors "autoreader-api/core/errors"
	"autoreader-api/core/interfaces"
	"autoreader-api/core/preferences"
)

var _ interfaces.ToggleService = (*Engine)(nil)

// Engine decides, one event at a time per tab, whether reading mode is entered.
// It is built once at startup and shared by every host connection.
type Engine struct {
	prefs   interfaces.PreferenceStore
	history interfaces.History
	logger  interfaces.Logger

	mu       sync.Mutex
	inFlight map[int]struct{}
}

// NewEngine creates a toggle engine
func NewEngine(prefs interfaces.PreferenceStore, history interfaces.History, logger interfaces.Logger) *Engine {
	return &Engine{
		prefs:    prefs,
		history:  history,
		logger:   logger,
		inFlight: make(map[int]struct{}),
	}
}

// NewFromDependencies builds the preference store over deps.Cache and an engine that uses it
func NewFromDependencies(deps interfaces.Dependencies) (*Engine, *preferences.Store) {
	prefs := preferences.NewStore(deps.Cache, deps.Logger)
	return NewEngine(prefs, deps.History, deps.Logger), prefs
}

// HandleArticleDetected runs when the host finished loading article content in tab.
// A preference lookup failure aborts the decision and is returned untouched.
func (e *Engine) HandleArticleDetected(ctx context.Context, host interfaces.Host, tab domain.TabView) (domain.ToggleDecision, error) {
	if !tab.IsArticle {
		return domain.NoOp, nil
	}
	if !e.acquire(tab.ID) {
		return domain.NoOp, nil
	}
	defer e.release(tab.ID)

	if domain.IsInternalPage(tab.URL) {
		return domain.NoOp, nil
	}
	domainName := domain.DomainFromURL(tab.URL)
	if domainName == "" {
		e.logger.Debug("No domain for tab, skipping", map[string]interface{}{
			"tab_id": tab.ID,
			"url":    tab.URL,
		})
		return domain.NoOp, nil
	}

	enabled, err := e.prefs.IsEnabled(ctx, domainName)
	if err != nil {
		return domain.NoOp, coreerrors.WrapError(err, "checking "+domainName)
	}
	e.setBadge(ctx, host, enabled)

	if !enabled {
		return domain.NoOp, nil
	}
	e.logger.Debug("Auto reader enabled for domain", map[string]interface{}{
		"domain": domainName,
		"tab_id": tab.ID,
	})
	return e.tryEnter(ctx, host, tab), nil
}

// HandlePreferenceChanged runs when the user flips the toggle for the active tab's domain.
// Enabling also tries to enter reading mode on the active tab; disabling never exits it.
func (e *Engine) HandlePreferenceChanged(ctx context.Context, host interfaces.Host, domainName string, enabled bool) (domain.ToggleDecision, error) {
	if !enabled {
		if err := e.prefs.Disable(ctx, domainName); err != nil {
			return domain.NoOp, err
		}
		e.setBadge(ctx, host, false)
		return domain.NoOp, nil
	}

	if err := e.prefs.Enable(ctx, domainName); err != nil {
		return domain.NoOp, err
	}
	e.setBadge(ctx, host, true)

	tab, err := host.ActiveTab(ctx)
	if err != nil {
		e.logger.Warn("Could not query active tab", map[string]interface{}{
			"error": err.Error(),
		})
		return domain.NoOp, nil
	}
	if domain.DomainFromURL(tab.URL) != domainName {
		// focus moved to another site before the change arrived
		return domain.NoOp, nil
	}
	if !e.acquire(tab.ID) {
		return domain.NoOp, nil
	}
	defer e.release(tab.ID)

	return e.tryEnter(ctx, host, tab), nil
}

// HandleTabFocusChanged refreshes the badge for a newly focused tab. It never toggles.
func (e *Engine) HandleTabFocusChanged(ctx context.Context, host interfaces.Host, tab domain.TabView) (bool, error) {
	domainName := domain.DomainFromURL(tab.URL)
	if domain.IsInternalPage(tab.URL) || domainName == "" {
		e.setBadge(ctx, host, false)
		return false, nil
	}

	enabled, err := e.prefs.IsEnabled(ctx, domainName)
	if err != nil {
		return false, err
	}
	e.setBadge(ctx, host, enabled)
	return enabled, nil
}

// DomainState reports the active tab's domain and its preference for the settings panel.
func (e *Engine) DomainState(ctx context.Context, host interfaces.Host) (domain.DomainState, error) {
	tab, err := host.ActiveTab(ctx)
	if err != nil {
		return domain.DomainState{}, err
	}
	if domain.IsInternalPage(tab.URL) {
		return domain.DomainState{Valid: false}, nil
	}
	domainName := domain.DomainFromURL(tab.URL)
	if domainName == "" {
		return domain.DomainState{Valid: false}, nil
	}

	enabled, err := e.prefs.IsEnabled(ctx, domainName)
	if err != nil {
		return domain.DomainState{}, err
	}
	e.setBadge(ctx, host, enabled)

	return domain.DomainState{
		Valid:   true,
		Domain:  domainName,
		Enabled: enabled,
	}, nil
}

// tryEnter decides enter/exit/no-op for a tab whose domain is enabled.
func (e *Engine) tryEnter(ctx context.Context, host interfaces.Host, tab domain.TabView) domain.ToggleDecision {
	if domain.IsInternalPage(tab.URL) {
		return domain.NoOp
	}
	canonical := domain.UnwrapReaderURL(tab.URL)
	if domain.DomainFromURL(canonical) == "" {
		return domain.NoOp
	}
	readingURL := domain.WrapReaderURL(canonical)

	switch {
	case tab.IsInReadingMode:
		e.history.Insert(readingURL)
		return domain.NoOp

	case e.history.Contains(readingURL):
		// the user left reading mode for this page, don't bounce them back
		e.logger.Info("Was previously in reading mode, not re-entering", map[string]interface{}{
			"tab_id": tab.ID,
			"url":    canonical,
		})
		e.history.Remove(readingURL)
		return domain.ExitNoAction

	case domain.IsHomePage(canonical):
		return domain.NoOp
	}

	e.history.Insert(readingURL)
	e.logger.Info("Toggling reading mode", map[string]interface{}{
		"tab_id":       tab.ID,
		"url":          canonical,
		"history_size": e.history.Len(),
	})
	if err := host.ToggleReadingMode(ctx, tab.ID); err != nil {
		e.logHostError("toggleReadingMode", tab.ID, err)
	}
	return domain.EnterReadingMode
}

func (e *Engine) setBadge(ctx context.Context, host interfaces.Host, enabled bool) {
	if err := host.SetBadge(ctx, domain.BadgeFor(enabled)); err != nil {
		e.logHostError("setBadge", 0, err)
	}
}

func (e *Engine) logHostError(command string, tabID int, err error) {
	fields := map[string]interface{}{
		"command": command,
		"tab_id":  tabID,
		"error":   err.Error(),
	}
	if coreerrors.IsHostCommandRejected(err) {
		e.logger.Warn("Host rejected command", fields)
		return
	}
	e.logger.Error("Host command failed", fields)
}

// acquire marks a decision in flight for tabID. It returns false if one already is.
func (e *Engine) acquire(tabID int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, busy := e.inFlight[tabID]; busy {
		e.logger.Debug("Decision already in flight for tab, dropping event", map[string]interface{}{
			"tab_id": tabID,
		})
		return false
	}
	e.inFlight[tabID] = struct{}{}
	return true
}

func (e *Engine) release(tabID int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inFlight, tabID)
}

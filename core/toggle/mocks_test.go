package toggle

import (
	"context"
	"sync"

	"autoreader-api/core/domain"
)

// mockHost records the commands the engine issues
type mockHost struct {
	mu             sync.Mutex
	activeTab      domain.TabView
	activeTabErr   error
	toggleErr      error
	toggled        []int
	badges         []domain.Badge
	beforeActiveFn func()
}

func (m *mockHost) ActiveTab(ctx context.Context) (domain.TabView, error) {
	if m.beforeActiveFn != nil {
		m.beforeActiveFn()
	}
	return m.activeTab, m.activeTabErr
}

func (m *mockHost) ToggleReadingMode(ctx context.Context, tabID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.toggled = append(m.toggled, tabID)
	return m.toggleErr
}

func (m *mockHost) SetBadge(ctx context.Context, badge domain.Badge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.badges = append(m.badges, badge)
	return nil
}

func (m *mockHost) lastBadge() (domain.Badge, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.badges) == 0 {
		return domain.Badge{}, false
	}
	return m.badges[len(m.badges)-1], true
}

// mockPrefs is an in-memory preference store with failure injection
type mockPrefs struct {
	mu          sync.Mutex
	domains     map[string]bool
	err         error
	isEnabledFn func(domain string)
	lookups     int
}

func newMockPrefs(enabled ...string) *mockPrefs {
	m := &mockPrefs{domains: make(map[string]bool)}
	for _, d := range enabled {
		m.domains[d] = true
	}
	return m
}

func (m *mockPrefs) IsEnabled(ctx context.Context, d string) (bool, error) {
	if m.isEnabledFn != nil {
		m.isEnabledFn(d)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
	if m.err != nil {
		return false, m.err
	}
	return m.domains[d], nil
}

func (m *mockPrefs) Enable(ctx context.Context, d string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.domains[d] = true
	return nil
}

func (m *mockPrefs) Disable(ctx context.Context, d string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.domains, d)
	return nil
}

func (m *mockPrefs) InitializeIfEmpty(ctx context.Context) error { return m.err }

func (m *mockPrefs) Domains(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.domains))
	for d := range m.domains {
		out = append(out, d)
	}
	return out, m.err
}

func (m *mockPrefs) ReplaceAll(ctx context.Context, domains []string) ([]string, error) {
	return domains, m.err
}

// mockLogger collects warnings so tests can assert on them
type mockLogger struct {
	mu       sync.Mutex
	warnings []string
	errors   []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, msg)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}

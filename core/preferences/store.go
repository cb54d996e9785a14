// ABOUTME: Persistent allow-list of domains that auto-enter reading mode
// ABOUTME: Stores a JSON array of domains under a single key in the backing cache

package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	coreerrors "autoreader-api/core/errors"
	"autoreader-api/core/interfaces"
)

// CollectionKey is the key the domain list is persisted under
const CollectionKey = "enabledDomains"

// Store implements interfaces.PreferenceStore over a key-value cache.
// Writers hold mu across the whole load and save so concurrent changes
// within one process are not lost.
type Store struct {
	mu     sync.Mutex
	cache  interfaces.Cache
	logger interfaces.Logger
}

// NewStore creates a preference store backed by cache
func NewStore(cache interfaces.Cache, logger interfaces.Logger) *Store {
	return &Store{
		cache:  cache,
		logger: logger,
	}
}

// IsEnabled reports whether domain is on the allow-list.
// The empty domain is never enabled and never looked up.
func (s *Store) IsEnabled(ctx context.Context, domain string) (bool, error) {
	if domain == "" {
		return false, nil
	}

	domains, _, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	enabled := indexOf(domains, domain) >= 0
	s.logger.Debug("Checked domain preference", map[string]interface{}{
		"domain":  domain,
		"enabled": enabled,
	})
	return enabled, nil
}

// Enable adds domain to the allow-list. Adding a present domain is a no-op.
func (s *Store) Enable(ctx context.Context, domain string) error {
	if domain == "" {
		return &coreerrors.ValidationError{Field: "domain", Message: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	domains, _, err := s.load(ctx)
	if err != nil {
		return err
	}
	if indexOf(domains, domain) >= 0 {
		return nil
	}

	s.logger.Info("Adding domain", map[string]interface{}{
		"domain": domain,
	})
	return s.save(ctx, append(domains, domain))
}

// Disable removes domain from the allow-list. Removing an absent domain is a no-op.
func (s *Store) Disable(ctx context.Context, domain string) error {
	if domain == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	domains, _, err := s.load(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(domains, domain)
	if idx < 0 {
		return nil
	}

	s.logger.Info("Removing domain", map[string]interface{}{
		"domain": domain,
	})
	remaining := append(domains[:idx:idx], domains[idx+1:]...)
	return s.save(ctx, remaining)
}

// InitializeIfEmpty creates an empty collection when none has ever been stored.
// An existing collection, even an empty one, is left untouched.
func (s *Store) InitializeIfEmpty(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, found, err := s.load(ctx)
	if err != nil {
		return err
	}
	if found {
		s.logger.Debug("Storage already initialized", nil)
		return nil
	}

	s.logger.Info("Initializing storage", map[string]interface{}{
		"key": CollectionKey,
	})
	return s.save(ctx, []string{})
}

// Domains returns the current allow-list
func (s *Store) Domains(ctx context.Context) ([]string, error) {
	domains, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return domains, nil
}

// ReplaceAll overwrites the allow-list with domains, dropping blanks and duplicates.
// It returns the list as stored.
func (s *Store) ReplaceAll(ctx context.Context, domains []string) ([]string, error) {
	cleaned := make([]string, 0, len(domains))
	for _, d := range domains {
		if d == "" || indexOf(cleaned, d) >= 0 {
			continue
		}
		cleaned = append(cleaned, d)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("Saving domains list", map[string]interface{}{
		"count": len(cleaned),
	})
	if err := s.save(ctx, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}

// load reads the collection. found is false when the key has never been written.
func (s *Store) load(ctx context.Context) ([]string, bool, error) {
	data, err := s.cache.Get(ctx, CollectionKey)
	if errors.Is(err, interfaces.ErrNotFound) {
		return []string{}, false, nil
	}
	if err != nil {
		s.logger.Error("Failed to read domain preferences", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, false, &coreerrors.StorageUnavailableError{Op: "read " + CollectionKey, Cause: err}
	}

	var domains []string
	if err := json.Unmarshal(data, &domains); err != nil {
		s.logger.Error("Failed to decode domain preferences", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, true, &coreerrors.StorageUnavailableError{
			Op:    "decode " + CollectionKey,
			Cause: fmt.Errorf("corrupt collection: %w", err),
		}
	}
	if domains == nil {
		domains = []string{}
	}
	return dedupe(domains), true, nil
}

func (s *Store) save(ctx context.Context, domains []string) error {
	data, err := json.Marshal(domains)
	if err != nil {
		return err
	}
	if err := s.cache.Set(ctx, CollectionKey, data, 0); err != nil {
		s.logger.Error("Failed to write domain preferences", map[string]interface{}{
			"error": err.Error(),
		})
		return &coreerrors.StorageUnavailableError{Op: "write " + CollectionKey, Cause: err}
	}
	return nil
}

func indexOf(domains []string, domain string) int {
	for i, d := range domains {
		if d == domain {
			return i
		}
	}
	return -1
}

// dedupe drops blanks and repeats a backing medium may hold from older writers
func dedupe(domains []string) []string {
	out := domains[:0]
	for _, d := range domains {
		if d == "" || indexOf(out, d) >= 0 {
			continue
		}
		out = append(out, d)
	}
	return out
}

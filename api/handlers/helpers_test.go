package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"autoreader-api/api/dto/responses"
	"autoreader-api/core/history"
	"autoreader-api/core/preferences"
	"autoreader-api/core/toggle"
	"autoreader-api/infrastructure/cache/memory"
	"autoreader-api/infrastructure/logger/structured"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"
)

// failingCache always reports the backend as down
type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (failingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.New("connection refused")
}

func (failingCache) Delete(ctx context.Context, key string) error {
	return errors.New("connection refused")
}

type testEnv struct {
	api   humatest.TestAPI
	prefs *preferences.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithStore(t, preferences.NewStore(memory.NewMemoryCache(), structured.NewQuietLogger()))
}

func newTestEnvWithStore(t *testing.T, prefs *preferences.Store) *testEnv {
	t.Helper()

	hist, err := history.New(history.Options{})
	require.NoError(t, err)

	logger := structured.NewQuietLogger()
	engine := toggle.NewEngine(prefs, hist, logger)

	_, api := humatest.New(t)
	NewEventHandler(engine).RegisterRoutes(api)
	panel := NewPanelHandler(engine, prefs)
	panel.RegisterRoutes(api)
	panel.RegisterPreferenceRoutes(api)
	NewHealthHandler(prefs, logger).RegisterRoutes(api)

	return &testEnv{api: api, prefs: prefs}
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out), resp.Body.String())
	return out
}

func badgeCommand(t *testing.T, cmd responses.CommandResponse) responses.BadgeResponse {
	t.Helper()
	require.Equal(t, "setBadge", cmd.Type)
	require.NotNil(t, cmd.Badge)
	return *cmd.Badge
}

func newFailingStore() *preferences.Store {
	return preferences.NewStore(failingCache{}, structured.NewQuietLogger())
}

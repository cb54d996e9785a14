// ABOUTME: Settings panel handlers for the Huma API
// ABOUTME: Reports the active tab's domain state and manages the enabled domain list

package handlers

import (
	"context"
	"net/http"

	"autoreader-api/api/dto/mappers"
	"autoreader-api/api/dto/requests"
	"autoreader-api/api/dto/responses"
	"autoreader-api/core/interfaces"
	"autoreader-api/infrastructure/host/outbox"
	"github.com/danielgtaylor/huma/v2"
)

// PanelHandler serves the extension's settings panel
type PanelHandler struct {
	engine interfaces.ToggleService
	prefs  interfaces.PreferenceStore
}

// NewPanelHandler creates a new panel handler
func NewPanelHandler(engine interfaces.ToggleService, prefs interfaces.PreferenceStore) *PanelHandler {
	return &PanelHandler{
		engine: engine,
		prefs:  prefs,
	}
}

// RegisterRoutes registers the panel state route
func (h *PanelHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "panelState",
		Method:      http.MethodPost,
		Path:        "/v1/panel/state",
		Summary:     "Get the active tab's domain state",
		Description: "Returns the domain of the active tab and whether auto reading mode is enabled for it",
		Tags:        []string{"Panel"},
	}, h.PanelState)
}

// RegisterPreferenceRoutes registers the bulk preference list routes
func (h *PanelHandler) RegisterPreferenceRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listPreferences",
		Method:      http.MethodGet,
		Path:        "/v1/preferences",
		Summary:     "List enabled domains",
		Tags:        []string{"Panel"},
	}, h.ListPreferences)

	huma.Register(api, huma.Operation{
		OperationID: "replacePreferences",
		Method:      http.MethodPut,
		Path:        "/v1/preferences",
		Summary:     "Replace the enabled domain list",
		Description: "Blank and duplicate entries are dropped. Returns the stored list.",
		Tags:        []string{"Panel"},
	}, h.ReplacePreferences)
}

// PanelStateInput defines the input for the PanelState operation
type PanelStateInput struct {
	Body requests.PanelStateRequest
}

// PanelStateOutput defines the output for the PanelState operation
type PanelStateOutput struct {
	Body responses.PanelStateResponse
}

// PanelState handles POST /v1/panel/state
func (h *PanelHandler) PanelState(ctx context.Context, input *PanelStateInput) (*PanelStateOutput, error) {
	tab := mappers.ToTabView(input.Body.ActiveTab)
	host := outbox.New(&tab)

	state, err := h.engine.DomainState(ctx, host)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &PanelStateOutput{
		Body: responses.PanelStateResponse{
			Valid:    state.Valid,
			Domain:   state.Domain,
			Enabled:  state.Enabled,
			Commands: mappers.ToCommandResponses(host.Commands()),
		},
	}, nil
}

// PreferencesOutput defines the output for preference list operations
type PreferencesOutput struct {
	Body responses.PreferencesResponse
}

// ListPreferences handles GET /v1/preferences
func (h *PanelHandler) ListPreferences(ctx context.Context, input *struct{}) (*PreferencesOutput, error) {
	domains, err := h.prefs.Domains(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &PreferencesOutput{Body: mappers.ToPreferencesResponse(domains)}, nil
}

// ReplacePreferencesInput defines the input for the ReplacePreferences operation
type ReplacePreferencesInput struct {
	Body requests.ReplacePreferencesRequest
}

// ReplacePreferences handles PUT /v1/preferences
func (h *PanelHandler) ReplacePreferences(ctx context.Context, input *ReplacePreferencesInput) (*PreferencesOutput, error) {
	domains, err := h.prefs.ReplaceAll(ctx, input.Body.Domains)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &PreferencesOutput{Body: mappers.ToPreferencesResponse(domains)}, nil
}

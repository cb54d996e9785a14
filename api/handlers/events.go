// ABOUTME: Extension event handlers for the Huma API
// ABOUTME: Runs each browser signal through the toggle engine and returns queued commands

package handlers

import (
	"context"
	"net/http"

	"autoreader-api/api/dto/mappers"
	"autoreader-api/api/dto/requests"
	"autoreader-api/api/dto/responses"
	"autoreader-api/core/domain"
	"autoreader-api/core/interfaces"
	"autoreader-api/infrastructure/host/outbox"
	"github.com/danielgtaylor/huma/v2"
)

// EventHandler handles signals forwarded by the extension's background script
type EventHandler struct {
	engine interfaces.ToggleService
}

// NewEventHandler creates a new event handler
func NewEventHandler(engine interfaces.ToggleService) *EventHandler {
	return &EventHandler{engine: engine}
}

// RegisterRoutes registers all event routes
func (h *EventHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "articleDetected",
		Method:      http.MethodPost,
		Path:        "/v1/events/article-detected",
		Summary:     "Report a loaded article",
		Description: "Decides whether the tab should enter reading mode and returns the commands to run",
		Tags:        []string{"Events"},
	}, h.ArticleDetected)

	huma.Register(api, huma.Operation{
		OperationID: "tabFocusChanged",
		Method:      http.MethodPost,
		Path:        "/v1/events/tab-focus",
		Summary:     "Report a tab or window focus change",
		Description: "Refreshes the toolbar badge for the focused tab. Never toggles reading mode.",
		Tags:        []string{"Events"},
	}, h.TabFocusChanged)

	huma.Register(api, huma.Operation{
		OperationID: "preferenceChanged",
		Method:      http.MethodPost,
		Path:        "/v1/events/preference-changed",
		Summary:     "Enable or disable a domain",
		Description: "Updates the domain preference. Enabling may put the active tab into reading mode.",
		Tags:        []string{"Events"},
	}, h.PreferenceChanged)
}

// ArticleDetectedInput defines the input for the ArticleDetected operation
type ArticleDetectedInput struct {
	Body requests.ArticleDetectedRequest
}

// DecisionOutput defines the output for decision-producing operations
type DecisionOutput struct {
	Body responses.DecisionResponse
}

// ArticleDetected handles POST /v1/events/article-detected
func (h *EventHandler) ArticleDetected(ctx context.Context, input *ArticleDetectedInput) (*DecisionOutput, error) {
	tab := mappers.ToTabView(input.Body.Tab)
	host := outbox.New(&tab)

	decision, err := h.engine.HandleArticleDetected(ctx, host, tab)
	if err != nil {
		return nil, toHumaError(err)
	}

	return decisionOutput(decision, host), nil
}

// TabFocusInput defines the input for the TabFocusChanged operation
type TabFocusInput struct {
	Body requests.TabFocusRequest
}

// TabFocusOutput defines the output for the TabFocusChanged operation
type TabFocusOutput struct {
	Body responses.TabFocusResponse
}

// TabFocusChanged handles POST /v1/events/tab-focus
func (h *EventHandler) TabFocusChanged(ctx context.Context, input *TabFocusInput) (*TabFocusOutput, error) {
	tab := mappers.ToTabView(input.Body.Tab)
	host := outbox.New(&tab)

	enabled, err := h.engine.HandleTabFocusChanged(ctx, host, tab)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &TabFocusOutput{
		Body: responses.TabFocusResponse{
			Enabled:  enabled,
			Commands: mappers.ToCommandResponses(host.Commands()),
		},
	}, nil
}

// PreferenceChangedInput defines the input for the PreferenceChanged operation
type PreferenceChangedInput struct {
	Body requests.PreferenceChangedRequest
}

// PreferenceChanged handles POST /v1/events/preference-changed
func (h *EventHandler) PreferenceChanged(ctx context.Context, input *PreferenceChangedInput) (*DecisionOutput, error) {
	var active *domain.TabView
	if input.Body.ActiveTab != nil {
		tab := mappers.ToTabView(*input.Body.ActiveTab)
		active = &tab
	}
	host := outbox.New(active)

	decision, err := h.engine.HandlePreferenceChanged(ctx, host, input.Body.Domain, input.Body.Enabled)
	if err != nil {
		return nil, toHumaError(err)
	}

	return decisionOutput(decision, host), nil
}

func decisionOutput(decision domain.ToggleDecision, host *outbox.Host) *DecisionOutput {
	return &DecisionOutput{
		Body: responses.DecisionResponse{
			Decision: string(decision),
			Commands: mappers.ToCommandResponses(host.Commands()),
		},
	}
}

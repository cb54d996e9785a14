// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports whether the preference store is reachable

package handlers

import (
	"context"
	"net/http"

	"autoreader-api/api/dto/responses"
	"autoreader-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler reports service health
type HealthHandler struct {
	prefs  interfaces.PreferenceStore
	logger interfaces.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(prefs interfaces.PreferenceStore, logger interfaces.Logger) *HealthHandler {
	return &HealthHandler{prefs: prefs, logger: logger}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles GET /health. A store outage degrades the status but still returns 200
// so load balancers keep routing badge-only traffic.
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{Body: responses.HealthResponse{Status: "ok", Store: "ok"}}

	if _, err := h.prefs.Domains(ctx); err != nil {
		h.logger.Warn("Health check could not read preference store", map[string]interface{}{
			"error": err.Error(),
		})
		out.Body.Status = "degraded"
		out.Body.Store = "unavailable"
	}

	return out, nil
}

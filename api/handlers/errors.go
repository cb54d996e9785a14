// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"autoreader-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	// The extension retries the event later; the decision was not made
	if errors.IsStorageUnavailable(err) {
		return huma.Error503ServiceUnavailable("Preference store unavailable", err)
	}

	if errors.IsHostCommandRejected(err) {
		return huma.Error409Conflict("Tab rejected the command", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}

// Package api provides the HTTP API layer for the auto reader view service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Request Model
//
// The browser extension forwards each tab signal as a POST. The handler
// builds a per-request host from the tab snapshot in the body, runs the
// toggle engine, and returns the commands the engine issued:
//
//	POST /v1/events/article-detected
//	{"tab": {"id": 7, "url": "https://example.com/post", "isArticle": true}}
//
//	200 OK
//	{"decision": "enter", "commands": [
//	    {"type": "setBadge", "badge": {"text": "✓", "color": "green"}},
//	    {"type": "toggleReadingMode", "tabId": 7}
//	]}
//
// The extension executes commands in order.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:    logger,
//	    RateLimit: 20,
//	    RateBurst: 40,
//	})
//
//	handlers.NewEventHandler(engine).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 format. An unreachable preference store maps to
// 503 so the extension can retry the event.
package api

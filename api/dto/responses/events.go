// ABOUTME: Response DTOs for extension event and settings panel endpoints
// ABOUTME: Each response carries the commands the extension must execute

package responses

// BadgeResponse is the toolbar badge to display
type BadgeResponse struct {
	Text  string `json:"text" doc:"Badge text, empty to clear"`
	Color string `json:"color" doc:"Badge background color, empty to clear"`
}

// CommandResponse is one host action queued while handling the request
type CommandResponse struct {
	Type  string         `json:"type" enum:"toggleReadingMode,setBadge" doc:"Command to execute"`
	TabID int            `json:"tabId,omitempty" doc:"Target tab for toggleReadingMode"`
	Badge *BadgeResponse `json:"badge,omitempty" doc:"Badge for setBadge"`
}

// DecisionResponse reports the toggle decision for an event
type DecisionResponse struct {
	Decision string            `json:"decision" enum:"enter,exit_no_action,noop" doc:"Toggle decision"`
	Commands []CommandResponse `json:"commands" doc:"Commands to execute in order"`
}

// TabFocusResponse reports the preference of the focused tab's domain
type TabFocusResponse struct {
	Enabled  bool              `json:"enabled" doc:"Auto reading mode is enabled for the tab's domain"`
	Commands []CommandResponse `json:"commands" doc:"Commands to execute in order"`
}

// PanelStateResponse describes the active tab's domain for the settings panel
type PanelStateResponse struct {
	Valid    bool              `json:"valid" doc:"Tab has a domain that can be toggled"`
	Domain   string            `json:"domain,omitempty" doc:"Domain of the active tab"`
	Enabled  bool              `json:"enabled" doc:"Auto reading mode is enabled for the domain"`
	Commands []CommandResponse `json:"commands" doc:"Commands to execute in order"`
}

// PreferencesResponse lists the enabled domains
type PreferencesResponse struct {
	Domains []string `json:"domains" doc:"Enabled domains"`
}

// HealthResponse reports service status
type HealthResponse struct {
	Status string `json:"status" enum:"ok,degraded" doc:"Overall status"`
	Store  string `json:"store" enum:"ok,unavailable" doc:"Preference store status"`
}

// ABOUTME: Request DTOs for extension event and settings panel endpoints
// ABOUTME: Carries the tab snapshot the background script observed

package requests

// TabRequest is the extension's view of one browser tab
type TabRequest struct {
	// ID is the browser tab ID
	ID int `json:"id" doc:"Browser tab ID"`

	// URL is the tab's current URL, possibly a reading-mode URL
	URL string `json:"url" maxLength:"8192" doc:"Current tab URL"`

	// IsInReadingMode is true when the tab currently shows the reading view
	IsInReadingMode bool `json:"isInReadingMode,omitempty" doc:"Tab is showing the reading view"`

	// IsArticle is true when the browser detected article content
	IsArticle bool `json:"isArticle,omitempty" doc:"Browser detected an article"`
}

// ArticleDetectedRequest is sent when the browser reports reader-mode availability
type ArticleDetectedRequest struct {
	Tab TabRequest `json:"tab" doc:"Tab that finished loading"`
}

// TabFocusRequest is sent when the active tab or window changes
type TabFocusRequest struct {
	Tab TabRequest `json:"tab" doc:"Newly focused tab"`
}

// PreferenceChangedRequest is sent when the user toggles a domain in the panel
type PreferenceChangedRequest struct {
	// ActiveTab is the focused tab; without it enabling a domain only updates the store
	ActiveTab *TabRequest `json:"activeTab,omitempty" doc:"Currently focused tab"`

	Domain  string `json:"domain" minLength:"1" maxLength:"253" doc:"Domain whose preference changed"`
	Enabled bool   `json:"enabled" doc:"New preference value"`
}

// PanelStateRequest is sent when the settings panel opens
type PanelStateRequest struct {
	ActiveTab TabRequest `json:"activeTab" doc:"Currently focused tab"`
}

// ReplacePreferencesRequest overwrites the enabled domain list
type ReplacePreferencesRequest struct {
	Domains []string `json:"domains" maxItems:"10000" doc:"Complete list of enabled domains"`
}

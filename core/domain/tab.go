// ABOUTME: Domain models for browser tabs and the decisions taken on them
// ABOUTME: Defines TabView, ToggleDecision and the outbound host commands

package domain

// TabView is the host's snapshot of a tab at the time an event fires.
// The core never keeps it beyond a single decision.
type TabView struct {
	ID              int    `json:"id" doc:"Host tab identifier"`
	URL             string `json:"url" doc:"Current URL, possibly in reading-mode form"`
	IsInReadingMode bool   `json:"isInReadingMode" doc:"Whether the host reports the tab in reading mode"`
	IsArticle       bool   `json:"isArticle,omitempty" doc:"Whether the host detected article content"`
}

// ToggleDecision is the outcome of one decision for one tab
type ToggleDecision string

const (
	// EnterReadingMode means a toggle command was issued for the tab
	EnterReadingMode ToggleDecision = "enter"

	// ExitNoAction means the user just left reading mode for this URL; nothing is done
	ExitNoAction ToggleDecision = "exit_no_action"

	// NoOp means the tab is left alone
	NoOp ToggleDecision = "noop"
)

// CommandType names an outbound host command
type CommandType string

const (
	CommandToggleReadingMode CommandType = "toggleReadingMode"
	CommandSetBadge          CommandType = "setBadge"
)

// Command is an instruction for the host to execute
type Command struct {
	Type  CommandType `json:"type" enum:"toggleReadingMode,setBadge"`
	TabID int         `json:"tabId,omitempty"`
	Badge *Badge      `json:"badge,omitempty"`
}

// DomainState is what the settings panel shows for the active tab
type DomainState struct {
	Valid   bool   `json:"valid"`
	Domain  string `json:"domain,omitempty"`
	Enabled bool   `json:"enabled"`
}

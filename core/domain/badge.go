package domain

// Badge is the text and background color of the extension icon badge
type Badge struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// BadgeFor returns the badge shown for a domain's enabled state.
// An empty color means the host default.
func BadgeFor(enabled bool) Badge {
	if enabled {
		return Badge{Text: "✓", Color: "green"}
	}
	return Badge{}
}

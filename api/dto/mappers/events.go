// ABOUTME: Maps between transport DTOs and core domain types
// ABOUTME: Keeps handlers free of field-by-field copying

package mappers

import (
	"autoreader-api/api/dto/requests"
	"autoreader-api/api/dto/responses"
	"autoreader-api/core/domain"
)

// ToTabView converts a tab DTO to the domain type
func ToTabView(r requests.TabRequest) domain.TabView {
	return domain.TabView{
		ID:              r.ID,
		URL:             r.URL,
		IsInReadingMode: r.IsInReadingMode,
		IsArticle:       r.IsArticle,
	}
}

// ToCommandResponses converts queued host commands. Never returns nil so the
// JSON field is always an array.
func ToCommandResponses(cmds []domain.Command) []responses.CommandResponse {
	out := make([]responses.CommandResponse, 0, len(cmds))
	for _, c := range cmds {
		resp := responses.CommandResponse{
			Type:  string(c.Type),
			TabID: c.TabID,
		}
		if c.Badge != nil {
			resp.Badge = &responses.BadgeResponse{
				Text:  c.Badge.Text,
				Color: c.Badge.Color,
			}
		}
		out = append(out, resp)
	}
	return out
}

// ToPreferencesResponse wraps a domain list, normalizing nil to empty
func ToPreferencesResponse(domains []string) responses.PreferencesResponse {
	if domains == nil {
		domains = []string{}
	}
	return responses.PreferencesResponse{Domains: domains}
}

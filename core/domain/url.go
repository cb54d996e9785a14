// ABOUTME: URL normalization for reading-mode pages
// ABOUTME: Wrapping, unwrapping, domain extraction and page classification

package domain

import (
	"net/url"
	"regexp"
	"strings"
)

// ReaderPrefix is the scheme prefix the host uses for reading-mode pages.
const ReaderPrefix = "about:reader"

const readerURLPrefix = ReaderPrefix + "?url="

var authorityPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://([^/?#]+)`)

// internal page schemes that never carry site content
var internalPrefixes = []string{
	"about:",
	"chrome:",
	"chrome-extension:",
	"moz-extension:",
	"resource:",
	"view-source:",
	"edge:",
}

// IsReaderURL reports whether raw is already in reading-mode form.
func IsReaderURL(raw string) bool {
	return strings.HasPrefix(raw, ReaderPrefix)
}

// WrapReaderURL returns the reading-mode form of raw. Already wrapped URLs are returned as is.
func WrapReaderURL(raw string) string {
	if IsReaderURL(raw) {
		return raw
	}
	return readerURLPrefix + encodeURIComponent(raw)
}

// UnwrapReaderURL returns the canonical URL behind a reading-mode URL.
// Non reading-mode URLs are returned unchanged.
func UnwrapReaderURL(raw string) string {
	if !IsReaderURL(raw) {
		return raw
	}
	inner := strings.TrimPrefix(raw, readerURLPrefix)
	if inner == raw {
		// about:reader without a url parameter
		return raw
	}
	decoded, err := url.PathUnescape(inner)
	if err != nil {
		return inner
	}
	return decoded
}

// DomainFromURL extracts the authority of raw after unwrapping reading-mode form.
// Returns "" when raw has no recognizable authority; callers treat that as ineligible.
func DomainFromURL(raw string) string {
	_, end, domain := authority(UnwrapReaderURL(raw))
	if end < 0 {
		return ""
	}
	return domain
}

// IsHomePage reports whether raw points at the bare site root.
// The path following the authority must be shorter than two characters.
func IsHomePage(raw string) bool {
	canonical := UnwrapReaderURL(raw)
	_, end, _ := authority(canonical)
	if end < 0 {
		return false
	}
	return len(canonical[end:]) < 2
}

// IsInternalPage reports whether raw is a browser-internal page that is not a reading-mode page.
func IsInternalPage(raw string) bool {
	if IsReaderURL(raw) {
		return false
	}
	lower := strings.ToLower(raw)
	for _, prefix := range internalPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// authority returns the start and end offsets of the authority in raw and its value.
// end is -1 when there is none.
func authority(raw string) (int, int, string) {
	loc := authorityPattern.FindStringSubmatchIndex(raw)
	if loc == nil || loc[2] == loc[3] {
		return -1, -1, ""
	}
	return loc[2], loc[3], raw[loc[2]:loc[3]]
}

// componentUnescaper undoes the escapes QueryEscape applies to characters
// encodeURIComponent leaves literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes s the way browsers do for a URL query component.
func encodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

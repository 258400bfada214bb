package domain

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	PlaceholderPage = "suspended.html"
	OptionsPage     = "options.html"

	googleFaviconURL = "https://www.google.com/s2/favicons?sz=32&domain="
)

// FaviconMode controls how the placeholder page renders the tab icon
type FaviconMode string

const (
	// FaviconModeNoDim shows the actual icon as is
	FaviconModeNoDim FaviconMode = "no_dim"
	// FaviconModeGoogle shows a dimmed icon looked up by domain
	FaviconModeGoogle FaviconMode = "google"
	// FaviconModeActual shows the actual icon dimmed
	FaviconModeActual FaviconMode = "actual"
)

// Valid reports whether m is a known favicon mode
func (m FaviconMode) Valid() bool {
	switch m {
	case FaviconModeNoDim, FaviconModeGoogle, FaviconModeActual:
		return true
	}
	return false
}

// SuspendedURL is everything needed to rebuild a suspended tab.
//
// Icon has three states: nil means derive the icon from the page domain,
// an empty string means no icon, anything else is an icon URL or data URI.
type SuspendedURL struct {
	URI            string
	Title          string
	ScrollPosition int
	Icon           *string
	Update         bool
}

// Hash encodes the value as a placeholder URL fragment, including the leading '#'
func (s SuspendedURL) Hash() string {
	var b strings.Builder
	b.WriteString("#uri=")
	b.WriteString(url.QueryEscape(s.URI))
	b.WriteString("&ttl=")
	b.WriteString(url.QueryEscape(s.Title))
	b.WriteString("&pos=")
	b.WriteString(strconv.Itoa(s.ScrollPosition))
	if s.Icon != nil {
		b.WriteString("&icon=")
		b.WriteString(url.QueryEscape(*s.Icon))
	}
	if s.Update {
		b.WriteString("&update=update")
	}
	return b.String()
}

// WithoutUpdateFlag drops the update flag from a placeholder address. The
// placeholder page removes it from its own address once it has refreshed.
func WithoutUpdateFlag(raw string) string {
	return strings.Replace(raw, "&update=update", "", 1)
}

// Placeholder returns the full placeholder address rooted at page
func (s SuspendedURL) Placeholder(page string) string {
	return page + s.Hash()
}

// ParseSuspendedURL decodes a placeholder address. It never fails: missing or
// malformed fields fall back to their zero values.
func ParseSuspendedURL(raw string) SuspendedURL {
	var fragment string
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		fragment = raw[i+1:]
	}

	// ParseQuery keeps every well formed pair even when it reports an error
	params, _ := url.ParseQuery(fragment)

	first := func(keys ...string) (string, bool) {
		for _, k := range keys {
			if v, ok := params[k]; ok && len(v) > 0 {
				return v[0], true
			}
		}
		return "", false
	}

	result := SuspendedURL{}
	result.URI, _ = first("uri", "url")
	result.Title, _ = first("ttl", "title")
	if pos, ok := first("pos"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(pos)); err == nil && n > 0 {
			result.ScrollPosition = n
		}
	}
	if icon, ok := first("icon"); ok {
		result.Icon = &icon
	}
	_, result.Update = params["update"]

	return result
}

// Domain returns the host name of the original URI
func (s SuspendedURL) Domain() string {
	u, err := url.Parse(s.URI)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// GetIcon resolves the icon to display and whether it should be dimmed
func (s SuspendedURL) GetIcon(mode FaviconMode, defaultIcon string) (icon string, dim bool) {
	if s.Icon != nil && *s.Icon == "" {
		return defaultIcon, true
	}

	google := googleFaviconURL + s.Domain()
	actual := google
	if s.Icon != nil {
		actual = *s.Icon
	}

	switch mode {
	case FaviconModeNoDim:
		return actual, strings.HasPrefix(actual, "data:image/")
	case FaviconModeGoogle:
		return google, true
	case FaviconModeActual:
		return actual, true
	default:
		return defaultIcon, true
	}
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

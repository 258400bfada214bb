package domain

import (
	"strings"
	"time"
)

// PolicyInput is everything the eligibility policy looks at for one tab
type PolicyInput struct {
	Tab               Tab
	Config            *Configuration
	Device            DeviceStatus
	Record            TabRecord
	PlaceholderPage   string
	FileSchemeAllowed bool

	// FormModified is only called once every cheaper check has passed.
	// A nil func means the page has no unsaved data.
	FormModified func() bool
}

// IsSuspendableURL reports whether rawURL has a scheme a placeholder can stand in for
func IsSuspendableURL(rawURL string, fileSchemeAllowed bool) bool {
	return strings.HasPrefix(rawURL, "http://") ||
		strings.HasPrefix(rawURL, "https://") ||
		(fileSchemeAllowed && strings.HasPrefix(rawURL, "file://"))
}

// IsPlaceholderURL reports whether rawURL is served by the placeholder page.
// Any host matches as long as the installation id and page agree.
func IsPlaceholderURL(rawURL, placeholderPage string) bool {
	if placeholderPage == "" {
		return false
	}
	if strings.HasPrefix(rawURL, placeholderPage) {
		return true
	}

	ownID, ownPage, ok := ParseOriginPage(placeholderPage)
	if !ok {
		return false
	}
	id, page, ok := ParseOriginPage(rawURL)
	return ok && id == ownID && page == ownPage
}

// IsReplaceableURL reports whether a placeholder may take the place of the
// page at rawURL. Pages of any installation never qualify.
func IsReplaceableURL(rawURL string, fileSchemeAllowed bool) bool {
	return IsSuspendableURL(rawURL, fileSchemeAllowed) && !IsOriginPage(rawURL)
}

// classifyBase runs the checks that even a forced suspension honours
func classifyBase(in PolicyInput) (TabStatus, bool) {
	switch {
	case !in.Tab.Valid():
		return TabStatusError, true
	case IsPlaceholderURL(in.Tab.URL, in.PlaceholderPage):
		return TabStatusSuspended, true
	case !IsReplaceableURL(in.Tab.URL, in.FileSchemeAllowed):
		return TabStatusSpecial, true
	}
	return TabStatusNormal, false
}

// Classify maps a tab to exactly one status. Checks run in a fixed order and
// the first match wins.
func Classify(in PolicyInput) TabStatus {
	if status, done := classifyBase(in); done {
		return status
	}

	cfg := in.Config
	if cfg == nil {
		cfg = DefaultConfiguration()
	}
	tab := in.Tab

	switch {
	case !cfg.AutoSuspend():
		return TabStatusDisabled
	case !cfg.AllowedSuspendOnline(in.Device):
		return TabStatusOffline
	case !cfg.AllowedSuspendPower(in.Device):
		return TabStatusPowerConnected
	case tab.Pinned && !cfg.SuspendPinned:
		return TabStatusPinned
	case tab.Audible && !cfg.SuspendPlayingAudio:
		return TabStatusPlayingAudio
	case in.Record.IsPaused || cfg.IsPausedTab(tab.ID):
		return TabStatusSuspendPaused
	case cfg.InWhiteList(tab.URL):
		return TabStatusWhiteList
	case tab.Active && !cfg.SuspendActive:
		return TabStatusActive
	case cfg.NeverSuspendUnsavedData && in.FormModified != nil && in.FormModified():
		return TabStatusUnsavedForm
	}

	return TabStatusNormal
}

// LastInteraction is the most recent of the browser reported access time and
// the internally tracked activation time
func LastInteraction(tab Tab, record TabRecord) time.Time {
	if record.LastAccess.After(tab.LastAccessed) {
		return record.LastAccess
	}
	return tab.LastAccessed
}

// IdleLongEnough reports whether the tab has not been interacted with for at
// least the configured suspend delay
func IdleLongEnough(tab Tab, record TabRecord, cfg *Configuration, now time.Time) bool {
	if tab.LastAccessed.IsZero() {
		return false
	}
	return !LastInteraction(tab, record).After(now.Add(-cfg.SuspendDelayDuration()))
}

// CanSuspend applies the eligibility policy for the given bulk suspend mode
func CanSuspend(in PolicyInput, mode SuspendMode, now time.Time) bool {
	switch mode {
	case SuspendModeAuto:
		if in.Config == nil || !IdleLongEnough(in.Tab, in.Record, in.Config, now) {
			return false
		}
		return Classify(in) == TabStatusNormal
	case SuspendModeNormal:
		return Classify(in) == TabStatusNormal
	case SuspendModeForced:
		_, blocked := classifyBase(in)
		return !blocked
	default:
		return false
	}
}

// ActionIcon returns the icon variant for a status
func ActionIcon(status TabStatus) IconVariant {
	if status == TabStatusNormal {
		return IconActive
	}
	return IconOff
}

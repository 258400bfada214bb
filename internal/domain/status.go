package domain

// TabStatus is the outcome of classifying a tab for suspension
type TabStatus string

const (
	TabStatusNormal         TabStatus = "normal"
	TabStatusSuspended      TabStatus = "suspended"
	TabStatusDisabled       TabStatus = "disabled"
	TabStatusSpecial        TabStatus = "special"
	TabStatusWhiteList      TabStatus = "whitelist"
	TabStatusPlayingAudio   TabStatus = "playing_audio"
	TabStatusUnsavedForm    TabStatus = "unsaved_form"
	TabStatusActive         TabStatus = "active"
	TabStatusPinned         TabStatus = "pinned"
	TabStatusSuspendPaused  TabStatus = "suspend_paused"
	TabStatusOffline        TabStatus = "offline"
	TabStatusPowerConnected TabStatus = "power_connected"
	TabStatusError          TabStatus = "error"
)

var tabStatusDescriptions = map[TabStatus]string{
	TabStatusNormal:         "Tab can be suspended",
	TabStatusSuspended:      "Tab is suspended",
	TabStatusDisabled:       "Automatic suspension is disabled",
	TabStatusSpecial:        "Tab cannot be suspended",
	TabStatusWhiteList:      "Tab is whitelisted",
	TabStatusPlayingAudio:   "Tab is playing audio",
	TabStatusUnsavedForm:    "Tab has unsaved form data",
	TabStatusActive:         "Tab is active",
	TabStatusPinned:         "Tab is pinned",
	TabStatusSuspendPaused:  "Suspension is paused for this tab",
	TabStatusOffline:        "Device is offline",
	TabStatusPowerConnected: "Device is connected to power",
	TabStatusError:          "Tab is invalid",
}

// Description returns a human readable explanation of the status
func (s TabStatus) Description() string {
	if d, ok := tabStatusDescriptions[s]; ok {
		return d
	}
	return string(s)
}

// SuspendMode selects how strictly eligibility is enforced in bulk suspends
type SuspendMode int

const (
	// SuspendModeAuto requires a normal status and an idle tab
	SuspendModeAuto SuspendMode = iota
	// SuspendModeNormal requires a normal status
	SuspendModeNormal
	// SuspendModeForced only requires the tab to be a suspendable page
	SuspendModeForced
)

func (m SuspendMode) String() string {
	switch m {
	case SuspendModeAuto:
		return "auto"
	case SuspendModeNormal:
		return "normal"
	case SuspendModeForced:
		return "forced"
	default:
		return "unknown"
	}
}

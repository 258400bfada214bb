package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func eligibleInput() PolicyInput {
	return PolicyInput{
		Tab: Tab{
			ID:           7,
			WindowID:     1,
			GroupID:      GroupNone,
			URL:          "https://example.com/page",
			Title:        "Example",
			Status:       LoadStatusComplete,
			WindowType:   WindowTypeNormal,
			LastAccessed: time.Now().Add(-2 * time.Hour),
		},
		Config:          DefaultConfiguration(),
		Device:          DeviceStatus{Online: true, PowerOn: true},
		Record:          TabRecord{TabID: 7},
		PlaceholderPage: testPlaceholder,
	}
}

// policyConditions are listed in priority order; each one alone produces its status
var policyConditions = []struct {
	status TabStatus
	apply  func(in *PolicyInput)
}{
	{TabStatusError, func(in *PolicyInput) { in.Tab.ID = 0 }},
	{TabStatusSuspended, func(in *PolicyInput) {
		in.Tab.URL = SuspendedURL{URI: "https://example.com/page"}.Placeholder(testPlaceholder)
	}},
	{TabStatusSpecial, func(in *PolicyInput) { in.Tab.URL = "chrome://example.com/settings" }},
	{TabStatusDisabled, func(in *PolicyInput) { in.Config.SuspendDelay = 0 }},
	{TabStatusOffline, func(in *PolicyInput) { in.Device.Online = false }},
	{TabStatusPowerConnected, func(in *PolicyInput) { in.Config.NeverSuspendWhenPowerOn = true }},
	{TabStatusPinned, func(in *PolicyInput) { in.Tab.Pinned = true }},
	{TabStatusPlayingAudio, func(in *PolicyInput) { in.Tab.Audible = true }},
	{TabStatusSuspendPaused, func(in *PolicyInput) { in.Record.IsPaused = true }},
	{TabStatusWhiteList, func(in *PolicyInput) { in.Config.WhiteList = []string{"example.com"} }},
	{TabStatusActive, func(in *PolicyInput) { in.Tab.Active = true }},
	{TabStatusUnsavedForm, func(in *PolicyInput) { in.FormModified = func() bool { return true } }},
}

func TestClassify_SingleCondition(t *testing.T) {
	assert.Equal(t, TabStatusNormal, Classify(eligibleInput()))

	for _, c := range policyConditions {
		t.Run(string(c.status), func(t *testing.T) {
			in := eligibleInput()
			c.apply(&in)
			assert.Equal(t, c.status, Classify(in))
		})
	}
}

func TestClassify_PairwisePriority(t *testing.T) {
	for i, first := range policyConditions {
		for j := i + 1; j < len(policyConditions); j++ {
			second := policyConditions[j]
			t.Run(fmt.Sprintf("%s_over_%s", first.status, second.status), func(t *testing.T) {
				in := eligibleInput()
				// lower priority first so URL rewrites of the winner stick
				second.apply(&in)
				first.apply(&in)
				assert.Equal(t, first.status, Classify(in))
			})
		}
	}
}

func TestClassify_PinnedWhitelistedUnsaved(t *testing.T) {
	in := eligibleInput()
	in.Tab.Pinned = true
	in.Config.WhiteList = []string{"example.com"}
	in.FormModified = func() bool { return true }

	assert.Equal(t, TabStatusPinned, Classify(in))

	in.Config.SuspendPinned = true
	assert.Equal(t, TabStatusWhiteList, Classify(in))
}

func TestClassify_FormModifiedOnlyCalledWhenNeeded(t *testing.T) {
	calls := 0
	in := eligibleInput()
	in.Tab.Pinned = true
	in.FormModified = func() bool { calls++; return true }

	assert.Equal(t, TabStatusPinned, Classify(in))
	assert.Zero(t, calls)

	in.Tab.Pinned = false
	in.Config.NeverSuspendUnsavedData = false
	assert.Equal(t, TabStatusNormal, Classify(in))
	assert.Zero(t, calls)
}

func TestClassify_PausedFromConfiguration(t *testing.T) {
	in := eligibleInput()
	in.Config.PauseTab(in.Tab.ID)

	assert.Equal(t, TabStatusSuspendPaused, Classify(in))
}

func TestClassify_FileScheme(t *testing.T) {
	in := eligibleInput()
	in.Tab.URL = "file:///tmp/readme.txt"

	assert.Equal(t, TabStatusSpecial, Classify(in))

	in.FileSchemeAllowed = true
	assert.Equal(t, TabStatusNormal, Classify(in))
}

func TestClassify_OriginPages(t *testing.T) {
	ownID := "0123456789abcdef0123456789abcdef"
	otherID := "fedcba9876543210fedcba9876543210"
	target := SuspendedURL{URI: "https://example.com/page", Title: "Example"}
	now := time.Now()

	tests := []struct {
		name     string
		url      string
		expected TabStatus
	}{
		{"options page", NewOrigin("127.0.0.1:7878", ownID).Page(OptionsPage), TabStatusSpecial},
		{"placeholder on another port", target.Placeholder(NewOrigin("127.0.0.1:9999", ownID).PlaceholderPage()), TabStatusSuspended},
		{"placeholder on another host", target.Placeholder(NewOrigin("localhost:7878", ownID).PlaceholderPage()), TabStatusSuspended},
		{"other installation placeholder", target.Placeholder(NewOrigin("127.0.0.1:7878", otherID).PlaceholderPage()), TabStatusSpecial},
		{"other installation options", NewOrigin("127.0.0.1:9999", otherID).Page(OptionsPage), TabStatusSpecial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := eligibleInput()
			in.Tab.URL = tt.url

			assert.Equal(t, tt.expected, Classify(in))
			assert.False(t, CanSuspend(in, SuspendModeAuto, now))
			assert.False(t, CanSuspend(in, SuspendModeNormal, now))
			assert.False(t, CanSuspend(in, SuspendModeForced, now))
		})
	}
}

func TestIsPlaceholderURL(t *testing.T) {
	target := SuspendedURL{URI: "https://example.com/"}

	assert.True(t, IsPlaceholderURL(target.Placeholder(testPlaceholder), testPlaceholder))
	assert.True(t, IsPlaceholderURL(
		target.Placeholder("http://localhost:9999/ext/0123456789abcdef0123456789abcdef/suspended.html"), testPlaceholder))
	assert.False(t, IsPlaceholderURL(
		"http://127.0.0.1:7878/ext/0123456789abcdef0123456789abcdef/options.html", testPlaceholder))
	assert.False(t, IsPlaceholderURL(
		target.Placeholder("http://127.0.0.1:7878/ext/fedcba9876543210fedcba9876543210/suspended.html"), testPlaceholder))
	assert.False(t, IsPlaceholderURL("https://example.com/", testPlaceholder))
	assert.False(t, IsPlaceholderURL(target.Placeholder(testPlaceholder), ""))
}

func TestClassify_Toggles(t *testing.T) {
	tests := []struct {
		name  string
		setup func(in *PolicyInput)
	}{
		{"offline allowed", func(in *PolicyInput) { in.Device.Online = false; in.Config.SuspendOffline = true }},
		{"pinned allowed", func(in *PolicyInput) { in.Tab.Pinned = true; in.Config.SuspendPinned = true }},
		{"audio allowed", func(in *PolicyInput) { in.Tab.Audible = true; in.Config.SuspendPlayingAudio = true }},
		{"active allowed", func(in *PolicyInput) { in.Tab.Active = true; in.Config.SuspendActive = true }},
		{"battery", func(in *PolicyInput) { in.Device.PowerOn = false; in.Config.NeverSuspendWhenPowerOn = true }},
		{"unsaved allowed", func(in *PolicyInput) {
			in.Config.NeverSuspendUnsavedData = false
			in.FormModified = func() bool { return true }
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := eligibleInput()
			tt.setup(&in)
			assert.Equal(t, TabStatusNormal, Classify(in))
		})
	}
}

func TestCanSuspend_AutoTimeGate(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	delay := 60 * time.Minute

	tests := []struct {
		name         string
		lastAccessed time.Time
		recordAccess time.Time
		want         bool
	}{
		{"exactly at threshold", now.Add(-delay), time.Time{}, true},
		{"just before threshold", now.Add(-delay + time.Millisecond), time.Time{}, false},
		{"long idle", now.Add(-3 * delay), time.Time{}, true},
		{"recent interaction not seen by browser", now.Add(-3 * delay), now.Add(-delay / 2), false},
		{"interaction old enough", now.Add(-3 * delay), now.Add(-delay), true},
		{"unknown access time", time.Time{}, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := eligibleInput()
			in.Tab.LastAccessed = tt.lastAccessed
			in.Record.LastAccess = tt.recordAccess

			assert.Equal(t, tt.want, CanSuspend(in, SuspendModeAuto, now))
			assert.True(t, CanSuspend(in, SuspendModeNormal, now))
		})
	}
}

func TestCanSuspend_Modes(t *testing.T) {
	now := time.Now()

	pinned := eligibleInput()
	pinned.Tab.Pinned = true
	assert.False(t, CanSuspend(pinned, SuspendModeAuto, now))
	assert.False(t, CanSuspend(pinned, SuspendModeNormal, now))
	assert.True(t, CanSuspend(pinned, SuspendModeForced, now))

	fresh := eligibleInput()
	fresh.Tab.LastAccessed = now
	assert.False(t, CanSuspend(fresh, SuspendModeAuto, now))
	assert.True(t, CanSuspend(fresh, SuspendModeForced, now))

	for _, c := range policyConditions[:3] {
		in := eligibleInput()
		c.apply(&in)
		assert.False(t, CanSuspend(in, SuspendModeForced, now), c.status)
	}

	assert.False(t, CanSuspend(eligibleInput(), SuspendMode(99), now))
}

func TestActionIcon(t *testing.T) {
	assert.Equal(t, IconActive, ActionIcon(TabStatusNormal))
	assert.Equal(t, IconOff, ActionIcon(TabStatusPinned))
	assert.Equal(t, IconOff, ActionIcon(TabStatusSuspended))
}

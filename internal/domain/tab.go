package domain

import (
	"strings"
	"time"
)

// GroupNone is the group id of a tab that does not belong to a tab group
const GroupNone = -1

// LoadStatus is the loading state reported by the browser for a tab
type LoadStatus string

const (
	LoadStatusLoading  LoadStatus = "loading"
	LoadStatusComplete LoadStatus = "complete"
)

// WindowType is the kind of browser window hosting a tab
type WindowType string

const (
	WindowTypeNormal WindowType = "normal"
	WindowTypePopup  WindowType = "popup"
	WindowTypeApp    WindowType = "app"
)

// Tab is a browser tab as seen by the suspender
type Tab struct {
	ID              int        `json:"id"`
	WindowID        int        `json:"windowId"`
	GroupID         int        `json:"groupId"`
	Index           int        `json:"index"`
	URL             string     `json:"url"`
	Title           string     `json:"title"`
	FavIconURL      string     `json:"favIconUrl"`
	Active          bool       `json:"active"`
	Pinned          bool       `json:"pinned"`
	Audible         bool       `json:"audible"`
	Discarded       bool       `json:"discarded"`
	AutoDiscardable bool       `json:"autoDiscardable"`
	Status          LoadStatus `json:"status"`
	WindowType      WindowType `json:"windowType"`
	LastAccessed    time.Time  `json:"lastAccessed"`
}

// Valid reports whether the tab carries the minimum data needed to act on it
func (t Tab) Valid() bool {
	return t.ID > 0 && t.URL != ""
}

// HasScheme reports whether the tab URL uses one of the given schemes
func (t Tab) HasScheme(schemes ...string) bool {
	for _, s := range schemes {
		if strings.HasPrefix(t.URL, s+"://") {
			return true
		}
	}
	return false
}

// Window is a browser window with its tabs
type Window struct {
	ID      int        `json:"id"`
	Type    WindowType `json:"type"`
	Focused bool       `json:"focused"`
	Tabs    []Tab      `json:"tabs"`
}

// TabRecord is the session-scoped bookkeeping kept per tab
type TabRecord struct {
	TabID      int
	IsPaused   bool
	LastAccess time.Time
}

// DeviceStatus describes the environment a suspension cycle runs in
type DeviceStatus struct {
	Online  bool `json:"online"`
	PowerOn bool `json:"powerOn"`
}

// DefaultDeviceStatus is assumed when the host cannot report anything
var DefaultDeviceStatus = DeviceStatus{Online: true, PowerOn: true}

// PageState is what a one-shot script injection reads from a live page
type PageState struct {
	ScrollPosition int  `json:"scrollPosition"`
	VideoTime      *int `json:"time"`
	FormModified   bool `json:"changedFields"`
}

// IconVariant is the action icon shown for a tab
type IconVariant string

const (
	IconActive IconVariant = "active"
	IconOff    IconVariant = "off"
)

package domain

import (
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"
)

// ConfigurationVersion is the schema version written by this build
const ConfigurationVersion = 2

// Configuration holds the user controlled suspension behaviour
type Configuration struct {
	Version int `json:"version"`

	// Timer is the auto suspend period in minutes. Not user editable.
	Timer int `json:"timer"`
	// SweepInterval is the minimum number of seconds between two sweeps
	SweepInterval int `json:"sweepInterval"`

	SuspendDelay            int         `json:"suspendDelay"`
	SuspendActive           bool        `json:"suspendActive"`
	SuspendPinned           bool        `json:"suspendPinned"`
	SuspendPlayingAudio     bool        `json:"suspendPlayingAudio"`
	SuspendOffline          bool        `json:"suspendOffline"`
	NeverSuspendUnsavedData bool        `json:"neverSuspendUnsavedData"`
	NeverSuspendWhenPowerOn bool        `json:"neverSuspendWhenPowerOn"`
	WhiteList               []string    `json:"whiteList"`
	RestoreScrollPosition   bool        `json:"restoreScrollPosition"`
	MaintainYoutubeTime     bool        `json:"maintainYoutubeTime"`
	FaviconsMode            FaviconMode `json:"faviconsMode"`
	DiscardTabs             bool        `json:"discardTabs"`
	CleanupHistory          bool        `json:"cleanupHistory"`
	InlineFavicons          bool        `json:"inlineFavicons"`

	// PausedTabsIDs is cleared on every browser start. Not user editable.
	PausedTabsIDs []int `json:"pausedTabsIds"`
}

// DefaultConfiguration returns a configuration with every default applied
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Version:                 ConfigurationVersion,
		Timer:                   3,
		SweepInterval:           30,
		SuspendDelay:            60,
		NeverSuspendUnsavedData: true,
		WhiteList:               []string{},
		FaviconsMode:            FaviconModeNoDim,
		PausedTabsIDs:           []int{},
	}
}

// configurationUpgrades maps a stored version to the step lifting it by one
var configurationUpgrades = map[int]func(c *Configuration){
	1: func(c *Configuration) {
		if c.RestoreScrollPosition {
			c.FaviconsMode = FaviconModeActual
		} else {
			c.FaviconsMode = FaviconModeNoDim
		}
	},
}

// ParseConfiguration decodes a stored configuration blob on top of the
// defaults and upgrades it to the current version
func ParseConfiguration(data []byte) (*Configuration, error) {
	c := DefaultConfiguration()
	if len(data) == 0 {
		return c, nil
	}

	// Blobs written before versioning carry no version field
	c.Version = 1
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	c.Upgrade()
	c.normalize()
	return c, nil
}

// Upgrade applies every pending forward-only migration step
func (c *Configuration) Upgrade() {
	if c.Version < 1 {
		c.Version = 1
	}
	for c.Version < ConfigurationVersion {
		if step, ok := configurationUpgrades[c.Version]; ok {
			step(c)
		}
		c.Version++
	}
}

func (c *Configuration) normalize() {
	if c.WhiteList == nil {
		c.WhiteList = []string{}
	}
	if c.PausedTabsIDs == nil {
		c.PausedTabsIDs = []int{}
	}
	if !c.FaviconsMode.Valid() {
		c.FaviconsMode = FaviconModeNoDim
	}
	if c.Timer <= 0 {
		c.Timer = 3
	}
	if c.SweepInterval < 0 {
		c.SweepInterval = 0
	}
}

// Marshal encodes the configuration for storage
func (c *Configuration) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

// Clone returns a deep copy
func (c *Configuration) Clone() *Configuration {
	out := *c
	out.WhiteList = slices.Clone(c.WhiteList)
	out.PausedTabsIDs = slices.Clone(c.PausedTabsIDs)
	return &out
}

// AutoSuspend reports whether automatic suspension is enabled at all
func (c *Configuration) AutoSuspend() bool {
	return c.SuspendDelay > 0
}

// SuspendDelayDuration is the idle time after which a tab may be auto suspended
func (c *Configuration) SuspendDelayDuration() time.Duration {
	return time.Duration(c.SuspendDelay) * time.Minute
}

// TimerDuration is the auto suspend sweep period
func (c *Configuration) TimerDuration() time.Duration {
	return time.Duration(c.Timer) * time.Minute
}

// SweepIntervalDuration is the minimum gap between two sweeps
func (c *Configuration) SweepIntervalDuration() time.Duration {
	return time.Duration(c.SweepInterval) * time.Second
}

func (c *Configuration) AllowedSuspend(device DeviceStatus) bool {
	return c.AllowedSuspendOnline(device) && c.AllowedSuspendPower(device)
}

func (c *Configuration) AllowedSuspendOnline(device DeviceStatus) bool {
	return device.Online || c.SuspendOffline
}

func (c *Configuration) AllowedSuspendPower(device DeviceStatus) bool {
	return !(c.NeverSuspendWhenPowerOn && device.PowerOn)
}

func (c *Configuration) IsPausedTab(tabID int) bool {
	return slices.Contains(c.PausedTabsIDs, tabID)
}

func (c *Configuration) PauseTab(tabID int) {
	if !c.IsPausedTab(tabID) {
		c.PausedTabsIDs = append(c.PausedTabsIDs, tabID)
	}
}

func (c *Configuration) UnpauseTab(tabID int) {
	c.PausedTabsIDs = slices.DeleteFunc(c.PausedTabsIDs, func(id int) bool { return id == tabID })
}

// TogglePauseTab flips the paused state and returns the new value
func (c *Configuration) TogglePauseTab(tabID int) bool {
	if c.IsPausedTab(tabID) {
		c.UnpauseTab(tabID)
		return false
	}
	c.PauseTab(tabID)
	return true
}

func (c *Configuration) ClearPausedTabs() {
	c.PausedTabsIDs = []int{}
}

// WhitelistDomain adds the host of rawURL to the whitelist
func (c *Configuration) WhitelistDomain(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidValue, rawURL)
	}
	c.AddWhiteList(u.Host)
	return nil
}

// WhitelistURL adds the host and path of rawURL to the whitelist
func (c *Configuration) WhitelistURL(rawURL string) error {
	base, err := whiteListBase(rawURL)
	if err != nil {
		return err
	}
	c.AddWhiteList(base)
	return nil
}

// AddWhiteList appends pattern unless it is already present
func (c *Configuration) AddWhiteList(pattern string) {
	if !slices.Contains(c.WhiteList, pattern) {
		c.WhiteList = append(c.WhiteList, pattern)
	}
}

// RemoveWhiteListPattern removes an exact pattern and reports whether it existed
func (c *Configuration) RemoveWhiteListPattern(pattern string) bool {
	before := len(c.WhiteList)
	c.WhiteList = slices.DeleteFunc(c.WhiteList, func(p string) bool { return p == pattern })
	return len(c.WhiteList) != before
}

// WhiteListRemove drops every entry contained in the host and path of rawURL
func (c *Configuration) WhiteListRemove(rawURL string) error {
	base, err := whiteListBase(rawURL)
	if err != nil {
		return err
	}
	c.WhiteList = slices.DeleteFunc(c.WhiteList, func(p string) bool {
		return strings.Contains(base, p)
	})
	return nil
}

// InWhiteList reports whether rawURL matches any whitelist entry
func (c *Configuration) InWhiteList(rawURL string) bool {
	base, err := whiteListBase(rawURL)
	if err != nil {
		return false
	}
	for _, pattern := range c.WhiteList {
		if pattern == "" {
			continue
		}
		if matchWhiteListPattern(pattern, rawURL, base) {
			return true
		}
	}
	return false
}

package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldKind is the value type of a configuration field
type FieldKind string

const (
	FieldKindBool        FieldKind = "bool"
	FieldKindInt         FieldKind = "int"
	FieldKindStringList  FieldKind = "string_list"
	FieldKindFaviconMode FieldKind = "favicon_mode"
)

// Permission is a host capability a field needs before it can be enabled
type Permission string

const (
	PermissionNone    Permission = ""
	PermissionHistory Permission = "history"
	PermissionAllURLs Permission = "all_urls"
)

// ConfigField describes one user facing configuration field
type ConfigField struct {
	Name        string
	Kind        FieldKind
	Permission  Permission
	Hidden      bool
	Description string

	Get func(c *Configuration) any
	Set func(c *Configuration, value string) error
}

func boolField(name, description string, perm Permission, ref func(c *Configuration) *bool) ConfigField {
	return ConfigField{
		Name:        name,
		Kind:        FieldKindBool,
		Permission:  perm,
		Description: description,
		Get:         func(c *Configuration) any { return *ref(c) },
		Set: func(c *Configuration, value string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(value))
			if err != nil {
				return fmt.Errorf("%w: %s expects true or false", ErrInvalidValue, name)
			}
			*ref(c) = b
			return nil
		},
	}
}

func intField(name, description string, minValue int, hidden bool, ref func(c *Configuration) *int) ConfigField {
	return ConfigField{
		Name:        name,
		Kind:        FieldKindInt,
		Hidden:      hidden,
		Description: description,
		Get:         func(c *Configuration) any { return *ref(c) },
		Set: func(c *Configuration, value string) error {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || n < minValue {
				return fmt.Errorf("%w: %s expects an integer >= %d", ErrInvalidValue, name, minValue)
			}
			*ref(c) = n
			return nil
		},
	}
}

// ConfigFields is the complete editable schema of Configuration
var ConfigFields = []ConfigField{
	intField("suspendDelay", "Minutes of inactivity before a tab is suspended (0 disables)", 0, false,
		func(c *Configuration) *int { return &c.SuspendDelay }),
	boolField("suspendActive", "Suspend the active tab of a window", PermissionNone,
		func(c *Configuration) *bool { return &c.SuspendActive }),
	boolField("suspendPinned", "Suspend pinned tabs", PermissionNone,
		func(c *Configuration) *bool { return &c.SuspendPinned }),
	boolField("suspendPlayingAudio", "Suspend tabs playing audio", PermissionNone,
		func(c *Configuration) *bool { return &c.SuspendPlayingAudio }),
	boolField("suspendOffline", "Suspend tabs while offline", PermissionNone,
		func(c *Configuration) *bool { return &c.SuspendOffline }),
	boolField("neverSuspendUnsavedData", "Never suspend tabs with unsaved form data", PermissionAllURLs,
		func(c *Configuration) *bool { return &c.NeverSuspendUnsavedData }),
	boolField("neverSuspendWhenPowerOn", "Never suspend tabs while connected to power", PermissionNone,
		func(c *Configuration) *bool { return &c.NeverSuspendWhenPowerOn }),
	{
		Name:        "whiteList",
		Kind:        FieldKindStringList,
		Description: "Never suspend URLs matching these patterns (one per line)",
		Get:         func(c *Configuration) any { return append([]string{}, c.WhiteList...) },
		Set: func(c *Configuration, value string) error {
			c.WhiteList = []string{}
			for _, line := range strings.Split(value, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					c.AddWhiteList(line)
				}
			}
			return nil
		},
	},
	boolField("restoreScrollPosition", "Restore the scroll position when unsuspending", PermissionAllURLs,
		func(c *Configuration) *bool { return &c.RestoreScrollPosition }),
	boolField("maintainYoutubeTime", "Keep the playback position of YouTube videos", PermissionAllURLs,
		func(c *Configuration) *bool { return &c.MaintainYoutubeTime }),
	{
		Name:        "faviconsMode",
		Kind:        FieldKindFaviconMode,
		Permission:  PermissionAllURLs,
		Description: "Placeholder icon mode: no_dim, google or actual",
		Get:         func(c *Configuration) any { return c.FaviconsMode },
		Set: func(c *Configuration, value string) error {
			mode := FaviconMode(strings.TrimSpace(value))
			if !mode.Valid() {
				return fmt.Errorf("%w: faviconsMode expects no_dim, google or actual", ErrInvalidValue)
			}
			c.FaviconsMode = mode
			return nil
		},
	},
	boolField("discardTabs", "Discard tabs natively instead of showing a placeholder", PermissionNone,
		func(c *Configuration) *bool { return &c.DiscardTabs }),
	boolField("cleanupHistory", "Remove placeholder pages from the browsing history", PermissionHistory,
		func(c *Configuration) *bool { return &c.CleanupHistory }),
	boolField("inlineFavicons", "Store favicons inside the placeholder address", PermissionAllURLs,
		func(c *Configuration) *bool { return &c.InlineFavicons }),
	intField("timer", "Minutes between automatic suspension sweeps", 1, true,
		func(c *Configuration) *int { return &c.Timer }),
	intField("sweepInterval", "Minimum seconds between two sweeps", 0, true,
		func(c *Configuration) *int { return &c.SweepInterval }),
}

// LookupConfigField returns the field with the given name
func LookupConfigField(name string) (ConfigField, error) {
	for _, f := range ConfigFields {
		if f.Name == name {
			return f, nil
		}
	}
	return ConfigField{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInWhiteList(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		url     string
		want    bool
	}{
		{"plain host", "example.com", "https://example.com/path", true},
		{"plain substring of path", "example.com/pa", "https://example.com/path", true},
		{"plain no match", "example.org", "https://example.com/path", false},
		{"plain ignores scheme", "https://example.com", "https://example.com/path", false},
		{"wildcard subdomain", "*.example.com/*", "https://sub.example.com/x", true},
		{"wildcard requires subdomain", "*.example.com/*", "https://example.com/x", false},
		{"wildcard case insensitive", "*.EXAMPLE.com/*", "https://Sub.Example.COM/x", true},
		{"wildcard escapes metacharacters", "ex?mple*", "https://example.com/", false},
		{"wildcard literal brackets", "example.com/[a]*", "https://example.com/[a]/b", true},
		{"wildcard root path", "example.com/*", "https://example.com", true},
		{"regex anchored end", `/example\.com$/i`, "https://EXAMPLE.COM", true},
		{"regex anchored end with path", `/example\.com$/i`, "https://example.com/path", false},
		{"regex case sensitive", `/example\.com$/`, "https://EXAMPLE.COM", false},
		{"regex full url", `/^https:\/\/mail\./`, "https://mail.example.com/inbox", true},
		{"regex malformed", `/example(/`, "https://example(.com/", false},
		{"regex bad flag", `/example/q`, "https://example.com/", false},
		{"regex global flag ignored", `/example/g`, "https://example.com/", true},
		{"empty pattern ignored", "", "https://example.com/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfiguration()
			c.WhiteList = []string{tt.pattern}
			assert.Equal(t, tt.want, c.InWhiteList(tt.url))
		})
	}
}

func TestInWhiteList_InvalidURL(t *testing.T) {
	c := DefaultConfiguration()
	c.WhiteList = []string{"example"}

	assert.False(t, c.InWhiteList("not a url"))
}

func TestWhitelistDomain_RoundTrip(t *testing.T) {
	c := DefaultConfiguration()
	c.WhiteList = []string{"unrelated.org", "example.com/keep-me-not"}

	require.NoError(t, c.WhitelistDomain("https://example.com/some/page"))
	assert.Contains(t, c.WhiteList, "example.com")
	assert.True(t, c.InWhiteList("https://example.com/other"))
	assert.True(t, c.InWhiteList("https://example.com/"))

	// adding twice keeps a single entry
	require.NoError(t, c.WhitelistDomain("https://example.com/another"))
	assert.Len(t, c.WhiteList, 3)

	require.NoError(t, c.WhiteListRemove("https://example.com/some/page"))
	assert.Equal(t, []string{"unrelated.org", "example.com/keep-me-not"}, c.WhiteList)
	assert.False(t, c.InWhiteList("https://example.com/other"))
}

func TestWhitelistURL(t *testing.T) {
	c := DefaultConfiguration()

	require.NoError(t, c.WhitelistURL("https://example.com/docs?x=1#y"))
	assert.Equal(t, []string{"example.com/docs"}, c.WhiteList)
	assert.True(t, c.InWhiteList("https://example.com/docs/intro"))
	assert.False(t, c.InWhiteList("https://example.com/blog"))

	assert.True(t, c.RemoveWhiteListPattern("example.com/docs"))
	assert.False(t, c.RemoveWhiteListPattern("example.com/docs"))
	assert.Empty(t, c.WhiteList)
}

func TestPausedTabs(t *testing.T) {
	c := DefaultConfiguration()

	c.PauseTab(3)
	c.PauseTab(3)
	assert.Equal(t, []int{3}, c.PausedTabsIDs)
	assert.True(t, c.IsPausedTab(3))

	assert.False(t, c.TogglePauseTab(3))
	assert.False(t, c.IsPausedTab(3))
	assert.True(t, c.TogglePauseTab(4))

	c.UnpauseTab(99)
	assert.Equal(t, []int{4}, c.PausedTabsIDs)

	c.ClearPausedTabs()
	assert.Empty(t, c.PausedTabsIDs)
}

func TestParseConfiguration(t *testing.T) {
	t.Run("empty blob gives defaults", func(t *testing.T) {
		c, err := ParseConfiguration(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfiguration(), c)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		c, err := ParseConfiguration([]byte(`{"version":2,"suspendDelay":15}`))
		require.NoError(t, err)
		assert.Equal(t, 15, c.SuspendDelay)
		assert.True(t, c.NeverSuspendUnsavedData)
		assert.Equal(t, 3, c.Timer)
		assert.NotNil(t, c.WhiteList)
	})

	t.Run("v1 with scroll restore upgrades to actual icons", func(t *testing.T) {
		c, err := ParseConfiguration([]byte(`{"version":1,"restoreScrollPosition":true,"faviconsMode":"google"}`))
		require.NoError(t, err)
		assert.Equal(t, ConfigurationVersion, c.Version)
		assert.Equal(t, FaviconModeActual, c.FaviconsMode)
	})

	t.Run("unversioned blob is treated as v1", func(t *testing.T) {
		c, err := ParseConfiguration([]byte(`{"faviconsMode":"google"}`))
		require.NoError(t, err)
		assert.Equal(t, ConfigurationVersion, c.Version)
		assert.Equal(t, FaviconModeNoDim, c.FaviconsMode)
	})

	t.Run("v2 keeps favicon mode", func(t *testing.T) {
		c, err := ParseConfiguration([]byte(`{"version":2,"faviconsMode":"google"}`))
		require.NoError(t, err)
		assert.Equal(t, FaviconModeGoogle, c.FaviconsMode)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseConfiguration([]byte(`{`))
		assert.Error(t, err)
	})
}

func TestConfiguration_Clone(t *testing.T) {
	c := DefaultConfiguration()
	c.WhiteList = []string{"a"}
	c.PausedTabsIDs = []int{1}

	clone := c.Clone()
	clone.WhiteList[0] = "b"
	clone.PausedTabsIDs[0] = 2

	assert.Equal(t, "a", c.WhiteList[0])
	assert.Equal(t, 1, c.PausedTabsIDs[0])
}

func TestConfiguration_AllowedSuspend(t *testing.T) {
	c := DefaultConfiguration()

	assert.True(t, c.AllowedSuspend(DeviceStatus{Online: true, PowerOn: true}))
	assert.False(t, c.AllowedSuspend(DeviceStatus{Online: false, PowerOn: true}))

	c.NeverSuspendWhenPowerOn = true
	assert.False(t, c.AllowedSuspend(DeviceStatus{Online: true, PowerOn: true}))
	assert.True(t, c.AllowedSuspend(DeviceStatus{Online: true, PowerOn: false}))
}

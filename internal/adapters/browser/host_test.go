package browser

import (
	"context"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/ports"
	portsmocks "github.com/renato0307/tabrest/internal/ports/mocks"
)

// fakePage implements only the page methods the host calls while registering
type fakePage struct {
	playwright.Page
	url     string
	onClose func(playwright.Page)
}

func (p *fakePage) URL() string { return p.url }
func (p *fakePage) OnFrameNavigated(func(playwright.Frame)) {}
func (p *fakePage) OnLoad(func(playwright.Page)) {}
func (p *fakePage) OnClose(fn func(playwright.Page)) { p.onClose = fn }
func (p *fakePage) Title() (string, error) { return "Example", nil }
func (p *fakePage) Content() (string, error) { return `<link rel="icon" href="/i.png">`, nil }

func boolPtr(b bool) *bool { return &b }

func TestCompileMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		url     string
		match   bool
	}{
		{"http://*/ext/abc/*", "http://127.0.0.1:7878/ext/abc/suspended.html#uri=x", true},
		{"http://*/ext/abc/*", "http://127.0.0.1:7878/ext/abd/suspended.html", false},
		{"https://*.example.com/*", "https://a.example.com/x", true},
		{"https://*.example.com/*", "https://example.com/x", false},
		{"http://host/[literal]?x", "http://host/[literal]?x", true},
		{allURLsPattern, "file:///tmp/a", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.url, func(t *testing.T) {
			g, err := compileMatchPattern(tt.pattern)

			require.NoError(t, err)
			assert.Equal(t, tt.match, g.Match(tt.url))
		})
	}
}

func TestDiscoverFavicon(t *testing.T) {
	tests := []struct {
		name     string
		pageURL  string
		html     string
		expected string
	}{
		{"relative icon", "https://example.com/a/b", `<head><link rel="icon" href="/static/f.png"></head>`, "https://example.com/static/f.png"},
		{"shortcut icon", "https://example.com/", `<link rel="shortcut icon" href="fav.ico">`, "https://example.com/fav.ico"},
		{"base href", "https://example.com/", `<base href="https://cdn.example.com/x/"><link rel="icon" href="i.png">`, "https://cdn.example.com/x/i.png"},
		{"fallback", "https://example.com/page", `<html></html>`, "https://example.com/favicon.ico"},
		{"apple touch icon ignored", "https://example.com/", `<link rel="apple-touch-icon" href="/t.png">`, "https://example.com/favicon.ico"},
		{"non http page", "file:///tmp/a.html", `<link rel="icon" href="i.png">`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, discoverFavicon(tt.pageURL, tt.html))
		})
	}
}

func TestMatchesQuery(t *testing.T) {
	tab := domain.Tab{
		ID: 1, WindowID: 2, GroupID: domain.GroupNone, URL: "https://example.com/",
		Pinned: true, Status: domain.LoadStatusComplete, WindowType: domain.WindowTypeNormal,
	}
	group := domain.GroupNone
	window := 3

	assert.True(t, matchesQuery(tab, ports.TabQuery{}, nil))
	assert.True(t, matchesQuery(tab, ports.TabQuery{Pinned: boolPtr(true), GroupID: &group}, nil))
	assert.False(t, matchesQuery(tab, ports.TabQuery{Pinned: boolPtr(false)}, nil))
	assert.False(t, matchesQuery(tab, ports.TabQuery{WindowID: &window}, nil))
	assert.False(t, matchesQuery(tab, ports.TabQuery{Status: domain.LoadStatusLoading}, nil))
	assert.False(t, matchesQuery(tab, ports.TabQuery{Discarded: boolPtr(true)}, nil))

	g, err := compileMatchPattern("https://example.org/*")
	require.NoError(t, err)
	assert.False(t, matchesQuery(tab, ports.TabQuery{}, g))
}

func TestHost_TabBookkeeping(t *testing.T) {
	h := newHost(Options{AllowFileScheme: false}, nil)
	ctx := context.Background()

	p1 := &fakePage{url: "https://a.example.com/"}
	p2 := &fakePage{url: "https://b.example.com/"}
	id1 := h.registerPage(p1)
	id2 := h.registerPage(p2)
	assert.Equal(t, id1, h.registerPage(p1))

	tab, err := h.Get(ctx, id1)
	require.NoError(t, err)
	assert.True(t, tab.Active)
	assert.Equal(t, domain.GroupNone, tab.GroupID)

	h.activate(id2)
	tab, err = h.Get(ctx, id2)
	require.NoError(t, err)
	assert.True(t, tab.Active)
	assert.Equal(t, 1, tab.Index)

	win, err := h.CreateWindow(ctx)
	require.NoError(t, err)
	require.NoError(t, h.placeTab(id2, win.ID, nil))

	windows, err := h.ListWindows(ctx)
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, id1, windows[0].Tabs[0].ID)
	assert.True(t, windows[0].Tabs[0].Active)
	assert.Equal(t, id2, windows[1].Tabs[0].ID)

	tabs, err := h.Query(ctx, ports.TabQuery{URL: "https://b.example.com/*"})
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, id2, tabs[0].ID)

	require.NoError(t, h.SetActionIcon(ctx, id1, domain.IconOff))
	assert.Equal(t, domain.IconOff, h.ActionIconFor(id1))

	p1.onClose(p1)
	_, err = h.Get(ctx, id1)
	require.ErrorIs(t, err, domain.ErrTabNotFound)
	require.ErrorIs(t, h.SetActionIcon(ctx, id1, domain.IconOff), domain.ErrTabNotFound)
}

func TestHost_ProcessEvents(t *testing.T) {
	history := portsmocks.NewMockHistory(t)
	h := newHost(Options{}, history)
	p := &fakePage{url: "about:blank"}
	id := h.registerPage(p)

	history.EXPECT().AddVisit(mock.Anything, "https://example.com/", mock.Anything).Return(nil)

	ev, ok := h.process(rawEvent{kind: rawNavigated, tabID: id, url: "https://example.com/"})
	require.True(t, ok)
	assert.Equal(t, domain.TabEvent{Kind: domain.TabEventUpdated, TabID: id, Status: domain.LoadStatusLoading, URL: "https://example.com/"}, ev)

	h.setURL(id, "https://example.com/")
	ev, ok = h.process(rawEvent{kind: rawLoaded, tabID: id, url: "https://example.com/"})
	require.True(t, ok)
	assert.Equal(t, domain.LoadStatusComplete, ev.Status)

	tab, err := h.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Example", tab.Title)
	assert.Equal(t, "https://example.com/i.png", tab.FavIconURL)

	ev, ok = h.process(rawEvent{kind: rawClosed, tabID: id, windowID: 1})
	require.True(t, ok)
	assert.Equal(t, domain.TabEventRemoved, ev.Kind)
}

func TestHost_URLAllowed(t *testing.T) {
	h := newHost(Options{AllowFileScheme: true}, nil)
	ctx := context.Background()

	for raw, expected := range map[string]bool{
		"https://example.com": true,
		"file:///tmp/x":       true,
		"chrome://settings":   false,
		"javascript:alert(1)": false,
	} {
		allowed, err := h.URLAllowed(ctx, raw)
		require.NoError(t, err)
		assert.Equal(t, expected, allowed, raw)
	}
}

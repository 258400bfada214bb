package browser

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/ports"
)

const eventBufferSize = 1024

// Compile-time interface checks
var (
	_ ports.Browser        = (*Host)(nil)
	_ ports.TabEventSource = (*Host)(nil)
)

// Options configures the Chromium instance driven by the Host
type Options struct {
	AllowFileScheme bool
	Headless        bool
	InstallDriver   bool
	StartURLs       []string
	UserDataDir     string
}

type tabState struct {
	id              int
	page            playwright.Page
	windowID        int
	url             string
	title           string
	favicon         string
	pinned          bool
	audible         bool
	discarded       bool
	autoDiscardable bool
	status          domain.LoadStatus
	lastAccessed    time.Time
}

type windowState struct {
	id        int
	tabs      []int
	activeTab int
}

type rawEventKind int

const (
	rawNavigated rawEventKind = iota
	rawLoaded
	rawActivated
	rawClosed
	rawAudible
)

type rawEvent struct {
	kind     rawEventKind
	tabID    int
	windowID int
	url      string
}

// Host drives a persistent Chromium context. Every page is a tab with a
// stable id. Windows are logical groupings kept by the Host.
type Host struct {
	opts    Options
	history ports.History
	pw      *playwright.Playwright
	bctx    playwright.BrowserContext

	mu            sync.RWMutex
	tabs          map[int]*tabState
	pages         map[playwright.Page]int
	windows       map[int]*windowState
	icons         map[int]domain.IconVariant
	focusedWindow int
	nextTabID     int
	nextWindowID  int

	raw       chan rawEvent
	events    chan domain.TabEvent
	closed    chan struct{}
	closeOnce sync.Once
}

func newHost(opts Options, history ports.History) *Host {
	h := &Host{
		opts:    opts,
		history: history,
		tabs:    make(map[int]*tabState),
		pages:   make(map[playwright.Page]int),
		windows: make(map[int]*windowState),
		icons:   make(map[int]domain.IconVariant),
		raw:     make(chan rawEvent, eventBufferSize),
		events:  make(chan domain.TabEvent, eventBufferSize),
		closed:  make(chan struct{}),
	}
	h.focusedWindow = h.newWindowLocked()
	return h
}

// Launch starts Playwright and a persistent Chromium context. Visits are
// recorded to history as pages navigate.
func Launch(ctx context.Context, opts Options, history ports.History) (*Host, error) {
	runOpts := &playwright.RunOptions{
		Browsers: []string{"chromium"},
		Verbose:  false,
		Stdout:   io.Discard,
		Stderr:   io.Discard,
	}

	if opts.InstallDriver {
		logging.Logger.Info("Installing playwright driver")
		if err := playwright.Install(runOpts); err != nil {
			return nil, fmt.Errorf("failed to install playwright: %w", err)
		}
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	bctx, err := pw.Chromium.LaunchPersistentContext(opts.UserDataDir, playwright.BrowserTypeLaunchPersistentContextOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	h := newHost(opts, history)
	h.pw = pw
	h.bctx = bctx

	if err := h.attach(); err != nil {
		h.Close()
		return nil, err
	}

	go h.pump()

	for _, u := range opts.StartURLs {
		if _, err := h.Create(ctx, ports.TabCreate{URL: u}); err != nil {
			logging.Logger.Warn("Failed to open start URL", "url", u, "error", err)
		}
	}

	logging.Logger.Info("Browser launched", "user_data_dir", opts.UserDataDir, "headless", opts.Headless)
	return h, nil
}

func (h *Host) attach() error {
	if err := h.bctx.ExposeBinding(activatedBinding, func(source *playwright.BindingSource, args ...interface{}) interface{} {
		if id, ok := h.tabIDForPage(source.Page); ok {
			h.activate(id)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to expose activation binding: %w", err)
	}

	if err := h.bctx.ExposeBinding(audibleBinding, func(source *playwright.BindingSource, args ...interface{}) interface{} {
		audible := len(args) > 0 && args[0] == true
		if id, ok := h.tabIDForPage(source.Page); ok {
			h.setAudible(id, audible)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to expose audible binding: %w", err)
	}

	if err := h.bctx.AddInitScript(playwright.Script{Content: playwright.String(initScript)}); err != nil {
		return fmt.Errorf("failed to add init script: %w", err)
	}

	h.bctx.OnPage(func(page playwright.Page) {
		h.registerPage(page)
	})
	h.bctx.OnClose(func(playwright.BrowserContext) {
		h.shutdown()
	})

	for _, page := range h.bctx.Pages() {
		h.registerPage(page)
	}
	return nil
}

// Events streams tab changes. The channel is closed when the browser closes.
func (h *Host) Events() <-chan domain.TabEvent {
	return h.events
}

// Done is closed once the browser context is gone
func (h *Host) Done() <-chan struct{} {
	return h.closed
}

// Close shuts down the browser and the Playwright driver
func (h *Host) Close() error {
	var firstErr error
	if h.bctx != nil {
		if err := h.bctx.Close(); err != nil {
			firstErr = fmt.Errorf("failed to close browser: %w", err)
		}
	}
	if h.pw != nil {
		if err := h.pw.Stop(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to stop playwright: %w", err)
		}
	}
	h.shutdown()
	return firstErr
}

func (h *Host) shutdown() {
	h.closeOnce.Do(func() { close(h.closed) })
}

// registerPage assigns a tab id to page and hooks its events. Calling it
// twice for the same page returns the same id.
func (h *Host) registerPage(page playwright.Page) int {
	h.mu.Lock()
	if id, ok := h.pages[page]; ok {
		h.mu.Unlock()
		return id
	}

	h.nextTabID++
	id := h.nextTabID
	t := &tabState{
		id:              id,
		page:            page,
		windowID:        h.focusedWindow,
		url:             page.URL(),
		autoDiscardable: true,
		status:          domain.LoadStatusLoading,
		lastAccessed:    time.Now(),
	}
	h.tabs[id] = t
	h.pages[page] = id
	w := h.windows[t.windowID]
	w.tabs = append(w.tabs, id)
	if w.activeTab == 0 {
		w.activeTab = id
	}
	h.mu.Unlock()

	page.OnFrameNavigated(func(frame playwright.Frame) {
		if frame.ParentFrame() != nil {
			return
		}
		url := frame.URL()
		h.mu.Lock()
		t.url = url
		t.status = domain.LoadStatusLoading
		t.discarded = false
		h.mu.Unlock()
		h.emit(rawEvent{kind: rawNavigated, tabID: id, url: url})
	})
	page.OnLoad(func(playwright.Page) {
		h.mu.Lock()
		t.status = domain.LoadStatusComplete
		url := t.url
		h.mu.Unlock()
		h.emit(rawEvent{kind: rawLoaded, tabID: id, url: url})
	})
	page.OnClose(func(playwright.Page) {
		h.removeTab(id)
	})

	logging.Logger.Debug("Tab registered", "tab_id", id, "url", t.url)
	return id
}

func (h *Host) tabIDForPage(page playwright.Page) (int, bool) {
	if page == nil {
		return 0, false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	id, ok := h.pages[page]
	return id, ok
}

func (h *Host) newWindowLocked() int {
	h.nextWindowID++
	id := h.nextWindowID
	h.windows[id] = &windowState{id: id}
	return id
}

func (h *Host) activate(tabID int) {
	h.mu.Lock()
	t, ok := h.tabs[tabID]
	if !ok {
		h.mu.Unlock()
		return
	}
	t.lastAccessed = time.Now()
	if w, ok := h.windows[t.windowID]; ok {
		w.activeTab = tabID
	}
	h.focusedWindow = t.windowID
	windowID := t.windowID
	h.mu.Unlock()

	h.emit(rawEvent{kind: rawActivated, tabID: tabID, windowID: windowID})
}

func (h *Host) setAudible(tabID int, audible bool) {
	h.mu.Lock()
	t, ok := h.tabs[tabID]
	changed := ok && t.audible != audible
	if changed {
		t.audible = audible
	}
	h.mu.Unlock()

	if changed {
		h.emit(rawEvent{kind: rawAudible, tabID: tabID})
	}
}

func (h *Host) removeTab(tabID int) {
	h.mu.Lock()
	t, ok := h.tabs[tabID]
	if !ok {
		h.mu.Unlock()
		return
	}
	delete(h.tabs, tabID)
	delete(h.pages, t.page)
	delete(h.icons, tabID)

	if w, ok := h.windows[t.windowID]; ok {
		w.tabs = removeID(w.tabs, tabID)
		if w.activeTab == tabID {
			w.activeTab = 0
			if len(w.tabs) > 0 {
				w.activeTab = w.tabs[len(w.tabs)-1]
			}
		}
	}
	h.mu.Unlock()

	h.emit(rawEvent{kind: rawClosed, tabID: tabID, windowID: t.windowID})
}

// placeTab moves a tab into a window at index. A zero windowID keeps the
// current window.
func (h *Host) placeTab(tabID, windowID int, index *int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, ok := h.tabs[tabID]
	if !ok {
		return domain.ErrTabNotFound
	}
	if windowID == 0 {
		windowID = t.windowID
	}
	dst, ok := h.windows[windowID]
	if !ok {
		return fmt.Errorf("window %d not found", windowID)
	}

	if src, ok := h.windows[t.windowID]; ok {
		src.tabs = removeID(src.tabs, tabID)
		if src.activeTab == tabID {
			src.activeTab = 0
			if len(src.tabs) > 0 {
				src.activeTab = src.tabs[len(src.tabs)-1]
			}
		}
	}

	pos := len(dst.tabs)
	if index != nil && *index >= 0 && *index < pos {
		pos = *index
	}
	dst.tabs = append(dst.tabs[:pos], append([]int{tabID}, dst.tabs[pos:]...)...)
	if dst.activeTab == 0 {
		dst.activeTab = tabID
	}
	t.windowID = windowID
	return nil
}

func (h *Host) emit(ev rawEvent) {
	select {
	case h.raw <- ev:
	case <-h.closed:
	default:
		logging.Logger.Warn("Tab event dropped", "tab_id", ev.tabID, "kind", ev.kind)
	}
}

// pump turns raw page notifications into tab events. It runs outside the
// Playwright dispatcher so it may call back into pages.
func (h *Host) pump() {
	defer close(h.events)
	for {
		select {
		case <-h.closed:
			return
		case ev := <-h.raw:
			out, ok := h.process(ev)
			if !ok {
				continue
			}
			select {
			case h.events <- out:
			case <-h.closed:
				return
			}
		}
	}
}

func (h *Host) process(ev rawEvent) (domain.TabEvent, bool) {
	ctx := context.Background()

	switch ev.kind {
	case rawNavigated:
		if h.history != nil && isHistoryURL(ev.url) {
			if err := h.history.AddVisit(ctx, ev.url, time.Now()); err != nil {
				logging.Logger.Warn("Failed to record visit", "url", ev.url, "error", err)
			}
		}
		return domain.TabEvent{Kind: domain.TabEventUpdated, TabID: ev.tabID, Status: domain.LoadStatusLoading, URL: ev.url}, true

	case rawLoaded:
		h.refreshPageInfo(ev.tabID)
		return domain.TabEvent{Kind: domain.TabEventUpdated, TabID: ev.tabID, Status: domain.LoadStatusComplete, URL: ev.url}, true

	case rawActivated:
		return domain.TabEvent{Kind: domain.TabEventActivated, TabID: ev.tabID, WindowID: ev.windowID}, true

	case rawClosed:
		return domain.TabEvent{Kind: domain.TabEventRemoved, TabID: ev.tabID, WindowID: ev.windowID}, true

	case rawAudible:
		return domain.TabEvent{Kind: domain.TabEventUpdated, TabID: ev.tabID}, true
	}
	return domain.TabEvent{}, false
}

// refreshPageInfo caches the title and favicon of a loaded page
func (h *Host) refreshPageInfo(tabID int) {
	h.mu.RLock()
	t, ok := h.tabs[tabID]
	var page playwright.Page
	var url string
	if ok {
		page, url = t.page, t.url
	}
	h.mu.RUnlock()
	if !ok {
		return
	}

	title, err := page.Title()
	if err != nil {
		logging.Logger.Debug("Failed to read page title", "tab_id", tabID, "error", err)
	}

	favicon := ""
	if isHTTPURL(url) {
		if html, err := page.Content(); err == nil {
			favicon = discoverFavicon(url, html)
		}
	}

	h.mu.Lock()
	if t.url == url {
		t.title = title
		t.favicon = favicon
	}
	h.mu.Unlock()
}

func removeID(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

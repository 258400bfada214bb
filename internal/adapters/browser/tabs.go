package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/playwright-community/playwright-go"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/ports"
)

// snapshotLocked converts internal state to a domain tab. Callers hold h.mu.
func (h *Host) snapshotLocked(t *tabState) domain.Tab {
	index := 0
	active := false
	if w, ok := h.windows[t.windowID]; ok {
		for i, id := range w.tabs {
			if id == t.id {
				index = i
				break
			}
		}
		active = w.activeTab == t.id
	}

	return domain.Tab{
		ID:              t.id,
		WindowID:        t.windowID,
		GroupID:         domain.GroupNone,
		Index:           index,
		URL:             t.url,
		Title:           t.title,
		FavIconURL:      t.favicon,
		Active:          active,
		Pinned:          t.pinned,
		Audible:         t.audible,
		Discarded:       t.discarded,
		AutoDiscardable: t.autoDiscardable,
		Status:          t.status,
		WindowType:      domain.WindowTypeNormal,
		LastAccessed:    t.lastAccessed,
	}
}

// Get returns one tab
func (h *Host) Get(ctx context.Context, tabID int) (domain.Tab, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	t, ok := h.tabs[tabID]
	if !ok {
		return domain.Tab{}, fmt.Errorf("%w: %d", domain.ErrTabNotFound, tabID)
	}
	return h.snapshotLocked(t), nil
}

// ListWindows returns every window that has tabs, with tabs in order
func (h *Host) ListWindows(ctx context.Context) ([]domain.Window, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var windows []domain.Window
	for _, w := range h.sortedWindowsLocked() {
		if len(w.tabs) == 0 {
			continue
		}
		win := domain.Window{
			ID:      w.id,
			Type:    domain.WindowTypeNormal,
			Focused: w.id == h.focusedWindow,
		}
		for _, id := range w.tabs {
			win.Tabs = append(win.Tabs, h.snapshotLocked(h.tabs[id]))
		}
		windows = append(windows, win)
	}
	return windows, nil
}

// Query returns the tabs matching every set field of query
func (h *Host) Query(ctx context.Context, query ports.TabQuery) ([]domain.Tab, error) {
	var pattern glob.Glob
	if query.URL != "" {
		g, err := compileMatchPattern(query.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid url pattern %q: %w", query.URL, err)
		}
		pattern = g
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	var tabs []domain.Tab
	for _, w := range h.sortedWindowsLocked() {
		for _, id := range w.tabs {
			tab := h.snapshotLocked(h.tabs[id])
			if matchesQuery(tab, query, pattern) {
				tabs = append(tabs, tab)
			}
		}
	}
	return tabs, nil
}

func (h *Host) sortedWindowsLocked() []*windowState {
	windows := make([]*windowState, 0, len(h.windows))
	for _, w := range h.windows {
		windows = append(windows, w)
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i].id < windows[j].id })
	return windows
}

func matchesQuery(tab domain.Tab, q ports.TabQuery, pattern glob.Glob) bool {
	switch {
	case q.Active != nil && tab.Active != *q.Active:
		return false
	case q.Audible != nil && tab.Audible != *q.Audible:
		return false
	case q.Discarded != nil && tab.Discarded != *q.Discarded:
		return false
	case q.GroupID != nil && tab.GroupID != *q.GroupID:
		return false
	case q.Pinned != nil && tab.Pinned != *q.Pinned:
		return false
	case q.Status != "" && tab.Status != q.Status:
		return false
	case q.WindowID != nil && tab.WindowID != *q.WindowID:
		return false
	case q.WindowType != "" && tab.WindowType != q.WindowType:
		return false
	case pattern != nil && !pattern.Match(tab.URL):
		return false
	}
	return true
}

// Create opens a new tab
func (h *Host) Create(ctx context.Context, create ports.TabCreate) (domain.Tab, error) {
	page, err := h.bctx.NewPage()
	if err != nil {
		return domain.Tab{}, fmt.Errorf("failed to open tab: %w", err)
	}

	id := h.registerPage(page)
	if err := h.placeTab(id, create.WindowID, create.Index); err != nil {
		return domain.Tab{}, err
	}

	if create.URL != "" {
		if err := gotoURL(ctx, page, create.URL); err != nil {
			return domain.Tab{}, err
		}
		h.setURL(id, create.URL)
	}

	if create.Active {
		if err := page.BringToFront(); err != nil {
			logging.Logger.Debug("Failed to bring tab to front", "tab_id", id, "error", err)
		}
		h.activate(id)
	}

	logging.Logger.Debug("Tab created", "tab_id", id, "url", create.URL, "opener", create.OpenerTabID)
	return h.Get(ctx, id)
}

// CreateWindow allocates a new empty window
func (h *Host) CreateWindow(ctx context.Context) (domain.Window, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.newWindowLocked()
	return domain.Window{ID: id, Type: domain.WindowTypeNormal}, nil
}

// Discard freezes the page so the browser can reclaim its resources. The
// tab keeps its URL.
func (h *Host) Discard(ctx context.Context, tabID int) (domain.Tab, error) {
	page, err := h.page(tabID)
	if err != nil {
		return domain.Tab{}, err
	}

	if err := h.setLifecycleState(page, "frozen"); err != nil {
		return domain.Tab{}, fmt.Errorf("failed to discard tab %d: %w", tabID, err)
	}

	h.mu.Lock()
	if t, ok := h.tabs[tabID]; ok {
		t.discarded = true
	}
	h.mu.Unlock()

	return h.Get(ctx, tabID)
}

// Update navigates the tab and sets its flags
func (h *Host) Update(ctx context.Context, tabID int, update ports.TabUpdate) (domain.Tab, error) {
	page, err := h.page(tabID)
	if err != nil {
		return domain.Tab{}, err
	}

	h.mu.Lock()
	t, ok := h.tabs[tabID]
	discarded := false
	if ok {
		if update.AutoDiscardable != nil {
			t.autoDiscardable = *update.AutoDiscardable
		}
		if update.Pinned != nil {
			t.pinned = *update.Pinned
		}
		discarded = t.discarded
	}
	h.mu.Unlock()

	if update.URL != "" {
		if discarded {
			if err := h.setLifecycleState(page, "active"); err != nil {
				return domain.Tab{}, fmt.Errorf("failed to resume tab %d: %w", tabID, err)
			}
		}
		if err := gotoURL(ctx, page, update.URL); err != nil {
			return domain.Tab{}, err
		}
		h.setURL(tabID, update.URL)
	}

	return h.Get(ctx, tabID)
}

// Evaluate runs a function expression in the page main world
func (h *Host) Evaluate(ctx context.Context, tabID int, script string, arg any) (json.RawMessage, error) {
	h.mu.RLock()
	t, ok := h.tabs[tabID]
	var page playwright.Page
	discarded := false
	if ok {
		page, discarded = t.page, t.discarded
	}
	h.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrTabNotFound, tabID)
	}
	if discarded {
		return nil, fmt.Errorf("tab %d is discarded", tabID)
	}

	type result struct {
		value interface{}
		err   error
	}
	done := make(chan result, 1)
	go func() {
		v, err := page.Evaluate(script, arg)
		done <- result{v, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("failed to evaluate script: %w", r.err)
		}
		data, err := json.Marshal(r.value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode script result: %w", err)
		}
		return data, nil
	}
}

// SetActionIcon records the icon variant shown for a tab
func (h *Host) SetActionIcon(ctx context.Context, tabID int, icon domain.IconVariant) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.tabs[tabID]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrTabNotFound, tabID)
	}
	h.icons[tabID] = icon
	return nil
}

// ActionIconFor returns the icon last set for a tab
func (h *Host) ActionIconFor(tabID int) domain.IconVariant {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.icons[tabID]
}

// FileSchemeAllowed reports whether file:// pages may be suspended
func (h *Host) FileSchemeAllowed(ctx context.Context) (bool, error) {
	return h.opts.AllowFileScheme, nil
}

// URLAllowed reports whether a tab may be pointed at rawURL
func (h *Host) URLAllowed(ctx context.Context, rawURL string) (bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false, nil
	}
	switch u.Scheme {
	case "http", "https", "about", "data":
		return true, nil
	case "file":
		return h.opts.AllowFileScheme, nil
	}
	return false, nil
}

func (h *Host) page(tabID int) (playwright.Page, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	t, ok := h.tabs[tabID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrTabNotFound, tabID)
	}
	return t.page, nil
}

func (h *Host) setURL(tabID int, rawURL string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.tabs[tabID]; ok {
		t.url = rawURL
	}
}

func (h *Host) setLifecycleState(page playwright.Page, state string) error {
	session, err := h.bctx.NewCDPSession(page)
	if err != nil {
		return err
	}
	defer session.Detach()

	_, err = session.Send("Page.setWebLifecycleState", map[string]interface{}{"state": state})
	return err
}

// gotoURL starts a navigation and returns once it commits
func gotoURL(ctx context.Context, page playwright.Page, rawURL string) error {
	done := make(chan error, 1)
	go func() {
		_, err := page.Goto(rawURL, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateCommit,
		})
		done <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to navigate to %s: %w", rawURL, err)
		}
		return nil
	}
}

func isHTTPURL(rawURL string) bool {
	return strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://")
}

func isHistoryURL(rawURL string) bool {
	return isHTTPURL(rawURL) || strings.HasPrefix(rawURL, "file://")
}

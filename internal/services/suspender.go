package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/monitoring"
	"github.com/renato0307/tabrest/internal/ports"
)

// historyEpsilon is the window around a visit time deleted by history cleanup
const historyEpsilon = 100 * time.Microsecond

// DefaultBulkConcurrency bounds how many tabs a bulk operation touches at once
const DefaultBulkConcurrency = 4

// SuspenderOptions configures a SuspenderService
type SuspenderOptions struct {
	BulkConcurrency int
	Origin          domain.Origin
}

// SuspenderService decides which tabs can be suspended and moves them between
// the live page and the placeholder page
type SuspenderService struct {
	browser     ports.Browser
	capture     *PageStateCapture
	concurrency int
	device      ports.DeviceStatusProvider
	favicons    ports.FaviconFetcher
	history     ports.History
	metrics     *monitoring.Metrics
	now         func() time.Time
	origin      domain.Origin
	store       ports.Store
}

// NewSuspenderService creates a new SuspenderService. favicons, history and
// metrics may be nil.
func NewSuspenderService(
	browser ports.Browser,
	store ports.Store,
	device ports.DeviceStatusProvider,
	favicons ports.FaviconFetcher,
	history ports.History,
	metrics *monitoring.Metrics,
	opts SuspenderOptions,
) *SuspenderService {
	concurrency := opts.BulkConcurrency
	if concurrency <= 0 {
		concurrency = DefaultBulkConcurrency
	}

	return &SuspenderService{
		browser:     browser,
		capture:     NewPageStateCapture(browser),
		concurrency: concurrency,
		device:      device,
		favicons:    favicons,
		history:     history,
		metrics:     metrics,
		now:         time.Now,
		origin:      opts.Origin,
		store:       store,
	}
}

// Origin returns the origin placeholder pages are served from
func (s *SuspenderService) Origin() domain.Origin {
	return s.origin
}

// Capture exposes the page state capture used by the service
func (s *SuspenderService) Capture() *PageStateCapture {
	return s.capture
}

// cycle is the environment of one decision cycle. Configuration and device
// status are read fresh for every cycle and never cached across cycles.
type cycle struct {
	cfg          *domain.Configuration
	device       domain.DeviceStatus
	filesAllowed bool
	now          time.Time
}

func (s *SuspenderService) newCycle(ctx context.Context) (*cycle, error) {
	cfg, err := s.store.LoadConfiguration(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	device := domain.DefaultDeviceStatus
	if s.device != nil {
		if d, err := s.device.Status(ctx); err == nil {
			device = d
		} else {
			logging.Logger.Warn("Failed to read device status, using defaults", "error", err)
		}
	}

	filesAllowed, err := s.browser.FileSchemeAllowed(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to read file scheme permission", "error", err)
		filesAllowed = false
	}

	return &cycle{cfg: cfg, device: device, filesAllowed: filesAllowed, now: s.now()}, nil
}

func (s *SuspenderService) isSuspended(tab domain.Tab) bool {
	return domain.IsPlaceholderURL(tab.URL, s.origin.PlaceholderPage())
}

func (s *SuspenderService) policyInput(ctx context.Context, c *cycle, tab domain.Tab) (domain.PolicyInput, *tabProbe) {
	record, err := s.store.GetTabRecord(ctx, tab.ID)
	if err != nil {
		logging.Logger.Debug("Failed to load tab record", "tab_id", tab.ID, "error", err)
		record = domain.TabRecord{TabID: tab.ID}
	}

	probe := &tabProbe{capture: s.capture, tab: tab, cfg: c.cfg}
	return domain.PolicyInput{
		Tab:               tab,
		Config:            c.cfg,
		Device:            c.device,
		Record:            record,
		PlaceholderPage:   s.origin.PlaceholderPage(),
		FileSchemeAllowed: c.filesAllowed,
		FormModified: func() bool {
			state, err := probe.get(ctx)
			return err == nil && state.FormModified
		},
	}, probe
}

func (s *SuspenderService) tabStatus(ctx context.Context, c *cycle, tab domain.Tab) domain.TabStatus {
	in, _ := s.policyInput(ctx, c, tab)
	return domain.Classify(in)
}

// GetTabStatus explains whether a tab can be suspended
func (s *SuspenderService) GetTabStatus(ctx context.Context, tabID int) (domain.TabStatus, error) {
	tab, err := s.browser.Get(ctx, tabID)
	if err != nil {
		return domain.TabStatusError, fmt.Errorf("failed to get tab: %w", err)
	}

	c, err := s.newCycle(ctx)
	if err != nil {
		return domain.TabStatusError, err
	}
	return s.tabStatus(ctx, c, tab), nil
}

// TabView is a tab with its current eligibility status
type TabView struct {
	domain.Tab
	Suspension domain.TabStatus `json:"suspension"`
}

// ListTabs returns every tab of every window with its status
func (s *SuspenderService) ListTabs(ctx context.Context) ([]TabView, error) {
	windows, err := s.browser.ListWindows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list windows: %w", err)
	}

	c, err := s.newCycle(ctx)
	if err != nil {
		return nil, err
	}

	var views []TabView
	for _, w := range windows {
		for _, tab := range w.Tabs {
			views = append(views, TabView{Tab: tab, Suspension: s.tabStatus(ctx, c, tab)})
		}
	}
	return views, nil
}

// UpdateTabActionIcon refreshes the action icon of a tab from its status
func (s *SuspenderService) UpdateTabActionIcon(ctx context.Context, tabID int) error {
	tab, err := s.browser.Get(ctx, tabID)
	if err != nil {
		return fmt.Errorf("failed to get tab: %w", err)
	}

	c, err := s.newCycle(ctx)
	if err != nil {
		return err
	}
	return s.updateIcon(ctx, c, tab)
}

func (s *SuspenderService) updateIcon(ctx context.Context, c *cycle, tab domain.Tab) error {
	if !tab.Valid() {
		return nil
	}
	icon := domain.ActionIcon(s.tabStatus(ctx, c, tab))
	if err := s.browser.SetActionIcon(ctx, tab.ID, icon); err != nil {
		return fmt.Errorf("failed to set action icon: %w", err)
	}
	return nil
}

// Suspend replaces a tab with the placeholder page. It is the explicit user
// command: only the scheme guard applies. Suspending a placeholder is a no-op.
func (s *SuspenderService) Suspend(ctx context.Context, tabID int) error {
	tab, c, err := s.tabAndCycle(ctx, tabID)
	if err != nil {
		return err
	}

	if !s.isSuspended(tab) && !domain.IsReplaceableURL(tab.URL, c.filesAllowed) {
		return fmt.Errorf("%w: %s", domain.ErrNotSuspendable, tab.URL)
	}

	_, err = s.suspendTab(ctx, c, tab, nil)
	return err
}

// Unsuspend restores the original page of a suspended tab
func (s *SuspenderService) Unsuspend(ctx context.Context, tabID int) error {
	tab, c, err := s.tabAndCycle(ctx, tabID)
	if err != nil {
		return err
	}

	changed, err := s.unsuspendTab(ctx, c, tab)
	if err != nil {
		return err
	}
	if !changed {
		return domain.ErrNotSuspended
	}
	return nil
}

// ToggleSuspend suspends a live tab or restores a suspended one
func (s *SuspenderService) ToggleSuspend(ctx context.Context, tabID int) error {
	tab, c, err := s.tabAndCycle(ctx, tabID)
	if err != nil {
		return err
	}

	if s.isSuspended(tab) {
		_, err = s.unsuspendTab(ctx, c, tab)
		return err
	}
	_, err = s.suspendTab(ctx, c, tab, nil)
	return err
}

func (s *SuspenderService) tabAndCycle(ctx context.Context, tabID int) (domain.Tab, *cycle, error) {
	tab, err := s.browser.Get(ctx, tabID)
	if err != nil {
		return domain.Tab{}, nil, fmt.Errorf("failed to get tab: %w", err)
	}
	if !tab.Valid() {
		return domain.Tab{}, nil, domain.ErrInvalidTab
	}

	c, err := s.newCycle(ctx)
	if err != nil {
		return domain.Tab{}, nil, err
	}
	return tab, c, nil
}

// suspendTab performs the transition. It reports whether the tab changed.
// A nil probe means the page state has not been captured yet.
func (s *SuspenderService) suspendTab(ctx context.Context, c *cycle, tab domain.Tab, probe *tabProbe) (bool, error) {
	if s.isSuspended(tab) || !domain.IsReplaceableURL(tab.URL, c.filesAllowed) {
		return false, nil
	}

	if c.cfg.DiscardTabs {
		if _, err := s.browser.Discard(ctx, tab.ID); err != nil {
			return false, fmt.Errorf("failed to discard tab: %w", err)
		}
		s.metrics.TabDiscarded()
		logging.Logger.Info("Tab discarded", "tab_id", tab.ID)
		return true, nil
	}

	if probe == nil {
		probe = &tabProbe{capture: s.capture, tab: tab, cfg: c.cfg}
	}

	target, err := s.suspendedURL(ctx, c, tab, probe)
	if err != nil {
		s.metrics.CaptureFailed()
		return false, err
	}

	if err := s.writePlaceholder(ctx, c, tab.ID, target); err != nil {
		return false, err
	}
	s.metrics.TabSuspended()
	logging.Logger.Info("Tab suspended", "tab_id", tab.ID, "url", tab.URL)
	return true, nil
}

func (s *SuspenderService) suspendedURL(ctx context.Context, c *cycle, tab domain.Tab, probe *tabProbe) (domain.SuspendedURL, error) {
	icon := s.favicon(ctx, c, tab.FavIconURL)
	target := domain.SuspendedURL{URI: tab.URL, Title: tab.Title, Icon: &icon}

	if c.cfg.RestoreScrollPosition || c.cfg.MaintainYoutubeTime {
		state, err := probe.get(ctx)
		if err != nil {
			return domain.SuspendedURL{}, err
		}

		target.ScrollPosition = state.ScrollPosition
		if state.VideoTime != nil {
			target.URI = withVideoTime(tab.URL, *state.VideoTime)
		}
	}
	return target, nil
}

// favicon returns the icon to embed, inlined as a data URI when configured
func (s *SuspenderService) favicon(ctx context.Context, c *cycle, iconURL string) string {
	if iconURL == "" || !c.cfg.InlineFavicons || s.favicons == nil {
		return iconURL
	}

	if allowed, err := s.browser.URLAllowed(ctx, iconURL); err != nil || !allowed {
		return iconURL
	}

	data, err := s.favicons.DataURI(ctx, iconURL)
	if err != nil {
		logging.Logger.Debug("Failed to inline favicon", "url", iconURL, "error", err)
		return iconURL
	}
	return data
}

func (s *SuspenderService) writePlaceholder(ctx context.Context, c *cycle, tabID int, target domain.SuspendedURL) error {
	autoDiscardable := false
	updated, err := s.browser.Update(ctx, tabID, ports.TabUpdate{
		URL:             target.Placeholder(s.origin.PlaceholderPage()),
		AutoDiscardable: &autoDiscardable,
	})
	if err != nil {
		return fmt.Errorf("failed to open placeholder: %w", err)
	}

	if err := s.updateIcon(ctx, c, updated); err != nil {
		logging.Logger.Debug("Failed to update action icon", "tab_id", tabID, "error", err)
	}
	return nil
}

// withVideoTime sets the t query parameter to seconds
func withVideoTime(rawURL string, seconds int) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	q.Set("t", strconv.Itoa(seconds)+"s")
	u.RawQuery = q.Encode()
	return u.String()
}

// unsuspendTab restores the original page. It reports whether the tab
// showed a placeholder.
func (s *SuspenderService) unsuspendTab(ctx context.Context, c *cycle, tab domain.Tab) (bool, error) {
	if !s.isSuspended(tab) {
		return false, nil
	}

	original := domain.ParseSuspendedURL(tab.URL)
	if original.URI == "" {
		return false, fmt.Errorf("%w: placeholder has no address", domain.ErrInvalidValue)
	}

	if c.cfg.CleanupHistory {
		s.cleanupHistory(ctx, tab.URL, original.URI)
	}

	if err := s.store.SetScrollPosition(ctx, tab.ID, original.ScrollPosition); err != nil {
		return false, fmt.Errorf("failed to save scroll position: %w", err)
	}

	updated, err := s.browser.Update(ctx, tab.ID, ports.TabUpdate{URL: original.URI})
	if err != nil {
		return false, fmt.Errorf("failed to restore tab: %w", err)
	}

	if err := s.MarkActivated(ctx, tab.ID); err != nil {
		logging.Logger.Debug("Failed to mark tab activated", "tab_id", tab.ID, "error", err)
	}
	if err := s.updateIcon(ctx, c, updated); err != nil {
		logging.Logger.Debug("Failed to update action icon", "tab_id", tab.ID, "error", err)
	}

	s.metrics.TabUnsuspended()
	logging.Logger.Info("Tab unsuspended", "tab_id", tab.ID, "url", original.URI)
	return true, nil
}

// cleanupHistory removes the placeholder visit and the visit to the
// original page made right before suspending. Failures are only logged.
func (s *SuspenderService) cleanupHistory(ctx context.Context, placeholderURL, originalURL string) {
	if s.history == nil {
		return
	}

	if err := s.history.DeleteURL(ctx, placeholderURL); err != nil {
		logging.Logger.Warn("Failed to delete placeholder from history", "error", err)
		return
	}

	visits, err := s.history.Visits(ctx, originalURL)
	if err != nil {
		logging.Logger.Warn("Failed to read history", "error", err)
		return
	}
	if len(visits) < 2 {
		return
	}

	previous := visits[len(visits)-2].VisitTime
	if err := s.history.DeleteRange(ctx, previous.Add(-historyEpsilon), previous.Add(historyEpsilon)); err != nil {
		logging.Logger.Warn("Failed to delete history range", "error", err)
	}
}

// MarkActivated records that the tab was just interacted with
func (s *SuspenderService) MarkActivated(ctx context.Context, tabID int) error {
	record, err := s.store.GetTabRecord(ctx, tabID)
	if err != nil {
		return fmt.Errorf("failed to load tab record: %w", err)
	}
	record.LastAccess = s.now()
	if err := s.store.SaveTabRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to save tab record: %w", err)
	}
	return nil
}

// suspendTabs applies the policy in mode to every tab and suspends the
// eligible ones. Per tab failures are logged and skipped. It returns how
// many tabs changed.
func (s *SuspenderService) suspendTabs(ctx context.Context, c *cycle, tabs []domain.Tab, mode domain.SuspendMode) int {
	return s.forEachTab(ctx, tabs, func(ctx context.Context, tab domain.Tab) (bool, error) {
		in, probe := s.policyInput(ctx, c, tab)
		if !domain.CanSuspend(in, mode, c.now) {
			return false, nil
		}
		return s.suspendTab(ctx, c, tab, probe)
	})
}

func (s *SuspenderService) unsuspendTabs(ctx context.Context, c *cycle, tabs []domain.Tab) int {
	return s.forEachTab(ctx, tabs, func(ctx context.Context, tab domain.Tab) (bool, error) {
		return s.unsuspendTab(ctx, c, tab)
	})
}

func (s *SuspenderService) forEachTab(
	ctx context.Context,
	tabs []domain.Tab,
	fn func(ctx context.Context, tab domain.Tab) (bool, error),
) int {
	var g errgroup.Group
	g.SetLimit(s.concurrency)

	changed := make([]bool, len(tabs))
	for i, tab := range tabs {
		if !tab.Valid() {
			continue
		}
		i, tab := i, tab // per-iteration copy (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			ok, err := fn(ctx, tab)
			if err != nil {
				if errors.Is(err, domain.ErrCaptureFailed) {
					logging.Logger.Debug("Suspension deferred", "tab_id", tab.ID, "error", err)
				} else {
					logging.Logger.Warn("Tab transition failed", "tab_id", tab.ID, "error", err)
				}
				return nil
			}
			changed[i] = ok
			return nil
		})
	}
	g.Wait()

	count := 0
	for _, ok := range changed {
		if ok {
			count++
		}
	}
	return count
}

// queryTabs runs query over the base filter used by every bulk operation
func (s *SuspenderService) queryTabs(ctx context.Context, c *cycle, query ports.TabQuery) ([]domain.Tab, error) {
	notDiscarded := false
	query.Discarded = &notDiscarded
	query.WindowType = domain.WindowTypeNormal

	tabs, err := s.browser.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tabs: %w", err)
	}
	return tabs, nil
}

// suspendableTabs returns the tabs matching query that show a suspendable page
func (s *SuspenderService) suspendableTabs(ctx context.Context, c *cycle, query ports.TabQuery) ([]domain.Tab, error) {
	tabs, err := s.queryTabs(ctx, c, query)
	if err != nil {
		return nil, err
	}

	result := tabs[:0]
	for _, tab := range tabs {
		if domain.IsReplaceableURL(tab.URL, c.filesAllowed) && !s.isSuspended(tab) {
			result = append(result, tab)
		}
	}
	return result, nil
}

func (s *SuspenderService) suspendedTabs(ctx context.Context, c *cycle, query ports.TabQuery) ([]domain.Tab, error) {
	query.URL = s.origin.PlaceholderMatchPattern()
	return s.queryTabs(ctx, c, query)
}

// SuspendAuto runs the periodic sweep: every idle eligible tab is suspended
func (s *SuspenderService) SuspendAuto(ctx context.Context) (int, error) {
	c, err := s.newCycle(ctx)
	if err != nil {
		return 0, err
	}
	if !c.cfg.AllowedSuspend(c.device) {
		logging.Logger.Debug("Auto suspend not allowed on this device state",
			"online", c.device.Online, "power_on", c.device.PowerOn)
		return 0, nil
	}

	no := false
	query := ports.TabQuery{Status: domain.LoadStatusComplete}
	if !c.cfg.SuspendActive {
		query.Active = &no
	}
	if !c.cfg.SuspendPlayingAudio {
		query.Audible = &no
	}
	if !c.cfg.SuspendPinned {
		query.Pinned = &no
	}

	tabs, err := s.suspendableTabs(ctx, c, query)
	if err != nil {
		return 0, err
	}
	return s.suspendTabs(ctx, c, tabs, domain.SuspendModeAuto), nil
}

// SuspendGroup suspends the tabs of the group tabID belongs to. A tab with
// no group is a group of one.
func (s *SuspenderService) SuspendGroup(ctx context.Context, tabID int, mode domain.SuspendMode) (int, error) {
	tab, c, err := s.tabAndCycle(ctx, tabID)
	if err != nil {
		return 0, err
	}

	tabs := []domain.Tab{tab}
	if tab.GroupID != domain.GroupNone {
		group := tab.GroupID
		if tabs, err = s.suspendableTabs(ctx, c, ports.TabQuery{GroupID: &group}); err != nil {
			return 0, err
		}
	}
	return s.suspendTabs(ctx, c, tabs, mode), nil
}

// UnsuspendGroup restores the suspended tabs of the group tabID belongs to
func (s *SuspenderService) UnsuspendGroup(ctx context.Context, tabID int) (int, error) {
	tab, c, err := s.tabAndCycle(ctx, tabID)
	if err != nil {
		return 0, err
	}

	tabs := []domain.Tab{tab}
	if tab.GroupID != domain.GroupNone {
		group := tab.GroupID
		if tabs, err = s.suspendedTabs(ctx, c, ports.TabQuery{GroupID: &group}); err != nil {
			return 0, err
		}
	}
	return s.unsuspendTabs(ctx, c, tabs), nil
}

// SuspendWindow suspends the other tabs of the window tabID belongs to
func (s *SuspenderService) SuspendWindow(ctx context.Context, tabID int, mode domain.SuspendMode) (int, error) {
	tab, c, err := s.tabAndCycle(ctx, tabID)
	if err != nil {
		return 0, err
	}

	window := tab.WindowID
	all, err := s.suspendableTabs(ctx, c, ports.TabQuery{WindowID: &window})
	if err != nil {
		return 0, err
	}

	tabs := make([]domain.Tab, 0, len(all))
	for _, t := range all {
		if t.ID != tabID {
			tabs = append(tabs, t)
		}
	}
	return s.suspendTabs(ctx, c, tabs, mode), nil
}

// UnsuspendWindow restores every suspended tab of the window tabID belongs to
func (s *SuspenderService) UnsuspendWindow(ctx context.Context, tabID int) (int, error) {
	tab, c, err := s.tabAndCycle(ctx, tabID)
	if err != nil {
		return 0, err
	}

	window := tab.WindowID
	tabs, err := s.suspendedTabs(ctx, c, ports.TabQuery{WindowID: &window})
	if err != nil {
		return 0, err
	}
	return s.unsuspendTabs(ctx, c, tabs), nil
}

// SuspendAll suspends every tab allowed by mode
func (s *SuspenderService) SuspendAll(ctx context.Context, mode domain.SuspendMode) (int, error) {
	c, err := s.newCycle(ctx)
	if err != nil {
		return 0, err
	}

	tabs, err := s.suspendableTabs(ctx, c, ports.TabQuery{})
	if err != nil {
		return 0, err
	}
	return s.suspendTabs(ctx, c, tabs, mode), nil
}

// UnsuspendAll restores every suspended tab
func (s *SuspenderService) UnsuspendAll(ctx context.Context) (int, error) {
	c, err := s.newCycle(ctx)
	if err != nil {
		return 0, err
	}

	tabs, err := s.suspendedTabs(ctx, c, ports.TabQuery{})
	if err != nil {
		return 0, err
	}
	return s.unsuspendTabs(ctx, c, tabs), nil
}

// ReloadTabs rewrites placeholder tabs that have no icon with the update
// flag, so the placeholder page refreshes without restoring the tab
func (s *SuspenderService) ReloadTabs(ctx context.Context) (int, error) {
	windows, err := s.browser.ListWindows(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list windows: %w", err)
	}

	c, err := s.newCycle(ctx)
	if err != nil {
		return 0, err
	}

	var tabs []domain.Tab
	for _, w := range windows {
		for _, tab := range w.Tabs {
			if tab.FavIconURL == "" && tab.Valid() && s.isSuspended(tab) {
				tabs = append(tabs, tab)
			}
		}
	}

	return s.forEachTab(ctx, tabs, func(ctx context.Context, tab domain.Tab) (bool, error) {
		target := domain.ParseSuspendedURL(tab.URL)
		target.Update = true
		return true, s.writePlaceholder(ctx, c, tab.ID, target)
	}), nil
}

// CreateTabParams describes a tab to open
type CreateTabParams struct {
	Active   bool
	Index    *int
	OpenerID int
	Suspend  bool
	URL      string
	WindowID int
}

// CreateTab opens a tab. A suspended tab points at the placeholder right
// away so the real page is never loaded.
func (s *SuspenderService) CreateTab(ctx context.Context, params CreateTabParams) (domain.Tab, error) {
	filesAllowed, err := s.browser.FileSchemeAllowed(ctx)
	if err != nil {
		filesAllowed = false
	}

	suspend := params.Suspend && domain.IsReplaceableURL(params.URL, filesAllowed)
	target := params.URL
	if suspend {
		target = domain.SuspendedURL{URI: params.URL}.Placeholder(s.origin.PlaceholderPage())
	}

	created, err := s.browser.Create(ctx, ports.TabCreate{
		Active:      params.Active,
		Index:       params.Index,
		OpenerTabID: params.OpenerID,
		URL:         target,
		WindowID:    params.WindowID,
	})
	if err != nil {
		return domain.Tab{}, fmt.Errorf("failed to create tab: %w", err)
	}

	if suspend {
		autoDiscardable := false
		if created, err = s.browser.Update(ctx, created.ID, ports.TabUpdate{AutoDiscardable: &autoDiscardable}); err != nil {
			return domain.Tab{}, fmt.Errorf("failed to update created tab: %w", err)
		}
	}

	logging.Logger.Debug("Tab created", "tab_id", created.ID, "url", params.URL, "suspended", suspend)
	return created, nil
}

// OpenWindow opens a new window with one tab per URL
func (s *SuspenderService) OpenWindow(ctx context.Context, window domain.SessionWindow, suspend bool) error {
	if len(window.Tabs) == 0 {
		return nil
	}

	w, err := s.browser.CreateWindow(ctx)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	for _, u := range window.Tabs {
		if _, err := s.CreateTab(ctx, CreateTabParams{URL: u, Suspend: suspend, WindowID: w.ID}); err != nil {
			logging.Logger.Warn("Failed to open tab", "url", u, "error", err)
		}
	}
	return nil
}

// OpenSession opens every window of a session
func (s *SuspenderService) OpenSession(ctx context.Context, windows []domain.SessionWindow, suspend bool) error {
	for _, w := range windows {
		if err := s.OpenWindow(ctx, w, suspend); err != nil {
			return err
		}
	}
	return nil
}

// Migrate re-suspends the placeholder tabs of another installation under
// this one. It returns how many tabs moved.
func (s *SuspenderService) Migrate(ctx context.Context, installationID string) (int, error) {
	if !domain.ValidInstallationID(installationID) {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidInstallationID, installationID)
	}
	if installationID == s.origin.InstallationID() {
		return 0, fmt.Errorf("%w: cannot migrate from itself", domain.ErrInvalidInstallationID)
	}

	tabs, err := s.browser.Query(ctx, ports.TabQuery{URL: domain.InstallationMatchPattern(installationID)})
	if err != nil {
		return 0, fmt.Errorf("failed to query tabs: %w", err)
	}

	c, err := s.newCycle(ctx)
	if err != nil {
		return 0, err
	}

	moved := s.forEachTab(ctx, tabs, func(ctx context.Context, tab domain.Tab) (bool, error) {
		target := domain.ParseSuspendedURL(tab.URL)
		if target.URI == "" {
			return false, nil
		}
		return true, s.writePlaceholder(ctx, c, tab.ID, target)
	})

	logging.Logger.Info("Migration finished", "from", installationID, "tabs", moved)
	return moved, nil
}

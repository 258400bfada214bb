package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/ports"
	portsmocks "github.com/renato0307/tabrest/internal/ports/mocks"
)

const testOrigin = domain.Origin("http://127.0.0.1:7878/ext/0123456789abcdef0123456789abcdef")

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type suspenderFixture struct {
	browser  *portsmocks.MockBrowser
	store    *portsmocks.MockStore
	device   *portsmocks.MockDeviceStatusProvider
	favicons *portsmocks.MockFaviconFetcher
	history  *portsmocks.MockHistory
	svc      *SuspenderService

	mu      sync.Mutex
	cfg     *domain.Configuration
	records map[int]domain.TabRecord
}

func newSuspenderFixture(t *testing.T) *suspenderFixture {
	t.Helper()

	f := &suspenderFixture{
		browser:  portsmocks.NewMockBrowser(t),
		store:    portsmocks.NewMockStore(t),
		device:   portsmocks.NewMockDeviceStatusProvider(t),
		favicons: portsmocks.NewMockFaviconFetcher(t),
		history:  portsmocks.NewMockHistory(t),
		cfg:      domain.DefaultConfiguration(),
		records:  map[int]domain.TabRecord{},
	}
	f.cfg.NeverSuspendUnsavedData = false

	f.store.EXPECT().LoadConfiguration(mock.Anything).
		RunAndReturn(func(context.Context) (*domain.Configuration, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			return f.cfg.Clone(), nil
		}).Maybe()
	f.store.EXPECT().GetTabRecord(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id int) (domain.TabRecord, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if r, ok := f.records[id]; ok {
				return r, nil
			}
			return domain.TabRecord{TabID: id}, nil
		}).Maybe()
	f.store.EXPECT().SaveTabRecord(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r domain.TabRecord) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.records[r.TabID] = r
			return nil
		}).Maybe()
	f.device.EXPECT().Status(mock.Anything).Return(domain.DefaultDeviceStatus, nil).Maybe()
	f.browser.EXPECT().FileSchemeAllowed(mock.Anything).Return(false, nil).Maybe()
	f.browser.EXPECT().SetActionIcon(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.browser.EXPECT().URLAllowed(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, rawURL string) (bool, error) {
			return strings.HasPrefix(rawURL, "http"), nil
		}).Maybe()

	f.svc = NewSuspenderService(f.browser, f.store, f.device, f.favicons, f.history, nil,
		SuspenderOptions{Origin: testOrigin})
	f.svc.now = func() time.Time { return testNow }
	return f
}

func (f *suspenderFixture) configure(fn func(cfg *domain.Configuration)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f.cfg)
}

func liveTab(id int, rawURL string) domain.Tab {
	return domain.Tab{
		ID:           id,
		WindowID:     1,
		GroupID:      domain.GroupNone,
		Index:        id - 1,
		URL:          rawURL,
		Title:        "Page",
		Status:       domain.LoadStatusComplete,
		WindowType:   domain.WindowTypeNormal,
		LastAccessed: testNow.Add(-2 * time.Hour),
	}
}

func placeholderTab(id int, target domain.SuspendedURL) domain.Tab {
	return liveTab(id, target.Placeholder(testOrigin.PlaceholderPage()))
}

func TestGetTabStatus(t *testing.T) {
	tests := []struct {
		name      string
		tab       domain.Tab
		configure func(cfg *domain.Configuration)
		record    *domain.TabRecord
		want      domain.TabStatus
	}{
		{
			name: "normal page",
			tab:  liveTab(1, "https://example.com/"),
			want: domain.TabStatusNormal,
		},
		{
			name: "placeholder",
			tab:  placeholderTab(1, domain.SuspendedURL{URI: "https://example.com/"}),
			want: domain.TabStatusSuspended,
		},
		{
			name: "browser page",
			tab:  liveTab(1, "chrome://settings"),
			want: domain.TabStatusSpecial,
		},
		{
			name: "pinned",
			tab: func() domain.Tab {
				tab := liveTab(1, "https://example.com/")
				tab.Pinned = true
				return tab
			}(),
			want: domain.TabStatusPinned,
		},
		{
			name:      "whitelisted",
			tab:       liveTab(1, "https://example.com/docs"),
			configure: func(cfg *domain.Configuration) { cfg.WhiteList = []string{"example.com"} },
			want:      domain.TabStatusWhiteList,
		},
		{
			name:   "paused by record",
			tab:    liveTab(1, "https://example.com/"),
			record: &domain.TabRecord{TabID: 1, IsPaused: true},
			want:   domain.TabStatusSuspendPaused,
		},
		{
			name:      "disabled",
			tab:       liveTab(1, "https://example.com/"),
			configure: func(cfg *domain.Configuration) { cfg.SuspendDelay = 0 },
			want:      domain.TabStatusDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSuspenderFixture(t)
			if tt.configure != nil {
				f.configure(tt.configure)
			}
			if tt.record != nil {
				f.records[tt.record.TabID] = *tt.record
			}
			f.browser.EXPECT().Get(mock.Anything, 1).Return(tt.tab, nil)

			status, err := f.svc.GetTabStatus(context.Background(), 1)

			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestGetTabStatus_UnsavedFormUsesCapture(t *testing.T) {
	f := newSuspenderFixture(t)
	f.configure(func(cfg *domain.Configuration) { cfg.NeverSuspendUnsavedData = true })

	tab := liveTab(4, "https://example.com/form")
	f.browser.EXPECT().Get(mock.Anything, 4).Return(tab, nil)
	f.browser.EXPECT().Evaluate(mock.Anything, 4, pageStateScript, captureOptions{ChangedFields: true}).
		Return(json.RawMessage(`{"scrollPosition":0,"time":null,"changedFields":true}`), nil).Once()

	status, err := f.svc.GetTabStatus(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, domain.TabStatusUnsavedForm, status)
}

func TestListTabs(t *testing.T) {
	f := newSuspenderFixture(t)
	live := liveTab(1, "https://example.com/")
	suspended := placeholderTab(2, domain.SuspendedURL{URI: "https://example.org/"})
	f.browser.EXPECT().ListWindows(mock.Anything).
		Return([]domain.Window{{ID: 1, Type: domain.WindowTypeNormal, Tabs: []domain.Tab{live, suspended}}}, nil)

	views, err := f.svc.ListTabs(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, domain.TabStatusNormal, views[0].Suspension)
	assert.Equal(t, domain.TabStatusSuspended, views[1].Suspension)
	assert.Equal(t, live.URL, views[0].URL)
}

func TestSuspend_WritesPlaceholder(t *testing.T) {
	f := newSuspenderFixture(t)

	tab := liveTab(7, "https://example.com/article")
	tab.FavIconURL = "https://example.com/favicon.ico"
	want := domain.SuspendedURL{
		URI:   tab.URL,
		Title: "Page",
		Icon:  domain.StringPtr(tab.FavIconURL),
	}.Placeholder(testOrigin.PlaceholderPage())
	autoDiscardable := false

	f.browser.EXPECT().Get(mock.Anything, 7).Return(tab, nil)
	f.browser.EXPECT().Update(mock.Anything, 7, ports.TabUpdate{URL: want, AutoDiscardable: &autoDiscardable}).
		Return(liveTab(7, want), nil).Once()

	err := f.svc.Suspend(context.Background(), 7)

	require.NoError(t, err)
}

func TestSuspend_CapturesScrollAndVideoTime(t *testing.T) {
	f := newSuspenderFixture(t)
	f.configure(func(cfg *domain.Configuration) {
		cfg.RestoreScrollPosition = true
		cfg.MaintainYoutubeTime = true
	})

	tab := liveTab(3, "https://www.youtube.com/watch?v=abc")
	f.browser.EXPECT().Get(mock.Anything, 3).Return(tab, nil)
	f.browser.EXPECT().Evaluate(mock.Anything, 3, pageStateScript, captureOptions{Scroll: true, Time: true}).
		Return(json.RawMessage(`{"scrollPosition":120,"time":42,"changedFields":false}`), nil).Once()

	var written string
	f.browser.EXPECT().Update(mock.Anything, 3, mock.Anything).
		RunAndReturn(func(_ context.Context, id int, u ports.TabUpdate) (domain.Tab, error) {
			written = u.URL
			return liveTab(id, u.URL), nil
		}).Once()

	require.NoError(t, f.svc.Suspend(context.Background(), 3))

	parsed := domain.ParseSuspendedURL(written)
	assert.True(t, strings.HasPrefix(written, testOrigin.PlaceholderPage()+"#"))
	assert.Equal(t, "https://www.youtube.com/watch?t=42s&v=abc", parsed.URI)
	assert.Equal(t, 120, parsed.ScrollPosition)
}

func TestSuspend_CaptureFailureLeavesTabAlone(t *testing.T) {
	f := newSuspenderFixture(t)
	f.configure(func(cfg *domain.Configuration) { cfg.RestoreScrollPosition = true })

	f.browser.EXPECT().Get(mock.Anything, 3).Return(liveTab(3, "https://example.com/"), nil)
	f.browser.EXPECT().Evaluate(mock.Anything, 3, mock.Anything, mock.Anything).
		Return(nil, errors.New("execution context was destroyed"))

	err := f.svc.Suspend(context.Background(), 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCaptureFailed)
}

func TestSuspend_RejectsBrowserPages(t *testing.T) {
	f := newSuspenderFixture(t)
	f.browser.EXPECT().Get(mock.Anything, 2).Return(liveTab(2, "chrome://newtab"), nil)

	err := f.svc.Suspend(context.Background(), 2)

	assert.ErrorIs(t, err, domain.ErrNotSuspendable)
}

func TestSuspend_PlaceholderIsNoOp(t *testing.T) {
	f := newSuspenderFixture(t)

	tab := placeholderTab(4, domain.SuspendedURL{URI: "https://example.com/", Title: "Example"})
	f.browser.EXPECT().Get(mock.Anything, 4).Return(tab, nil)
	f.browser.EXPECT().Query(mock.Anything, mock.Anything).Return([]domain.Tab{tab}, nil)

	require.NoError(t, f.svc.Suspend(context.Background(), 4))

	n, err := f.svc.SuspendAll(context.Background(), domain.SuspendModeForced)

	require.NoError(t, err)
	assert.Zero(t, n)
	f.browser.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestSuspend_RejectsOriginPages(t *testing.T) {
	otherID := "fedcba9876543210fedcba9876543210"
	target := domain.SuspendedURL{URI: "https://example.com/", Title: "Example"}

	tests := []struct {
		name string
		url  string
	}{
		{"options page", testOrigin.Page(domain.OptionsPage)},
		{"other installation placeholder", target.Placeholder(domain.NewOrigin("127.0.0.1:7878", otherID).PlaceholderPage())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSuspenderFixture(t)
			tab := liveTab(2, tt.url)
			f.browser.EXPECT().Get(mock.Anything, 2).Return(tab, nil)
			f.browser.EXPECT().Query(mock.Anything, mock.Anything).Return([]domain.Tab{tab}, nil)

			err := f.svc.Suspend(context.Background(), 2)
			assert.ErrorIs(t, err, domain.ErrNotSuspendable)

			n, err := f.svc.SuspendAll(context.Background(), domain.SuspendModeForced)
			require.NoError(t, err)
			assert.Zero(t, n)
			f.browser.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSuspend_DiscardsWhenConfigured(t *testing.T) {
	f := newSuspenderFixture(t)
	f.configure(func(cfg *domain.Configuration) { cfg.DiscardTabs = true })

	tab := liveTab(5, "https://example.com/")
	f.browser.EXPECT().Get(mock.Anything, 5).Return(tab, nil)
	f.browser.EXPECT().Discard(mock.Anything, 5).Return(tab, nil).Once()

	require.NoError(t, f.svc.Suspend(context.Background(), 5))
}

func TestSuspend_InlinesFavicon(t *testing.T) {
	f := newSuspenderFixture(t)
	f.configure(func(cfg *domain.Configuration) { cfg.InlineFavicons = true })

	tab := liveTab(6, "https://example.com/")
	tab.FavIconURL = "https://example.com/icon.png"
	dataURI := "data:image/png;base64,iVBORw0KGgo="

	f.browser.EXPECT().Get(mock.Anything, 6).Return(tab, nil)
	f.favicons.EXPECT().DataURI(mock.Anything, tab.FavIconURL).Return(dataURI, nil)
	f.browser.EXPECT().Update(mock.Anything, 6, mock.MatchedBy(func(u ports.TabUpdate) bool {
		icon := domain.ParseSuspendedURL(u.URL).Icon
		return icon != nil && *icon == dataURI
	})).Return(tab, nil).Once()

	require.NoError(t, f.svc.Suspend(context.Background(), 6))
}

func TestUnsuspend_RestoresOriginal(t *testing.T) {
	f := newSuspenderFixture(t)
	f.configure(func(cfg *domain.Configuration) { cfg.CleanupHistory = true })

	original := "https://example.com/long-read"
	tab := placeholderTab(8, domain.SuspendedURL{URI: original, Title: "Long read", ScrollPosition: 300})
	previous := testNow.Add(-time.Hour)

	f.browser.EXPECT().Get(mock.Anything, 8).Return(tab, nil)
	f.history.EXPECT().DeleteURL(mock.Anything, tab.URL).Return(nil)
	f.history.EXPECT().Visits(mock.Anything, original).Return([]ports.Visit{
		{URL: original, VisitTime: previous},
		{URL: original, VisitTime: testNow},
	}, nil)
	f.history.EXPECT().DeleteRange(mock.Anything, previous.Add(-historyEpsilon), previous.Add(historyEpsilon)).Return(nil)
	f.store.EXPECT().SetScrollPosition(mock.Anything, 8, 300).Return(nil).Once()
	f.browser.EXPECT().Update(mock.Anything, 8, ports.TabUpdate{URL: original}).
		Return(liveTab(8, original), nil).Once()

	require.NoError(t, f.svc.Unsuspend(context.Background(), 8))
	assert.Equal(t, testNow, f.records[8].LastAccess)
}

func TestUnsuspend_PlaceholderFromOtherAddress(t *testing.T) {
	f := newSuspenderFixture(t)

	original := "https://example.com/moved"
	oldPage := domain.NewOrigin("127.0.0.1:9999", testOrigin.InstallationID()).PlaceholderPage()
	tab := liveTab(8, domain.SuspendedURL{URI: original, Title: "Moved"}.Placeholder(oldPage))

	f.browser.EXPECT().Get(mock.Anything, 8).Return(tab, nil)
	f.store.EXPECT().SetScrollPosition(mock.Anything, 8, 0).Return(nil).Once()
	f.browser.EXPECT().Update(mock.Anything, 8, ports.TabUpdate{URL: original}).
		Return(liveTab(8, original), nil).Once()

	require.NoError(t, f.svc.Unsuspend(context.Background(), 8))
}

func TestUnsuspend_NotSuspended(t *testing.T) {
	f := newSuspenderFixture(t)
	f.browser.EXPECT().Get(mock.Anything, 1).Return(liveTab(1, "https://example.com/"), nil)

	err := f.svc.Unsuspend(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrNotSuspended)
}

func TestToggleSuspend(t *testing.T) {
	f := newSuspenderFixture(t)

	original := "https://example.com/"
	tab := placeholderTab(2, domain.SuspendedURL{URI: original})
	f.browser.EXPECT().Get(mock.Anything, 2).Return(tab, nil)
	f.store.EXPECT().SetScrollPosition(mock.Anything, 2, 0).Return(nil)
	f.browser.EXPECT().Update(mock.Anything, 2, ports.TabUpdate{URL: original}).Return(liveTab(2, original), nil).Once()

	require.NoError(t, f.svc.ToggleSuspend(context.Background(), 2))
}

func TestSuspendAuto(t *testing.T) {
	f := newSuspenderFixture(t)

	idle := liveTab(1, "https://example.com/idle")
	recent := liveTab(2, "https://example.com/recent")
	recent.LastAccessed = testNow.Add(-5 * time.Minute)
	unknown := liveTab(3, "https://example.com/unknown")
	unknown.LastAccessed = time.Time{}
	suspended := placeholderTab(4, domain.SuspendedURL{URI: "https://example.com/"})
	f.records[1] = domain.TabRecord{TabID: 1, LastAccess: testNow.Add(-90 * time.Minute)}

	var query ports.TabQuery
	f.browser.EXPECT().Query(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, q ports.TabQuery) ([]domain.Tab, error) {
			query = q
			return []domain.Tab{idle, recent, unknown, suspended}, nil
		}).Once()
	f.browser.EXPECT().Update(mock.Anything, 1, mock.Anything).Return(idle, nil).Once()

	n, err := f.svc.SuspendAuto(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, domain.LoadStatusComplete, query.Status)
	assert.Equal(t, domain.WindowTypeNormal, query.WindowType)
	for _, flag := range []*bool{query.Active, query.Audible, query.Pinned, query.Discarded} {
		require.NotNil(t, flag)
		assert.False(t, *flag)
	}
}

func TestSuspendAuto_RecentActivationKeepsTab(t *testing.T) {
	f := newSuspenderFixture(t)

	tab := liveTab(1, "https://example.com/")
	f.records[1] = domain.TabRecord{TabID: 1, LastAccess: testNow.Add(-time.Minute)}
	f.browser.EXPECT().Query(mock.Anything, mock.Anything).Return([]domain.Tab{tab}, nil)

	n, err := f.svc.SuspendAuto(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSuspendAuto_BlockedOnPower(t *testing.T) {
	f := newSuspenderFixture(t)
	f.configure(func(cfg *domain.Configuration) { cfg.NeverSuspendWhenPowerOn = true })

	n, err := f.svc.SuspendAuto(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSuspendWindow_ForcedSkipsTriggerTab(t *testing.T) {
	f := newSuspenderFixture(t)

	trigger := liveTab(1, "https://example.com/a")
	other := liveTab(2, "https://example.com/b")
	other.Pinned = true
	special := liveTab(3, "chrome://newtab")

	f.browser.EXPECT().Get(mock.Anything, 1).Return(trigger, nil)
	f.browser.EXPECT().Query(mock.Anything, mock.MatchedBy(func(q ports.TabQuery) bool {
		return q.WindowID != nil && *q.WindowID == 1
	})).Return([]domain.Tab{trigger, other, special}, nil)
	f.browser.EXPECT().Update(mock.Anything, 2, mock.Anything).Return(other, nil).Once()

	n, err := f.svc.SuspendWindow(context.Background(), 1, domain.SuspendModeForced)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSuspendGroup_UngroupedTabIsGroupOfOne(t *testing.T) {
	f := newSuspenderFixture(t)

	tab := liveTab(1, "https://example.com/")
	f.browser.EXPECT().Get(mock.Anything, 1).Return(tab, nil)
	f.browser.EXPECT().Update(mock.Anything, 1, mock.Anything).Return(tab, nil).Once()

	n, err := f.svc.SuspendGroup(context.Background(), 1, domain.SuspendModeForced)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUnsuspendAll(t *testing.T) {
	f := newSuspenderFixture(t)

	a := placeholderTab(1, domain.SuspendedURL{URI: "https://a.example/"})
	b := placeholderTab(2, domain.SuspendedURL{URI: "https://b.example/"})
	f.browser.EXPECT().Query(mock.Anything, mock.MatchedBy(func(q ports.TabQuery) bool {
		return q.URL == testOrigin.PlaceholderMatchPattern()
	})).Return([]domain.Tab{a, b}, nil)
	f.store.EXPECT().SetScrollPosition(mock.Anything, mock.Anything, 0).Return(nil)
	f.browser.EXPECT().Update(mock.Anything, 1, ports.TabUpdate{URL: "https://a.example/"}).Return(a, nil).Once()
	f.browser.EXPECT().Update(mock.Anything, 2, ports.TabUpdate{URL: "https://b.example/"}).Return(b, nil).Once()

	n, err := f.svc.UnsuspendAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSuspendAll_SkipsFailedTabs(t *testing.T) {
	f := newSuspenderFixture(t)

	a := liveTab(1, "https://a.example/")
	b := liveTab(2, "https://b.example/")
	f.browser.EXPECT().Query(mock.Anything, mock.Anything).Return([]domain.Tab{a, b}, nil)
	f.browser.EXPECT().Update(mock.Anything, 1, mock.Anything).Return(domain.Tab{}, errors.New("tab closed"))
	f.browser.EXPECT().Update(mock.Anything, 2, mock.Anything).Return(b, nil)

	n, err := f.svc.SuspendAll(context.Background(), domain.SuspendModeNormal)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReloadTabs(t *testing.T) {
	f := newSuspenderFixture(t)

	target := domain.SuspendedURL{URI: "https://example.com/", Title: "Example"}
	stale := placeholderTab(1, target)
	withIcon := placeholderTab(2, target)
	withIcon.FavIconURL = "data:image/png;base64,AAAA"

	f.browser.EXPECT().ListWindows(mock.Anything).Return([]domain.Window{
		{ID: 1, Tabs: []domain.Tab{stale, withIcon, liveTab(3, "https://example.com/")}},
	}, nil)

	refreshed := target
	refreshed.Update = true
	autoDiscardable := false
	f.browser.EXPECT().Update(mock.Anything, 1, ports.TabUpdate{
		URL:             refreshed.Placeholder(testOrigin.PlaceholderPage()),
		AutoDiscardable: &autoDiscardable,
	}).Return(stale, nil).Once()

	n, err := f.svc.ReloadTabs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCreateTab_Suspended(t *testing.T) {
	f := newSuspenderFixture(t)

	link := "https://example.com/later"
	index := 3
	placeholder := domain.SuspendedURL{URI: link}.Placeholder(testOrigin.PlaceholderPage())
	autoDiscardable := false

	f.browser.EXPECT().Create(mock.Anything, ports.TabCreate{Index: &index, OpenerTabID: 2, URL: placeholder, WindowID: 1}).
		Return(liveTab(9, placeholder), nil).Once()
	f.browser.EXPECT().Update(mock.Anything, 9, ports.TabUpdate{AutoDiscardable: &autoDiscardable}).
		Return(liveTab(9, placeholder), nil).Once()

	tab, err := f.svc.CreateTab(context.Background(), CreateTabParams{
		Index:    &index,
		OpenerID: 2,
		Suspend:  true,
		URL:      link,
		WindowID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, 9, tab.ID)
}

func TestOpenSession(t *testing.T) {
	f := newSuspenderFixture(t)

	windows := domain.ParseSessionWindows("https://a.example/\nhttps://b.example/\n\nhttps://c.example/")
	f.browser.EXPECT().CreateWindow(mock.Anything).Return(domain.Window{ID: 4}, nil).Twice()
	f.browser.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c ports.TabCreate) bool {
		return c.WindowID == 4 && !c.Active
	})).Return(liveTab(10, "https://a.example/"), nil).Times(3)

	require.NoError(t, f.svc.OpenSession(context.Background(), windows, false))
}

func TestMigrate(t *testing.T) {
	const otherID = "fedcba9876543210fedcba9876543210"

	t.Run("rejects invalid ids", func(t *testing.T) {
		f := newSuspenderFixture(t)

		_, err := f.svc.Migrate(context.Background(), "not-an-id")
		assert.ErrorIs(t, err, domain.ErrInvalidInstallationID)

		_, err = f.svc.Migrate(context.Background(), testOrigin.InstallationID())
		assert.ErrorIs(t, err, domain.ErrInvalidInstallationID)
	})

	t.Run("rewrites placeholders of the other installation", func(t *testing.T) {
		f := newSuspenderFixture(t)

		oldPage := domain.NewOrigin("127.0.0.1:9000", otherID).PlaceholderPage()
		moved := liveTab(1, domain.SuspendedURL{URI: "https://example.com/", Title: "Example"}.Placeholder(oldPage))
		empty := liveTab(2, oldPage)

		f.browser.EXPECT().Query(mock.Anything, ports.TabQuery{URL: domain.InstallationMatchPattern(otherID)}).
			Return([]domain.Tab{moved, empty}, nil)
		f.browser.EXPECT().Update(mock.Anything, 1, mock.MatchedBy(func(u ports.TabUpdate) bool {
			parsed := domain.ParseSuspendedURL(u.URL)
			return strings.HasPrefix(u.URL, testOrigin.PlaceholderPage()) &&
				parsed.URI == "https://example.com/" && parsed.Title == "Example"
		})).Return(moved, nil).Once()

		n, err := f.svc.Migrate(context.Background(), otherID)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestWithVideoTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.youtube.com/watch?v=abc", "https://www.youtube.com/watch?t=42s&v=abc"},
		{"https://www.youtube.com/watch?v=abc&t=10s", "https://www.youtube.com/watch?t=42s&v=abc"},
		{"https://www.youtube.com/watch?v=abc&list=PL1", "https://www.youtube.com/watch?list=PL1&t=42s&v=abc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, withVideoTime(tt.in, 42), tt.in)
	}
}

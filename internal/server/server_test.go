package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/monitoring"
	"github.com/renato0307/tabrest/internal/services"
)

const testInstallationID = "0123456789abcdef0123456789abcdef"

type fakeActions struct {
	got  []services.ActionEnvelope
	resp services.ActionResponse
}

func (f *fakeActions) Handle(_ context.Context, env services.ActionEnvelope) services.ActionResponse {
	f.got = append(f.got, env)
	return f.resp
}

type fakeConfig struct {
	cfg *domain.Configuration
	err error
}

func (f *fakeConfig) Configuration(context.Context) (*domain.Configuration, error) {
	return f.cfg, f.err
}

func (f *fakeConfig) Fields(includeHidden bool) []domain.ConfigField {
	var fields []domain.ConfigField
	for _, field := range domain.ConfigFields {
		if includeHidden || !field.Hidden {
			fields = append(fields, field)
		}
	}
	return fields
}

type fakeSessions struct {
	sessions map[domain.SessionKind][]domain.Session
	saved    []string
	err      error
}

func (f *fakeSessions) List(_ context.Context, kind domain.SessionKind) ([]domain.Session, error) {
	return f.sessions[kind], nil
}

func (f *fakeSessions) SaveCurrent(_ context.Context, name string) (domain.Session, error) {
	if f.err != nil {
		return domain.Session{}, f.err
	}
	f.saved = append(f.saved, name)
	return domain.Session{ID: "s1", Name: name, Kind: domain.SessionKindSaved}, nil
}

type fakeTabs struct {
	tabs []services.TabView
	err  error
}

func (f *fakeTabs) ListTabs(context.Context) ([]services.TabView, error) {
	return f.tabs, f.err
}

type serverFixture struct {
	actions  *fakeActions
	config   *fakeConfig
	sessions *fakeSessions
	tabs     *fakeTabs
	server   *Server
	origin   domain.Origin
}

func newServerFixture(t *testing.T, opts Options) *serverFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &serverFixture{
		actions:  &fakeActions{resp: services.ActionResponse{Success: true}},
		config:   &fakeConfig{cfg: domain.DefaultConfiguration()},
		sessions: &fakeSessions{sessions: map[domain.SessionKind][]domain.Session{}},
		tabs:     &fakeTabs{},
		origin:   domain.NewOrigin("127.0.0.1:7878", testInstallationID),
	}
	opts.Debug = true
	f.server = NewServer(opts, f.origin, Deps{
		Actions:  f.actions,
		Config:   f.config,
		Metrics:  monitoring.NewMetrics(),
		Sessions: f.sessions,
		Tabs:     f.tabs,
	})
	return f
}

func (f *serverFixture) do(method, target string, body []byte, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	f := newServerFixture(t, Options{})

	rec := f.do(http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPlaceholderPage(t *testing.T) {
	f := newServerFixture(t, Options{})

	t.Run("served for this installation", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/ext/"+testInstallationID+"/suspended.html", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "unsuspend_tab")
	})

	t.Run("not found for another installation", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/ext/ffffffffffffffffffffffffffffffff/suspended.html", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("compressed when accepted", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/ext/"+testInstallationID+"/suspended.html", nil, "Accept-Encoding", "gzip")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	})
}

func TestIcon(t *testing.T) {
	f := newServerFixture(t, Options{})

	rec := f.do(http.MethodGet, "/ext/"+testInstallationID+"/icon.svg", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
}

func TestPlaceholderInfo(t *testing.T) {
	tests := []struct {
		name   string
		target domain.SuspendedURL
		mode   domain.FaviconMode
		want   PlaceholderInfo
	}{
		{
			name: "title is stripped of markup",
			target: domain.SuspendedURL{
				URI:            "https://example.com/docs/",
				Title:          "<b>Docs</b> & more",
				ScrollPosition: 120,
				Icon:           domain.StringPtr("https://example.com/favicon.ico"),
			},
			mode: domain.FaviconModeNoDim,
			want: PlaceholderInfo{
				URI:            "https://example.com/docs/",
				Title:          "Docs & more",
				Link:           "example.com/docs",
				Icon:           "https://example.com/favicon.ico",
				ScrollPosition: 120,
			},
		},
		{
			name:   "empty title falls back to the address",
			target: domain.SuspendedURL{URI: "https://example.com/a", Update: true},
			mode:   domain.FaviconModeGoogle,
			want: PlaceholderInfo{
				URI:    "https://example.com/a",
				Title:  "https://example.com/a",
				Link:   "example.com/a",
				Icon:   "https://www.google.com/s2/favicons?sz=32&domain=example.com",
				Dim:    true,
				Update: true,
			},
		},
		{
			name:   "explicit empty icon uses the default",
			target: domain.SuspendedURL{URI: "https://example.com", Title: "Home", Icon: domain.StringPtr("")},
			mode:   domain.FaviconModeNoDim,
			want: PlaceholderInfo{
				URI:   "https://example.com",
				Title: "Home",
				Link:  "example.com",
				Icon:  "http://127.0.0.1:7878/ext/" + testInstallationID + "/icon.svg",
				Dim:   true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture(t, Options{})
			f.config.cfg.FaviconsMode = tt.mode

			target := "/ext/" + testInstallationID + "/info?hash=" + url.QueryEscape(tt.target.Hash())
			rec := f.do(http.MethodGet, target, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var got PlaceholderInfo
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlaceholderInfoConfigError(t *testing.T) {
	f := newServerFixture(t, Options{})
	f.config.err = errors.New("database is locked")

	rec := f.do(http.MethodGet, "/ext/"+testInstallationID+"/info?hash=", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestOptionsPage(t *testing.T) {
	f := newServerFixture(t, Options{})
	f.config.cfg.WhiteList = []string{"example.com"}
	f.sessions.sessions[domain.SessionKindRecent] = []domain.Session{
		{Name: "Monday", Tabs: 2, Data: "https://a.test\nhttps://b.test"},
	}

	rec := f.do(http.MethodGet, "/ext/"+testInstallationID+"/options.html", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, testInstallationID)
	assert.Contains(t, body, "suspendDelay")
	assert.Contains(t, body, "example.com")
	assert.Contains(t, body, "Monday")
	assert.NotContains(t, body, "sweepInterval")
}

func TestHandleAction(t *testing.T) {
	t.Run("forwards the envelope", func(t *testing.T) {
		f := newServerFixture(t, Options{})
		f.actions.resp = services.ActionResponse{Success: true, Data: "normal"}

		rec := f.do(http.MethodPost, "/api/actions", []byte(`{"action":"tab_status","tabId":7}`))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"data":"normal"}`, rec.Body.String())
		require.Len(t, f.actions.got, 1)
		assert.Equal(t, "tab_status", f.actions.got[0].Action)
		require.NotNil(t, f.actions.got[0].TabID)
		assert.Equal(t, 7, *f.actions.got[0].TabID)
	})

	t.Run("failures are reported in the body", func(t *testing.T) {
		f := newServerFixture(t, Options{})
		f.actions.resp = services.ActionResponse{Error: `Unknown action: "nope"`}

		rec := f.do(http.MethodPost, "/api/actions", []byte(`{"action":"nope"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"Unknown action: \"nope\""}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newServerFixture(t, Options{})

		rec := f.do(http.MethodPost, "/api/actions", []byte(`{"action":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, f.actions.got)
	})
}

func TestListTabs(t *testing.T) {
	f := newServerFixture(t, Options{})

	rec := f.do(http.MethodGet, "/api/tabs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	f.tabs.err = errors.New("browser closed")
	rec = f.do(http.MethodGet, "/api/tabs", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStatus(t *testing.T) {
	f := newServerFixture(t, Options{})

	rec := f.do(http.MethodGet, "/api/status", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testInstallationID, got.InstallationID)
	assert.Equal(t, string(f.origin), got.Origin)
}

func TestSaveSession(t *testing.T) {
	f := newServerFixture(t, Options{})

	rec := f.do(http.MethodPost, "/api/sessions", []byte(`{"name":"work"}`))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"work"}, f.sessions.saved)

	f.sessions.err = domain.ErrInvalidValue
	rec = f.do(http.MethodPost, "/api/sessions", []byte(`{"name":""}`))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRateLimit(t *testing.T) {
	f := newServerFixture(t, Options{RateLimit: 0.001, Burst: 1})

	first := f.do(http.MethodGet, "/api/status", nil)
	second := f.do(http.MethodGet, "/api/status", nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, second.Body.String())

	// pages are not limited
	page := f.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, page.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newServerFixture(t, Options{})
	f.do(http.MethodGet, "/healthz", nil)

	rec := f.do(http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `tabrest_http_requests_total{method="GET",path="/healthz",status="200"} 1`)
}

func TestDisplayLink(t *testing.T) {
	assert.Equal(t, "example.com/a/b", displayLink("https://example.com/a/b/"))
	assert.Equal(t, "example.com", displayLink("https://example.com"))
	assert.Equal(t, "not a url", displayLink("not a url"))
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/monitoring"
	"github.com/renato0307/tabrest/internal/ports"
)

const invalidTabMessage = "Unknown or invalid tab"

// ActionEnvelope is the wire form of an action request. The tab is named
// by TabID or, for the placeholder page, by its current URL.
type ActionEnvelope struct {
	Action      string  `json:"action"`
	TabID       *int    `json:"tabId,omitempty"`
	URL         *string `json:"url,omitempty"`
	URLs        *string `json:"urls,omitempty"`
	Suspended   *bool   `json:"suspended,omitempty"`
	ExtensionID *string `json:"extensionId,omitempty"`
}

// ActionResponse is the result of a dispatched action
type ActionResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ActionRequest is a parsed action. The concrete types below are the only
// implementations.
type ActionRequest interface {
	Name() domain.ActionName
}

// TabActionRequest is an action that only needs its target tab
type TabActionRequest struct {
	Action domain.ActionName
	Tab    domain.Tab
}

// GlobalActionRequest is an action on every tab
type GlobalActionRequest struct {
	Action domain.ActionName
}

// OpenLinkRequest opens URL in a suspended tab next to Tab
type OpenLinkRequest struct {
	Tab domain.Tab
	URL string
}

// OpenSettingsRequest opens the options page, next to Opener when set
type OpenSettingsRequest struct {
	Opener *domain.Tab
}

// MigrateRequest moves placeholders of another installation to this one
type MigrateRequest struct {
	InstallationID string
}

// OpenWindowRequest opens one window
type OpenWindowRequest struct {
	Window    domain.SessionWindow
	Suspended bool
}

// OpenSessionRequest opens several windows
type OpenSessionRequest struct {
	Windows   []domain.SessionWindow
	Suspended bool
}

func (r TabActionRequest) Name() domain.ActionName { return r.Action }
func (r GlobalActionRequest) Name() domain.ActionName { return r.Action }
func (OpenLinkRequest) Name() domain.ActionName { return domain.ActionOpenLinkInSuspendedTab }
func (OpenSettingsRequest) Name() domain.ActionName { return domain.ActionOpenSettings }
func (MigrateRequest) Name() domain.ActionName { return domain.ActionMigrate }
func (OpenWindowRequest) Name() domain.ActionName { return domain.ActionOpenWindow }
func (OpenSessionRequest) Name() domain.ActionName { return domain.ActionOpenSession }

// ActionService turns action requests into calls on the other services
type ActionService struct {
	browser   ports.TabReader
	metrics   *monitoring.Metrics
	settings  *SettingsService
	suspender *SuspenderService
}

// NewActionService creates a new ActionService. metrics may be nil.
func NewActionService(
	browser ports.TabReader,
	suspender *SuspenderService,
	settings *SettingsService,
	metrics *monitoring.Metrics,
) *ActionService {
	return &ActionService{
		browser:   browser,
		metrics:   metrics,
		settings:  settings,
		suspender: suspender,
	}
}

// Handle parses and dispatches one request
func (s *ActionService) Handle(ctx context.Context, env ActionEnvelope) ActionResponse {
	req, err := s.ParseRequest(ctx, env)
	if err != nil {
		s.metrics.Action(env.Action, false)
		return errorResponse(env.Action, err)
	}

	resp := s.Dispatch(ctx, req)
	s.metrics.Action(string(req.Name()), resp.Success)
	return resp
}

// ParseRequest validates an envelope and resolves its tab
func (s *ActionService) ParseRequest(ctx context.Context, env ActionEnvelope) (ActionRequest, error) {
	action := domain.GetActionByName(env.Action)
	if action == nil {
		return nil, domain.ErrUnknownAction
	}

	var tab *domain.Tab
	if action.RequiresTab || action.Name == domain.ActionOpenSettings {
		t, err := s.resolveTab(ctx, env, action.Name)
		if err != nil && action.RequiresTab {
			return nil, err
		}
		tab = t
	}

	switch action.Name {
	case domain.ActionOpenLinkInSuspendedTab:
		link := strings.TrimSpace(deref(env.URL))
		if link == "" {
			return nil, fmt.Errorf("%w: url", domain.ErrMissingField)
		}
		return OpenLinkRequest{Tab: *tab, URL: link}, nil
	case domain.ActionOpenSettings:
		return OpenSettingsRequest{Opener: tab}, nil
	case domain.ActionMigrate:
		return MigrateRequest{InstallationID: strings.TrimSpace(deref(env.ExtensionID))}, nil
	case domain.ActionOpenWindow:
		return OpenWindowRequest{
			Window:    domain.ParseSessionWindow(deref(env.URLs)),
			Suspended: env.Suspended != nil && *env.Suspended,
		}, nil
	case domain.ActionOpenSession:
		return OpenSessionRequest{
			Windows:   domain.ParseSessionWindows(deref(env.URLs)),
			Suspended: env.Suspended != nil && *env.Suspended,
		}, nil
	}

	if action.RequiresTab {
		return TabActionRequest{Action: action.Name, Tab: *tab}, nil
	}
	return GlobalActionRequest{Action: action.Name}, nil
}

// resolveTab finds the target tab by id, or by URL when no id is given.
// URLs are compared without the placeholder update flag.
// The url field of open_link_in_suspended_tab is the link, not the tab.
func (s *ActionService) resolveTab(ctx context.Context, env ActionEnvelope, name domain.ActionName) (*domain.Tab, error) {
	if env.TabID != nil {
		tab, err := s.browser.Get(ctx, *env.TabID)
		if err != nil || !tab.Valid() {
			return nil, domain.ErrInvalidTab
		}
		return &tab, nil
	}

	if env.URL == nil || name == domain.ActionOpenLinkInSuspendedTab {
		return nil, domain.ErrInvalidTab
	}

	windows, err := s.browser.ListWindows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list windows: %w", err)
	}
	want := domain.WithoutUpdateFlag(*env.URL)
	for _, w := range windows {
		for _, tab := range w.Tabs {
			if domain.WithoutUpdateFlag(tab.URL) == want && tab.Valid() {
				return &tab, nil
			}
		}
	}
	return nil, domain.ErrInvalidTab
}

// Dispatch runs a parsed request
func (s *ActionService) Dispatch(ctx context.Context, req ActionRequest) ActionResponse {
	data, err := s.dispatch(ctx, req)
	if err != nil {
		logging.Logger.Warn("Action failed", "action", req.Name(), "error", err)
		return errorResponse(string(req.Name()), err)
	}
	logging.Logger.Debug("Action done", "action", req.Name())
	return ActionResponse{Success: true, Data: data}
}

func (s *ActionService) dispatch(ctx context.Context, req ActionRequest) (any, error) {
	switch r := req.(type) {
	case TabActionRequest:
		return s.dispatchTab(ctx, r)
	case GlobalActionRequest:
		return s.dispatchGlobal(ctx, r)
	case OpenLinkRequest:
		index := r.Tab.Index + 1
		_, err := s.suspender.CreateTab(ctx, CreateTabParams{
			Index:    &index,
			OpenerID: r.Tab.ID,
			Suspend:  true,
			URL:      r.URL,
			WindowID: r.Tab.WindowID,
		})
		return nil, err
	case OpenSettingsRequest:
		params := CreateTabParams{Active: true, URL: s.suspender.Origin().Page(domain.OptionsPage)}
		if r.Opener != nil {
			index := r.Opener.Index + 1
			params.Index = &index
			params.OpenerID = r.Opener.ID
			params.WindowID = r.Opener.WindowID
		}
		if _, err := s.suspender.CreateTab(ctx, params); err != nil {
			return nil, err
		}
		_, err := s.suspender.ReloadTabs(ctx)
		return nil, err
	case MigrateRequest:
		return s.suspender.Migrate(ctx, r.InstallationID)
	case OpenWindowRequest:
		return nil, s.suspender.OpenWindow(ctx, r.Window, r.Suspended)
	case OpenSessionRequest:
		return nil, s.suspender.OpenSession(ctx, r.Windows, r.Suspended)
	}
	return nil, domain.ErrUnknownAction
}

func (s *ActionService) dispatchTab(ctx context.Context, r TabActionRequest) (any, error) {
	id := r.Tab.ID
	switch r.Action {
	case domain.ActionTabStatus:
		return s.suspender.GetTabStatus(ctx, id)
	case domain.ActionTogglePauseTab:
		return s.settings.TogglePauseTab(ctx, id)
	case domain.ActionPauseTab:
		return nil, s.settings.PauseTab(ctx, id)
	case domain.ActionUnpauseTab:
		return nil, s.settings.UnpauseTab(ctx, id)
	case domain.ActionWhitelistDomain:
		return nil, s.settings.WhitelistDomain(ctx, r.Tab.URL)
	case domain.ActionWhitelistURL:
		return nil, s.settings.WhitelistURL(ctx, r.Tab.URL)
	case domain.ActionWhitelistRemove:
		return nil, s.settings.WhitelistRemove(ctx, r.Tab.URL)
	case domain.ActionToggleSuspendTab:
		return nil, s.suspender.ToggleSuspend(ctx, id)
	case domain.ActionSuspendTab:
		return nil, s.suspender.Suspend(ctx, id)
	case domain.ActionUnsuspendTab:
		return nil, s.suspender.Unsuspend(ctx, id)
	case domain.ActionSuspendGroup:
		return s.suspender.SuspendGroup(ctx, id, domain.SuspendModeNormal)
	case domain.ActionSuspendGroupForced:
		return s.suspender.SuspendGroup(ctx, id, domain.SuspendModeForced)
	case domain.ActionUnsuspendGroup:
		return s.suspender.UnsuspendGroup(ctx, id)
	case domain.ActionSuspendWindow:
		return s.suspender.SuspendWindow(ctx, id, domain.SuspendModeNormal)
	case domain.ActionSuspendWindowForced:
		return s.suspender.SuspendWindow(ctx, id, domain.SuspendModeForced)
	case domain.ActionUnsuspendWindow:
		return s.suspender.UnsuspendWindow(ctx, id)
	}
	return nil, domain.ErrUnknownAction
}

func (s *ActionService) dispatchGlobal(ctx context.Context, r GlobalActionRequest) (any, error) {
	switch r.Action {
	case domain.ActionSuspendAll:
		return s.suspender.SuspendAll(ctx, domain.SuspendModeNormal)
	case domain.ActionSuspendAllForced:
		return s.suspender.SuspendAll(ctx, domain.SuspendModeForced)
	case domain.ActionUnsuspendAll:
		return s.suspender.UnsuspendAll(ctx)
	}
	return nil, domain.ErrUnknownAction
}

func errorResponse(action string, err error) ActionResponse {
	switch {
	case errors.Is(err, domain.ErrUnknownAction):
		return ActionResponse{Error: fmt.Sprintf("Unknown action: %q", action)}
	case errors.Is(err, domain.ErrInvalidTab):
		return ActionResponse{Error: invalidTabMessage}
	}
	return ActionResponse{Error: err.Error()}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

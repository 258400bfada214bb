package ports

import (
	"context"
	"encoding/json"

	"github.com/renato0307/tabrest/internal/domain"
)

// TabQuery filters tabs. Nil fields are not filtered on.
type TabQuery struct {
	Active     *bool
	Audible    *bool
	Discarded  *bool
	GroupID    *int
	Pinned     *bool
	Status     domain.LoadStatus
	URL        string
	WindowID   *int
	WindowType domain.WindowType
}

// TabUpdate changes a tab. Nil or empty fields are left untouched.
type TabUpdate struct {
	AutoDiscardable *bool
	Pinned          *bool
	URL             string
}

// TabCreate describes a tab to open
type TabCreate struct {
	Active      bool
	Index       *int
	OpenerTabID int
	URL         string
	WindowID    int
}

// TabReader reads tabs and windows from the browser
type TabReader interface {
	Get(ctx context.Context, tabID int) (domain.Tab, error)
	ListWindows(ctx context.Context) ([]domain.Window, error)
	Query(ctx context.Context, query TabQuery) ([]domain.Tab, error)
}

// TabWriter mutates browser tabs
type TabWriter interface {
	Create(ctx context.Context, create TabCreate) (domain.Tab, error)
	CreateWindow(ctx context.Context) (domain.Window, error)
	Discard(ctx context.Context, tabID int) (domain.Tab, error)
	Update(ctx context.Context, tabID int, update TabUpdate) (domain.Tab, error)
}

// ScriptInjector runs a function expression in the main world of a page.
// The result is the JSON encoding of the returned value.
type ScriptInjector interface {
	Evaluate(ctx context.Context, tabID int, script string, arg any) (json.RawMessage, error)
}

// ActionIcon sets the toolbar icon shown for a tab
type ActionIcon interface {
	SetActionIcon(ctx context.Context, tabID int, icon domain.IconVariant) error
}

// Permissions reports host capabilities
type Permissions interface {
	FileSchemeAllowed(ctx context.Context) (bool, error)
	URLAllowed(ctx context.Context, rawURL string) (bool, error)
}

// TabEventSource streams tab changes until the browser closes
type TabEventSource interface {
	Events() <-chan domain.TabEvent
}

// Browser is the composite interface
type Browser interface {
	TabReader
	TabWriter
	ScriptInjector
	ActionIcon
	Permissions
}

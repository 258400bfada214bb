package domain

// TabEventKind is the kind of change the browser reports for a tab
type TabEventKind string

const (
	TabEventUpdated   TabEventKind = "updated"
	TabEventActivated TabEventKind = "activated"
	TabEventRemoved   TabEventKind = "removed"
)

// TabEvent is a change notification from the browser host
type TabEvent struct {
	Kind     TabEventKind
	TabID    int
	WindowID int
	// Status is set on updated events when the load status changed
	Status LoadStatus
	URL    string
}

package domain

import (
	"strings"
	"time"
)

const (
	sessionWindowSeparator = "\n\n"
	sessionTabSeparator    = "\n"

	// RecentSessionsLimit caps how many backups are kept as recent sessions
	RecentSessionsLimit = 7
)

// SessionKind tells apart the layout backup, recent backups and user saved sessions
type SessionKind string

const (
	SessionKindBackup SessionKind = "backup"
	SessionKindRecent SessionKind = "recent"
	SessionKindSaved  SessionKind = "saved"
)

// SessionWindow is an ordered list of tab URLs
type SessionWindow struct {
	Tabs []string `json:"tabs"`
}

// NewSessionWindow trims urls and drops blank ones
func NewSessionWindow(urls []string) SessionWindow {
	tabs := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			tabs = append(tabs, u)
		}
	}
	return SessionWindow{Tabs: tabs}
}

// ParseSessionWindow reads one URL per line
func ParseSessionWindow(data string) SessionWindow {
	return NewSessionWindow(strings.Split(data, sessionTabSeparator))
}

func (w SessionWindow) String() string {
	return strings.Join(w.Tabs, sessionTabSeparator)
}

// ParseSessionWindows reads windows separated by a blank line, skipping empty ones
func ParseSessionWindows(data string) []SessionWindow {
	var windows []SessionWindow
	for _, chunk := range strings.Split(data, sessionWindowSeparator) {
		if w := ParseSessionWindow(chunk); len(w.Tabs) > 0 {
			windows = append(windows, w)
		}
	}
	return windows
}

// Session is a snapshot of a window and tab layout
type Session struct {
	ID        string      `json:"id"`
	Kind      SessionKind `json:"kind"`
	Name      string      `json:"name"`
	Windows   int         `json:"windows"`
	Tabs      int         `json:"tabs"`
	Data      string      `json:"data"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewSession builds a session from windows. An empty name defaults to the
// current local time.
func NewSession(name string, windows []SessionWindow) Session {
	now := time.Now()
	if name == "" {
		name = now.Format(time.DateTime)
	}

	chunks := make([]string, 0, len(windows))
	tabs := 0
	for _, w := range windows {
		chunks = append(chunks, w.String())
		tabs += len(w.Tabs)
	}

	return Session{
		Name:      name,
		Windows:   len(windows),
		Tabs:      tabs,
		Data:      strings.Join(chunks, sessionWindowSeparator),
		CreatedAt: now,
	}
}

// SessionFromBrowser captures the URLs of every window that has tabs
func SessionFromBrowser(name string, windows []Window) Session {
	var result []SessionWindow
	for _, w := range windows {
		urls := make([]string, 0, len(w.Tabs))
		for _, t := range w.Tabs {
			urls = append(urls, t.URL)
		}
		if sw := NewSessionWindow(urls); len(sw.Tabs) > 0 {
			result = append(result, sw)
		}
	}
	return NewSession(name, result)
}

// LoadWindows parses the stored layout back into windows
func (s Session) LoadWindows() []SessionWindow {
	return ParseSessionWindows(s.Data)
}

// Copy returns the session under a new name
func (s Session) Copy(name string) Session {
	s.ID = ""
	s.Name = name
	return s
}

// AppendRecent adds backup to the recent list unless it is empty or equal to
// the newest entry, keeping at most RecentSessionsLimit entries. It reports
// whether the list changed.
func AppendRecent(recent []Session, backup Session) ([]Session, bool) {
	if backup.Windows == 0 {
		return recent, false
	}
	if len(recent) > 0 && recent[len(recent)-1].Data == backup.Data {
		return recent, false
	}

	backup.Kind = SessionKindRecent
	recent = append(recent, backup)
	if len(recent) > RecentSessionsLimit {
		recent = recent[len(recent)-RecentSessionsLimit:]
	}
	return recent, true
}

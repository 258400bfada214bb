package services

import (
	"context"
	"fmt"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/ports"
)

// SessionOpener opens windows of tabs in the browser
type SessionOpener interface {
	OpenSession(ctx context.Context, windows []domain.SessionWindow, suspend bool) error
}

// SessionService keeps the layout backup, the recent backups and the saved
// sessions
type SessionService struct {
	browser ports.TabReader
	opener  SessionOpener
	repo    ports.SessionRepository
}

// NewSessionService creates a new SessionService. browser and opener may be
// nil when no browser is running; operations needing them then fail.
func NewSessionService(
	repo ports.SessionRepository,
	browser ports.TabReader,
	opener SessionOpener,
) *SessionService {
	return &SessionService{
		browser: browser,
		opener:  opener,
		repo:    repo,
	}
}

// Current captures the layout of the running browser
func (s *SessionService) Current(ctx context.Context, name string) (domain.Session, error) {
	if s.browser == nil {
		return domain.Session{}, fmt.Errorf("no browser is running")
	}
	windows, err := s.browser.ListWindows(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to list windows: %w", err)
	}
	return domain.SessionFromBrowser(name, windows), nil
}

// SaveBackup stores the current layout as the crash recovery backup. An
// empty layout leaves the previous backup untouched.
func (s *SessionService) SaveBackup(ctx context.Context) error {
	session, err := s.Current(ctx, "")
	if err != nil {
		return err
	}
	if session.Windows == 0 {
		return nil
	}

	session.Kind = domain.SessionKindBackup
	if _, err := s.repo.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session backup: %w", err)
	}
	logging.Logger.Debug("Session backup saved", "windows", session.Windows, "tabs", session.Tabs)
	return nil
}

// UpdateRecent moves the backup of the previous browser session into the
// recent list. It reports whether the list changed.
func (s *SessionService) UpdateRecent(ctx context.Context) (bool, error) {
	backups, err := s.repo.ListSessions(ctx, domain.SessionKindBackup)
	if err != nil {
		return false, fmt.Errorf("failed to load session backup: %w", err)
	}
	if len(backups) == 0 {
		return false, nil
	}

	recent, err := s.repo.ListSessions(ctx, domain.SessionKindRecent)
	if err != nil {
		return false, fmt.Errorf("failed to load recent sessions: %w", err)
	}

	backup := backups[0]
	backup.ID = ""
	updated, changed := domain.AppendRecent(recent, backup)
	if !changed {
		return false, nil
	}

	if err := s.repo.ReplaceSessions(ctx, domain.SessionKindRecent, updated); err != nil {
		return false, err
	}
	logging.Logger.Info("Recent sessions updated", "count", len(updated))
	return true, nil
}

// SaveCurrent stores the current layout as a named session
func (s *SessionService) SaveCurrent(ctx context.Context, name string) (domain.Session, error) {
	session, err := s.Current(ctx, name)
	if err != nil {
		return domain.Session{}, err
	}
	if session.Windows == 0 {
		return domain.Session{}, fmt.Errorf("%w: no tabs to save", domain.ErrInvalidValue)
	}
	return s.save(ctx, session)
}

// SaveCopy stores a copy of an existing session under a new name
func (s *SessionService) SaveCopy(ctx context.Context, id, name string) (domain.Session, error) {
	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	return s.save(ctx, session.Copy(name))
}

// SaveURLs stores a session built from text: one URL per line, windows
// separated by a blank line
func (s *SessionService) SaveURLs(ctx context.Context, name, data string) (domain.Session, error) {
	session := domain.NewSession(name, domain.ParseSessionWindows(data))
	if session.Windows == 0 {
		return domain.Session{}, fmt.Errorf("%w: no tabs to save", domain.ErrInvalidValue)
	}
	return s.save(ctx, session)
}

func (s *SessionService) save(ctx context.Context, session domain.Session) (domain.Session, error) {
	session.Kind = domain.SessionKindSaved
	saved, err := s.repo.SaveSession(ctx, session)
	if err != nil {
		return domain.Session{}, err
	}
	logging.Logger.Info("Session saved", "id", saved.ID, "name", saved.Name)
	return saved, nil
}

// List returns the sessions of a kind, oldest first
func (s *SessionService) List(ctx context.Context, kind domain.SessionKind) ([]domain.Session, error) {
	return s.repo.ListSessions(ctx, kind)
}

// Get returns one session
func (s *SessionService) Get(ctx context.Context, id string) (domain.Session, error) {
	return s.repo.GetSession(ctx, id)
}

// Delete removes one session
func (s *SessionService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteSession(ctx, id)
}

// Open opens every window of a stored session
func (s *SessionService) Open(ctx context.Context, id string, suspend bool) error {
	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return err
	}
	return s.openWindows(ctx, session.LoadWindows(), suspend)
}

// OpenWindow opens one window of a stored session, counting from zero
func (s *SessionService) OpenWindow(ctx context.Context, id string, index int, suspend bool) error {
	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return err
	}

	windows := session.LoadWindows()
	if index < 0 || index >= len(windows) {
		return fmt.Errorf("%w: session %s has %d windows", domain.ErrInvalidValue, id, len(windows))
	}
	return s.openWindows(ctx, windows[index:index+1], suspend)
}

func (s *SessionService) openWindows(ctx context.Context, windows []domain.SessionWindow, suspend bool) error {
	if s.opener == nil {
		return fmt.Errorf("no browser is running")
	}
	return s.opener.OpenSession(ctx, windows, suspend)
}

package ports

import (
	"context"
	"time"

	"github.com/renato0307/tabrest/internal/domain"
)

// ConfigurationRepository loads and saves the configuration blob
type ConfigurationRepository interface {
	LoadConfiguration(ctx context.Context) (*domain.Configuration, error)
	SaveConfiguration(ctx context.Context, config *domain.Configuration) error
}

// TabRecordRepository stores session-scoped per tab bookkeeping
type TabRecordRepository interface {
	DeleteTabRecord(ctx context.Context, tabID int) error
	GetTabRecord(ctx context.Context, tabID int) (domain.TabRecord, error)
	SaveTabRecord(ctx context.Context, record domain.TabRecord) error
}

// ScrollPositionRepository holds pending scroll restores
type ScrollPositionRepository interface {
	DeleteScrollPosition(ctx context.Context, tabID int) error
	SetScrollPosition(ctx context.Context, tabID int, position int) error
	// TakeScrollPosition returns and removes the pending position
	TakeScrollPosition(ctx context.Context, tabID int) (int, bool, error)
}

// SessionRepository stores window layout snapshots
type SessionRepository interface {
	DeleteSession(ctx context.Context, id string) error
	GetSession(ctx context.Context, id string) (domain.Session, error)
	ListSessions(ctx context.Context, kind domain.SessionKind) ([]domain.Session, error)
	ReplaceSessions(ctx context.Context, kind domain.SessionKind, sessions []domain.Session) error
	SaveSession(ctx context.Context, session domain.Session) (domain.Session, error)
}

// RuntimeStateRepository stores small process-wide values
type RuntimeStateRepository interface {
	GetInstallationID(ctx context.Context) (string, error)
	LastSweep(ctx context.Context) (time.Time, error)
	SetLastSweep(ctx context.Context, at time.Time) error
}

// Store is the composite interface
type Store interface {
	ConfigurationRepository
	TabRecordRepository
	ScrollPositionRepository
	SessionRepository
	RuntimeStateRepository
	// ClearSessionState drops everything scoped to one browser session
	ClearSessionState(ctx context.Context) error
	Close() error
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/ports"
)

const (
	configurationRowID = 1
	backupSessionID    = "backup"
	maxRetries         = 5

	keyInstallationID = "installation_id"
	keyLastSweep      = "last_sweep"
)

// SQLiteRepository implements ports.Store and ports.History using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var (
	_ ports.Store   = (*SQLiteRepository)(nil)
	_ ports.History = (*SQLiteRepository)(nil)
)

// gormLogger wraps the tabrest logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("TABREST_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and creates if needed) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath+"?_busy_timeout=5000"), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the CLI read while the daemon writes
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(
		&ConfigurationModel{},
		&TabRecordModel{},
		&ScrollPositionModel{},
		&SessionModel{},
		&RuntimeStateModel{},
		&VisitModel{},
	); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	logging.Logger.Debug("Database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the underlying connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// LoadConfiguration returns the stored configuration, or defaults when none was saved
func (r *SQLiteRepository) LoadConfiguration(ctx context.Context) (*domain.Configuration, error) {
	var m ConfigurationModel
	err := r.db.WithContext(ctx).First(&m, configurationRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.DefaultConfiguration(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	config, err := domain.ParseConfiguration([]byte(m.Data))
	if err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfiguration overwrites the configuration blob
func (r *SQLiteRepository) SaveConfiguration(ctx context.Context, config *domain.Configuration) error {
	data, err := config.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	m := ConfigurationModel{ID: configurationRowID, Version: config.Version, Data: string(data)}
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
		return nil
	}, maxRetries)
}

// GetTabRecord returns the record for tabID, or a fresh one if none exists yet
func (r *SQLiteRepository) GetTabRecord(ctx context.Context, tabID int) (domain.TabRecord, error) {
	var m TabRecordModel
	err := r.db.WithContext(ctx).First(&m, "tab_id = ?", tabID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.TabRecord{TabID: tabID}, nil
	}
	if err != nil {
		return domain.TabRecord{}, fmt.Errorf("failed to get tab record: %w", err)
	}
	return tabRecordToDomain(m), nil
}

// SaveTabRecord creates or replaces a tab record
func (r *SQLiteRepository) SaveTabRecord(ctx context.Context, record domain.TabRecord) error {
	m := tabRecordToModel(record)
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
			return fmt.Errorf("failed to save tab record: %w", err)
		}
		return nil
	}, maxRetries)
}

// DeleteTabRecord removes the record of a closed tab
func (r *SQLiteRepository) DeleteTabRecord(ctx context.Context, tabID int) error {
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Delete(&TabRecordModel{}, "tab_id = ?", tabID).Error; err != nil {
			return fmt.Errorf("failed to delete tab record: %w", err)
		}
		return nil
	}, maxRetries)
}

// SetScrollPosition stores a pending scroll restore for tabID
func (r *SQLiteRepository) SetScrollPosition(ctx context.Context, tabID int, position int) error {
	m := ScrollPositionModel{TabID: tabID, Position: position}
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
			return fmt.Errorf("failed to save scroll position: %w", err)
		}
		return nil
	}, maxRetries)
}

// TakeScrollPosition returns and deletes the pending position in one transaction
func (r *SQLiteRepository) TakeScrollPosition(ctx context.Context, tabID int) (int, bool, error) {
	var (
		position int
		found    bool
	)

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var m ScrollPositionModel
			err := tx.First(&m, "tab_id = ?", tabID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				found = false
				return nil
			}
			if err != nil {
				return err
			}
			if err := tx.Delete(&ScrollPositionModel{}, "tab_id = ?", tabID).Error; err != nil {
				return err
			}
			position, found = m.Position, true
			return nil
		})
	}, maxRetries)
	if err != nil {
		return 0, false, fmt.Errorf("failed to take scroll position: %w", err)
	}

	return position, found, nil
}

// DeleteScrollPosition drops a pending scroll restore
func (r *SQLiteRepository) DeleteScrollPosition(ctx context.Context, tabID int) error {
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Delete(&ScrollPositionModel{}, "tab_id = ?", tabID).Error; err != nil {
			return fmt.Errorf("failed to delete scroll position: %w", err)
		}
		return nil
	}, maxRetries)
}

// ListSessions returns sessions of a kind, oldest first
func (r *SQLiteRepository) ListSessions(ctx context.Context, kind domain.SessionKind) ([]domain.Session, error) {
	var models []SessionModel
	if err := r.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("position ASC").
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]domain.Session, 0, len(models))
	for _, m := range models {
		sessions = append(sessions, sessionToDomain(m))
	}
	return sessions, nil
}

// GetSession returns a session by id
func (r *SQLiteRepository) GetSession(ctx context.Context, id string) (domain.Session, error) {
	var m SessionModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Session{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	return sessionToDomain(m), nil
}

// SaveSession inserts or updates a session. The backup kind holds a single row.
func (r *SQLiteRepository) SaveSession(ctx context.Context, session domain.Session) (domain.Session, error) {
	if session.Kind == domain.SessionKindBackup {
		session.ID = backupSessionID
	}
	if session.ID == "" {
		session.ID = uuid.New().String()
	}

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&SessionModel{}).Where("kind = ?", string(session.Kind)).Count(&count).Error; err != nil {
				return err
			}
			m := sessionToModel(session, int(count))
			return tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"kind", "name", "windows", "tabs", "data"}),
			}).Create(&m).Error
		})
	}, maxRetries)
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// ReplaceSessions swaps every session of a kind for the given list, keeping its order
func (r *SQLiteRepository) ReplaceSessions(ctx context.Context, kind domain.SessionKind, sessions []domain.Session) error {
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("kind = ?", string(kind)).Delete(&SessionModel{}).Error; err != nil {
				return err
			}
			for i, s := range sessions {
				s.Kind = kind
				if s.ID == "" || s.ID == backupSessionID {
					s.ID = uuid.New().String()
				}
				m := sessionToModel(s, i)
				if err := tx.Create(&m).Error; err != nil {
					return err
				}
			}
			return nil
		})
	}, maxRetries)
	if err != nil {
		return fmt.Errorf("failed to replace %s sessions: %w", kind, err)
	}
	return nil
}

// DeleteSession removes a session by id
func (r *SQLiteRepository) DeleteSession(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&SessionModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return nil
}

func (r *SQLiteRepository) getState(ctx context.Context, key string) (string, bool, error) {
	var m RuntimeStateModel
	err := r.db.WithContext(ctx).First(&m, "name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return m.Value, true, nil
}

func (r *SQLiteRepository) setState(ctx context.Context, key, value string) error {
	return withRetry(func() error {
		m := RuntimeStateModel{Name: key, Value: value}
		if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
			return fmt.Errorf("failed to write %s: %w", key, err)
		}
		return nil
	}, maxRetries)
}

// GetInstallationID returns the persistent installation id, creating it on first use
func (r *SQLiteRepository) GetInstallationID(ctx context.Context) (string, error) {
	if id, ok, err := r.getState(ctx, keyInstallationID); err != nil || ok {
		return id, err
	}

	candidate := strings.ReplaceAll(uuid.New().String(), "-", "")
	err := withRetry(func() error {
		// A concurrent process may have won the race; keep its value
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&RuntimeStateModel{Name: keyInstallationID, Value: candidate}).Error
	}, maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to create installation id: %w", err)
	}

	id, _, err := r.getState(ctx, keyInstallationID)
	return id, err
}

// LastSweep returns when the last auto suspend sweep ran, zero if never
func (r *SQLiteRepository) LastSweep(ctx context.Context) (time.Time, error) {
	value, ok, err := r.getState(ctx, keyLastSweep)
	if err != nil || !ok {
		return time.Time{}, err
	}
	at, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		// Treat garbage as never swept
		return time.Time{}, nil
	}
	return at, nil
}

// SetLastSweep records the time of a completed sweep
func (r *SQLiteRepository) SetLastSweep(ctx context.Context, at time.Time) error {
	return r.setState(ctx, keyLastSweep, at.UTC().Format(time.RFC3339Nano))
}

// ClearSessionState drops tab records, pending scroll positions and the last sweep time
func (r *SQLiteRepository) ClearSessionState(ctx context.Context) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&TabRecordModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear tab records: %w", err)
			}
			if err := tx.Where("1 = 1").Delete(&ScrollPositionModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear scroll positions: %w", err)
			}
			if err := tx.Delete(&RuntimeStateModel{}, "name = ?", keyLastSweep).Error; err != nil {
				return fmt.Errorf("failed to clear last sweep: %w", err)
			}
			return nil
		})
	}, maxRetries)
}

// AddVisit records a history entry
func (r *SQLiteRepository) AddVisit(ctx context.Context, url string, at time.Time) error {
	m := VisitModel{URL: url, VisitTime: at.UTC()}
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
			return fmt.Errorf("failed to add visit: %w", err)
		}
		return nil
	}, maxRetries)
}

// Visits returns the history of url, oldest first
func (r *SQLiteRepository) Visits(ctx context.Context, url string) ([]ports.Visit, error) {
	var models []VisitModel
	if err := r.db.WithContext(ctx).Where("url = ?", url).Order("visit_time ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}

	visits := make([]ports.Visit, 0, len(models))
	for _, m := range models {
		visits = append(visits, visitToPort(m))
	}
	return visits, nil
}

// DeleteURL removes every visit of url
func (r *SQLiteRepository) DeleteURL(ctx context.Context, url string) error {
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Delete(&VisitModel{}, "url = ?", url).Error; err != nil {
			return fmt.Errorf("failed to delete url from history: %w", err)
		}
		return nil
	}, maxRetries)
}

// DeleteRange removes every visit in [start, end]
func (r *SQLiteRepository) DeleteRange(ctx context.Context, start, end time.Time) error {
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).
			Where("visit_time >= ? AND visit_time <= ?", start.UTC(), end.UTC()).
			Delete(&VisitModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete history range: %w", err)
		}
		return nil
	}, maxRetries)
}

// withRetry retries fn on SQLITE_BUSY and SQLITE_LOCKED with a linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}

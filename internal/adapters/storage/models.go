package storage

import "time"

// ConfigurationModel holds the single configuration blob
type ConfigurationModel struct {
	ID        uint   `gorm:"primaryKey"`
	Version   int    `gorm:"not null"`
	Data      string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for ConfigurationModel
func (ConfigurationModel) TableName() string {
	return "configuration"
}

// TabRecordModel is the session-scoped per tab record
type TabRecordModel struct {
	TabID      int  `gorm:"primaryKey;autoIncrement:false"`
	IsPaused   bool `gorm:"not null;default:false"`
	LastAccess *time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for TabRecordModel
func (TabRecordModel) TableName() string {
	return "tab_records"
}

// ScrollPositionModel is a pending scroll restore
type ScrollPositionModel struct {
	TabID     int `gorm:"primaryKey;autoIncrement:false"`
	Position  int `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for ScrollPositionModel
func (ScrollPositionModel) TableName() string {
	return "scroll_positions"
}

// SessionModel is a stored window layout
type SessionModel struct {
	ID        string `gorm:"primaryKey"`
	Kind      string `gorm:"index;not null"`
	Name      string `gorm:"not null"`
	Windows   int    `gorm:"not null;default:0"`
	Tabs      int    `gorm:"not null;default:0"`
	Data      string `gorm:"type:text;not null"`
	Position  int    `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// TableName specifies the table name for SessionModel
func (SessionModel) TableName() string {
	return "session_snapshots"
}

// RuntimeStateModel is a process-wide key/value pair
type RuntimeStateModel struct {
	Name      string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for RuntimeStateModel
func (RuntimeStateModel) TableName() string {
	return "runtime_state"
}

// VisitModel is one browsing history entry
type VisitModel struct {
	ID        uint      `gorm:"primaryKey"`
	URL       string    `gorm:"index;not null"`
	VisitTime time.Time `gorm:"index;not null"`
}

// TableName specifies the table name for VisitModel
func (VisitModel) TableName() string {
	return "visits"
}

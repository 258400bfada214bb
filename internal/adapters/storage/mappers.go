package storage

import (
	"time"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/ports"
)

func tabRecordToDomain(m TabRecordModel) domain.TabRecord {
	r := domain.TabRecord{TabID: m.TabID, IsPaused: m.IsPaused}
	if m.LastAccess != nil {
		r.LastAccess = *m.LastAccess
	}
	return r
}

func tabRecordToModel(r domain.TabRecord) TabRecordModel {
	m := TabRecordModel{TabID: r.TabID, IsPaused: r.IsPaused}
	if !r.LastAccess.IsZero() {
		at := r.LastAccess.UTC()
		m.LastAccess = &at
	}
	return m
}

func sessionToDomain(m SessionModel) domain.Session {
	return domain.Session{
		ID:        m.ID,
		Kind:      domain.SessionKind(m.Kind),
		Name:      m.Name,
		Windows:   m.Windows,
		Tabs:      m.Tabs,
		Data:      m.Data,
		CreatedAt: m.CreatedAt,
	}
}

func sessionToModel(s domain.Session, position int) SessionModel {
	created := s.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	return SessionModel{
		ID:        s.ID,
		Kind:      string(s.Kind),
		Name:      s.Name,
		Windows:   s.Windows,
		Tabs:      s.Tabs,
		Data:      s.Data,
		Position:  position,
		CreatedAt: created.UTC(),
	}
}

func visitToPort(m VisitModel) ports.Visit {
	return ports.Visit{URL: m.URL, VisitTime: m.VisitTime}
}

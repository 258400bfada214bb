package services

import (
	"context"
	"errors"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/ports"
)

// EventService reacts to tab changes reported by the browser
type EventService struct {
	browser   ports.TabReader
	store     ports.Store
	suspender *SuspenderService
}

// NewEventService creates a new EventService
func NewEventService(browser ports.TabReader, store ports.Store, suspender *SuspenderService) *EventService {
	return &EventService{
		browser:   browser,
		store:     store,
		suspender: suspender,
	}
}

// Run handles events until the channel closes or ctx is done
func (s *EventService) Run(ctx context.Context, events <-chan domain.TabEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			s.HandleTabEvent(ctx, ev)
		}
	}
}

// HandleTabEvent applies one event. Failures are logged.
func (s *EventService) HandleTabEvent(ctx context.Context, ev domain.TabEvent) {
	var err error
	switch ev.Kind {
	case domain.TabEventUpdated:
		err = s.tabUpdated(ctx, ev)
	case domain.TabEventActivated:
		err = s.tabActivated(ctx, ev)
	case domain.TabEventRemoved:
		err = s.tabRemoved(ctx, ev)
	default:
		logging.Logger.Debug("Ignoring tab event", "kind", ev.Kind)
		return
	}

	if err != nil && !errors.Is(err, domain.ErrTabNotFound) {
		logging.Logger.Warn("Failed to handle tab event", "kind", ev.Kind, "tab_id", ev.TabID, "error", err)
	}
}

func (s *EventService) tabUpdated(ctx context.Context, ev domain.TabEvent) error {
	if err := s.suspender.UpdateTabActionIcon(ctx, ev.TabID); err != nil {
		return err
	}
	if ev.Status != domain.LoadStatusComplete {
		return nil
	}
	return s.restoreScroll(ctx, ev.TabID)
}

// restoreScroll applies the position saved when the tab was unsuspended
func (s *EventService) restoreScroll(ctx context.Context, tabID int) error {
	cfg, err := s.store.LoadConfiguration(ctx)
	if err != nil {
		return err
	}
	if !cfg.RestoreScrollPosition {
		return nil
	}

	tab, err := s.browser.Get(ctx, tabID)
	if err != nil {
		return err
	}
	if s.suspender.isSuspended(tab) {
		return nil
	}

	position, ok, err := s.store.TakeScrollPosition(ctx, tabID)
	if err != nil || !ok {
		return err
	}
	return s.suspender.Capture().RestoreScroll(ctx, tabID, position)
}

func (s *EventService) tabActivated(ctx context.Context, ev domain.TabEvent) error {
	if err := s.suspender.UpdateTabActionIcon(ctx, ev.TabID); err != nil {
		return err
	}
	return s.suspender.MarkActivated(ctx, ev.TabID)
}

func (s *EventService) tabRemoved(ctx context.Context, ev domain.TabEvent) error {
	if err := s.store.DeleteTabRecord(ctx, ev.TabID); err != nil {
		return err
	}
	return s.store.DeleteScrollPosition(ctx, ev.TabID)
}

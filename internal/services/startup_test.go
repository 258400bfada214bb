package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tabrest/internal/domain"
)

func TestStartupService_Start(t *testing.T) {
	f := newSuspenderFixture(t)
	f.configure(func(cfg *domain.Configuration) { cfg.PauseTab(3) })

	f.store.EXPECT().ClearSessionState(mock.Anything).Return(nil).Once()
	f.store.EXPECT().SaveConfiguration(mock.Anything, mock.MatchedBy(func(cfg *domain.Configuration) bool {
		return len(cfg.PausedTabsIDs) == 0
	})).Return(nil).Once()
	f.store.EXPECT().ListSessions(mock.Anything, domain.SessionKindBackup).Return(nil, nil)
	f.browser.EXPECT().ListWindows(mock.Anything).Return(nil, nil)

	settings := NewSettingsService(f.store, f.store)
	sessions := NewSessionService(f.store, f.browser, f.svc)

	require.NoError(t, NewStartupService(f.store, settings, sessions, f.svc).Start(context.Background()))
}

func TestStartupService_StartFailsWhenStateCannotBeCleared(t *testing.T) {
	f := newSuspenderFixture(t)
	f.store.EXPECT().ClearSessionState(mock.Anything).Return(errors.New("database is locked"))

	settings := NewSettingsService(f.store, f.store)
	sessions := NewSessionService(f.store, f.browser, f.svc)

	err := NewStartupService(f.store, settings, sessions, f.svc).Start(context.Background())

	assert.Error(t, err)
}

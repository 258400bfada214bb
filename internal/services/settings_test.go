package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tabrest/internal/domain"
	portsmocks "github.com/renato0307/tabrest/internal/ports/mocks"
)

// newSettingsFixture returns a service over an in-memory configuration
func newSettingsFixture(t *testing.T, cfg *domain.Configuration) (*SettingsService, *portsmocks.MockStore, **domain.Configuration) {
	t.Helper()

	stored := cfg
	store := portsmocks.NewMockStore(t)
	store.EXPECT().LoadConfiguration(mock.Anything).
		RunAndReturn(func(context.Context) (*domain.Configuration, error) { return stored.Clone(), nil }).Maybe()
	store.EXPECT().SaveConfiguration(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c *domain.Configuration) error {
			stored = c.Clone()
			return nil
		}).Maybe()

	return NewSettingsService(store, store), store, &stored
}

func TestSettingsService_SetField(t *testing.T) {
	svc, _, stored := newSettingsFixture(t, domain.DefaultConfiguration())

	cfg, err := svc.SetField(context.Background(), "suspendDelay", "15")
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.SuspendDelay)
	assert.Equal(t, 15, (*stored).SuspendDelay)

	value, err := svc.GetField(context.Background(), "suspendDelay")
	require.NoError(t, err)
	assert.Equal(t, 15, value)
}

func TestSettingsService_SetFieldErrors(t *testing.T) {
	svc, _, stored := newSettingsFixture(t, domain.DefaultConfiguration())

	_, err := svc.SetField(context.Background(), "bogus", "1")
	assert.ErrorIs(t, err, domain.ErrUnknownField)

	_, err = svc.SetField(context.Background(), "suspendPinned", "maybe")
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
	assert.False(t, (*stored).SuspendPinned)
}

func TestSettingsService_Fields(t *testing.T) {
	svc, _, _ := newSettingsFixture(t, domain.DefaultConfiguration())

	visible := svc.Fields(false)
	all := svc.Fields(true)

	assert.NotEmpty(t, visible)
	assert.GreaterOrEqual(t, len(all), len(visible))
	for _, f := range visible {
		assert.False(t, f.Hidden, f.Name)
	}
}

func TestSettingsService_Whitelist(t *testing.T) {
	ctx := context.Background()
	svc, _, stored := newSettingsFixture(t, domain.DefaultConfiguration())

	require.NoError(t, svc.WhitelistDomain(ctx, "https://news.example.com/today"))
	require.NoError(t, svc.WhitelistURL(ctx, "https://docs.example.org/guide?page=2"))
	require.NoError(t, svc.AddWhiteListPattern(ctx, "  /mail\\.example\\.net/i  "))
	assert.Equal(t, []string{"news.example.com", "docs.example.org/guide", "/mail\\.example\\.net/i"}, (*stored).WhiteList)

	require.NoError(t, svc.WhitelistRemove(ctx, "https://docs.example.org/guide"))
	assert.Equal(t, []string{"news.example.com", "/mail\\.example\\.net/i"}, (*stored).WhiteList)

	removed, err := svc.RemoveWhiteListPattern(ctx, "news.example.com")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.RemoveWhiteListPattern(ctx, "news.example.com")
	require.NoError(t, err)
	assert.False(t, removed)

	assert.ErrorIs(t, svc.AddWhiteListPattern(ctx, "   "), domain.ErrInvalidValue)
}

func TestSettingsService_PauseTab(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newSettingsFixture(t, domain.DefaultConfiguration())

	store.EXPECT().GetTabRecord(mock.Anything, 4).Return(domain.TabRecord{TabID: 4}, nil).Once()
	store.EXPECT().SaveTabRecord(mock.Anything, domain.TabRecord{TabID: 4, IsPaused: true}).Return(nil).Once()

	require.NoError(t, svc.PauseTab(ctx, 4))
}

func TestSettingsService_TogglePauseTab(t *testing.T) {
	tests := []struct {
		name         string
		recordPaused bool
		configPaused bool
		want         bool
	}{
		{name: "not paused", want: true},
		{name: "paused by record", recordPaused: true, want: false},
		{name: "paused by configuration", configPaused: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfiguration()
			if tt.configPaused {
				cfg.PauseTab(9)
			}
			svc, store, stored := newSettingsFixture(t, cfg)

			store.EXPECT().GetTabRecord(mock.Anything, 9).Return(domain.TabRecord{TabID: 9, IsPaused: tt.recordPaused}, nil)
			store.EXPECT().SaveTabRecord(mock.Anything, domain.TabRecord{TabID: 9, IsPaused: tt.want}).Return(nil).Once()

			paused, err := svc.TogglePauseTab(context.Background(), 9)

			require.NoError(t, err)
			assert.Equal(t, tt.want, paused)
			assert.False(t, !tt.want && (*stored).IsPausedTab(9), "configuration pause must be cleared")
		})
	}
}

func TestSettingsService_UnpauseTabClearsConfiguration(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	cfg.PauseTab(2)
	svc, store, stored := newSettingsFixture(t, cfg)

	store.EXPECT().GetTabRecord(mock.Anything, 2).Return(domain.TabRecord{TabID: 2, IsPaused: true}, nil)
	store.EXPECT().SaveTabRecord(mock.Anything, domain.TabRecord{TabID: 2}).Return(nil).Once()

	require.NoError(t, svc.UnpauseTab(context.Background(), 2))
	assert.False(t, (*stored).IsPausedTab(2))
}

func TestSettingsService_Reset(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	cfg.SuspendDelay = 5
	svc, _, stored := newSettingsFixture(t, cfg)

	_, err := svc.Reset(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfiguration(), *stored)
}

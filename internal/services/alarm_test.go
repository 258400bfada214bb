package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/monitoring"
	portsmocks "github.com/renato0307/tabrest/internal/ports/mocks"
	servicesmocks "github.com/renato0307/tabrest/internal/services/mocks"
)

func newAlarmFixture(t *testing.T, cfg *domain.Configuration, last time.Time) (
	*AlarmService, *portsmocks.MockStore, *servicesmocks.MockAutoSuspender, *servicesmocks.MockBackupSaver,
) {
	t.Helper()

	store := portsmocks.NewMockStore(t)
	suspender := servicesmocks.NewMockAutoSuspender(t)
	backups := servicesmocks.NewMockBackupSaver(t)

	store.EXPECT().LoadConfiguration(mock.Anything).Return(cfg, nil).Maybe()
	store.EXPECT().LastSweep(mock.Anything).Return(last, nil).Maybe()

	svc := NewAlarmService(suspender, backups, store, store, monitoring.NewMetrics())
	svc.now = func() time.Time { return testNow }
	return svc, store, suspender, backups
}

func TestAlarmService_Sweep(t *testing.T) {
	svc, store, suspender, backups := newAlarmFixture(t, domain.DefaultConfiguration(), testNow.Add(-time.Minute))

	suspender.EXPECT().SuspendAuto(mock.Anything).Return(2, nil).Once()
	backups.EXPECT().SaveBackup(mock.Anything).Return(nil).Once()
	store.EXPECT().SetLastSweep(mock.Anything, testNow).Return(nil).Once()

	result, err := svc.Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, SweepResult{Ran: true, Suspended: 2}, result)
}

func TestAlarmService_SweepIsDebounced(t *testing.T) {
	svc, _, _, _ := newAlarmFixture(t, domain.DefaultConfiguration(), testNow.Add(-10*time.Second))

	result, err := svc.Sweep(context.Background())

	require.NoError(t, err)
	assert.False(t, result.Ran)
}

func TestAlarmService_SweepWithAutoSuspendDisabled(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	cfg.SuspendDelay = 0
	svc, store, _, backups := newAlarmFixture(t, cfg, time.Time{})

	backups.EXPECT().SaveBackup(mock.Anything).Return(nil).Once()
	store.EXPECT().SetLastSweep(mock.Anything, testNow).Return(nil).Once()

	result, err := svc.Sweep(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Ran)
	assert.Zero(t, result.Suspended)
}

func TestAlarmService_SweepBackupFailureIsNotFatal(t *testing.T) {
	svc, store, suspender, backups := newAlarmFixture(t, domain.DefaultConfiguration(), time.Time{})

	suspender.EXPECT().SuspendAuto(mock.Anything).Return(0, nil)
	backups.EXPECT().SaveBackup(mock.Anything).Return(errors.New("disk full"))
	store.EXPECT().SetLastSweep(mock.Anything, testNow).Return(nil).Once()

	result, err := svc.Sweep(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Ran)
}

func TestAlarmService_SweepsDoNotOverlap(t *testing.T) {
	svc, store, suspender, backups := newAlarmFixture(t, domain.DefaultConfiguration(), time.Time{})

	release := make(chan struct{})
	var calls atomic.Int32
	suspender.EXPECT().SuspendAuto(mock.Anything).
		RunAndReturn(func(context.Context) (int, error) {
			calls.Add(1)
			<-release
			return 1, nil
		})
	backups.EXPECT().SaveBackup(mock.Anything).Return(nil)
	store.EXPECT().SetLastSweep(mock.Anything, mock.Anything).Return(nil)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Sweep(context.Background())
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestAlarmService_RunStopsOnCancel(t *testing.T) {
	svc, _, _, _ := newAlarmFixture(t, domain.DefaultConfiguration(), testNow)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

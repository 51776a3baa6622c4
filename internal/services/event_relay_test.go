package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cakue/internal/core"
	mock_services "cakue/internal/services/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEventRelayConfig(t *testing.T) {
	config := DefaultEventRelayConfig()

	assert.Equal(t, 5*time.Second, config.PollInterval)
	assert.Equal(t, 20, config.BatchSize)
	assert.Equal(t, 5, config.MaxRetries)
	assert.Equal(t, time.Hour, config.CleanupInterval)
	assert.Equal(t, 24*time.Hour, config.CleanupAge)
}

func TestEventRelay_IsRunning(t *testing.T) {
	relay := NewEventRelay(nil, nil, DefaultEventRelayConfig())
	assert.False(t, relay.IsRunning())
}

func TestEventRelay_StartTwice(t *testing.T) {
	relay := NewEventRelay(nil, nil, DefaultEventRelayConfig())

	relay.mu.Lock()
	relay.running = true
	relay.mu.Unlock()

	err := relay.Start(context.Background())
	assert.Error(t, err)
}

func TestEventRelay_StopNotRunning(t *testing.T) {
	relay := NewEventRelay(nil, nil, DefaultEventRelayConfig())
	assert.NoError(t, relay.Stop(context.Background()))
}

func TestEventRelay_ProcessBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	store := mock_services.NewMockOutboxStore(ctrl)
	publisher := mock_services.NewMockEventPublisher(ctrl)

	ok := core.SyncEvent{ID: 1, UserID: 7, DeviceID: "phone"}
	flaky := core.SyncEvent{ID: 2, UserID: 7, DeviceID: "phone", Attempts: 1}
	dead := core.SyncEvent{ID: 3, UserID: 7, DeviceID: "phone", Attempts: 4}
	taken := core.SyncEvent{ID: 4}
	brokerDown := errors.New("connection refused")

	store.EXPECT().DequeueSyncEvents(ctx, 20).Return([]core.SyncEvent{ok, flaky, dead, taken}, nil)

	store.EXPECT().MarkSyncEventProcessing(ctx, int64(1)).Return(true, nil)
	publisher.EXPECT().PublishSyncEvent(ctx, ok).Return(nil)
	store.EXPECT().MarkSyncEventPublished(ctx, int64(1)).Return(nil)

	store.EXPECT().MarkSyncEventProcessing(ctx, int64(2)).Return(true, nil)
	publisher.EXPECT().PublishSyncEvent(ctx, flaky).Return(brokerDown)
	store.EXPECT().RetrySyncEvent(ctx, int64(2), "connection refused", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, _ string, next time.Time) error {
			// second attempt waits twice the base delay
			assert.WithinDuration(t, time.Now().Add(4*time.Second), next, time.Second)
			return nil
		})

	store.EXPECT().MarkSyncEventProcessing(ctx, int64(3)).Return(true, nil)
	publisher.EXPECT().PublishSyncEvent(ctx, dead).Return(brokerDown)
	store.EXPECT().MarkSyncEventFailed(ctx, int64(3), "connection refused").Return(nil)

	store.EXPECT().MarkSyncEventProcessing(ctx, int64(4)).Return(false, nil)

	relay := NewEventRelay(store, publisher, DefaultEventRelayConfig())
	relay.processBatch(ctx)
}

func TestEventRelay_RetryDelay(t *testing.T) {
	relay := NewEventRelay(nil, nil, DefaultEventRelayConfig())

	assert.Equal(t, 2*time.Second, relay.retryDelay(1))
	assert.Equal(t, 4*time.Second, relay.retryDelay(2))
	assert.Equal(t, 8*time.Second, relay.retryDelay(3))
	assert.Equal(t, maxRetryDelay, relay.retryDelay(20))
}

func TestEventRelay_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_services.NewMockOutboxStore(ctrl)
	publisher := mock_services.NewMockEventPublisher(ctrl)

	store.EXPECT().ResetStaleSyncEvents(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cutoff time.Time) (int64, error) {
			assert.WithinDuration(t, time.Now().Add(-10*time.Minute), cutoff, time.Second)
			return 1, nil
		})
	store.EXPECT().DequeueSyncEvents(gomock.Any(), 20).Return(nil, nil).MinTimes(1)

	config := DefaultEventRelayConfig()
	config.PollInterval = 10 * time.Millisecond
	relay := NewEventRelay(store, publisher, config)

	require.NoError(t, relay.Start(context.Background()))
	assert.True(t, relay.IsRunning())

	time.Sleep(30 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, relay.Stop(stopCtx))
	assert.False(t, relay.IsRunning())
}

func TestEventRelay_Cleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	store := mock_services.NewMockOutboxStore(ctrl)
	store.EXPECT().CleanupPublishedSyncEvents(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cutoff time.Time) (int64, error) {
			assert.WithinDuration(t, time.Now().Add(-24*time.Hour), cutoff, time.Second)
			return 3, nil
		})

	relay := NewEventRelay(store, nil, DefaultEventRelayConfig())
	relay.cleanupPublished(ctx)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// EventRelayConfig holds configuration for the event relay
type EventRelayConfig struct {
	// PollInterval is how often to check for pending events (default: 5s)
	PollInterval time.Duration

	// BatchSize is the max number of events published per poll cycle (default: 20)
	BatchSize int

	// MaxRetries is the maximum publish attempts before an event is marked failed (default: 5)
	MaxRetries int

	// RetryBase is the first retry delay, doubled on every attempt (default: 2s)
	RetryBase time.Duration

	// CleanupInterval is how often published events are purged (default: 1h)
	CleanupInterval time.Duration

	// CleanupAge is how old published events must be before purge (default: 24h)
	CleanupAge time.Duration

	// StaleAfter is how long an event may stay claimed before a starting
	// relay takes it back (default: 10m)
	StaleAfter time.Duration
}

func DefaultEventRelayConfig() EventRelayConfig {
	return EventRelayConfig{
		PollInterval:    5 * time.Second,
		BatchSize:       20,
		MaxRetries:      5,
		RetryBase:       2 * time.Second,
		CleanupInterval: 1 * time.Hour,
		CleanupAge:      24 * time.Hour,
		StaleAfter:      10 * time.Minute,
	}
}

const maxRetryDelay = 5 * time.Minute

// EventRelay publishes outbox sync events to the message broker.
type EventRelay struct {
	store     OutboxStore
	publisher EventPublisher
	config    EventRelayConfig

	// Lifecycle management
	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func NewEventRelay(store OutboxStore, publisher EventPublisher, config EventRelayConfig) *EventRelay {
	return &EventRelay{
		store:     store,
		publisher: publisher,
		config:    config,
	}
}

// Start begins the relay loop. Returns an error if already running.
func (r *EventRelay) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return fmt.Errorf("event relay is already running")
	}
	r.running = true
	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})
	r.mu.Unlock()

	// Events left in processing by a previous crash go back to pending.
	// Claims younger than StaleAfter may belong to a relay that is still running.
	if n, err := r.store.ResetStaleSyncEvents(ctx, time.Now().Add(-r.config.StaleAfter)); err != nil {
		slog.WarnContext(ctx, "Failed to reset stale sync events", "error", err)
	} else if n > 0 {
		slog.InfoContext(ctx, "Reset stale sync events", "count", n)
	}

	go r.runLoop(ctx)

	slog.InfoContext(ctx, "Event relay started",
		"poll_interval", r.config.PollInterval,
		"batch_size", r.config.BatchSize)

	return nil
}

// Stop signals the loop and waits for the in-flight batch to finish.
func (r *EventRelay) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	close(r.stopCh)

	select {
	case <-r.doneCh:
		slog.InfoContext(ctx, "Event relay stopped gracefully")
	case <-ctx.Done():
		slog.WarnContext(ctx, "Event relay stop timed out")
		return ctx.Err()
	}

	r.mu.Lock()
	r.running = false
	r.mu.Unlock()

	return nil
}

func (r *EventRelay) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *EventRelay) runLoop(ctx context.Context) {
	defer close(r.doneCh)

	pollTicker := time.NewTicker(r.config.PollInterval)
	defer pollTicker.Stop()

	cleanupTicker := time.NewTicker(r.config.CleanupInterval)
	defer cleanupTicker.Stop()

	r.processBatch(ctx)

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-pollTicker.C:
			r.processBatch(ctx)
		case <-cleanupTicker.C:
			r.cleanupPublished(ctx)
		}
	}
}

// processBatch publishes one batch of due events
func (r *EventRelay) processBatch(ctx context.Context) {
	events, err := r.store.DequeueSyncEvents(ctx, r.config.BatchSize)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to dequeue sync events", "error", err)
		return
	}
	if len(events) == 0 {
		return
	}

	slog.DebugContext(ctx, "Publishing sync events", "count", len(events))

	for _, ev := range events {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		claimed, err := r.store.MarkSyncEventProcessing(ctx, ev.ID)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to claim sync event", "id", ev.ID, "error", err)
			continue
		}
		if !claimed {
			continue
		}

		if err := r.publisher.PublishSyncEvent(ctx, ev); err != nil {
			r.handleFailure(ctx, ev.ID, ev.Attempts, err)
			continue
		}

		if err := r.store.MarkSyncEventPublished(ctx, ev.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to mark sync event published", "id", ev.ID, "error", err)
			continue
		}
		slog.InfoContext(ctx, "Sync event published",
			"id", ev.ID,
			"user_id", ev.UserID,
			"device_id", ev.DeviceID)
	}
}

// handleFailure schedules a retry with exponential backoff or gives up after MaxRetries.
func (r *EventRelay) handleFailure(ctx context.Context, id, attempts int64, publishErr error) {
	attempt := attempts + 1
	slog.WarnContext(ctx, "Sync event publish failed",
		"id", id,
		"attempt", attempt,
		"error", publishErr)

	if attempt >= int64(r.config.MaxRetries) {
		if err := r.store.MarkSyncEventFailed(ctx, id, publishErr.Error()); err != nil {
			slog.ErrorContext(ctx, "Failed to mark sync event failed", "id", id, "error", err)
		}
		slog.ErrorContext(ctx, "Sync event failed permanently after max retries",
			"id", id,
			"attempts", attempt)
		return
	}

	next := time.Now().Add(r.retryDelay(attempt))
	if err := r.store.RetrySyncEvent(ctx, id, publishErr.Error(), next); err != nil {
		slog.ErrorContext(ctx, "Failed to schedule sync event retry", "id", id, "error", err)
	}
}

func (r *EventRelay) retryDelay(attempt int64) time.Duration {
	d := r.config.RetryBase
	for i := int64(1); i < attempt; i++ {
		d *= 2
		if d >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return d
}

func (r *EventRelay) cleanupPublished(ctx context.Context) {
	cutoff := time.Now().Add(-r.config.CleanupAge)
	n, err := r.store.CleanupPublishedSyncEvents(ctx, cutoff)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to cleanup published sync events", "error", err)
		return
	}
	if n > 0 {
		slog.DebugContext(ctx, "Published sync events cleaned up", "count", n)
	}
}

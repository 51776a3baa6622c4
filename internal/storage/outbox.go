package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"cakue/internal/core"
)

// EnqueueSyncEvent stores a pending outbox entry for the relay.
func (r *SQLiteRepository) EnqueueSyncEvent(ctx context.Context, ev core.SyncEvent) (int64, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return 0, fmt.Errorf("marshal sync event: %w", err)
	}

	now := time.Now().UnixMilli()
	id, err := r.queries.EnqueueSyncEvent(ctx, EnqueueSyncEventParams{
		UserID:        ev.UserID,
		DeviceID:      ev.DeviceID,
		Payload:       string(payload),
		NextAttemptAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return 0, fmt.Errorf("enqueue sync event: %w", err)
	}
	return id, nil
}

// DequeueSyncEvents returns up to limit pending events whose retry time has come.
func (r *SQLiteRepository) DequeueSyncEvents(ctx context.Context, limit int) ([]core.SyncEvent, error) {
	rows, err := r.queries.DequeueSyncEvents(ctx, DequeueSyncEventsParams{
		NextAttemptAt: time.Now().UnixMilli(),
		Limit:         int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("dequeue sync events: %w", err)
	}

	out := make([]core.SyncEvent, 0, len(rows))
	for _, row := range rows {
		var ev core.SyncEvent
		if err := json.Unmarshal([]byte(row.Payload), &ev); err != nil {
			slog.WarnContext(ctx, "Skipping unreadable sync event", "id", row.ID, "error", err)
			continue
		}
		ev.ID = row.ID
		ev.Status = row.Status
		ev.Attempts = row.Attempts
		out = append(out, ev)
	}
	return out, nil
}

// MarkSyncEventProcessing claims a pending event. It reports false when the
// event was already claimed.
func (r *SQLiteRepository) MarkSyncEventProcessing(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.MarkSyncEventProcessing(ctx, MarkSyncEventProcessingParams{
		UpdatedAt: time.Now().UnixMilli(),
		ID:        id,
	})
	if err != nil {
		return false, fmt.Errorf("mark sync event processing: %w", err)
	}
	return n == 1, nil
}

func (r *SQLiteRepository) MarkSyncEventPublished(ctx context.Context, id int64) error {
	if err := r.queries.MarkSyncEventPublished(ctx, MarkSyncEventPublishedParams{
		UpdatedAt: time.Now().UnixMilli(),
		ID:        id,
	}); err != nil {
		return fmt.Errorf("mark sync event published: %w", err)
	}
	return nil
}

// RetrySyncEvent puts the event back to pending until next.
func (r *SQLiteRepository) RetrySyncEvent(ctx context.Context, id int64, errMsg string, next time.Time) error {
	if err := r.queries.RetrySyncEvent(ctx, RetrySyncEventParams{
		LastError:     sql.NullString{String: errMsg, Valid: true},
		NextAttemptAt: next.UnixMilli(),
		UpdatedAt:     time.Now().UnixMilli(),
		ID:            id,
	}); err != nil {
		return fmt.Errorf("retry sync event: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) MarkSyncEventFailed(ctx context.Context, id int64, errMsg string) error {
	if err := r.queries.MarkSyncEventFailed(ctx, MarkSyncEventFailedParams{
		LastError: sql.NullString{String: errMsg, Valid: true},
		UpdatedAt: time.Now().UnixMilli(),
		ID:        id,
	}); err != nil {
		return fmt.Errorf("mark sync event failed: %w", err)
	}
	return nil
}

// CleanupPublishedSyncEvents deletes published events last touched before cutoff.
func (r *SQLiteRepository) CleanupPublishedSyncEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := r.queries.CleanupPublishedSyncEvents(ctx, cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("cleanup published sync events: %w", err)
	}
	return n, nil
}

// ResetStaleSyncEvents releases events claimed before cutoff and never
// finished, as left behind by a crashed relay. Recent claims are kept.
func (r *SQLiteRepository) ResetStaleSyncEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := r.queries.ResetStaleSyncEvents(ctx, ResetStaleSyncEventsParams{
		UpdatedAt:   time.Now().UnixMilli(),
		UpdatedAt_2: cutoff.UnixMilli(),
	})
	if err != nil {
		return 0, fmt.Errorf("reset stale sync events: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) SyncEventStats(ctx context.Context) (GetSyncEventStatsRow, error) {
	stats, err := r.queries.GetSyncEventStats(ctx)
	if err != nil {
		return GetSyncEventStatsRow{}, fmt.Errorf("get sync event stats: %w", err)
	}
	return stats, nil
}

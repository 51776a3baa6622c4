package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"cakue/internal/core"
	applog "cakue/internal/log"
)

// DefaultMaxBatch bounds the number of items accepted in one sync request.
const DefaultMaxBatch = 500

// SyncService reconciles offline batches submitted by devices.
type SyncService struct {
	ingestor    Ingestor
	checkpoints CheckpointStore
	events      EventQueue
	maxBatch    int
	now         func() time.Time
}

// NewSyncService creates a reconciler. events may be nil, in which case no
// outbox entries are written.
func NewSyncService(ingestor Ingestor, checkpoints CheckpointStore, events EventQueue, maxBatch int) *SyncService {
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatch
	}
	return &SyncService{
		ingestor:    ingestor,
		checkpoints: checkpoints,
		events:      events,
		maxBatch:    maxBatch,
		now:         time.Now,
	}
}

// Reconcile ingests every item in order and records one result per item.
// Only batch-level problems are returned as errors.
func (s *SyncService) Reconcile(ctx context.Context, userID int64, deviceID string, batch []core.TransactionInput) (core.ReconcileResult, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" || utf8.RuneCountInString(deviceID) > core.MaxLocalIDLength {
		return core.ReconcileResult{}, core.ErrInvalidDeviceID
	}
	if len(batch) > s.maxBatch {
		return core.ReconcileResult{}, fmt.Errorf("%w (max %d, got %d)", core.ErrBatchTooLarge, s.maxBatch, len(batch))
	}

	start := time.Now()
	result := core.ReconcileResult{Results: make([]core.ItemResult, 0, len(batch))}

	interrupted := false
	for _, in := range batch {
		if !interrupted && ctx.Err() != nil {
			interrupted = true
			slog.WarnContext(ctx, "Sync batch interrupted",
				"device_id", deviceID,
				"processed", len(result.Results),
				"total", len(batch))
		}

		localID := strings.TrimSpace(in.LocalID)
		if interrupted {
			result.Results = append(result.Results, core.ItemFailed(localID, fmt.Errorf("request cancelled: %w", ctx.Err())))
			result.Failed++
			continue
		}

		res, err := s.ingestor.Ingest(ctx, userID, in)
		if err != nil {
			item := core.ItemFailed(localID, err)
			if item.Code == core.CodeInternal {
				slog.ErrorContext(ctx, "Sync item failed",
					"device_id", deviceID,
					"local_id", localID,
					"error", err)
			}
			result.Results = append(result.Results, item)
			result.Failed++
			continue
		}
		result.Results = append(result.Results, core.ItemSucceeded(localID, res))
		result.Synced++
	}

	if !interrupted {
		s.advanceCheckpoint(ctx, userID, deviceID, &result)
	}

	if result.Synced > 0 {
		s.enqueueEvent(ctx, userID, deviceID, result)
	}

	duplicates := 0
	for _, item := range result.Results {
		if item.Duplicate {
			duplicates++
		}
	}
	applog.NewStructuredLogger(applog.FromContext(ctx)).
		LogReconcile(ctx, userID, deviceID, len(batch), result.Synced, result.Failed, duplicates, result.CheckpointUpdated)
	slog.DebugContext(ctx, "Sync batch timing", "device_id", deviceID, "duration", time.Since(start))

	return result, nil
}

func (s *SyncService) advanceCheckpoint(ctx context.Context, userID int64, deviceID string, result *core.ReconcileResult) {
	cp, err := s.checkpoints.UpsertCheckpoint(ctx, userID, deviceID, s.now())
	if err != nil {
		slog.ErrorContext(ctx, "Failed to update sync checkpoint",
			"user_id", userID,
			"device_id", deviceID,
			"error", err)
		return
	}
	result.CheckpointUpdated = true
	result.LastSync = cp.LastSync
}

func (s *SyncService) enqueueEvent(ctx context.Context, userID int64, deviceID string, result core.ReconcileResult) {
	if s.events == nil {
		return
	}

	ev := core.SyncEvent{
		UserID:    userID,
		DeviceID:  deviceID,
		Synced:    result.Synced,
		Failed:    result.Failed,
		ServerIDs: result.ServerIDs(),
		SyncedAt:  s.now().UTC(),
	}
	// Committed rows are announced even if the request was cancelled.
	if _, err := s.events.EnqueueSyncEvent(context.WithoutCancel(ctx), ev); err != nil {
		slog.WarnContext(ctx, "Failed to enqueue sync event",
			"device_id", deviceID,
			"error", err)
	}
}

// Checkpoint returns the last completed sync of a device.
func (s *SyncService) Checkpoint(ctx context.Context, userID int64, deviceID string) (core.SyncCheckpoint, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" || utf8.RuneCountInString(deviceID) > core.MaxLocalIDLength {
		return core.SyncCheckpoint{}, core.ErrInvalidDeviceID
	}
	return s.checkpoints.GetCheckpoint(ctx, userID, deviceID)
}

package core

import "time"

// SyncCheckpoint records the last completed batch of a device.
type SyncCheckpoint struct {
	UserID   int64     `json:"user_id"`
	DeviceID string    `json:"device_id"`
	LastSync time.Time `json:"last_sync"`
}

// ItemResult is the outcome of one item of a sync batch.
type ItemResult struct {
	LocalID   string `json:"local_id"`
	Success   bool   `json:"success"`
	ServerID  int64  `json:"server_id,omitempty"`
	Duplicate bool   `json:"duplicate,omitempty"`
	Error     string `json:"error,omitempty"`
	Code      string `json:"code,omitempty"`
	Retryable bool   `json:"retryable"`
}

// ReconcileResult holds per-item results in submission order.
type ReconcileResult struct {
	Results           []ItemResult `json:"results"`
	CheckpointUpdated bool         `json:"checkpoint_updated"`
	LastSync          time.Time    `json:"last_sync"`
	Synced            int          `json:"synced"`
	Failed            int          `json:"failed"`
}

func ItemSucceeded(localID string, res IngestResult) ItemResult {
	return ItemResult{
		LocalID:   localID,
		Success:   true,
		ServerID:  res.ServerID,
		Duplicate: res.Duplicate,
	}
}

func ItemFailed(localID string, err error) ItemResult {
	return ItemResult{
		LocalID:   localID,
		Success:   false,
		Error:     err.Error(),
		Code:      ErrorCode(err),
		Retryable: IsRetryable(err),
	}
}

// ServerIDs returns the ids of the successful items.
func (r ReconcileResult) ServerIDs() []int64 {
	ids := make([]int64, 0, r.Synced)
	for _, item := range r.Results {
		if item.Success {
			ids = append(ids, item.ServerID)
		}
	}
	return ids
}

const (
	EventPending    = "pending"
	EventProcessing = "processing"
	EventPublished  = "published"
	EventFailed     = "failed"
)

// SyncEvent is an outbox entry announcing a completed batch.
type SyncEvent struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	DeviceID  string    `json:"device_id"`
	Synced    int       `json:"synced"`
	Failed    int       `json:"failed"`
	ServerIDs []int64   `json:"server_ids"`
	SyncedAt  time.Time `json:"synced_at"`
	Status    string    `json:"status,omitempty"`
	Attempts  int64     `json:"attempts,omitempty"`
}

package amqp

import (
	"encoding/json"
	"time"

	"cakue/internal/core"
)

// SyncCompletedMessage announces a reconciled batch. Consumers fetch the
// transactions by server id when they need the full rows.
type SyncCompletedMessage struct {
	EventID   int64     `json:"event_id"`
	UserID    int64     `json:"user_id"`
	DeviceID  string    `json:"device_id"`
	Synced    int       `json:"synced"`
	Failed    int       `json:"failed"`
	ServerIDs []int64   `json:"server_ids"`
	SyncedAt  time.Time `json:"synced_at"`
	Timestamp time.Time `json:"timestamp"`
}

func NewSyncCompletedMessage(ev core.SyncEvent) *SyncCompletedMessage {
	ids := ev.ServerIDs
	if ids == nil {
		ids = []int64{}
	}
	return &SyncCompletedMessage{
		EventID:   ev.ID,
		UserID:    ev.UserID,
		DeviceID:  ev.DeviceID,
		Synced:    ev.Synced,
		Failed:    ev.Failed,
		ServerIDs: ids,
		SyncedAt:  ev.SyncedAt,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *SyncCompletedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func SyncCompletedMessageFromJSON(data []byte) (*SyncCompletedMessage, error) {
	var msg SyncCompletedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

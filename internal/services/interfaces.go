package services

//go:generate mockgen -destination=mocks/mock_services.go -source=interfaces.go -package=mock_services

import (
	"context"
	"time"

	"cakue/internal/core"
)

// TransactionStore is the persistence surface used by the ingestor.
type TransactionStore interface {
	AccountOwnedBy(ctx context.Context, accountID, userID int64) (bool, error)
	CategoryInAccount(ctx context.Context, categoryID, accountID int64) (bool, error)
	InsertTransaction(ctx context.Context, t core.Transaction) (int64, error)
	FindByLocalID(ctx context.Context, localID string) (core.Transaction, error)
}

type CheckpointStore interface {
	UpsertCheckpoint(ctx context.Context, userID int64, deviceID string, at time.Time) (core.SyncCheckpoint, error)
	GetCheckpoint(ctx context.Context, userID int64, deviceID string) (core.SyncCheckpoint, error)
}

// EventQueue receives outbox entries for completed batches.
type EventQueue interface {
	EnqueueSyncEvent(ctx context.Context, ev core.SyncEvent) (int64, error)
}

type Ingestor interface {
	Ingest(ctx context.Context, userID int64, in core.TransactionInput) (core.IngestResult, error)
}

// ReportStore reads committed transactions for reports.
type ReportStore interface {
	AccountOwnedBy(ctx context.Context, accountID, userID int64) (bool, error)
	FirstAccountID(ctx context.Context, userID int64) (int64, error)
	SummarizeByType(ctx context.Context, accountID int64, start, end core.Date) ([]core.TypeTotal, error)
	ListTransactionsInRange(ctx context.Context, accountID int64, start, end core.Date) ([]core.Transaction, error)
}

type UserStore interface {
	CreateUserWithDefaults(ctx context.Context, name, email, passwordHash string) (core.User, core.Account, error)
	GetUserByEmail(ctx context.Context, email string) (core.User, string, error)
}

// LedgerStore backs account, category and listing endpoints.
type LedgerStore interface {
	AccountOwnedBy(ctx context.Context, accountID, userID int64) (bool, error)
	ListAccounts(ctx context.Context, userID int64) ([]core.Account, error)
	CreateAccount(ctx context.Context, userID int64, name string, typ core.AccountType) (core.Account, error)
	ListCategories(ctx context.Context, accountID int64) ([]core.Category, error)
	CreateCategory(ctx context.Context, accountID int64, name string, typ core.TransactionType) (core.Category, error)
	ListTransactions(ctx context.Context, accountID int64) ([]core.Transaction, error)
}

// OutboxStore is the relay's view of the sync_events table.
type OutboxStore interface {
	DequeueSyncEvents(ctx context.Context, limit int) ([]core.SyncEvent, error)
	MarkSyncEventProcessing(ctx context.Context, id int64) (bool, error)
	MarkSyncEventPublished(ctx context.Context, id int64) error
	RetrySyncEvent(ctx context.Context, id int64, errMsg string, next time.Time) error
	MarkSyncEventFailed(ctx context.Context, id int64, errMsg string) error
	CleanupPublishedSyncEvents(ctx context.Context, cutoff time.Time) (int64, error)
	ResetStaleSyncEvents(ctx context.Context, cutoff time.Time) (int64, error)
}

type EventPublisher interface {
	PublishSyncEvent(ctx context.Context, ev core.SyncEvent) error
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"cakue/internal/core"

	_ "modernc.org/sqlite"
)

// Options configures the pooled database handle.
type Options struct {
	Path            string
	BusyTimeout     time.Duration
	MaxOpenConns    int
	ConnectAttempts int
}

// DefaultOptions returns sensible defaults for a database file at path.
func DefaultOptions(path string) Options {
	return Options{
		Path:            path,
		BusyTimeout:     5 * time.Second,
		MaxOpenConns:    4,
		ConnectAttempts: 5,
	}
}

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

// NewSQLiteRepository opens the database at dbPath with default options.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	return Open(context.Background(), DefaultOptions(dbPath))
}

// Open acquires the pool, retrying the first ping with exponential backoff,
// and brings the schema up to date.
func Open(ctx context.Context, opts Options) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	if opts.ConnectAttempts < 1 {
		opts.ConnectAttempts = 1
	}

	dsn := DSN(opts.Path, opts.BusyTimeout)

	var (
		db  *sql.DB
		err error
	)
	for attempt := 0; ; attempt++ {
		db, err = connect(ctx, dsn)
		if err == nil {
			break
		}
		if attempt+1 >= opts.ConnectAttempts {
			return nil, fmt.Errorf("connect database after %d attempts: %w", attempt+1, err)
		}

		wait := exponentialBackoff(attempt)
		slog.WarnContext(ctx, "Database connection failed, retrying",
			"attempt", attempt+1,
			"retry_in", wait,
			"error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxOpenConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := RunMigrations(dsn); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

// DSN builds a modernc connection string. Every pooled connection gets the
// busy timeout and foreign key enforcement; transactions take the write lock up front.
func DSN(path string, busyTimeout time.Duration) string {
	v := url.Values{}
	v.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeout.Milliseconds()))
	v.Add("_pragma", "foreign_keys(1)")
	v.Add("_pragma", "journal_mode(WAL)")
	v.Set("_txlock", "immediate")
	return path + "?" + v.Encode()
}

func connect(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// exponentialBackoff returns 1s, 2s, 4s ... capped at 30s.
func exponentialBackoff(attempt int) time.Duration {
	if attempt > 5 {
		return 30 * time.Second
	}
	d := time.Duration(1<<uint(attempt)) * time.Second
	if d > 30*time.Second {
		d = 30 * time.Second
	}
	return d
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping reports whether the database is reachable.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// InsertTransaction commits t unless its local_id already exists, in which
// case nothing is written and core.ErrDuplicateLocalID is returned.
func (r *SQLiteRepository) InsertTransaction(ctx context.Context, t core.Transaction) (int64, error) {
	id, err := r.queries.InsertTransaction(ctx, InsertTransactionParams{
		AccountID:       t.AccountID,
		CategoryID:      t.CategoryID,
		AmountCents:     core.AmountToCents(t.Amount),
		Type:            string(t.Type),
		Description:     t.Description,
		TransactionDate: t.TransactionDate.String(),
		LocalID:         nullString(t.LocalID),
		IsSynced:        true,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return 0, core.ErrDuplicateLocalID
	}
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", mapError(err))
	}

	slog.DebugContext(ctx, "Transaction saved to SQLite",
		"id", id,
		"local_id", t.LocalID,
		"account_id", t.AccountID,
		"type", t.Type)

	return id, nil
}

func (r *SQLiteRepository) FindByLocalID(ctx context.Context, localID string) (core.Transaction, error) {
	row, err := r.queries.GetTransactionByLocalID(ctx, nullString(localID))
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, core.ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction by local id: %w", err)
	}
	return transactionFromRow(row.ID, row.AccountID, row.CategoryID, row.AmountCents, row.Type,
		row.Description, row.TransactionDate, row.LocalID, row.IsSynced, ""), nil
}

func (r *SQLiteRepository) AccountOwnedBy(ctx context.Context, accountID, userID int64) (bool, error) {
	owned, err := r.queries.AccountOwnedBy(ctx, AccountOwnedByParams{ID: accountID, UserID: userID})
	if err != nil {
		return false, fmt.Errorf("check account owner: %w", err)
	}
	return owned == 1, nil
}

func (r *SQLiteRepository) CategoryInAccount(ctx context.Context, categoryID, accountID int64) (bool, error) {
	belongs, err := r.queries.CategoryInAccount(ctx, CategoryInAccountParams{ID: categoryID, AccountID: accountID})
	if err != nil {
		return false, fmt.Errorf("check category account: %w", err)
	}
	return belongs == 1, nil
}

// ListTransactions returns every transaction of an account, newest first.
func (r *SQLiteRepository) ListTransactions(ctx context.Context, accountID int64) ([]core.Transaction, error) {
	rows, err := r.queries.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	out := make([]core.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, transactionFromRow(row.ID, row.AccountID, row.CategoryID, row.AmountCents, row.Type,
			row.Description, row.TransactionDate, row.LocalID, row.IsSynced, row.CategoryName))
	}
	return out, nil
}

// ListTransactionsInRange returns committed transactions with start <= date <= end, newest first.
func (r *SQLiteRepository) ListTransactionsInRange(ctx context.Context, accountID int64, start, end core.Date) ([]core.Transaction, error) {
	rows, err := r.queries.ListTransactionsInRange(ctx, ListTransactionsInRangeParams{
		AccountID: accountID,
		StartDate: start.String(),
		EndDate:   end.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("list transactions in range: %w", err)
	}
	out := make([]core.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, transactionFromRow(row.ID, row.AccountID, row.CategoryID, row.AmountCents, row.Type,
			row.Description, row.TransactionDate, row.LocalID, row.IsSynced, row.CategoryName))
	}
	return out, nil
}

// SummarizeByType totals committed transactions per type, income first.
func (r *SQLiteRepository) SummarizeByType(ctx context.Context, accountID int64, start, end core.Date) ([]core.TypeTotal, error) {
	rows, err := r.queries.SummarizeByType(ctx, SummarizeByTypeParams{
		AccountID: accountID,
		StartDate: start.String(),
		EndDate:   end.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("summarize transactions: %w", err)
	}
	out := make([]core.TypeTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, core.TypeTotal{
			Type:  core.TransactionType(row.Type),
			Total: core.CentsToAmount(row.TotalCents),
			Count: row.TxCount,
		})
	}
	return out, nil
}

// UpsertCheckpoint records a completed batch. The stored value never moves backwards.
func (r *SQLiteRepository) UpsertCheckpoint(ctx context.Context, userID int64, deviceID string, at time.Time) (core.SyncCheckpoint, error) {
	row, err := r.queries.UpsertSyncCheckpoint(ctx, UpsertSyncCheckpointParams{
		UserID:   userID,
		DeviceID: deviceID,
		LastSync: at.UnixMilli(),
	})
	if err != nil {
		return core.SyncCheckpoint{}, fmt.Errorf("upsert sync checkpoint: %w", mapError(err))
	}
	return core.SyncCheckpoint{
		UserID:   row.UserID,
		DeviceID: row.DeviceID,
		LastSync: time.UnixMilli(row.LastSync).UTC(),
	}, nil
}

func (r *SQLiteRepository) GetCheckpoint(ctx context.Context, userID int64, deviceID string) (core.SyncCheckpoint, error) {
	row, err := r.queries.GetSyncCheckpoint(ctx, GetSyncCheckpointParams{UserID: userID, DeviceID: deviceID})
	if errors.Is(err, sql.ErrNoRows) {
		return core.SyncCheckpoint{}, core.ErrNotFound
	}
	if err != nil {
		return core.SyncCheckpoint{}, fmt.Errorf("get sync checkpoint: %w", err)
	}
	return core.SyncCheckpoint{
		UserID:   row.UserID,
		DeviceID: row.DeviceID,
		LastSync: time.UnixMilli(row.LastSync).UTC(),
	}, nil
}

func transactionFromRow(id, accountID, categoryID, cents int64, typ, desc, date string, localID sql.NullString, synced bool, category string) core.Transaction {
	d, _ := core.ParseDate(date)
	return core.Transaction{
		ID:              id,
		LocalID:         localID.String,
		AccountID:       accountID,
		CategoryID:      categoryID,
		CategoryName:    category,
		Amount:          core.CentsToAmount(cents),
		Type:            core.TransactionType(typ),
		Description:     desc,
		TransactionDate: d,
		IsSynced:        synced,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

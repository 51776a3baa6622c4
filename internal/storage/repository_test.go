package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"cakue/internal/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repo    *SQLiteRepository
	user    core.User
	account core.Account
	income  core.Category
	expense core.Category
}

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "cakue.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	repo := newTestRepo(t)

	user, account, err := repo.CreateUserWithDefaults(ctx, "Test User", "test@example.com", "hash")
	require.NoError(t, err)

	cats, err := repo.ListCategories(ctx, account.ID)
	require.NoError(t, err)

	f := fixture{repo: repo, user: user, account: account}
	for _, c := range cats {
		if c.Name == "Salary" {
			f.income = c
		}
		if c.Name == "Food" {
			f.expense = c
		}
	}
	require.NotZero(t, f.income.ID)
	require.NotZero(t, f.expense.ID)
	return f
}

func (f fixture) tx(localID string, amount int64, typ core.TransactionType, date core.Date) core.Transaction {
	cat := f.expense.ID
	if typ == core.Income {
		cat = f.income.ID
	}
	return core.Transaction{
		LocalID:         localID,
		AccountID:       f.account.ID,
		CategoryID:      cat,
		Amount:          decimal.NewFromInt(amount),
		Type:            typ,
		Description:     "test " + localID,
		TransactionDate: date,
	}
}

func TestCreateUserWithDefaults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	assert.Equal(t, DefaultAccountName, f.account.Name)
	assert.Equal(t, core.Personal, f.account.Type)

	cats, err := f.repo.ListCategories(ctx, f.account.ID)
	require.NoError(t, err)
	assert.Len(t, cats, len(DefaultCategories))

	_, _, err = f.repo.CreateUserWithDefaults(ctx, "Other", "test@example.com", "hash")
	assert.True(t, errors.Is(err, core.ErrConflict), "expected conflict, got %v", err)

	u, hash, err := f.repo.GetUserByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, u.ID)
	assert.Equal(t, "hash", hash)

	_, _, err = f.repo.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestOwnershipChecks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	other, otherAccount, err := f.repo.CreateUserWithDefaults(ctx, "Other", "other@example.com", "hash")
	require.NoError(t, err)

	owned, err := f.repo.AccountOwnedBy(ctx, f.account.ID, f.user.ID)
	require.NoError(t, err)
	assert.True(t, owned)

	owned, err = f.repo.AccountOwnedBy(ctx, otherAccount.ID, f.user.ID)
	require.NoError(t, err)
	assert.False(t, owned)

	owned, err = f.repo.AccountOwnedBy(ctx, otherAccount.ID, other.ID)
	require.NoError(t, err)
	assert.True(t, owned)

	belongs, err := f.repo.CategoryInAccount(ctx, f.expense.ID, f.account.ID)
	require.NoError(t, err)
	assert.True(t, belongs)

	belongs, err = f.repo.CategoryInAccount(ctx, f.expense.ID, otherAccount.ID)
	require.NoError(t, err)
	assert.False(t, belongs)

	id, err := f.repo.FirstAccountID(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, f.account.ID, id)

	_, err = f.repo.FirstAccountID(ctx, 9999)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestInsertTransaction_LocalIDIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	date := core.NewDate(2025, 3, 1)

	id, err := f.repo.InsertTransaction(ctx, f.tx("dev-1", 50, core.Expense, date))
	require.NoError(t, err)
	require.NotZero(t, id)

	_, err = f.repo.InsertTransaction(ctx, f.tx("dev-1", 75, core.Expense, date))
	assert.ErrorIs(t, err, core.ErrDuplicateLocalID)

	existing, err := f.repo.FindByLocalID(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, id, existing.ID)
	assert.True(t, existing.Amount.Equal(decimal.NewFromInt(50)), "first write wins")

	all, err := f.repo.ListTransactions(ctx, f.account.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = f.repo.FindByLocalID(ctx, "nope")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestInsertTransaction_WithoutLocalIDAlwaysInserts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	date := core.NewDate(2025, 3, 1)

	first, err := f.repo.InsertTransaction(ctx, f.tx("", 10, core.Expense, date))
	require.NoError(t, err)
	second, err := f.repo.InsertTransaction(ctx, f.tx("", 10, core.Expense, date))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestInsertTransaction_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tx := f.tx("dev-x", 10, core.Expense, core.NewDate(2025, 3, 1))
	tx.CategoryID = 424242

	_, err := f.repo.InsertTransaction(ctx, tx)
	assert.ErrorIs(t, err, core.ErrInvalidReference)
}

func TestInsertTransaction_ConcurrentSameLocalID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	tx := f.tx("race-1", 20, core.Expense, core.NewDate(2025, 3, 1))

	const workers = 8
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		inserted   int
		duplicates int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.repo.InsertTransaction(ctx, tx)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				inserted++
			case errors.Is(err, core.ErrDuplicateLocalID):
				duplicates++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, inserted)
	assert.Equal(t, workers-1, duplicates)

	all, err := f.repo.ListTransactions(ctx, f.account.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpsertCheckpoint_NeverMovesBackwards(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	later := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	earlier := later.Add(-time.Hour)

	cp, err := f.repo.UpsertCheckpoint(ctx, f.user.ID, "phone", later)
	require.NoError(t, err)
	assert.True(t, cp.LastSync.Equal(later))

	cp, err = f.repo.UpsertCheckpoint(ctx, f.user.ID, "phone", earlier)
	require.NoError(t, err)
	assert.True(t, cp.LastSync.Equal(later), "checkpoint went backwards: %v", cp.LastSync)

	newer := later.Add(time.Minute)
	cp, err = f.repo.UpsertCheckpoint(ctx, f.user.ID, "phone", newer)
	require.NoError(t, err)
	assert.True(t, cp.LastSync.Equal(newer))

	got, err := f.repo.GetCheckpoint(ctx, f.user.ID, "phone")
	require.NoError(t, err)
	assert.True(t, got.LastSync.Equal(newer))

	_, err = f.repo.GetCheckpoint(ctx, f.user.ID, "tablet")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestSummarizeByType(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for i, tx := range []core.Transaction{
		f.tx("a", 100, core.Income, core.NewDate(2025, 1, 1)),
		f.tx("b", 40, core.Expense, core.NewDate(2025, 1, 15)),
		f.tx("c", 60, core.Expense, core.NewDate(2025, 1, 31)),
		f.tx("d", 999, core.Expense, core.NewDate(2025, 2, 1)),
	} {
		_, err := f.repo.InsertTransaction(ctx, tx)
		require.NoError(t, err, "insert %d", i)
	}

	start, end := core.NewDate(2025, 1, 1), core.NewDate(2025, 1, 31)
	totals, err := f.repo.SummarizeByType(ctx, f.account.ID, start, end)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, core.Income, totals[0].Type)
	assert.True(t, totals[0].Total.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, int64(1), totals[0].Count)

	assert.Equal(t, core.Expense, totals[1].Type)
	assert.True(t, totals[1].Total.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, int64(2), totals[1].Count)

	rows, err := f.repo.ListTransactionsInRange(ctx, f.account.ID, start, end)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "c", rows[0].LocalID, "newest first")
	assert.Equal(t, "Food", rows[0].CategoryName)
}

func TestSummarizeByType_EmptyRange(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	totals, err := f.repo.SummarizeByType(ctx, f.account.ID, core.NewDate(2020, 1, 1), core.NewDate(2020, 12, 31))
	require.NoError(t, err)
	assert.NotNil(t, totals)
	assert.Empty(t, totals)

	rows, err := f.repo.ListTransactionsInRange(ctx, f.account.ID, core.NewDate(2020, 1, 1), core.NewDate(2020, 12, 31))
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestSyncEventOutbox(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	id, err := f.repo.EnqueueSyncEvent(ctx, core.SyncEvent{
		UserID:    f.user.ID,
		DeviceID:  "phone",
		Synced:    2,
		Failed:    1,
		ServerIDs: []int64{10, 11},
		SyncedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)

	events, err := f.repo.DequeueSyncEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, id, events[0].ID)
	assert.Equal(t, []int64{10, 11}, events[0].ServerIDs)
	assert.Equal(t, core.EventPending, events[0].Status)

	claimed, err := f.repo.MarkSyncEventProcessing(ctx, id)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = f.repo.MarkSyncEventProcessing(ctx, id)
	require.NoError(t, err)
	assert.False(t, claimed, "event claimed twice")

	require.NoError(t, f.repo.RetrySyncEvent(ctx, id, "broker down", time.Now().Add(time.Hour)))
	events, err = f.repo.DequeueSyncEvents(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, events, "event dequeued before its retry time")

	require.NoError(t, f.repo.MarkSyncEventPublished(ctx, id))
	stats, err := f.repo.SyncEventStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Published)

	n, err := f.repo.CleanupPublishedSyncEvents(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestResetStaleSyncEvents_KeepsRecentClaims(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	id, err := f.repo.EnqueueSyncEvent(ctx, core.SyncEvent{
		UserID:    f.user.ID,
		DeviceID:  "phone",
		Synced:    1,
		ServerIDs: []int64{1},
		SyncedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)

	claimed, err := f.repo.MarkSyncEventProcessing(ctx, id)
	require.NoError(t, err)
	require.True(t, claimed)

	n, err := f.repo.ResetStaleSyncEvents(ctx, time.Now().Add(-10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "recent claim released")

	stats, err := f.repo.SyncEventStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Processing)

	n, err = f.repo.ResetStaleSyncEvents(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	stats, err = f.repo.SyncEventStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(0), stats.Processing)
}

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second},
		{12, 30 * time.Second},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt_%d", tt.attempt), func(t *testing.T) {
			assert.Equal(t, tt.expected, exponentialBackoff(tt.attempt))
		})
	}
}

func TestOpen_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := DefaultOptions(filepath.Join(t.TempDir(), "cakue.db"))
	opts.ConnectAttempts = 3
	_, err := Open(ctx, opts)
	assert.Error(t, err)
}

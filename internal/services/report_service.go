package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cakue/internal/cache"
	"cakue/internal/core"
)

const (
	DefaultReportCacheSize = 256
	DefaultReportCacheTTL  = 5 * time.Minute
)

// ReportService aggregates committed transactions over a date range.
type ReportService struct {
	store ReportStore
	cache cache.Cache[core.Summary]

	// generations counts invalidations per account. A summary read under an
	// older generation is not cached.
	mu          sync.Mutex
	generations map[int64]uint64
}

// NewReportService creates the aggregator. A nil cache disables caching.
func NewReportService(store ReportStore, c cache.Cache[core.Summary]) *ReportService {
	return &ReportService{
		store:       store,
		cache:       c,
		generations: make(map[int64]uint64),
	}
}

// Summarize returns totals per type and the transactions of the range.
// An empty range is a valid result, not an error.
func (s *ReportService) Summarize(ctx context.Context, userID, accountID int64, start, end core.Date) (core.Summary, error) {
	if start.IsZero() || end.IsZero() || start.After(end.Time) {
		return core.Summary{}, core.ErrInvalidRange
	}

	owned, err := s.store.AccountOwnedBy(ctx, accountID, userID)
	if err != nil {
		return core.Summary{}, fmt.Errorf("check account ownership: %w", err)
	}
	if !owned {
		return core.Summary{}, fmt.Errorf("%w: account %d", core.ErrAccessDenied, accountID)
	}

	key := summaryKey(accountID, start, end)
	if s.cache != nil {
		if sum, ok := s.cache.Get(key); ok {
			slog.DebugContext(ctx, "Summary served from cache", "account_id", accountID)
			return sum, nil
		}
	}
	gen := s.generation(accountID)

	totals, err := s.store.SummarizeByType(ctx, accountID, start, end)
	if err != nil {
		return core.Summary{}, err
	}
	txs, err := s.store.ListTransactionsInRange(ctx, accountID, start, end)
	if err != nil {
		return core.Summary{}, err
	}

	sum := core.Summary{
		AccountID:    accountID,
		StartDate:    start,
		EndDate:      end,
		ByType:       totals,
		Transactions: txs,
	}
	if sum.ByType == nil {
		sum.ByType = []core.TypeTotal{}
	}
	if sum.Transactions == nil {
		sum.Transactions = []core.Transaction{}
	}

	s.cacheSummary(accountID, gen, key, sum)
	return sum, nil
}

func (s *ReportService) generation(accountID int64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[accountID]
}

// cacheSummary stores sum unless the account was invalidated after gen was read.
func (s *ReportService) cacheSummary(accountID int64, gen uint64, key string, sum core.Summary) {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[accountID] != gen {
		slog.Debug("Stale summary not cached", "account_id", accountID)
		return
	}
	s.cache.Set(key, sum)
}

// DefaultAccountID picks the account used when a report request names none.
func (s *ReportService) DefaultAccountID(ctx context.Context, userID int64) (int64, error) {
	id, err := s.store.FirstAccountID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("find default account: %w", err)
	}
	return id, nil
}

// InvalidateAccount drops every cached summary of accountID.
func (s *ReportService) InvalidateAccount(accountID int64) {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[accountID]++
	if n := s.cache.DeletePrefix(accountPrefix(accountID)); n > 0 {
		slog.Debug("Report cache invalidated", "account_id", accountID, "entries", n)
	}
}

func accountPrefix(accountID int64) string {
	return fmt.Sprintf("summary:%d:", accountID)
}

func summaryKey(accountID int64, start, end core.Date) string {
	return accountPrefix(accountID) + start.String() + ":" + end.String()
}

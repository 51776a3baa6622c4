package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cakue/internal/core"
)

// CacheInvalidator drops cached data derived from an account.
type CacheInvalidator interface {
	InvalidateAccount(accountID int64)
}

// TransactionService validates and commits single transactions. A local_id
// submitted twice yields the same server id and no second row.
type TransactionService struct {
	store       TransactionStore
	invalidator CacheInvalidator
}

func NewTransactionService(store TransactionStore, invalidator CacheInvalidator) *TransactionService {
	return &TransactionService{
		store:       store,
		invalidator: invalidator,
	}
}

// Ingest commits in on behalf of userID.
func (s *TransactionService) Ingest(ctx context.Context, userID int64, in core.TransactionInput) (core.IngestResult, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return core.IngestResult{}, err
	}

	owned, err := s.store.AccountOwnedBy(ctx, in.AccountID, userID)
	if err != nil {
		return core.IngestResult{}, fmt.Errorf("check account ownership: %w", err)
	}
	if !owned {
		return core.IngestResult{}, fmt.Errorf("%w: account %d", core.ErrAccessDenied, in.AccountID)
	}

	belongs, err := s.store.CategoryInAccount(ctx, in.CategoryID, in.AccountID)
	if err != nil {
		return core.IngestResult{}, fmt.Errorf("check category: %w", err)
	}
	if !belongs {
		return core.IngestResult{}, fmt.Errorf("%w: category %d does not belong to account %d",
			core.ErrInvalidReference, in.CategoryID, in.AccountID)
	}

	id, err := s.store.InsertTransaction(ctx, in.Transaction())
	if errors.Is(err, core.ErrDuplicateLocalID) {
		return s.resolveDuplicate(ctx, userID, in.LocalID)
	}
	if err != nil {
		return core.IngestResult{}, err
	}

	if s.invalidator != nil {
		s.invalidator.InvalidateAccount(in.AccountID)
	}

	slog.InfoContext(ctx, "Transaction ingested",
		"id", id,
		"local_id", in.LocalID,
		"account_id", in.AccountID,
		"type", in.Type)

	return core.IngestResult{ServerID: id, LocalID: in.LocalID}, nil
}

// resolveDuplicate returns the row already stored under localID. Rows owned
// by another user are reported as access denied so their ids never leak.
func (s *TransactionService) resolveDuplicate(ctx context.Context, userID int64, localID string) (core.IngestResult, error) {
	existing, err := s.store.FindByLocalID(ctx, localID)
	if err != nil {
		return core.IngestResult{}, fmt.Errorf("find duplicate local id: %w", err)
	}

	owned, err := s.store.AccountOwnedBy(ctx, existing.AccountID, userID)
	if err != nil {
		return core.IngestResult{}, fmt.Errorf("check duplicate ownership: %w", err)
	}
	if !owned {
		slog.WarnContext(ctx, "Local id collides with another user's transaction",
			"local_id", localID,
			"user_id", userID)
		return core.IngestResult{}, fmt.Errorf("%w: local_id already used", core.ErrAccessDenied)
	}

	slog.DebugContext(ctx, "Duplicate local id resolved",
		"local_id", localID,
		"server_id", existing.ID)

	return core.IngestResult{ServerID: existing.ID, LocalID: localID, Duplicate: true}, nil
}

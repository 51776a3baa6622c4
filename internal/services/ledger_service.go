package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"cakue/internal/core"
)

// LedgerService manages accounts and categories of a user.
type LedgerService struct {
	store LedgerStore
}

func NewLedgerService(store LedgerStore) *LedgerService {
	return &LedgerService{store: store}
}

func (s *LedgerService) Accounts(ctx context.Context, userID int64) ([]core.Account, error) {
	return s.store.ListAccounts(ctx, userID)
}

func (s *LedgerService) CreateAccount(ctx context.Context, userID int64, name string, typ core.AccountType) (core.Account, error) {
	name, err := cleanName(name)
	if err != nil {
		return core.Account{}, err
	}
	if typ == "" {
		typ = core.Personal
	}
	if !typ.Valid() {
		return core.Account{}, fmt.Errorf("%w: type must be personal or business", core.ErrValidation)
	}
	return s.store.CreateAccount(ctx, userID, name, typ)
}

func (s *LedgerService) Categories(ctx context.Context, userID, accountID int64) ([]core.Category, error) {
	if err := s.requireOwner(ctx, userID, accountID); err != nil {
		return nil, err
	}
	return s.store.ListCategories(ctx, accountID)
}

func (s *LedgerService) CreateCategory(ctx context.Context, userID, accountID int64, name string, typ core.TransactionType) (core.Category, error) {
	name, err := cleanName(name)
	if err != nil {
		return core.Category{}, err
	}
	if !typ.Valid() {
		return core.Category{}, core.ErrInvalidType
	}
	if err := s.requireOwner(ctx, userID, accountID); err != nil {
		return core.Category{}, err
	}
	return s.store.CreateCategory(ctx, accountID, name, typ)
}

// Transactions lists the account's transactions, newest first.
func (s *LedgerService) Transactions(ctx context.Context, userID, accountID int64) ([]core.Transaction, error) {
	if err := s.requireOwner(ctx, userID, accountID); err != nil {
		return nil, err
	}
	return s.store.ListTransactions(ctx, accountID)
}

func (s *LedgerService) requireOwner(ctx context.Context, userID, accountID int64) error {
	if accountID <= 0 {
		return core.ErrInvalidAccountID
	}
	owned, err := s.store.AccountOwnedBy(ctx, accountID, userID)
	if err != nil {
		return fmt.Errorf("check account ownership: %w", err)
	}
	if !owned {
		return fmt.Errorf("%w: account %d", core.ErrAccessDenied, accountID)
	}
	return nil
}

func cleanName(name string) (string, error) {
	name = core.SanitizeText(name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		return "", core.ErrInvalidName
	}
	return strings.Join(strings.Fields(name), " "), nil
}

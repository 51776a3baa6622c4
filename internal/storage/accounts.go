package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"cakue/internal/core"
)

// DefaultAccountName is the account every new user starts with.
const DefaultAccountName = "Personal Account"

// DefaultCategories are created inside the default account on registration.
var DefaultCategories = []core.Category{
	{Name: "Food", Type: core.Expense},
	{Name: "Transportation", Type: core.Expense},
	{Name: "Education", Type: core.Expense},
	{Name: "Transfer", Type: core.Expense},
	{Name: "Salary", Type: core.Income},
	{Name: "Business", Type: core.Income},
}

// CreateUserWithDefaults inserts the user, a personal account and the default
// categories in one database transaction.
func (r *SQLiteRepository) CreateUserWithDefaults(ctx context.Context, name, email, passwordHash string) (core.User, core.Account, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.User{}, core.Account{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)

	u, err := q.CreateUser(ctx, CreateUserParams{Name: name, Email: email, PasswordHash: passwordHash})
	if err != nil {
		err = mapError(err)
		if errors.Is(err, core.ErrConflict) {
			return core.User{}, core.Account{}, fmt.Errorf("%w: email already registered", core.ErrConflict)
		}
		return core.User{}, core.Account{}, fmt.Errorf("create user: %w", err)
	}

	a, err := q.CreateAccount(ctx, CreateAccountParams{UserID: u.ID, Name: DefaultAccountName, Type: string(core.Personal)})
	if err != nil {
		return core.User{}, core.Account{}, fmt.Errorf("create default account: %w", mapError(err))
	}

	for _, c := range DefaultCategories {
		if _, err := q.CreateCategory(ctx, CreateCategoryParams{AccountID: a.ID, Name: c.Name, Type: string(c.Type)}); err != nil {
			return core.User{}, core.Account{}, fmt.Errorf("create default category %s: %w", c.Name, mapError(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return core.User{}, core.Account{}, fmt.Errorf("commit transaction: %w", err)
	}

	slog.InfoContext(ctx, "User registered with default account",
		"user_id", u.ID,
		"account_id", a.ID,
		"categories", len(DefaultCategories))

	return core.User{ID: u.ID, Name: u.Name, Email: u.Email},
		core.Account{ID: a.ID, UserID: a.UserID, Name: a.Name, Type: core.AccountType(a.Type)},
		nil
}

// GetUserByEmail returns the user and the stored password hash.
func (r *SQLiteRepository) GetUserByEmail(ctx context.Context, email string) (core.User, string, error) {
	u, err := r.queries.GetUserByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, "", core.ErrNotFound
	}
	if err != nil {
		return core.User{}, "", fmt.Errorf("get user by email: %w", err)
	}
	return core.User{ID: u.ID, Name: u.Name, Email: u.Email}, u.PasswordHash, nil
}

func (r *SQLiteRepository) ListAccounts(ctx context.Context, userID int64) ([]core.Account, error) {
	rows, err := r.queries.ListAccountsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	out := make([]core.Account, 0, len(rows))
	for _, a := range rows {
		out = append(out, core.Account{ID: a.ID, UserID: a.UserID, Name: a.Name, Type: core.AccountType(a.Type)})
	}
	return out, nil
}

func (r *SQLiteRepository) CreateAccount(ctx context.Context, userID int64, name string, typ core.AccountType) (core.Account, error) {
	a, err := r.queries.CreateAccount(ctx, CreateAccountParams{UserID: userID, Name: name, Type: string(typ)})
	if err != nil {
		return core.Account{}, fmt.Errorf("create account: %w", mapError(err))
	}
	return core.Account{ID: a.ID, UserID: a.UserID, Name: a.Name, Type: core.AccountType(a.Type)}, nil
}

// FirstAccountID returns the oldest account of the user.
func (r *SQLiteRepository) FirstAccountID(ctx context.Context, userID int64) (int64, error) {
	id, err := r.queries.FirstAccountForUser(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, core.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get first account: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) ListCategories(ctx context.Context, accountID int64) ([]core.Category, error) {
	rows, err := r.queries.ListCategoriesByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]core.Category, 0, len(rows))
	for _, c := range rows {
		out = append(out, core.Category{ID: c.ID, AccountID: c.AccountID, Name: c.Name, Type: core.TransactionType(c.Type)})
	}
	return out, nil
}

func (r *SQLiteRepository) CreateCategory(ctx context.Context, accountID int64, name string, typ core.TransactionType) (core.Category, error) {
	c, err := r.queries.CreateCategory(ctx, CreateCategoryParams{AccountID: accountID, Name: name, Type: string(typ)})
	if err != nil {
		return core.Category{}, fmt.Errorf("create category: %w", mapError(err))
	}
	return core.Category{ID: c.ID, AccountID: c.AccountID, Name: c.Name, Type: core.TransactionType(c.Type)}, nil
}

package services_test

import (
	"context"
	"errors"
	"testing"

	"cakue/internal/core"
	"cakue/internal/services"
	mock_services "cakue/internal/services/mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invalidatorSpy struct {
	accounts []int64
}

func (s *invalidatorSpy) InvalidateAccount(accountID int64) {
	s.accounts = append(s.accounts, accountID)
}

func validInput(localID string) core.TransactionInput {
	return core.TransactionInput{
		LocalID:         localID,
		AccountID:       1,
		CategoryID:      2,
		Amount:          decimal.RequireFromString("12.345"),
		Type:            core.Expense,
		Description:     "  lunch\x00  ",
		TransactionDate: core.NewDate(2024, 1, 15),
	}
}

func TestTransactionService_Ingest(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("disk I/O error")

	tests := []struct {
		name          string
		input         core.TransactionInput
		setup         func(m *mock_services.MockTransactionStore)
		want          core.IngestResult
		wantErr       error
		wantInvalided bool
	}{
		{
			name:  "new transaction is inserted",
			input: validInput("dev-1"),
			setup: func(m *mock_services.MockTransactionStore) {
				m.EXPECT().AccountOwnedBy(ctx, int64(1), int64(7)).Return(true, nil)
				m.EXPECT().CategoryInAccount(ctx, int64(2), int64(1)).Return(true, nil)
				m.EXPECT().InsertTransaction(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, tx core.Transaction) (int64, error) {
						assert.True(t, tx.Amount.Equal(decimal.RequireFromString("12.35")))
						assert.Equal(t, "lunch", tx.Description)
						assert.Equal(t, "dev-1", tx.LocalID)
						assert.True(t, tx.IsSynced)
						return 100, nil
					})
			},
			want:          core.IngestResult{ServerID: 100, LocalID: "dev-1"},
			wantInvalided: true,
		},
		{
			name:  "duplicate local id resolves to existing row",
			input: validInput("dev-1"),
			setup: func(m *mock_services.MockTransactionStore) {
				m.EXPECT().AccountOwnedBy(ctx, int64(1), int64(7)).Return(true, nil).Times(2)
				m.EXPECT().CategoryInAccount(ctx, int64(2), int64(1)).Return(true, nil)
				m.EXPECT().InsertTransaction(ctx, gomock.Any()).Return(int64(0), core.ErrDuplicateLocalID)
				m.EXPECT().FindByLocalID(ctx, "dev-1").Return(core.Transaction{ID: 55, AccountID: 1}, nil)
			},
			want: core.IngestResult{ServerID: 55, LocalID: "dev-1", Duplicate: true},
		},
		{
			name:  "duplicate local id of another user is access denied",
			input: validInput("dev-1"),
			setup: func(m *mock_services.MockTransactionStore) {
				m.EXPECT().AccountOwnedBy(ctx, int64(1), int64(7)).Return(true, nil)
				m.EXPECT().CategoryInAccount(ctx, int64(2), int64(1)).Return(true, nil)
				m.EXPECT().InsertTransaction(ctx, gomock.Any()).Return(int64(0), core.ErrDuplicateLocalID)
				m.EXPECT().FindByLocalID(ctx, "dev-1").Return(core.Transaction{ID: 99, AccountID: 8}, nil)
				m.EXPECT().AccountOwnedBy(ctx, int64(8), int64(7)).Return(false, nil)
			},
			wantErr: core.ErrAccessDenied,
		},
		{
			name:  "foreign account is access denied",
			input: validInput(""),
			setup: func(m *mock_services.MockTransactionStore) {
				m.EXPECT().AccountOwnedBy(ctx, int64(1), int64(7)).Return(false, nil)
			},
			wantErr: core.ErrAccessDenied,
		},
		{
			name:  "category outside account is invalid reference",
			input: validInput(""),
			setup: func(m *mock_services.MockTransactionStore) {
				m.EXPECT().AccountOwnedBy(ctx, int64(1), int64(7)).Return(true, nil)
				m.EXPECT().CategoryInAccount(ctx, int64(2), int64(1)).Return(false, nil)
			},
			wantErr: core.ErrInvalidReference,
		},
		{
			name: "invalid amount never reaches storage",
			input: func() core.TransactionInput {
				in := validInput("")
				in.Amount = decimal.RequireFromString("0.001")
				return in
			}(),
			setup:   func(m *mock_services.MockTransactionStore) {},
			wantErr: core.ErrValidation,
		},
		{
			name:  "storage failure surfaces",
			input: validInput(""),
			setup: func(m *mock_services.MockTransactionStore) {
				m.EXPECT().AccountOwnedBy(ctx, int64(1), int64(7)).Return(true, nil)
				m.EXPECT().CategoryInAccount(ctx, int64(2), int64(1)).Return(true, nil)
				m.EXPECT().InsertTransaction(ctx, gomock.Any()).Return(int64(0), storeErr)
			},
			wantErr: storeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock_services.NewMockTransactionStore(ctrl)
			tt.setup(store)
			spy := &invalidatorSpy{}

			svc := services.NewTransactionService(store, spy)
			got, err := svc.Ingest(ctx, 7, tt.input)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, spy.accounts)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.wantInvalided {
				assert.Equal(t, []int64{1}, spy.accounts)
			} else {
				assert.Empty(t, spy.accounts)
			}
		})
	}
}

func TestTransactionService_NilInvalidator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	store := mock_services.NewMockTransactionStore(ctrl)
	store.EXPECT().AccountOwnedBy(ctx, int64(1), int64(7)).Return(true, nil)
	store.EXPECT().CategoryInAccount(ctx, int64(2), int64(1)).Return(true, nil)
	store.EXPECT().InsertTransaction(ctx, gomock.Any()).Return(int64(3), nil)

	svc := services.NewTransactionService(store, nil)
	got, err := svc.Ingest(ctx, 7, validInput(""))

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ServerID)
}

package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/pg"
	"github.com/GlebRadaev/refledger/internal/profile"
)

var (
	fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	errDB    = errors.New("db error")
	reward   = decimal.NewFromInt(25)
)

func NewMock(t *testing.T) (*Service, *pg.MockTXManager, *MockEarningRepo, *MockBalanceRepo, *profile.MockNames) {
	ctrl := gomock.NewController(t)
	txManager := pg.NewMockTXManager(ctrl)
	earnings := NewMockEarningRepo(ctrl)
	balances := NewMockBalanceRepo(ctrl)
	names := profile.NewMockNames(ctrl)
	service := New(txManager, earnings, balances, names)
	service.now = func() time.Time { return fixedNow }
	return service, txManager, earnings, balances, names
}

func runInTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestAppendEarning(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		amount        decimal.Decimal
		prepareMock   func(tx *pg.MockTXManager, earnings *MockEarningRepo, balances *MockBalanceRepo)
		expectedError error
	}{
		{
			name:   "Appends and credits",
			amount: reward,
			prepareMock: func(tx *pg.MockTXManager, earnings *MockEarningRepo, balances *MockBalanceRepo) {
				runInTx(tx)
				earnings.EXPECT().AppendEarning(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, rec *domain.EarningRecord) (*domain.EarningRecord, error) {
						assert.Equal(t, 1, rec.BeneficiaryID)
						assert.Equal(t, 2, rec.SourceUserID)
						assert.Equal(t, 1, rec.Level)
						assert.Equal(t, 1, rec.Tier)
						assert.Equal(t, domain.RewardInitial, rec.RewardType)
						assert.Equal(t, fixedNow, rec.CreatedAt)
						assert.NotEqual(t, uuid.Nil, rec.ID)
						return rec, nil
					})
				balances.EXPECT().CreditEarnings(gomock.Any(), 1, reward).Return(&domain.Balance{UserID: 1}, nil)
			},
		},
		{
			name:   "Duplicate skips the credit",
			amount: reward,
			prepareMock: func(tx *pg.MockTXManager, earnings *MockEarningRepo, balances *MockBalanceRepo) {
				runInTx(tx)
				earnings.EXPECT().AppendEarning(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateReward)
			},
			expectedError: domain.ErrDuplicateReward,
		},
		{
			name:   "Credit failure",
			amount: reward,
			prepareMock: func(tx *pg.MockTXManager, earnings *MockEarningRepo, balances *MockBalanceRepo) {
				runInTx(tx)
				earnings.EXPECT().AppendEarning(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, rec *domain.EarningRecord) (*domain.EarningRecord, error) { return rec, nil })
				balances.EXPECT().CreditEarnings(gomock.Any(), 1, reward).Return(nil, errDB)
			},
			expectedError: errDB,
		},
		{
			name:          "Zero amount",
			amount:        decimal.Zero,
			expectedError: ErrNonPositiveAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, tx, earnings, balances, _ := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(tx, earnings, balances)
			}

			rec, err := service.AppendEarning(ctx, 1, 2, 1, 1, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, rec)
				return
			}
			assert.NoError(t, err)
			assert.True(t, rec.Amount.Equal(reward))
		})
	}
}

func TestListEarnings(t *testing.T) {
	ctx := context.Background()
	page := domain.NewPage(1, 10)
	records := []domain.EarningRecord{
		{BeneficiaryID: 1, SourceUserID: 2, Amount: reward},
		{BeneficiaryID: 1, SourceUserID: 3, Amount: reward},
		{BeneficiaryID: 1, SourceUserID: 2, Amount: reward},
	}

	tests := []struct {
		name        string
		prepareMock func(earnings *MockEarningRepo, names *profile.MockNames)
		expected    []domain.EarningEntry
		expectErr   bool
	}{
		{
			name: "Joins unique source names",
			prepareMock: func(earnings *MockEarningRepo, names *profile.MockNames) {
				earnings.EXPECT().ListEarnings(ctx, 1, page).Return(records, nil)
				names.EXPECT().DisplayNames(ctx, []int{2, 3}).Return(map[int]string{2: "Ravi", 3: "Meera"}, nil)
			},
			expected: []domain.EarningEntry{
				{EarningRecord: records[0], SourceName: "Ravi"},
				{EarningRecord: records[1], SourceName: "Meera"},
				{EarningRecord: records[2], SourceName: "Ravi"},
			},
		},
		{
			name: "Empty page",
			prepareMock: func(earnings *MockEarningRepo, names *profile.MockNames) {
				earnings.EXPECT().ListEarnings(ctx, 1, page).Return(nil, nil)
			},
			expected: []domain.EarningEntry{},
		},
		{
			name: "Store failure",
			prepareMock: func(earnings *MockEarningRepo, names *profile.MockNames) {
				earnings.EXPECT().ListEarnings(ctx, 1, page).Return(nil, errDB)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, earnings, _, names := NewMock(t)
			tt.prepareMock(earnings, names)

			entries, err := service.ListEarnings(ctx, 1, page)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, entries)
		})
	}
}

func TestSumEarnings(t *testing.T) {
	ctx := context.Background()
	service, _, earnings, _, _ := NewMock(t)

	earnings.EXPECT().SumEarnings(ctx, 1).Return(decimal.NewFromInt(50), nil)
	sum, err := service.SumEarnings(ctx, 1)

	assert.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(50)))
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()
	service, _, _, balances, _ := NewMock(t)

	expected := &domain.Balance{UserID: 1, BalanceEarnings: reward, TotalEarnings: reward}
	balances.EXPECT().GetUserBalance(ctx, 1).Return(expected, nil)
	balance, err := service.GetBalance(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, balance)

	balances.EXPECT().GetUserBalance(ctx, 2).Return(nil, errDB)
	_, err = service.GetBalance(ctx, 2)
	assert.ErrorIs(t, err, errDB)
}

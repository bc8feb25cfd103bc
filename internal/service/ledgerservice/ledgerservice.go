package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/pg"
)

//go:generate mockgen -destination=mock_ledgerservice.go -package=ledgerservice . EarningRepo,BalanceRepo

type EarningRepo interface {
	AppendEarning(ctx context.Context, rec *domain.EarningRecord) (*domain.EarningRecord, error)
	SumEarnings(ctx context.Context, beneficiaryID int) (decimal.Decimal, error)
	ListEarnings(ctx context.Context, beneficiaryID int, page domain.Page) ([]domain.EarningRecord, error)
}

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreditEarnings(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error)
}

type Names interface {
	DisplayNames(ctx context.Context, ids []int) (map[int]string, error)
}

var ErrNonPositiveAmount = errors.New("earning amount must be positive")

type Service struct {
	txManager pg.TXManager
	earnings  EarningRepo
	balances  BalanceRepo
	names     Names
	now       func() time.Time
}

func New(txManager pg.TXManager, earnings EarningRepo, balances BalanceRepo, names Names) *Service {
	return &Service{
		txManager: txManager,
		earnings:  earnings,
		balances:  balances,
		names:     names,
		now:       time.Now,
	}
}

func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// AppendEarning records an initial reward and credits the beneficiary in the
// same transaction. A repeated (beneficiary, source) pair returns
// domain.ErrDuplicateReward and leaves the balance untouched.
func (s *Service) AppendEarning(ctx context.Context, beneficiaryID, sourceUserID, level, tier int, amount decimal.Decimal) (*domain.EarningRecord, error) {
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	rec := &domain.EarningRecord{
		ID:            uuid.New(),
		BeneficiaryID: beneficiaryID,
		SourceUserID:  sourceUserID,
		Level:         level,
		Tier:          tier,
		RewardType:    domain.RewardInitial,
		Amount:        amount,
		CreatedAt:     s.now().UTC(),
	}

	var saved *domain.EarningRecord
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.earnings.AppendEarning(ctx, rec)
		if err != nil {
			return err
		}
		if _, err := s.balances.CreditEarnings(ctx, beneficiaryID, amount); err != nil {
			return fmt.Errorf("credit earnings: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrDuplicateReward) {
			zap.L().Error("failed to append earning", zap.Int("beneficiaryID", beneficiaryID), zap.Error(err))
		}
		return nil, err
	}
	return saved, nil
}

func (s *Service) SumEarnings(ctx context.Context, userID int) (decimal.Decimal, error) {
	return s.earnings.SumEarnings(ctx, userID)
}

// ListEarnings returns a page of the user's earnings with source display names.
func (s *Service) ListEarnings(ctx context.Context, userID int, page domain.Page) ([]domain.EarningEntry, error) {
	records, err := s.earnings.ListEarnings(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.EarningEntry, len(records))
	if len(records) == 0 {
		return entries, nil
	}

	seen := make(map[int]struct{}, len(records))
	ids := make([]int, 0, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.SourceUserID]; !ok {
			seen[rec.SourceUserID] = struct{}{}
			ids = append(ids, rec.SourceUserID)
		}
	}
	names, err := s.names.DisplayNames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list earnings: %w", err)
	}

	for i, rec := range records {
		entries[i] = domain.EarningEntry{EarningRecord: rec, SourceName: names[rec.SourceUserID]}
	}
	return entries, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balances.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

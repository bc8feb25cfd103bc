package withdrawalservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/metrics"
	"github.com/GlebRadaev/refledger/internal/pg"
)

//go:generate mockgen -destination=mock_withdrawalservice.go -package=withdrawalservice . BalanceRepo,CycleRepo,CycleExpirer,WithdrawalRepo,BankRepo

type BalanceRepo interface {
	LockUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	MoveToWithdrawn(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error)
}

type CycleRepo interface {
	LockCompletedCycles(ctx context.Context, userID int) ([]domain.ReferralCycle, error)
	MarkWithdrawn(ctx context.Context, cycles []domain.ReferralCycle, now time.Time) error
}

type CycleExpirer interface {
	ExpireStaleFor(ctx context.Context, userID int) error
}

type WithdrawalRepo interface {
	HasPending(ctx context.Context, userID int) (bool, error)
	CreateRequest(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	GetRequest(ctx context.Context, requestID uuid.UUID) (*domain.WithdrawalRequest, error)
	LockRequest(ctx context.Context, requestID uuid.UUID) (*domain.WithdrawalRequest, error)
	UpdateRequest(ctx context.Context, req *domain.WithdrawalRequest) error
	ListByUser(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
	ListByStatus(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error)
}

type BankRepo interface {
	GetBankDetails(ctx context.Context, userID int) (*domain.BankDetails, error)
	SaveBankDetails(ctx context.Context, d *domain.BankDetails) error
}

type Retrier interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// UpdateInput carries the optional fields an owner may change on a pending request.
type UpdateInput struct {
	Notes       *string
	BankDetails *domain.BankDetails
}

type Service struct {
	txManager pg.TXManager
	retrier   Retrier
	balances  BalanceRepo
	cycles    CycleRepo
	expirer   CycleExpirer
	requests  WithdrawalRepo
	banks     BankRepo
	now       func() time.Time
}

func New(
	txManager pg.TXManager,
	retrier Retrier,
	balances BalanceRepo,
	cycles CycleRepo,
	expirer CycleExpirer,
	requests WithdrawalRepo,
	banks BankRepo,
) *Service {
	return &Service{
		txManager: txManager,
		retrier:   retrier,
		balances:  balances,
		cycles:    cycles,
		expirer:   expirer,
		requests:  requests,
		banks:     banks,
		now:       time.Now,
	}
}

// SetClock replaces the time source.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// RequestWithdrawal claims every completed cycle of the user in one
// transaction: the request is created, the cycles become withdrawn and the
// balance moves to withdrawn earnings, or nothing changes at all.
func (s *Service) RequestWithdrawal(ctx context.Context, userID int, notes string) (*domain.WithdrawalRequest, error) {
	var created *domain.WithdrawalRequest
	err := s.retrier.Do(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			var err error
			created, err = s.requestWithdrawal(ctx, userID, notes)
			return err
		})
	})
	if err != nil {
		metrics.WithdrawalRequests.WithLabelValues("rejected").Inc()
		zap.L().Info("withdrawal request failed", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	metrics.WithdrawalRequests.WithLabelValues("created").Inc()
	zap.L().Info("withdrawal requested",
		zap.Int("userID", userID),
		zap.String("requestID", created.ID.String()),
		zap.String("amount", created.Amount.String()),
	)
	return created, nil
}

func (s *Service) requestWithdrawal(ctx context.Context, userID int, notes string) (*domain.WithdrawalRequest, error) {
	if _, err := s.balances.LockUserBalance(ctx, userID); err != nil {
		return nil, err
	}

	pending, err := s.requests.HasPending(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domain.ErrPendingRequestExists
	}

	if err := s.expirer.ExpireStaleFor(ctx, userID); err != nil {
		return nil, err
	}
	cycles, err := s.cycles.LockCompletedCycles(ctx, userID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	ids := make([]uuid.UUID, len(cycles))
	for i, c := range cycles {
		total = total.Add(c.EarnedAmount)
		ids[i] = c.ID
	}
	if len(cycles) == 0 || !total.IsPositive() {
		return nil, domain.ErrNoEligibleEarnings
	}

	bank, err := s.banks.GetBankDetails(ctx, userID)
	if err != nil {
		return nil, err
	}
	if bank == nil {
		return nil, domain.ErrMissingBankDetails
	}

	now := s.now().UTC()
	req, err := s.requests.CreateRequest(ctx, &domain.WithdrawalRequest{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      total,
		BankDetails: *bank,
		CycleIDs:    ids,
		Status:      domain.WithdrawalPending,
		Notes:       notes,
		RequestedAt: now,
	})
	if err != nil {
		return nil, err
	}
	if err := s.cycles.MarkWithdrawn(ctx, cycles, now); err != nil {
		return nil, err
	}
	if _, err := s.balances.MoveToWithdrawn(ctx, userID, total); err != nil {
		return nil, fmt.Errorf("move to withdrawn: %w", err)
	}
	return req, nil
}

// UpdateRequest lets the owner change notes or the bank snapshot while the
// request is still pending.
func (s *Service) UpdateRequest(ctx context.Context, userID int, requestID uuid.UUID, in UpdateInput) (*domain.WithdrawalRequest, error) {
	if in.BankDetails != nil {
		if err := ValidateBankDetails(in.BankDetails); err != nil {
			return nil, err
		}
	}

	var updated *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.requests.LockRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil || req.UserID != userID {
			return fmt.Errorf("withdrawal request %s: %w", requestID, domain.ErrNotFound)
		}
		if req.Status != domain.WithdrawalPending {
			return domain.ErrRequestNotPending
		}
		if in.Notes != nil {
			req.Notes = *in.Notes
		}
		if in.BankDetails != nil {
			snapshot := *in.BankDetails
			snapshot.UserID = userID
			snapshot.UpdatedAt = s.now().UTC()
			req.BankDetails = snapshot
		}
		if err := s.requests.UpdateRequest(ctx, req); err != nil {
			return err
		}
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) Approve(ctx context.Context, requestID uuid.UUID, notes string) (*domain.WithdrawalRequest, error) {
	return s.transition(ctx, requestID, domain.WithdrawalApproved, notes)
}

func (s *Service) Reject(ctx context.Context, requestID uuid.UUID, notes string) (*domain.WithdrawalRequest, error) {
	return s.transition(ctx, requestID, domain.WithdrawalRejected, notes)
}

func (s *Service) MarkPaid(ctx context.Context, requestID uuid.UUID, notes string) (*domain.WithdrawalRequest, error) {
	return s.transition(ctx, requestID, domain.WithdrawalPaid, notes)
}

// transition moves the request status forward. Cycles and balances were
// settled when the request was created and are not touched here.
func (s *Service) transition(ctx context.Context, requestID uuid.UUID, to domain.WithdrawalStatus, notes string) (*domain.WithdrawalRequest, error) {
	var updated *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.requests.LockRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return fmt.Errorf("withdrawal request %s: %w", requestID, domain.ErrNotFound)
		}
		if err := req.Transition(to, s.now().UTC()); err != nil {
			return fmt.Errorf("%s -> %s: %w", req.Status, to, err)
		}
		if notes != "" {
			req.Notes = notes
		}
		if err := s.requests.UpdateRequest(ctx, req); err != nil {
			return err
		}
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.WithdrawalRequests.WithLabelValues(string(to)).Inc()
	zap.L().Info("withdrawal request updated", zap.String("requestID", requestID.String()), zap.String("status", string(to)))
	return updated, nil
}

func (s *Service) History(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	requests, err := s.requests.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) ListByStatus(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error) {
	requests, err := s.requests.ListByStatus(ctx, status)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals by status", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) GetRequest(ctx context.Context, requestID uuid.UUID) (*domain.WithdrawalRequest, error) {
	req, err := s.requests.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("withdrawal request %s: %w", requestID, domain.ErrNotFound)
	}
	return req, nil
}

package cycleservice

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

//go:generate mockgen -destination=mock_cycleservice.go -package=cycleservice . CycleRepo

type CycleRepo interface {
	ExpireStale(ctx context.Context, userID int, now time.Time) (int64, error)
	ExpireAllStale(ctx context.Context, now time.Time) (int64, error)
	FindOpenCycle(ctx context.Context, userID int) (*domain.ReferralCycle, error)
	CreateCycle(ctx context.Context, c *domain.ReferralCycle) error
	UpdateCycle(ctx context.Context, c *domain.ReferralCycle) error
	GetCycle(ctx context.Context, cycleID uuid.UUID) (*domain.ReferralCycle, error)
	ListCycles(ctx context.Context, userID int) ([]domain.ReferralCycle, error)
}

type Names interface {
	DisplayNames(ctx context.Context, ids []int) (map[int]string, error)
}

type Config struct {
	Threshold int
	Window    time.Duration
}

func DefaultConfig() Config {
	return Config{Threshold: domain.DefaultCycleThreshold, Window: domain.DefaultCycleWindow}
}

type Service struct {
	txManager pg.TXManager
	cycles    CycleRepo
	names     Names
	cfg       Config
	now       func() time.Time
}

func New(txManager pg.TXManager, cycles CycleRepo, names Names, cfg Config) *Service {
	if cfg.Threshold <= 0 {
		cfg.Threshold = domain.DefaultCycleThreshold
	}
	if cfg.Window <= 0 {
		cfg.Window = domain.DefaultCycleWindow
	}
	return &Service{
		txManager: txManager,
		cycles:    cycles,
		names:     names,
		cfg:       cfg,
		now:       time.Now,
	}
}

// SetClock replaces the time source.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// ExpireStaleFor expires the user's open cycles that ran past their window.
func (s *Service) ExpireStaleFor(ctx context.Context, userID int) error {
	n, err := s.cycles.ExpireStale(ctx, userID, s.now().UTC())
	if err != nil {
		return fmt.Errorf("expire stale cycles: %w", err)
	}
	if n > 0 {
		metrics.CyclesExpired.Add(float64(n))
		zap.L().Info("cycles expired", zap.Int("userID", userID), zap.Int64("count", n))
	}
	return nil
}

// ExpireStale expires every stale open cycle. Used by the periodic sweep.
func (s *Service) ExpireStale(ctx context.Context) (int64, error) {
	n, err := s.cycles.ExpireAllStale(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("expire stale cycles: %w", err)
	}
	if n > 0 {
		metrics.CyclesExpired.Add(float64(n))
	}
	return n, nil
}

// GetOrCreateActiveCycle returns the user's open cycle, starting a new one
// when none is left within its window. Losing a concurrent create returns
// domain.ErrConcurrencyConflict.
func (s *Service) GetOrCreateActiveCycle(ctx context.Context, userID int) (*domain.ReferralCycle, error) {
	if err := s.ExpireStaleFor(ctx, userID); err != nil {
		return nil, err
	}
	cycle, err := s.cycles.FindOpenCycle(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find open cycle: %w", err)
	}
	if cycle != nil {
		return cycle, nil
	}

	cycle = domain.NewCycle(userID, s.now().UTC(), s.cfg.Window)
	if err := s.cycles.CreateCycle(ctx, cycle); err != nil {
		return nil, err
	}
	zap.L().Info("cycle started", zap.Int("userID", userID), zap.String("cycleID", cycle.ID.String()))
	return cycle, nil
}

// RecordReferral folds one rewarded referral into the user's open cycle.
// The write is guarded by the cycle version; a concurrent writer makes it
// fail with domain.ErrConcurrencyConflict and the caller retries.
func (s *Service) RecordReferral(ctx context.Context, userID, childID int, amount decimal.Decimal) (*domain.ReferralCycle, error) {
	var cycle *domain.ReferralCycle
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		cycle, err = s.GetOrCreateActiveCycle(ctx, userID)
		if err != nil {
			return err
		}

		completed := cycle.AddReferral(childID, amount, s.cfg.Threshold, s.now().UTC())
		if err := s.cycles.UpdateCycle(ctx, cycle); err != nil {
			return err
		}
		if completed {
			metrics.CyclesCompleted.Inc()
			zap.L().Info("cycle completed",
				zap.Int("userID", userID),
				zap.String("cycleID", cycle.ID.String()),
				zap.String("earned", cycle.EarnedAmount.String()),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cycle, nil
}

func (s *Service) ListCycles(ctx context.Context, userID int) ([]domain.ReferralCycle, error) {
	if err := s.ExpireStaleFor(ctx, userID); err != nil {
		return nil, err
	}
	cycles, err := s.cycles.ListCycles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cycles: %w", err)
	}
	if cycles == nil {
		cycles = []domain.ReferralCycle{}
	}
	return cycles, nil
}

// GetCycle returns one of the user's cycles with the referred users' names.
// Cycles of other users are reported as not found.
func (s *Service) GetCycle(ctx context.Context, userID int, cycleID uuid.UUID) (*domain.CycleDetail, error) {
	if err := s.ExpireStaleFor(ctx, userID); err != nil {
		return nil, err
	}
	cycle, err := s.cycles.GetCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("get cycle: %w", err)
	}
	if cycle == nil || cycle.UserID != userID {
		return nil, fmt.Errorf("cycle %s: %w", cycleID, domain.ErrNotFound)
	}

	detail := &domain.CycleDetail{Cycle: *cycle, Referred: []domain.ReferredUser{}}
	if len(cycle.ReferralIDs) == 0 {
		return detail, nil
	}
	names, err := s.names.DisplayNames(ctx, cycle.ReferralIDs)
	if err != nil {
		return nil, fmt.Errorf("get cycle: %w", err)
	}
	for _, id := range cycle.ReferralIDs {
		detail.Referred = append(detail.Referred, domain.ReferredUser{UserID: id, DisplayName: names[id]})
	}
	return detail, nil
}

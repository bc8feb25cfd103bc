package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock_sweeper.go -package=sweeper . Expirer

type Expirer interface {
	ExpireStale(ctx context.Context) (int64, error)
}

// Service periodically expires cycles that ran past their window, so stale
// cycles are closed even for users who never come back.
type Service struct {
	expirer  Expirer
	interval time.Duration
}

func New(expirer Expirer, interval time.Duration) *Service {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Service{
		expirer:  expirer,
		interval: interval,
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (s *Service) Run(ctx context.Context) {
	zap.L().Info("cycle sweeper started", zap.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping cycle sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	n, err := s.expirer.ExpireStale(ctx)
	if err != nil {
		if ctx.Err() == nil {
			zap.L().Error("failed to sweep stale cycles", zap.Error(err))
		}
		return
	}
	if n > 0 {
		zap.L().Info("stale cycles expired", zap.Int64("count", n))
	}
}

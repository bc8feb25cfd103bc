package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refledger/internal/domain"
)

type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	// OnRetry is called before every retry attempt.
	OnRetry func(attempt int, err error)
}

func DefaultConfig() Config {
	return Config{
		MaxRetries: 5,
		BaseDelay:  20 * time.Millisecond,
		MaxDelay:   500 * time.Millisecond,
	}
}

// Retrier re-runs an operation that failed with domain.ErrConcurrencyConflict.
// Every other error is returned as is after the first attempt.
type Retrier struct {
	executor failsafe.Executor[any]
}

func New(cfg Config) *Retrier {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = time.Millisecond
	}
	if cfg.MaxDelay < cfg.BaseDelay {
		cfg.MaxDelay = cfg.BaseDelay
	}

	policy := retrypolicy.NewBuilder[any]().
		HandleErrors(domain.ErrConcurrencyConflict).
		WithBackoff(cfg.BaseDelay, cfg.MaxDelay).
		WithJitterFactor(0.1).
		WithMaxRetries(cfg.MaxRetries).
		ReturnLastFailure().
		OnRetry(func(e failsafe.ExecutionEvent[any]) {
			zap.L().Debug("retrying after conflict", zap.Int("attempt", e.Attempts()), zap.Error(e.LastError()))
			if cfg.OnRetry != nil {
				cfg.OnRetry(e.Attempts(), e.LastError())
			}
		}).
		Build()

	return &Retrier{executor: failsafe.With[any](policy)}
}

// Do runs fn until it succeeds, fails with a non-conflict error, or the
// retries are exhausted. Exhaustion is reported as domain.ErrTransientFailure.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	err := r.executor.WithContext(ctx).Run(func() error {
		return fn(ctx)
	})
	if err != nil && errors.Is(err, domain.ErrConcurrencyConflict) {
		return fmt.Errorf("%w: %w", domain.ErrTransientFailure, err)
	}
	return err
}

package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/metrics"
)

//go:generate mockgen -destination=mock_notify.go -package=notify . Sink

var ErrPoolClosed = errors.New("worker pool closed")

const (
	enqueueTimeout = time.Second
	publishTimeout = 5 * time.Second
)

// Sink delivers a single notification to the outside world.
type Sink interface {
	Publish(ctx context.Context, n domain.Notification) error
}

// Dispatcher hands notifications to a sink on a worker pool. Delivery is best
// effort: errors are logged and counted, never returned to the caller.
type Dispatcher struct {
	sink Sink
	pool WorkerPoolI
}

func NewDispatcher(sink Sink, workers int) *Dispatcher {
	return &Dispatcher{
		sink: sink,
		pool: NewWorkerPool(workers),
	}
}

func (d *Dispatcher) Notify(ctx context.Context, notifications []domain.Notification) {
	enqueueCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), enqueueTimeout)
	defer cancel()

	var g errgroup.Group
	for _, n := range notifications {
		n := n
		g.Go(func() error {
			err := d.pool.AddTask(enqueueCtx, func() error {
				publishCtx, cancel := context.WithTimeout(context.Background(), publishTimeout)
				defer cancel()
				if err := d.sink.Publish(publishCtx, n); err != nil {
					metrics.NotificationsDropped.Inc()
					return fmt.Errorf("publish %s to user %d: %w", n.Type, n.RecipientID, err)
				}
				return nil
			})
			if err != nil {
				metrics.NotificationsDropped.Inc()
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to enqueue notifications", zap.Error(err))
	}
}

// Close waits for queued notifications to be delivered.
func (d *Dispatcher) Close() {
	d.pool.Close()
}

// Pair builds the notification sent to both the beneficiary and the source
// user of a referral event.
func Pair(t domain.NotificationType, beneficiaryID, sourceUserID int, amount *decimal.Decimal, at time.Time) []domain.Notification {
	base := domain.Notification{
		Type:          t,
		BeneficiaryID: beneficiaryID,
		SourceUserID:  sourceUserID,
		Amount:        amount,
		OccurredAt:    at,
	}
	toBeneficiary, toSource := base, base
	toBeneficiary.RecipientID = beneficiaryID
	toSource.RecipientID = sourceUserID
	return []domain.Notification{toBeneficiary, toSource}
}

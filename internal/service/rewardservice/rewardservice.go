package rewardservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/metrics"
	"github.com/GlebRadaev/refledger/internal/notify"
	"github.com/GlebRadaev/refledger/internal/pg"
)

//go:generate mockgen -destination=mock_rewardservice.go -package=rewardservice . ReferralGraph,Ledger,Cycles,SubscriptionRepo,Notifier,Retrier

type ReferralGraph interface {
	GetParent(ctx context.Context, childID int) (int, bool, error)
	UnlinkReferral(ctx context.Context, childID int) (bool, error)
}

type Ledger interface {
	AppendEarning(ctx context.Context, beneficiaryID, sourceUserID, level, tier int, amount decimal.Decimal) (*domain.EarningRecord, error)
}

type Cycles interface {
	RecordReferral(ctx context.Context, userID, childID int, amount decimal.Decimal) (*domain.ReferralCycle, error)
}

type SubscriptionRepo interface {
	GetSubscription(ctx context.Context, userID int) (*domain.Subscription, error)
	SaveSubscription(ctx context.Context, s *domain.Subscription) error
}

type Notifier interface {
	Notify(ctx context.Context, notifications []domain.Notification)
}

type Retrier interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Outcome string

const (
	OutcomeNoParent  Outcome = "no_parent"
	OutcomeGranted   Outcome = "granted"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeUnlinked  Outcome = "unlinked"
)

const (
	rewardLevel = 1
	rewardTier  = 1
)

var ErrInvalidEvent = errors.New("invalid subscription event")

type Service struct {
	txManager     pg.TXManager
	retrier       Retrier
	graph         ReferralGraph
	ledger        Ledger
	cycles        Cycles
	subscriptions SubscriptionRepo
	notifier      Notifier
	reward        decimal.Decimal
	now           func() time.Time
}

func New(
	txManager pg.TXManager,
	retrier Retrier,
	graph ReferralGraph,
	ledger Ledger,
	cycles Cycles,
	subscriptions SubscriptionRepo,
	notifier Notifier,
	reward decimal.Decimal,
) *Service {
	return &Service{
		txManager:     txManager,
		retrier:       retrier,
		graph:         graph,
		ledger:        ledger,
		cycles:        cycles,
		subscriptions: subscriptions,
		notifier:      notifier,
		reward:        reward,
		now:           time.Now,
	}
}

// SetClock replaces the time source.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// OnSubscriptionStatusChanged stores the reported subscription state and
// re-evaluates the user's referral reward.
func (s *Service) OnSubscriptionStatusChanged(ctx context.Context, sub domain.Subscription) (Outcome, error) {
	if sub.UserID <= 0 {
		return "", ErrInvalidEvent
	}
	if sub.UpdatedAt.IsZero() {
		sub.UpdatedAt = s.now().UTC()
	}
	if err := s.subscriptions.SaveSubscription(ctx, &sub); err != nil {
		return "", fmt.Errorf("save subscription: %w", err)
	}
	return s.Evaluate(ctx, sub.UserID)
}

// Evaluate credits the referrer of userID when the referrer holds an active
// subscription, or unlinks the referral when it does not. Safe to call any
// number of times for the same user.
func (s *Service) Evaluate(ctx context.Context, userID int) (Outcome, error) {
	var (
		outcome Outcome
		parent  int
	)
	err := s.retrier.Do(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			var err error
			outcome, parent, err = s.evaluate(ctx, userID)
			return err
		})
	})
	if err != nil {
		zap.L().Error("reward evaluation failed", zap.Int("userID", userID), zap.Error(err))
		return "", err
	}

	metrics.RewardEvaluations.WithLabelValues(string(outcome)).Inc()
	now := s.now().UTC()
	switch outcome {
	case OutcomeGranted:
		amount := s.reward
		s.notifier.Notify(ctx, notify.Pair(domain.NotificationRewardGranted, parent, userID, &amount, now))
	case OutcomeUnlinked:
		s.notifier.Notify(ctx, notify.Pair(domain.NotificationReferralExpired, parent, userID, nil, now))
	}
	return outcome, nil
}

func (s *Service) evaluate(ctx context.Context, userID int) (Outcome, int, error) {
	parent, ok, err := s.graph.GetParent(ctx, userID)
	if err != nil {
		return "", 0, err
	}
	if !ok {
		return OutcomeNoParent, 0, nil
	}

	sub, err := s.subscriptions.GetSubscription(ctx, parent)
	if err != nil {
		return "", 0, fmt.Errorf("get subscription: %w", err)
	}

	if !sub.IsActive(s.now()) {
		removed, err := s.graph.UnlinkReferral(ctx, userID)
		if err != nil {
			return "", 0, err
		}
		if !removed {
			return OutcomeNoParent, parent, nil
		}
		zap.L().Info("referral expired", zap.Int("parentID", parent), zap.Int("childID", userID))
		return OutcomeUnlinked, parent, nil
	}

	if _, err := s.ledger.AppendEarning(ctx, parent, userID, rewardLevel, rewardTier, s.reward); err != nil {
		if errors.Is(err, domain.ErrDuplicateReward) {
			return OutcomeDuplicate, parent, nil
		}
		return "", 0, err
	}
	if _, err := s.cycles.RecordReferral(ctx, parent, userID, s.reward); err != nil {
		return "", 0, err
	}
	zap.L().Info("reward granted", zap.Int("parentID", parent), zap.Int("childID", userID), zap.String("amount", s.reward.String()))
	return OutcomeGranted, parent, nil
}

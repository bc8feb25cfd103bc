package subscriptionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetSubscription(ctx context.Context, userID int) (*domain.Subscription, error) {
	query := `
		SELECT user_id, plan, status, paid, expires_at, updated_at
		FROM subscriptions
		WHERE user_id = $1
	`
	var s domain.Subscription
	err := r.db.QueryRow(ctx, query, userID).Scan(&s.UserID, &s.Plan, &s.Status, &s.Paid, &s.ExpiresAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get subscription", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// SaveSubscription upserts the mirror row. Events older than the stored
// state are ignored so redelivered or reordered events cannot roll it back.
func (r *Repository) SaveSubscription(ctx context.Context, s *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (user_id, plan, status, paid, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET plan = EXCLUDED.plan,
			status = EXCLUDED.status,
			paid = EXCLUDED.paid,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at
		WHERE subscriptions.updated_at <= EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query, s.UserID, s.Plan, s.Status, s.Paid, s.ExpiresAt, s.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to save subscription", zap.Error(err))
		return err
	}
	return nil
}

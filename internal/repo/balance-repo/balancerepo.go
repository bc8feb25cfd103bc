package balancerepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/pg"
)

// Repository maintains the earnings projection on the users table.
// Every mutation is a single update expression, never read-then-write.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, balance_earnings, withdrawn_earnings, total_earnings
        FROM users
        WHERE id = $1
    `
	return r.scan(ctx, "failed to get user balance", query, userID)
}

// LockUserBalance reads the balance and holds a row lock until the
// surrounding transaction ends.
func (r *Repository) LockUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, balance_earnings, withdrawn_earnings, total_earnings
        FROM users
        WHERE id = $1
        FOR UPDATE
    `
	return r.scan(ctx, "failed to lock user balance", query, userID)
}

func (r *Repository) CreditEarnings(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error) {
	query := `
        UPDATE users
        SET balance_earnings = balance_earnings + $1,
            total_earnings = total_earnings + $1
        WHERE id = $2
        RETURNING id, balance_earnings, withdrawn_earnings, total_earnings
    `
	return r.scan(ctx, "failed to credit earnings", query, amount, userID)
}

// MoveToWithdrawn moves amount from balance to withdrawn earnings. The moved
// amount is capped at the current balance so the balance never goes negative
// and total stays equal to balance + withdrawn.
func (r *Repository) MoveToWithdrawn(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error) {
	query := `
        UPDATE users
        SET balance_earnings = balance_earnings - LEAST(balance_earnings, $1),
            withdrawn_earnings = withdrawn_earnings + LEAST(balance_earnings, $1)
        WHERE id = $2
        RETURNING id, balance_earnings, withdrawn_earnings, total_earnings
    `
	return r.scan(ctx, "failed to move earnings to withdrawn", query, amount, userID)
}

func (r *Repository) scan(ctx context.Context, msg, query string, args ...any) (*domain.Balance, error) {
	var balance domain.Balance
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&balance.UserID, &balance.BalanceEarnings, &balance.WithdrawnEarnings, &balance.TotalEarnings,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("balance of user %d: %w", args[len(args)-1], domain.ErrNotFound)
		}
		zap.L().Error(msg, zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

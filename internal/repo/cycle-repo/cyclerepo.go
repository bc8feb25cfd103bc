package cyclerepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/pg"
)

const cycleColumns = `id, user_id, start_date, end_date, referral_count, earned_amount, referral_ids, status, version, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// ExpireStale expires the user's open cycles whose end date is before now.
func (r *Repository) ExpireStale(ctx context.Context, userID int, now time.Time) (int64, error) {
	query := `
		UPDATE referral_cycles
		SET status = 'expired', version = version + 1, updated_at = $2
		WHERE user_id = $1 AND status IN ('active', 'completed') AND end_date < $2
	`
	tag, err := r.db.Exec(ctx, query, userID, now)
	if err != nil {
		zap.L().Error("failed to expire stale cycles", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) ExpireAllStale(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE referral_cycles
		SET status = 'expired', version = version + 1, updated_at = $1
		WHERE status IN ('active', 'completed') AND end_date < $1
	`
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("failed to expire stale cycles", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) FindOpenCycle(ctx context.Context, userID int) (*domain.ReferralCycle, error) {
	query := `
		SELECT ` + cycleColumns + `
		FROM referral_cycles
		WHERE user_id = $1 AND status IN ('active', 'completed')
	`
	cycle, err := scanCycle(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find open cycle", zap.Error(err))
		return nil, err
	}
	return cycle, nil
}

// CreateCycle inserts a new open cycle. Losing the race against another
// insert for the same user yields domain.ErrConcurrencyConflict.
func (r *Repository) CreateCycle(ctx context.Context, c *domain.ReferralCycle) error {
	query := `
		INSERT INTO referral_cycles (` + cycleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) WHERE status IN ('active', 'completed') DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query,
		c.ID, c.UserID, c.StartDate, c.EndDate, c.ReferralCount, c.EarnedAmount, c.ReferralIDs, c.Status, c.Version, c.UpdatedAt,
	)
	if err != nil {
		zap.L().Error("failed to create cycle", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("create cycle for user %d: %w", c.UserID, domain.ErrConcurrencyConflict)
	}
	return nil
}

// UpdateCycle writes c if its version is still the stored one and bumps
// c.Version on success.
func (r *Repository) UpdateCycle(ctx context.Context, c *domain.ReferralCycle) error {
	query := `
		UPDATE referral_cycles
		SET referral_count = $1, earned_amount = $2, referral_ids = $3, status = $4, updated_at = $5, version = version + 1
		WHERE id = $6 AND version = $7
	`
	tag, err := r.db.Exec(ctx, query, c.ReferralCount, c.EarnedAmount, c.ReferralIDs, c.Status, c.UpdatedAt, c.ID, c.Version)
	if err != nil {
		zap.L().Error("failed to update cycle", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update cycle %s at version %d: %w", c.ID, c.Version, domain.ErrConcurrencyConflict)
	}
	c.Version++
	return nil
}

func (r *Repository) GetCycle(ctx context.Context, cycleID uuid.UUID) (*domain.ReferralCycle, error) {
	query := `
		SELECT ` + cycleColumns + `
		FROM referral_cycles
		WHERE id = $1
	`
	cycle, err := scanCycle(r.db.QueryRow(ctx, query, cycleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get cycle", zap.Error(err))
		return nil, err
	}
	return cycle, nil
}

func (r *Repository) ListCycles(ctx context.Context, userID int) ([]domain.ReferralCycle, error) {
	query := `
		SELECT ` + cycleColumns + `
		FROM referral_cycles
		WHERE user_id = $1
		ORDER BY start_date DESC
	`
	return r.list(ctx, query, userID)
}

// LockCompletedCycles returns the user's completed cycles and locks them
// until the surrounding transaction ends.
func (r *Repository) LockCompletedCycles(ctx context.Context, userID int) ([]domain.ReferralCycle, error) {
	query := `
		SELECT ` + cycleColumns + `
		FROM referral_cycles
		WHERE user_id = $1 AND status = 'completed'
		ORDER BY start_date ASC
		FOR UPDATE
	`
	return r.list(ctx, query, userID)
}

// MarkWithdrawn moves every given cycle from completed to withdrawn. A cycle
// that changed since it was read fails the whole call with
// domain.ErrConcurrencyConflict.
func (r *Repository) MarkWithdrawn(ctx context.Context, cycles []domain.ReferralCycle, now time.Time) error {
	query := `
		UPDATE referral_cycles
		SET status = 'withdrawn', version = version + 1, updated_at = $1
		WHERE id = $2 AND version = $3 AND status = 'completed'
	`
	for i := range cycles {
		tag, err := r.db.Exec(ctx, query, now, cycles[i].ID, cycles[i].Version)
		if err != nil {
			zap.L().Error("failed to mark cycle withdrawn", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("mark cycle %s withdrawn: %w", cycles[i].ID, domain.ErrConcurrencyConflict)
		}
		cycles[i].Status = domain.CycleWithdrawn
		cycles[i].Version++
		cycles[i].UpdatedAt = now
	}
	return nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.ReferralCycle, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch cycles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cycles []domain.ReferralCycle
	for rows.Next() {
		cycle, err := scanCycle(rows)
		if err != nil {
			zap.L().Error("failed to scan cycle row", zap.Error(err))
			return nil, err
		}
		cycles = append(cycles, *cycle)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate cycle rows", zap.Error(err))
		return nil, err
	}
	return cycles, nil
}

func scanCycle(row pgx.Row) (*domain.ReferralCycle, error) {
	var c domain.ReferralCycle
	err := row.Scan(&c.ID, &c.UserID, &c.StartDate, &c.EndDate, &c.ReferralCount, &c.EarnedAmount, &c.ReferralIDs, &c.Status, &c.Version, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

package earningrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

// AppendEarning inserts the record unless one already exists for the same
// (beneficiary, source, reward type); in that case domain.ErrDuplicateReward
// is returned and nothing is written.
func (r *Repository) AppendEarning(ctx context.Context, rec *domain.EarningRecord) (*domain.EarningRecord, error) {
	query := `
		INSERT INTO earning_records (id, beneficiary_id, source_user_id, level, tier, reward_type, amount, is_partial, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (beneficiary_id, source_user_id, reward_type) DO NOTHING
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		rec.ID, rec.BeneficiaryID, rec.SourceUserID, rec.Level, rec.Tier, rec.RewardType, rec.Amount, rec.IsPartial, rec.CreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDuplicateReward
		}
		zap.L().Error("can't append earning record", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (r *Repository) SumEarnings(ctx context.Context, beneficiaryID int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM earning_records
		WHERE beneficiary_id = $1
	`
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, beneficiaryID).Scan(&sum); err != nil {
		zap.L().Error("can't sum earnings", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) ListEarnings(ctx context.Context, beneficiaryID int, page domain.Page) ([]domain.EarningRecord, error) {
	query := `
		SELECT id, beneficiary_id, source_user_id, level, tier, reward_type, amount, is_partial, created_at
		FROM earning_records
		WHERE beneficiary_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, beneficiaryID, page.Limit, page.Offset)
	if err != nil {
		zap.L().Error("can't list earnings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.EarningRecord
	for rows.Next() {
		var rec domain.EarningRecord
		err := rows.Scan(&rec.ID, &rec.BeneficiaryID, &rec.SourceUserID, &rec.Level, &rec.Tier, &rec.RewardType, &rec.Amount, &rec.IsPartial, &rec.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan earning row", zap.Error(err))
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate earning rows", zap.Error(err))
		return nil, err
	}
	return records, nil
}

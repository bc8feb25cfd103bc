package bankrepo

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

func (r *Repository) GetBankDetails(ctx context.Context, userID int) (*domain.BankDetails, error) {
	query := `
		SELECT user_id, account_holder, account_number, ifsc, bank_name, upi_id, card_number, updated_at
		FROM bank_details
		WHERE user_id = $1
	`
	var d domain.BankDetails
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&d.UserID, &d.AccountHolder, &d.AccountNumber, &d.IFSC, &d.BankName, &d.UPIID, &d.CardNumber, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get bank details", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *Repository) SaveBankDetails(ctx context.Context, d *domain.BankDetails) error {
	query := `
		INSERT INTO bank_details (user_id, account_holder, account_number, ifsc, bank_name, upi_id, card_number, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE
		SET account_holder = EXCLUDED.account_holder,
			account_number = EXCLUDED.account_number,
			ifsc = EXCLUDED.ifsc,
			bank_name = EXCLUDED.bank_name,
			upi_id = EXCLUDED.upi_id,
			card_number = EXCLUDED.card_number,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query, d.UserID, d.AccountHolder, d.AccountNumber, d.IFSC, d.BankName, d.UPIID, d.CardNumber, d.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to save bank details", zap.Error(err))
		return err
	}
	return nil
}

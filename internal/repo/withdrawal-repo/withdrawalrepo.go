package withdrawalrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/pg"
)

const requestColumns = `id, user_id, amount, bank_details, cycle_ids, status, notes, requested_at, processed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) HasPending(ctx context.Context, userID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM withdrawal_requests WHERE user_id = $1 AND status = 'pending'
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		zap.L().Error("can't check pending withdrawal", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) CreateRequest(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
		INSERT INTO withdrawal_requests (id, user_id, amount, bank_details, cycle_ids, status, notes, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		req.ID, req.UserID, req.Amount, req.BankDetails, req.CycleIDs, req.Status, req.Notes, req.RequestedAt,
	)
	if err != nil {
		if pg.IsUniqueViolation(err, "withdrawal_requests_one_pending_idx") {
			return nil, domain.ErrPendingRequestExists
		}
		zap.L().Error("can't save withdrawal request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) GetRequest(ctx context.Context, requestID uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM withdrawal_requests
		WHERE id = $1
	`
	return r.findOne(ctx, query, requestID)
}

// LockRequest reads the request and holds a row lock until the surrounding
// transaction ends.
func (r *Repository) LockRequest(ctx context.Context, requestID uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM withdrawal_requests
		WHERE id = $1
		FOR UPDATE
	`
	return r.findOne(ctx, query, requestID)
}

func (r *Repository) UpdateRequest(ctx context.Context, req *domain.WithdrawalRequest) error {
	query := `
		UPDATE withdrawal_requests
		SET bank_details = $1, status = $2, notes = $3, processed_at = $4
		WHERE id = $5
	`
	tag, err := r.db.Exec(ctx, query, req.BankDetails, req.Status, req.Notes, req.ProcessedAt, req.ID)
	if err != nil {
		zap.L().Error("can't update withdrawal request", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal request %s: %w", req.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM withdrawal_requests
		WHERE user_id = $1
		ORDER BY requested_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *Repository) ListByStatus(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM withdrawal_requests
		WHERE status = $1
		ORDER BY requested_at ASC
	`
	return r.list(ctx, query, status)
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.WithdrawalRequest, error) {
	req, err := scanRequest(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.WithdrawalRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.WithdrawalRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate withdrawal request rows", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func scanRequest(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var w domain.WithdrawalRequest
	err := row.Scan(&w.ID, &w.UserID, &w.Amount, &w.BankDetails, &w.CycleIDs, &w.Status, &w.Notes, &w.RequestedAt, &w.ProcessedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

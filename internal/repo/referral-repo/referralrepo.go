package referralrepo

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

// CreateEdge inserts the edge. The unique constraint on child_id decides the
// race between two concurrent links for the same child.
func (r *Repository) CreateEdge(ctx context.Context, edge *domain.ReferralEdge) (*domain.ReferralEdge, error) {
	query := `
		INSERT INTO referral_edges (parent_id, child_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (child_id) DO NOTHING
		RETURNING parent_id, child_id, created_at
	`
	var created domain.ReferralEdge
	err := r.db.QueryRow(ctx, query, edge.ParentID, edge.ChildID, edge.CreatedAt).Scan(&created.ParentID, &created.ChildID, &created.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAlreadyLinked
		}
		zap.L().Error("can't save referral edge", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) DeleteEdge(ctx context.Context, childID int) (bool, error) {
	query := `
		DELETE FROM referral_edges
		WHERE child_id = $1
	`
	tag, err := r.db.Exec(ctx, query, childID)
	if err != nil {
		zap.L().Error("can't delete referral edge", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindParent(ctx context.Context, childID int) (*domain.ReferralEdge, error) {
	query := `
		SELECT parent_id, child_id, created_at
		FROM referral_edges
		WHERE child_id = $1
	`
	var edge domain.ReferralEdge
	err := r.db.QueryRow(ctx, query, childID).Scan(&edge.ParentID, &edge.ChildID, &edge.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find referral parent", zap.Error(err))
		return nil, err
	}
	return &edge, nil
}

func (r *Repository) FindChildren(ctx context.Context, parentID int) ([]domain.ReferralEdge, error) {
	query := `
		SELECT parent_id, child_id, created_at
		FROM referral_edges
		WHERE parent_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, parentID)
	if err != nil {
		zap.L().Error("can't get referral children", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var edges []domain.ReferralEdge
	for rows.Next() {
		var edge domain.ReferralEdge
		if err := rows.Scan(&edge.ParentID, &edge.ChildID, &edge.CreatedAt); err != nil {
			zap.L().Error("can't scan referral edge row", zap.Error(err))
			return nil, err
		}
		edges = append(edges, edge)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate referral rows", zap.Error(err))
		return nil, err
	}
	return edges, nil
}

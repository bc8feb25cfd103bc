package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/pg"
)

var (
	// ErrReferralCodeTaken is returned by Create when the generated referral
	// code collides with an existing one.
	ErrReferralCodeTaken = errors.New("referral code already taken")
	ErrLoginTaken        = errors.New("login already taken")
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
		SELECT id, login, password_hash, referral_code, referral_code_active, created_at
		FROM users
		WHERE login = $1
	`
	return repo.findOne(ctx, query, login)
}

func (repo *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
		SELECT id, login, password_hash, referral_code, referral_code_active, created_at
		FROM users
		WHERE id = $1
	`
	return repo.findOne(ctx, query, userID)
}

func (repo *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	query := `
		SELECT id, login, password_hash, referral_code, referral_code_active, created_at
		FROM users
		WHERE referral_code = $1
	`
	return repo.findOne(ctx, query, code)
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.ReferralCode, &user.ReferralCodeActive, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, referral_code, referral_code_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.ReferralCode).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err, "users_referral_code_key") {
			return nil, ErrReferralCodeTaken
		}
		if pg.IsUniqueViolation(err, "users_login_key") {
			return nil, ErrLoginTaken
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	user.ReferralCodeActive = true
	return user, nil
}

func (repo *Repository) SetReferralCodeActive(ctx context.Context, userID int, active bool) error {
	query := `
		UPDATE users
		SET referral_code_active = $1
		WHERE id = $2
	`
	tag, err := repo.db.Exec(ctx, query, active, userID)
	if err != nil {
		zap.L().Error("can't update referral code state", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// DisplayNames returns the login of every known user in ids.
func (repo *Repository) DisplayNames(ctx context.Context, ids []int) (map[int]string, error) {
	names := make(map[int]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	query := `
		SELECT id, login
		FROM users
		WHERE id = ANY($1)
	`
	rows, err := repo.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't load display names", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    int
			login string
		)
		if err := rows.Scan(&id, &login); err != nil {
			zap.L().Error("can't scan display name row", zap.Error(err))
			return nil, err
		}
		names[id] = login
	}
	return names, rows.Err()
}

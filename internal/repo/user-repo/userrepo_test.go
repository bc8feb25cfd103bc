package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/refledger/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

var userColumns = []string{"id", "login", "password_hash", "referral_code", "referral_code_active", "created_at"}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT id, login, password_hash, referral_code, referral_code_active, created_at FROM users WHERE login = $1`)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			login: "aru",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("aru").
					WillReturnRows(pgxmock.NewRows(userColumns).AddRow(1, "aru", "hashed", "ARU234", true, created))
			},
			result: &domain.User{
				ID: 1, Login: "aru", PasswordHash: "hashed", ReferralCode: "ARU234", ReferralCodeActive: true, CreatedAt: created,
			},
		},
		{
			name:  "User not found",
			login: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("ghost").WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "aru",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("aru").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByReferralCode(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE referral_code = $1`)).
		WithArgs("ARU234").
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(1, "aru", "hashed", "ARU234", false, created))

	user, err := repo.FindByReferralCode(context.Background(), "ARU234")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 1, user.ID)
	assert.False(t, user.ReferralCodeActive)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
		WithArgs(9).
		WillReturnError(pgx.ErrNoRows)

	user, err = repo.FindByID(context.Background(), 9)
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`
		INSERT INTO users (login, password_hash, referral_code, referral_code_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, created_at
	`)

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		anyErr      bool
	}{
		{
			name: "Created",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("bob", "hashed", "BOB234").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(2, created))
			},
		},
		{
			name: "Referral code collision",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("bob", "hashed", "BOB234").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_referral_code_key"})
			},
			expectedErr: ErrReferralCodeTaken,
		},
		{
			name: "Login taken",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("bob", "hashed", "BOB234").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_login_key"})
			},
			expectedErr: ErrLoginTaken,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("bob", "hashed", "BOB234").
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.Create(context.Background(), &domain.User{Login: "bob", PasswordHash: "hashed", ReferralCode: "BOB234"})
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.anyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrReferralCodeTaken)
			default:
				require.NoError(t, err)
				assert.Equal(t, 2, user.ID)
				assert.Equal(t, created, user.CreatedAt)
				assert.True(t, user.ReferralCodeActive)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SetReferralCodeActive(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE users SET referral_code_active = $1 WHERE id = $2`)

	mock.ExpectExec(query).WithArgs(false, 1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.SetReferralCodeActive(context.Background(), 1, false))

	mock.ExpectExec(query).WithArgs(true, 99).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.SetReferralCodeActive(context.Background(), 99, true), domain.ErrNotFound)

	mock.ExpectExec(query).WithArgs(true, 1).WillReturnError(errors.New("database error"))
	assert.Error(t, repo.SetReferralCodeActive(context.Background(), 1, true))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DisplayNames(t *testing.T) {
	repo, mock := NewMock(t)

	names, err := repo.DisplayNames(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, names)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login FROM users WHERE id = ANY($1)`)).
		WithArgs([]int{1, 2, 3}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "login"}).AddRow(1, "aru").AddRow(2, "bob"))

	names, err = repo.DisplayNames(context.Background(), []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "aru", 2: "bob"}, names)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login FROM users WHERE id = ANY($1)`)).
		WithArgs([]int{4}).
		WillReturnError(errors.New("database error"))

	_, err = repo.DisplayNames(context.Background(), []int{4})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

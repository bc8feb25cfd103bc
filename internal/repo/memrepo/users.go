package memrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/refledger/internal/domain"
	userrepo "github.com/GlebRadaev/refledger/internal/repo/user-repo"
)

func (s *Store) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	defer s.lock(ctx)()
	for _, u := range s.d.users {
		if u.Login == login {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	defer s.lock(ctx)()
	if u, ok := s.d.users[userID]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *Store) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	defer s.lock(ctx)()
	for _, u := range s.d.users {
		if u.ReferralCode == code {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	defer s.lock(ctx)()
	for _, u := range s.d.users {
		if u.Login == user.Login {
			return nil, userrepo.ErrLoginTaken
		}
		if u.ReferralCode == user.ReferralCode {
			return nil, userrepo.ErrReferralCodeTaken
		}
	}
	user.ID = s.d.nextUserID
	s.d.nextUserID++
	user.ReferralCodeActive = true
	user.CreatedAt = time.Now().UTC()
	s.d.users[user.ID] = *user
	s.d.balances[user.ID] = domain.Balance{
		UserID:            user.ID,
		BalanceEarnings:   decimal.Zero,
		WithdrawnEarnings: decimal.Zero,
		TotalEarnings:     decimal.Zero,
	}
	return user, nil
}

func (s *Store) SetReferralCodeActive(ctx context.Context, userID int, active bool) error {
	defer s.lock(ctx)()
	u, ok := s.d.users[userID]
	if !ok {
		return fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}
	u.ReferralCodeActive = active
	s.d.users[userID] = u
	return nil
}

func (s *Store) DisplayNames(ctx context.Context, ids []int) (map[int]string, error) {
	defer s.lock(ctx)()
	names := make(map[int]string, len(ids))
	for _, id := range ids {
		if u, ok := s.d.users[id]; ok {
			names[id] = u.Login
		}
	}
	return names, nil
}

func (s *Store) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	defer s.lock(ctx)()
	return s.balance(userID)
}

func (s *Store) LockUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	defer s.lock(ctx)()
	return s.balance(userID)
}

func (s *Store) CreditEarnings(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error) {
	defer s.lock(ctx)()
	b, err := s.balance(userID)
	if err != nil {
		return nil, err
	}
	b.BalanceEarnings = b.BalanceEarnings.Add(amount)
	b.TotalEarnings = b.TotalEarnings.Add(amount)
	s.d.balances[userID] = *b
	return b, nil
}

func (s *Store) MoveToWithdrawn(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error) {
	defer s.lock(ctx)()
	b, err := s.balance(userID)
	if err != nil {
		return nil, err
	}
	moved := decimal.Min(b.BalanceEarnings, amount)
	b.BalanceEarnings = b.BalanceEarnings.Sub(moved)
	b.WithdrawnEarnings = b.WithdrawnEarnings.Add(moved)
	s.d.balances[userID] = *b
	return b, nil
}

func (s *Store) balance(userID int) (*domain.Balance, error) {
	b, ok := s.d.balances[userID]
	if !ok {
		return nil, fmt.Errorf("balance of user %d: %w", userID, domain.ErrNotFound)
	}
	return &b, nil
}

func (s *Store) GetBankDetails(ctx context.Context, userID int) (*domain.BankDetails, error) {
	defer s.lock(ctx)()
	if d, ok := s.d.banks[userID]; ok {
		return &d, nil
	}
	return nil, nil
}

func (s *Store) SaveBankDetails(ctx context.Context, d *domain.BankDetails) error {
	defer s.lock(ctx)()
	s.d.banks[d.UserID] = *d
	return nil
}

func (s *Store) GetSubscription(ctx context.Context, userID int) (*domain.Subscription, error) {
	defer s.lock(ctx)()
	if sub, ok := s.d.subscriptions[userID]; ok {
		return &sub, nil
	}
	return nil, nil
}

func (s *Store) SaveSubscription(ctx context.Context, sub *domain.Subscription) error {
	defer s.lock(ctx)()
	if stored, ok := s.d.subscriptions[sub.UserID]; ok && stored.UpdatedAt.After(sub.UpdatedAt) {
		return nil
	}
	s.d.subscriptions[sub.UserID] = *sub
	return nil
}

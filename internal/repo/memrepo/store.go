// Package memrepo keeps every repository in process memory. Transactions
// are serialized on one mutex and roll back by restoring a snapshot, which
// makes the store usable for engine-level tests without Postgres.
package memrepo

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/pg"
	"github.com/GlebRadaev/refledger/internal/repo"
)

type txKey struct{}

type data struct {
	nextUserID    int
	users         map[int]domain.User
	balances      map[int]domain.Balance
	banks         map[int]domain.BankDetails
	subscriptions map[int]domain.Subscription
	edges         map[int]domain.ReferralEdge
	earnings      []domain.EarningRecord
	cycles        map[uuid.UUID]domain.ReferralCycle
	withdrawals   map[uuid.UUID]domain.WithdrawalRequest
}

func newData() *data {
	return &data{
		nextUserID:    1,
		users:         map[int]domain.User{},
		balances:      map[int]domain.Balance{},
		banks:         map[int]domain.BankDetails{},
		subscriptions: map[int]domain.Subscription{},
		edges:         map[int]domain.ReferralEdge{},
		cycles:        map[uuid.UUID]domain.ReferralCycle{},
		withdrawals:   map[uuid.UUID]domain.WithdrawalRequest{},
	}
}

func (d *data) clone() *data {
	c := &data{
		nextUserID:    d.nextUserID,
		users:         make(map[int]domain.User, len(d.users)),
		balances:      make(map[int]domain.Balance, len(d.balances)),
		banks:         make(map[int]domain.BankDetails, len(d.banks)),
		subscriptions: make(map[int]domain.Subscription, len(d.subscriptions)),
		edges:         make(map[int]domain.ReferralEdge, len(d.edges)),
		earnings:      slices.Clone(d.earnings),
		cycles:        make(map[uuid.UUID]domain.ReferralCycle, len(d.cycles)),
		withdrawals:   make(map[uuid.UUID]domain.WithdrawalRequest, len(d.withdrawals)),
	}
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.balances {
		c.balances[k] = v
	}
	for k, v := range d.banks {
		c.banks[k] = v
	}
	for k, v := range d.subscriptions {
		c.subscriptions[k] = v
	}
	for k, v := range d.edges {
		c.edges[k] = v
	}
	for k, v := range d.cycles {
		v.ReferralIDs = slices.Clone(v.ReferralIDs)
		c.cycles[k] = v
	}
	for k, v := range d.withdrawals {
		v.CycleIDs = slices.Clone(v.CycleIDs)
		c.withdrawals[k] = v
	}
	return c
}

// Store implements every repository interface and pg.TXManager.
type Store struct {
	mu sync.Mutex
	d  *data

	cycleConflicts int
	afterCycleRead func()
}

var _ pg.TXManager = (*Store)(nil)

func New() *Store {
	return &Store{d: newData()}
}

// Repositories exposes the store through the repository set used by the services.
func (s *Store) Repositories() *repo.Repositories {
	return &repo.Repositories{
		UserRepo:         s,
		BalanceRepo:      s,
		BankRepo:         s,
		SubscriptionRepo: s,
		ReferralRepo:     s,
		EarningRepo:      s,
		CycleRepo:        s,
		Withdrawal:       s,
	}
}

// Begin runs fn with the store locked. An error from fn restores the state
// seen at the start; a nested Begin joins the outer one.
func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.d.clone()
	if err := fn(context.WithValue(ctx, txKey{}, struct{}{})); err != nil {
		s.d = snapshot
		return err
	}
	return nil
}

// Unlocked returns a TXManager that runs fn without the store-wide lock and
// without rollback. Every repository call then locks on its own, so
// concurrent callers interleave between a read and the write after it. Only
// flows whose failing write is their first one stay consistent under it.
func (s *Store) Unlocked() pg.TXManager {
	return unlockedTX{}
}

type unlockedTX struct{}

func (unlockedTX) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	return fn(ctx)
}

// AfterCycleRead installs fn to run after FindOpenCycle and
// LockCompletedCycles read their rows. fn is skipped inside a locked Begin
// and otherwise runs without the store lock held.
func (s *Store) AfterCycleRead(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.afterCycleRead = fn
}

// InjectCycleConflicts makes the next n cycle updates fail with
// domain.ErrConcurrencyConflict.
func (s *Store) InjectCycleConflicts(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cycleConflicts = n
}

func (s *Store) cycleRead() {
	s.mu.Lock()
	fn := s.afterCycleRead
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// lock takes the store lock unless ctx already runs inside Begin.
func (s *Store) lock(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

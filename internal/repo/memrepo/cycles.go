package memrepo

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/refledger/internal/domain"
)

func (s *Store) ExpireStale(ctx context.Context, userID int, now time.Time) (int64, error) {
	defer s.lock(ctx)()
	return s.expire(func(c domain.ReferralCycle) bool { return c.UserID == userID }, now), nil
}

func (s *Store) ExpireAllStale(ctx context.Context, now time.Time) (int64, error) {
	defer s.lock(ctx)()
	return s.expire(func(domain.ReferralCycle) bool { return true }, now), nil
}

func (s *Store) expire(match func(domain.ReferralCycle) bool, now time.Time) int64 {
	var n int64
	for id, c := range s.d.cycles {
		if match(c) && c.Expire(now) {
			c.Version++
			s.d.cycles[id] = c
			n++
		}
	}
	return n
}

func (s *Store) FindOpenCycle(ctx context.Context, userID int) (*domain.ReferralCycle, error) {
	cycle := s.findOpenCycle(ctx, userID)
	if ctx.Value(txKey{}) == nil {
		s.cycleRead()
	}
	return cycle, nil
}

func (s *Store) findOpenCycle(ctx context.Context, userID int) *domain.ReferralCycle {
	defer s.lock(ctx)()
	for _, c := range s.d.cycles {
		if c.UserID == userID && c.IsOpen() {
			return copyCycle(c)
		}
	}
	return nil
}

func (s *Store) CreateCycle(ctx context.Context, c *domain.ReferralCycle) error {
	defer s.lock(ctx)()
	for _, existing := range s.d.cycles {
		if existing.UserID == c.UserID && existing.IsOpen() {
			return fmt.Errorf("create cycle for user %d: %w", c.UserID, domain.ErrConcurrencyConflict)
		}
	}
	s.d.cycles[c.ID] = *copyCycle(*c)
	return nil
}

func (s *Store) UpdateCycle(ctx context.Context, c *domain.ReferralCycle) error {
	defer s.lock(ctx)()
	if s.cycleConflicts > 0 {
		s.cycleConflicts--
		return fmt.Errorf("update cycle %s: %w", c.ID, domain.ErrConcurrencyConflict)
	}
	stored, ok := s.d.cycles[c.ID]
	if !ok || stored.Version != c.Version {
		return fmt.Errorf("update cycle %s at version %d: %w", c.ID, c.Version, domain.ErrConcurrencyConflict)
	}
	c.Version++
	s.d.cycles[c.ID] = *copyCycle(*c)
	return nil
}

func (s *Store) GetCycle(ctx context.Context, cycleID uuid.UUID) (*domain.ReferralCycle, error) {
	defer s.lock(ctx)()
	if c, ok := s.d.cycles[cycleID]; ok {
		return copyCycle(c), nil
	}
	return nil, nil
}

func (s *Store) ListCycles(ctx context.Context, userID int) ([]domain.ReferralCycle, error) {
	defer s.lock(ctx)()
	cycles := s.filterCycles(func(c domain.ReferralCycle) bool { return c.UserID == userID })
	sort.Slice(cycles, func(i, j int) bool { return cycles[i].StartDate.After(cycles[j].StartDate) })
	return cycles, nil
}

func (s *Store) LockCompletedCycles(ctx context.Context, userID int) ([]domain.ReferralCycle, error) {
	cycles := s.completedCycles(ctx, userID)
	if ctx.Value(txKey{}) == nil {
		s.cycleRead()
	}
	return cycles, nil
}

func (s *Store) completedCycles(ctx context.Context, userID int) []domain.ReferralCycle {
	defer s.lock(ctx)()
	cycles := s.filterCycles(func(c domain.ReferralCycle) bool {
		return c.UserID == userID && c.Status == domain.CycleCompleted
	})
	sort.Slice(cycles, func(i, j int) bool { return cycles[i].StartDate.Before(cycles[j].StartDate) })
	return cycles
}

func (s *Store) MarkWithdrawn(ctx context.Context, cycles []domain.ReferralCycle, now time.Time) error {
	defer s.lock(ctx)()
	for i := range cycles {
		stored, ok := s.d.cycles[cycles[i].ID]
		if !ok || stored.Version != cycles[i].Version || stored.Status != domain.CycleCompleted {
			return fmt.Errorf("mark cycle %s withdrawn: %w", cycles[i].ID, domain.ErrConcurrencyConflict)
		}
		if err := stored.MarkWithdrawn(now); err != nil {
			return err
		}
		stored.Version++
		s.d.cycles[stored.ID] = stored
		cycles[i] = *copyCycle(stored)
	}
	return nil
}

func (s *Store) filterCycles(match func(domain.ReferralCycle) bool) []domain.ReferralCycle {
	var cycles []domain.ReferralCycle
	for _, c := range s.d.cycles {
		if match(c) {
			cycles = append(cycles, *copyCycle(c))
		}
	}
	return cycles
}

func copyCycle(c domain.ReferralCycle) *domain.ReferralCycle {
	c.ReferralIDs = slices.Clone(c.ReferralIDs)
	return &c
}

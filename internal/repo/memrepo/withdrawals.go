package memrepo

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"

	"github.com/GlebRadaev/refledger/internal/domain"
)

func (s *Store) HasPending(ctx context.Context, userID int) (bool, error) {
	defer s.lock(ctx)()
	return s.hasPending(userID), nil
}

func (s *Store) hasPending(userID int) bool {
	for _, w := range s.d.withdrawals {
		if w.UserID == userID && w.Status == domain.WithdrawalPending {
			return true
		}
	}
	return false
}

func (s *Store) CreateRequest(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	defer s.lock(ctx)()
	if req.Status == domain.WithdrawalPending && s.hasPending(req.UserID) {
		return nil, domain.ErrPendingRequestExists
	}
	s.d.withdrawals[req.ID] = *copyRequest(*req)
	return req, nil
}

func (s *Store) GetRequest(ctx context.Context, requestID uuid.UUID) (*domain.WithdrawalRequest, error) {
	defer s.lock(ctx)()
	if w, ok := s.d.withdrawals[requestID]; ok {
		return copyRequest(w), nil
	}
	return nil, nil
}

func (s *Store) LockRequest(ctx context.Context, requestID uuid.UUID) (*domain.WithdrawalRequest, error) {
	return s.GetRequest(ctx, requestID)
}

func (s *Store) UpdateRequest(ctx context.Context, req *domain.WithdrawalRequest) error {
	defer s.lock(ctx)()
	stored, ok := s.d.withdrawals[req.ID]
	if !ok {
		return fmt.Errorf("withdrawal request %s: %w", req.ID, domain.ErrNotFound)
	}
	stored.BankDetails = req.BankDetails
	stored.Status = req.Status
	stored.Notes = req.Notes
	stored.ProcessedAt = req.ProcessedAt
	s.d.withdrawals[req.ID] = stored
	return nil
}

func (s *Store) ListByUser(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	defer s.lock(ctx)()
	requests := s.filterRequests(func(w domain.WithdrawalRequest) bool { return w.UserID == userID })
	sort.Slice(requests, func(i, j int) bool { return requests[i].RequestedAt.After(requests[j].RequestedAt) })
	return requests, nil
}

func (s *Store) ListByStatus(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error) {
	defer s.lock(ctx)()
	requests := s.filterRequests(func(w domain.WithdrawalRequest) bool { return w.Status == status })
	sort.Slice(requests, func(i, j int) bool { return requests[i].RequestedAt.Before(requests[j].RequestedAt) })
	return requests, nil
}

func (s *Store) filterRequests(match func(domain.WithdrawalRequest) bool) []domain.WithdrawalRequest {
	var requests []domain.WithdrawalRequest
	for _, w := range s.d.withdrawals {
		if match(w) {
			requests = append(requests, *copyRequest(w))
		}
	}
	return requests
}

func copyRequest(w domain.WithdrawalRequest) *domain.WithdrawalRequest {
	w.CycleIDs = slices.Clone(w.CycleIDs)
	return &w
}

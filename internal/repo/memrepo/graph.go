package memrepo

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/refledger/internal/domain"
)

func (s *Store) CreateEdge(ctx context.Context, edge *domain.ReferralEdge) (*domain.ReferralEdge, error) {
	defer s.lock(ctx)()
	if _, ok := s.d.edges[edge.ChildID]; ok {
		return nil, domain.ErrAlreadyLinked
	}
	s.d.edges[edge.ChildID] = *edge
	created := *edge
	return &created, nil
}

func (s *Store) DeleteEdge(ctx context.Context, childID int) (bool, error) {
	defer s.lock(ctx)()
	if _, ok := s.d.edges[childID]; !ok {
		return false, nil
	}
	delete(s.d.edges, childID)
	return true, nil
}

func (s *Store) FindParent(ctx context.Context, childID int) (*domain.ReferralEdge, error) {
	defer s.lock(ctx)()
	if e, ok := s.d.edges[childID]; ok {
		return &e, nil
	}
	return nil, nil
}

func (s *Store) FindChildren(ctx context.Context, parentID int) ([]domain.ReferralEdge, error) {
	defer s.lock(ctx)()
	var edges []domain.ReferralEdge
	for _, e := range s.d.edges {
		if e.ParentID == parentID {
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].CreatedAt.Equal(edges[j].CreatedAt) {
			return edges[i].ChildID > edges[j].ChildID
		}
		return edges[i].CreatedAt.After(edges[j].CreatedAt)
	})
	return edges, nil
}

func (s *Store) AppendEarning(ctx context.Context, rec *domain.EarningRecord) (*domain.EarningRecord, error) {
	defer s.lock(ctx)()
	for _, e := range s.d.earnings {
		if e.BeneficiaryID == rec.BeneficiaryID && e.SourceUserID == rec.SourceUserID && e.RewardType == rec.RewardType {
			return nil, domain.ErrDuplicateReward
		}
	}
	s.d.earnings = append(s.d.earnings, *rec)
	return rec, nil
}

func (s *Store) SumEarnings(ctx context.Context, beneficiaryID int) (decimal.Decimal, error) {
	defer s.lock(ctx)()
	sum := decimal.Zero
	for _, e := range s.d.earnings {
		if e.BeneficiaryID == beneficiaryID {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func (s *Store) ListEarnings(ctx context.Context, beneficiaryID int, page domain.Page) ([]domain.EarningRecord, error) {
	defer s.lock(ctx)()
	var records []domain.EarningRecord
	for i := len(s.d.earnings) - 1; i >= 0; i-- {
		if s.d.earnings[i].BeneficiaryID == beneficiaryID {
			records = append(records, s.d.earnings[i])
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if page.Offset >= len(records) {
		return nil, nil
	}
	end := len(records)
	if page.Limit > 0 && page.Offset+page.Limit < end {
		end = page.Offset + page.Limit
	}
	return records[page.Offset:end], nil
}

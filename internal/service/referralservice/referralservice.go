package referralservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/refledger/internal/domain"
)

//go:generate mockgen -destination=mock_referralservice.go -package=referralservice . UserRepo,EdgeRepo

type UserRepo interface {
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	SetReferralCodeActive(ctx context.Context, userID int, active bool) error
}

type EdgeRepo interface {
	CreateEdge(ctx context.Context, edge *domain.ReferralEdge) (*domain.ReferralEdge, error)
	DeleteEdge(ctx context.Context, childID int) (bool, error)
	FindParent(ctx context.Context, childID int) (*domain.ReferralEdge, error)
	FindChildren(ctx context.Context, parentID int) ([]domain.ReferralEdge, error)
}

type Names interface {
	DisplayNames(ctx context.Context, ids []int) (map[int]string, error)
}

type Service struct {
	users UserRepo
	edges EdgeRepo
	names Names
	now   func() time.Time
}

func New(users UserRepo, edges EdgeRepo, names Names) *Service {
	return &Service{
		users: users,
		edges: edges,
		names: names,
		now:   time.Now,
	}
}

func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// NormalizeCode is the canonical form referral codes are stored and looked up in.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ResolveCode returns the owner of an active referral code.
func (s *Service) ResolveCode(ctx context.Context, code string) (*domain.User, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, domain.ErrInvalidReferralCode
	}
	owner, err := s.users.FindByReferralCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("resolve referral code: %w", err)
	}
	if owner == nil || !owner.ReferralCodeActive {
		return nil, domain.ErrInvalidReferralCode
	}
	return owner, nil
}

func (s *Service) LinkReferral(ctx context.Context, childID int, code string) (*domain.ReferralEdge, error) {
	owner, err := s.ResolveCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if owner.ID == childID {
		return nil, domain.ErrSelfReferral
	}

	edge, err := s.edges.CreateEdge(ctx, &domain.ReferralEdge{
		ParentID:  owner.ID,
		ChildID:   childID,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("referral linked", zap.Int("parentID", edge.ParentID), zap.Int("childID", edge.ChildID))
	return edge, nil
}

// SetCodeActive enables or disables the user's referral code. Existing edges
// are not affected; a disabled code only stops new links.
func (s *Service) SetCodeActive(ctx context.Context, userID int, active bool) error {
	if err := s.users.SetReferralCodeActive(ctx, userID, active); err != nil {
		return err
	}
	zap.L().Info("referral code state changed", zap.Int("userID", userID), zap.Bool("active", active))
	return nil
}

// UnlinkReferral removes the child's parent edge. It reports whether an edge
// was actually removed; unlinking an unlinked child is not an error.
func (s *Service) UnlinkReferral(ctx context.Context, childID int) (bool, error) {
	removed, err := s.edges.DeleteEdge(ctx, childID)
	if err != nil {
		return false, fmt.Errorf("unlink referral: %w", err)
	}
	if removed {
		zap.L().Info("referral unlinked", zap.Int("childID", childID))
	}
	return removed, nil
}

func (s *Service) GetParent(ctx context.Context, childID int) (int, bool, error) {
	edge, err := s.edges.FindParent(ctx, childID)
	if err != nil {
		return 0, false, fmt.Errorf("get parent: %w", err)
	}
	if edge == nil {
		return 0, false, nil
	}
	return edge.ParentID, true, nil
}

func (s *Service) GetChildren(ctx context.Context, parentID int) ([]int, error) {
	edges, err := s.edges.FindChildren(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("get children: %w", err)
	}
	ids := make([]int, len(edges))
	for i, e := range edges {
		ids[i] = e.ChildID
	}
	return ids, nil
}

// ListReferrals returns the parent's children with their display names,
// newest link first.
func (s *Service) ListReferrals(ctx context.Context, parentID int) ([]domain.ReferredUser, error) {
	edges, err := s.edges.FindChildren(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("list referrals: %w", err)
	}
	if len(edges) == 0 {
		return []domain.ReferredUser{}, nil
	}

	ids := make([]int, len(edges))
	for i, e := range edges {
		ids[i] = e.ChildID
	}
	names, err := s.names.DisplayNames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list referrals: %w", err)
	}

	referred := make([]domain.ReferredUser, len(edges))
	for i, e := range edges {
		referred[i] = domain.ReferredUser{
			UserID:      e.ChildID,
			DisplayName: names[e.ChildID],
			LinkedAt:    e.CreatedAt,
		}
	}
	return referred, nil
}

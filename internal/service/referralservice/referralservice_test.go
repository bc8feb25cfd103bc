package referralservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/profile"
)

var (
	fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	errDB    = errors.New("db error")
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockEdgeRepo, *profile.MockNames) {
	ctrl := gomock.NewController(t)
	users := NewMockUserRepo(ctrl)
	edges := NewMockEdgeRepo(ctrl)
	names := profile.NewMockNames(ctrl)
	service := New(users, edges, names)
	service.now = func() time.Time { return fixedNow }
	return service, users, edges, names
}

func TestLinkReferral(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		childID       int
		code          string
		prepareMock   func(users *MockUserRepo, edges *MockEdgeRepo)
		expectedEdge  *domain.ReferralEdge
		expectedError error
	}{
		{
			name:    "Links child to code owner",
			childID: 2,
			code:    " aru234 ",
			prepareMock: func(users *MockUserRepo, edges *MockEdgeRepo) {
				users.EXPECT().FindByReferralCode(ctx, "ARU234").Return(&domain.User{ID: 1, ReferralCodeActive: true}, nil)
				edges.EXPECT().CreateEdge(ctx, &domain.ReferralEdge{ParentID: 1, ChildID: 2, CreatedAt: fixedNow}).
					Return(&domain.ReferralEdge{ParentID: 1, ChildID: 2, CreatedAt: fixedNow}, nil)
			},
			expectedEdge: &domain.ReferralEdge{ParentID: 1, ChildID: 2, CreatedAt: fixedNow},
		},
		{
			name:          "Empty code",
			childID:       2,
			code:          "  ",
			expectedError: domain.ErrInvalidReferralCode,
		},
		{
			name:    "Unknown code",
			childID: 2,
			code:    "NOPE00",
			prepareMock: func(users *MockUserRepo, edges *MockEdgeRepo) {
				users.EXPECT().FindByReferralCode(ctx, "NOPE00").Return(nil, nil)
			},
			expectedError: domain.ErrInvalidReferralCode,
		},
		{
			name:    "Deactivated code",
			childID: 2,
			code:    "ARU234",
			prepareMock: func(users *MockUserRepo, edges *MockEdgeRepo) {
				users.EXPECT().FindByReferralCode(ctx, "ARU234").Return(&domain.User{ID: 1, ReferralCodeActive: false}, nil)
			},
			expectedError: domain.ErrInvalidReferralCode,
		},
		{
			name:    "Own code",
			childID: 1,
			code:    "ARU234",
			prepareMock: func(users *MockUserRepo, edges *MockEdgeRepo) {
				users.EXPECT().FindByReferralCode(ctx, "ARU234").Return(&domain.User{ID: 1, ReferralCodeActive: true}, nil)
			},
			expectedError: domain.ErrSelfReferral,
		},
		{
			name:    "Already linked",
			childID: 2,
			code:    "ARU234",
			prepareMock: func(users *MockUserRepo, edges *MockEdgeRepo) {
				users.EXPECT().FindByReferralCode(ctx, "ARU234").Return(&domain.User{ID: 1, ReferralCodeActive: true}, nil)
				edges.EXPECT().CreateEdge(ctx, gomock.Any()).Return(nil, domain.ErrAlreadyLinked)
			},
			expectedError: domain.ErrAlreadyLinked,
		},
		{
			name:    "Lookup failure",
			childID: 2,
			code:    "ARU234",
			prepareMock: func(users *MockUserRepo, edges *MockEdgeRepo) {
				users.EXPECT().FindByReferralCode(ctx, "ARU234").Return(nil, errDB)
			},
			expectedError: errDB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, users, edges, _ := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(users, edges)
			}

			edge, err := service.LinkReferral(ctx, tt.childID, tt.code)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, edge)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedEdge, edge)
			}
		})
	}
}

func TestUnlinkReferral(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		prepareMock     func(edges *MockEdgeRepo)
		expectedRemoved bool
		expectErr       bool
	}{
		{
			name: "Removes edge",
			prepareMock: func(edges *MockEdgeRepo) {
				edges.EXPECT().DeleteEdge(ctx, 2).Return(true, nil)
			},
			expectedRemoved: true,
		},
		{
			name: "No edge is a no-op",
			prepareMock: func(edges *MockEdgeRepo) {
				edges.EXPECT().DeleteEdge(ctx, 2).Return(false, nil)
			},
		},
		{
			name: "Store failure",
			prepareMock: func(edges *MockEdgeRepo) {
				edges.EXPECT().DeleteEdge(ctx, 2).Return(false, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, edges, _ := NewMock(t)
			tt.prepareMock(edges)

			removed, err := service.UnlinkReferral(ctx, 2)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedRemoved, removed)
		})
	}
}

func TestGetParent(t *testing.T) {
	ctx := context.Background()
	service, _, edges, _ := NewMock(t)

	edges.EXPECT().FindParent(ctx, 2).Return(&domain.ReferralEdge{ParentID: 1, ChildID: 2}, nil)
	parent, ok, err := service.GetParent(ctx, 2)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, parent)

	edges.EXPECT().FindParent(ctx, 3).Return(nil, nil)
	_, ok, err = service.GetParent(ctx, 3)
	assert.NoError(t, err)
	assert.False(t, ok)

	edges.EXPECT().FindParent(ctx, 4).Return(nil, errors.New("db error"))
	_, _, err = service.GetParent(ctx, 4)
	assert.Error(t, err)
}

func TestGetChildren(t *testing.T) {
	ctx := context.Background()
	service, _, edges, _ := NewMock(t)

	edges.EXPECT().FindChildren(ctx, 1).Return([]domain.ReferralEdge{{ParentID: 1, ChildID: 3}, {ParentID: 1, ChildID: 2}}, nil)
	children, err := service.GetChildren(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 2}, children)
}

func TestListReferrals(t *testing.T) {
	ctx := context.Background()
	linked := fixedNow.Add(-time.Hour)

	tests := []struct {
		name        string
		prepareMock func(edges *MockEdgeRepo, names *profile.MockNames)
		expected    []domain.ReferredUser
		expectErr   bool
	}{
		{
			name: "Joins display names",
			prepareMock: func(edges *MockEdgeRepo, names *profile.MockNames) {
				edges.EXPECT().FindChildren(ctx, 1).Return([]domain.ReferralEdge{
					{ParentID: 1, ChildID: 2, CreatedAt: linked},
					{ParentID: 1, ChildID: 3, CreatedAt: linked},
				}, nil)
				names.EXPECT().DisplayNames(ctx, []int{2, 3}).Return(map[int]string{2: "Ravi"}, nil)
			},
			expected: []domain.ReferredUser{
				{UserID: 2, DisplayName: "Ravi", LinkedAt: linked},
				{UserID: 3, DisplayName: "", LinkedAt: linked},
			},
		},
		{
			name: "No children",
			prepareMock: func(edges *MockEdgeRepo, names *profile.MockNames) {
				edges.EXPECT().FindChildren(ctx, 1).Return(nil, nil)
			},
			expected: []domain.ReferredUser{},
		},
		{
			name: "Name lookup failure",
			prepareMock: func(edges *MockEdgeRepo, names *profile.MockNames) {
				edges.EXPECT().FindChildren(ctx, 1).Return([]domain.ReferralEdge{{ParentID: 1, ChildID: 2}}, nil)
				names.EXPECT().DisplayNames(ctx, []int{2}).Return(nil, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, edges, names := NewMock(t)
			tt.prepareMock(edges, names)

			referred, err := service.ListReferrals(ctx, 1)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, referred)
		})
	}
}

func TestSetCodeActive(t *testing.T) {
	service, users, _, _ := NewMock(t)

	users.EXPECT().SetReferralCodeActive(gomock.Any(), 1, false).Return(nil)
	assert.NoError(t, service.SetCodeActive(context.Background(), 1, false))

	users.EXPECT().SetReferralCodeActive(gomock.Any(), 9, true).Return(domain.ErrNotFound)
	assert.ErrorIs(t, service.SetCodeActive(context.Background(), 9, true), domain.ErrNotFound)
}

package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCycle(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	c := NewCycle(7, start, DefaultCycleWindow)

	assert.Equal(t, 7, c.UserID)
	assert.Equal(t, CycleActive, c.Status)
	assert.Equal(t, start.Add(30*24*time.Hour), c.EndDate)
	assert.Equal(t, 0, c.ReferralCount)
	assert.True(t, c.EarnedAmount.IsZero())
	assert.Equal(t, 1, c.Version)
}

func TestReferralCycle_AddReferral(t *testing.T) {
	now := time.Now()
	reward := decimal.NewFromInt(25)

	tests := []struct {
		name              string
		existing          []int
		status            CycleStatus
		childID           int
		threshold         int
		expectedCount     int
		expectedStatus    CycleStatus
		expectedCompleted bool
	}{
		{
			name:           "New child below threshold",
			existing:       []int{1, 2},
			status:         CycleActive,
			childID:        3,
			threshold:      25,
			expectedCount:  3,
			expectedStatus: CycleActive,
		},
		{
			name:              "Child bringing count to threshold completes cycle",
			existing:          []int{1, 2},
			status:            CycleActive,
			childID:           3,
			threshold:         3,
			expectedCount:     3,
			expectedStatus:    CycleCompleted,
			expectedCompleted: true,
		},
		{
			name:           "Known child is not counted twice",
			existing:       []int{1, 2},
			status:         CycleActive,
			childID:        2,
			threshold:      3,
			expectedCount:  2,
			expectedStatus: CycleActive,
		},
		{
			name:           "Completed cycle keeps accumulating",
			existing:       []int{1, 2, 3},
			status:         CycleCompleted,
			childID:        4,
			threshold:      3,
			expectedCount:  4,
			expectedStatus: CycleCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCycle(1, now, DefaultCycleWindow)
			c.ReferralIDs = append(c.ReferralIDs, tt.existing...)
			c.ReferralCount = len(tt.existing)
			c.Status = tt.status

			completed := c.AddReferral(tt.childID, reward, tt.threshold, now)

			assert.Equal(t, tt.expectedCompleted, completed)
			assert.Equal(t, tt.expectedCount, c.ReferralCount)
			assert.Len(t, c.ReferralIDs, c.ReferralCount)
			assert.Equal(t, tt.expectedStatus, c.Status)
			assert.True(t, reward.Equal(c.EarnedAmount))
		})
	}
}

func TestReferralCycle_CompletesExactlyAtThreshold(t *testing.T) {
	now := time.Now()
	c := NewCycle(1, now, DefaultCycleWindow)

	for i := 1; i < DefaultCycleThreshold; i++ {
		require.False(t, c.AddReferral(100+i, decimal.NewFromInt(25), DefaultCycleThreshold, now))
		require.Equal(t, CycleActive, c.Status)
	}
	assert.True(t, c.AddReferral(200, decimal.NewFromInt(25), DefaultCycleThreshold, now))
	assert.Equal(t, CycleCompleted, c.Status)
	assert.Equal(t, "625", c.EarnedAmount.String())
}

func TestReferralCycle_Expire(t *testing.T) {
	start := time.Now()

	tests := []struct {
		name     string
		status   CycleStatus
		at       time.Time
		expired  bool
		expected CycleStatus
	}{
		{"Active within window", CycleActive, start.Add(24 * time.Hour), false, CycleActive},
		{"Active past window", CycleActive, start.Add(31 * 24 * time.Hour), true, CycleExpired},
		{"Completed past window", CycleCompleted, start.Add(31 * 24 * time.Hour), true, CycleExpired},
		{"Withdrawn is terminal", CycleWithdrawn, start.Add(31 * 24 * time.Hour), false, CycleWithdrawn},
		{"Expired stays expired", CycleExpired, start.Add(31 * 24 * time.Hour), false, CycleExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCycle(1, start, DefaultCycleWindow)
			c.Status = tt.status

			assert.Equal(t, tt.expired, c.Expire(tt.at))
			assert.Equal(t, tt.expected, c.Status)
		})
	}
}

func TestReferralCycle_MarkWithdrawn(t *testing.T) {
	now := time.Now()
	c := NewCycle(1, now, DefaultCycleWindow)

	assert.ErrorIs(t, c.MarkWithdrawn(now), ErrInvalidTransition)

	c.Status = CycleCompleted
	require.NoError(t, c.MarkWithdrawn(now))
	assert.Equal(t, CycleWithdrawn, c.Status)
	assert.True(t, c.Status.IsTerminal())
}

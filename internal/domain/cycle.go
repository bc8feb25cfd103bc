package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CycleStatus string

const (
	CycleActive    CycleStatus = "active"
	CycleCompleted CycleStatus = "completed"
	CycleExpired   CycleStatus = "expired"
	CycleWithdrawn CycleStatus = "withdrawn"
)

func (s CycleStatus) IsTerminal() bool {
	return s == CycleExpired || s == CycleWithdrawn
}

const (
	DefaultCycleThreshold = 25
	DefaultCycleWindow    = 30 * 24 * time.Hour
)

// ReferralCycle is a rolling accounting window. ReferralCount always equals
// len(ReferralIDs); Version is bumped on every persisted change.
type ReferralCycle struct {
	ID            uuid.UUID       `db:"id"`
	UserID        int             `db:"user_id"`
	StartDate     time.Time       `db:"start_date"`
	EndDate       time.Time       `db:"end_date"`
	ReferralCount int             `db:"referral_count"`
	EarnedAmount  decimal.Decimal `db:"earned_amount"`
	ReferralIDs   []int           `db:"referral_ids"`
	Status        CycleStatus     `db:"status"`
	Version       int             `db:"version"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func NewCycle(userID int, start time.Time, window time.Duration) *ReferralCycle {
	return &ReferralCycle{
		ID:           uuid.New(),
		UserID:       userID,
		StartDate:    start,
		EndDate:      start.Add(window),
		EarnedAmount: decimal.Zero,
		ReferralIDs:  []int{},
		Status:       CycleActive,
		Version:      1,
		UpdatedAt:    start,
	}
}

// IsOpen reports whether the cycle is active or completed.
func (c *ReferralCycle) IsOpen() bool {
	return c.Status == CycleActive || c.Status == CycleCompleted
}

// IsStale reports whether an open cycle has run past its end date.
func (c *ReferralCycle) IsStale(now time.Time) bool {
	return c.IsOpen() && now.After(c.EndDate)
}

// Expire moves a stale cycle to expired. It returns false when the cycle is
// still within its window or already terminal.
func (c *ReferralCycle) Expire(now time.Time) bool {
	if !c.IsStale(now) {
		return false
	}
	c.Status = CycleExpired
	c.UpdatedAt = now
	return true
}

// AddReferral counts childID once, adds amount and completes the cycle when
// the count reaches threshold. It returns true only on the call that
// completes the cycle.
func (c *ReferralCycle) AddReferral(childID int, amount decimal.Decimal, threshold int, now time.Time) bool {
	if !slices.Contains(c.ReferralIDs, childID) {
		c.ReferralIDs = append(c.ReferralIDs, childID)
		c.ReferralCount = len(c.ReferralIDs)
	}
	c.EarnedAmount = c.EarnedAmount.Add(amount)
	c.UpdatedAt = now

	if c.Status == CycleActive && c.ReferralCount >= threshold {
		c.Status = CycleCompleted
		return true
	}
	return false
}

func (c *ReferralCycle) MarkWithdrawn(now time.Time) error {
	if c.Status != CycleCompleted {
		return ErrInvalidTransition
	}
	c.Status = CycleWithdrawn
	c.UpdatedAt = now
	return nil
}

// CycleDetail is a cycle joined with the display names of the referred users.
type CycleDetail struct {
	Cycle    ReferralCycle
	Referred []ReferredUser
}

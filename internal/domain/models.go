package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID                 int       `db:"id"`
	Login              string    `db:"login"`
	PasswordHash       string    `db:"password_hash"`
	ReferralCode       string    `db:"referral_code"`
	ReferralCodeActive bool      `db:"referral_code_active"`
	CreatedAt          time.Time `db:"created_at"`
}

// Balance is the earnings projection kept on the user row.
// TotalEarnings always equals BalanceEarnings + WithdrawnEarnings.
type Balance struct {
	UserID            int             `db:"id"`
	BalanceEarnings   decimal.Decimal `db:"balance_earnings"`
	WithdrawnEarnings decimal.Decimal `db:"withdrawn_earnings"`
	TotalEarnings     decimal.Decimal `db:"total_earnings"`
}

type ReferralEdge struct {
	ParentID  int       `db:"parent_id"`
	ChildID   int       `db:"child_id"`
	CreatedAt time.Time `db:"created_at"`
}

type RewardType string

const RewardInitial RewardType = "initial"

type EarningRecord struct {
	ID            uuid.UUID       `db:"id"`
	BeneficiaryID int             `db:"beneficiary_id"`
	SourceUserID  int             `db:"source_user_id"`
	Level         int             `db:"level"`
	Tier          int             `db:"tier"`
	RewardType    RewardType      `db:"reward_type"`
	Amount        decimal.Decimal `db:"amount"`
	IsPartial     bool            `db:"is_partial"`
	CreatedAt     time.Time       `db:"created_at"`
}

// EarningEntry is an earning record joined with the source user's display name.
type EarningEntry struct {
	EarningRecord
	SourceName string
}

type BankDetails struct {
	UserID        int       `json:"userId" db:"user_id"`
	AccountHolder string    `json:"accountHolder" db:"account_holder"`
	AccountNumber string    `json:"accountNumber" db:"account_number"`
	IFSC          string    `json:"ifsc" db:"ifsc"`
	BankName      string    `json:"bankName" db:"bank_name"`
	UPIID         string    `json:"upiId,omitempty" db:"upi_id"`
	CardNumber    string    `json:"cardNumber,omitempty" db:"card_number"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

func ParseSubscriptionStatus(s string) (SubscriptionStatus, bool) {
	switch st := SubscriptionStatus(s); st {
	case SubscriptionActive, SubscriptionCancelled, SubscriptionExpired:
		return st, true
	}
	return "", false
}

// Subscription mirrors the state reported by the subscription subsystem.
type Subscription struct {
	UserID    int                `db:"user_id"`
	Plan      string             `db:"plan"`
	Status    SubscriptionStatus `db:"status"`
	Paid      bool               `db:"paid"`
	ExpiresAt time.Time          `db:"expires_at"`
	UpdatedAt time.Time          `db:"updated_at"`
}

// IsActive reports whether the subscription is active, paid and not expired at now.
func (s *Subscription) IsActive(now time.Time) bool {
	if s == nil {
		return false
	}
	return s.Status == SubscriptionActive && s.Paid && s.ExpiresAt.After(now)
}

type ReferredUser struct {
	UserID      int
	DisplayName string
	LinkedAt    time.Time
}

type Page struct {
	Limit  int
	Offset int
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// NewPage converts a 1-based page number and a limit into a Page,
// clamping both to sane bounds.
func NewPage(page, limit int) Page {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if page <= 0 {
		page = 1
	}
	return Page{Limit: limit, Offset: (page - 1) * limit}
}

type NotificationType string

const (
	NotificationRewardGranted   NotificationType = "reward_granted"
	NotificationReferralExpired NotificationType = "referral_expired"
)

type Notification struct {
	Type          NotificationType `json:"type"`
	RecipientID   int              `json:"recipientId"`
	BeneficiaryID int              `json:"beneficiaryId"`
	SourceUserID  int              `json:"sourceUserId"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	OccurredAt    time.Time        `json:"occurredAt"`
}

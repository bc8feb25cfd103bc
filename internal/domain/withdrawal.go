package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
	WithdrawalPaid     WithdrawalStatus = "paid"
)

var withdrawalTransitions = map[WithdrawalStatus][]WithdrawalStatus{
	WithdrawalPending:  {WithdrawalApproved, WithdrawalRejected},
	WithdrawalApproved: {WithdrawalPaid},
}

func ParseWithdrawalStatus(s string) (WithdrawalStatus, bool) {
	switch st := WithdrawalStatus(s); st {
	case WithdrawalPending, WithdrawalApproved, WithdrawalRejected, WithdrawalPaid:
		return st, true
	}
	return "", false
}

type WithdrawalRequest struct {
	ID          uuid.UUID        `db:"id"`
	UserID      int              `db:"user_id"`
	Amount      decimal.Decimal  `db:"amount"`
	BankDetails BankDetails      `db:"bank_details"`
	CycleIDs    []uuid.UUID      `db:"cycle_ids"`
	Status      WithdrawalStatus `db:"status"`
	Notes       string           `db:"notes"`
	RequestedAt time.Time        `db:"requested_at"`
	ProcessedAt *time.Time       `db:"processed_at"`
}

// Transition moves the request forward. Only pending → approved|rejected and
// approved → paid are allowed.
func (w *WithdrawalRequest) Transition(to WithdrawalStatus, now time.Time) error {
	for _, allowed := range withdrawalTransitions[w.Status] {
		if allowed == to {
			w.Status = to
			w.ProcessedAt = &now
			return nil
		}
	}
	return ErrInvalidTransition
}

package domain

import "errors"

var (
	ErrInvalidReferralCode = errors.New("referral code is invalid or no longer active")
	ErrAlreadyLinked       = errors.New("user already has a referrer")
	ErrSelfReferral        = errors.New("users cannot refer themselves")

	ErrDuplicateReward = errors.New("reward already granted for this referral")

	ErrPendingRequestExists = errors.New("a withdrawal request is already pending")
	ErrNoEligibleEarnings   = errors.New("no completed cycles are available for withdrawal")
	ErrMissingBankDetails   = errors.New("bank details required before withdrawal")
	ErrInvalidBankDetails   = errors.New("bank details are invalid")
	ErrRequestNotPending    = errors.New("withdrawal request is no longer pending")
	ErrInvalidTransition    = errors.New("status transition is not allowed")

	ErrConcurrencyConflict = errors.New("concurrent update conflict")
	ErrTransientFailure    = errors.New("temporary failure, try again")

	ErrNotFound = errors.New("not found")
)

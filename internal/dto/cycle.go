package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CycleResponseDTO struct {
	ID            string          `json:"id" example:"6d1c3a2e-9f0b-4c7d-8e5a-1b2c3d4e5f60"`
	StartDate     time.Time       `json:"startDate" example:"2024-03-01T12:00:00Z"`
	EndDate       time.Time       `json:"endDate" example:"2024-03-31T12:00:00Z"`
	ReferralCount int             `json:"referralCount" example:"25"`
	EarnedAmount  decimal.Decimal `json:"earnedAmount" swaggertype:"string" example:"625"`
	Status        string          `json:"status" example:"completed"`
}

type CycleDetailResponseDTO struct {
	CycleResponseDTO
	Referred []ReferredUserResponseDTO `json:"referred"`
}

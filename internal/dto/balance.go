package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BalanceResponseDTO struct {
	Balance   decimal.Decimal `json:"balanceEarnings" swaggertype:"string" example:"625"`
	Withdrawn decimal.Decimal `json:"withdrawnEarnings" swaggertype:"string" example:"0"`
	Total     decimal.Decimal `json:"totalEarnings" swaggertype:"string" example:"625"`
}

type EarningResponseDTO struct {
	ID           string          `json:"id" example:"0b8f7c1e-6a39-4c55-9d2e-0f6b1f2d9c11"`
	SourceUserID int             `json:"sourceUserId" example:"2"`
	SourceName   string          `json:"sourceName" example:"bob"`
	Level        int             `json:"level" example:"1"`
	Tier         int             `json:"tier" example:"1"`
	RewardType   string          `json:"rewardType" example:"initial"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"25"`
	CreatedAt    time.Time       `json:"createdAt" example:"2024-03-01T12:00:00Z"`
}

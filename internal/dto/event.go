package dto

import "time"

type SubscriptionEventRequestDTO struct {
	UserID    int       `json:"userId" example:"2"`
	Plan      string    `json:"plan" example:"pro"`
	Status    string    `json:"status" example:"active"`
	Paid      bool      `json:"paid" example:"true"`
	ExpiresAt time.Time `json:"expiresAt" example:"2025-03-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" example:"2024-03-01T12:00:00Z"`
}

type SubscriptionEventResponseDTO struct {
	Outcome string `json:"outcome" example:"granted"`
}

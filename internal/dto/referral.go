package dto

import "time"

type ApplyReferralRequestDTO struct {
	Code string `json:"code" example:"ARU234"`
}

type ReferralEdgeResponseDTO struct {
	ParentID  int       `json:"parentId" example:"1"`
	ChildID   int       `json:"childId" example:"2"`
	CreatedAt time.Time `json:"createdAt" example:"2024-03-01T12:00:00Z"`
}

type ReferredUserResponseDTO struct {
	UserID      int       `json:"userId" example:"2"`
	DisplayName string    `json:"displayName" example:"bob"`
	LinkedAt    time.Time `json:"linkedAt,omitempty" example:"2024-03-01T12:00:00Z"`
}

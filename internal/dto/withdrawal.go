package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BankDetailsDTO struct {
	AccountHolder string `json:"accountHolder" example:"Aru Sharma"`
	AccountNumber string `json:"accountNumber,omitempty" example:"123456789012"`
	IFSC          string `json:"ifsc,omitempty" example:"HDFC0001234"`
	BankName      string `json:"bankName,omitempty" example:"HDFC Bank"`
	UPIID         string `json:"upiId,omitempty" example:"aru@okhdfc"`
	CardNumber    string `json:"cardNumber,omitempty" example:"4111111111111111"`
}

type BankDetailsResponseDTO struct {
	BankDetailsDTO
	UpdatedAt time.Time `json:"updatedAt" example:"2024-03-01T12:00:00Z"`
}

type WithdrawalCreateRequestDTO struct {
	Notes string `json:"notes" example:"monthly payout"`
}

type WithdrawalUpdateRequestDTO struct {
	Notes       *string         `json:"notes,omitempty" example:"use UPI"`
	BankDetails *BankDetailsDTO `json:"bankDetails,omitempty"`
}

type WithdrawalResponseDTO struct {
	ID          string          `json:"id" example:"3f0e1d2c-4b5a-6978-8a9b-0c1d2e3f4a5b"`
	UserID      int             `json:"userId" example:"1"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"625"`
	BankDetails BankDetailsDTO  `json:"bankDetails"`
	CycleIDs    []string        `json:"cycleIds"`
	Status      string          `json:"status" example:"pending"`
	Notes       string          `json:"notes" example:"monthly payout"`
	RequestedAt time.Time       `json:"requestedAt" example:"2024-03-01T12:00:00Z"`
	ProcessedAt *time.Time      `json:"processedAt,omitempty" example:"2024-03-02T12:00:00Z"`
}

type AdminNotesRequestDTO struct {
	Notes string `json:"notes" example:"verified"`
}

package dto

import "github.com/GlebRadaev/refledger/internal/domain"

func NewBalanceResponse(b *domain.Balance) BalanceResponseDTO {
	return BalanceResponseDTO{
		Balance:   b.BalanceEarnings,
		Withdrawn: b.WithdrawnEarnings,
		Total:     b.TotalEarnings,
	}
}

func NewEarningResponse(e domain.EarningEntry) EarningResponseDTO {
	return EarningResponseDTO{
		ID:           e.ID.String(),
		SourceUserID: e.SourceUserID,
		SourceName:   e.SourceName,
		Level:        e.Level,
		Tier:         e.Tier,
		RewardType:   string(e.RewardType),
		Amount:       e.Amount,
		CreatedAt:    e.CreatedAt,
	}
}

func NewReferredUserResponse(u domain.ReferredUser) ReferredUserResponseDTO {
	return ReferredUserResponseDTO{UserID: u.UserID, DisplayName: u.DisplayName, LinkedAt: u.LinkedAt}
}

func NewCycleResponse(c domain.ReferralCycle) CycleResponseDTO {
	return CycleResponseDTO{
		ID:            c.ID.String(),
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		ReferralCount: c.ReferralCount,
		EarnedAmount:  c.EarnedAmount,
		Status:        string(c.Status),
	}
}

func NewCycleDetailResponse(d *domain.CycleDetail) CycleDetailResponseDTO {
	referred := make([]ReferredUserResponseDTO, len(d.Referred))
	for i, u := range d.Referred {
		referred[i] = NewReferredUserResponse(u)
	}
	return CycleDetailResponseDTO{CycleResponseDTO: NewCycleResponse(d.Cycle), Referred: referred}
}

func NewBankDetailsDTO(d domain.BankDetails) BankDetailsDTO {
	return BankDetailsDTO{
		AccountHolder: d.AccountHolder,
		AccountNumber: d.AccountNumber,
		IFSC:          d.IFSC,
		BankName:      d.BankName,
		UPIID:         d.UPIID,
		CardNumber:    d.CardNumber,
	}
}

func (b BankDetailsDTO) ToDomain(userID int) *domain.BankDetails {
	return &domain.BankDetails{
		UserID:        userID,
		AccountHolder: b.AccountHolder,
		AccountNumber: b.AccountNumber,
		IFSC:          b.IFSC,
		BankName:      b.BankName,
		UPIID:         b.UPIID,
		CardNumber:    b.CardNumber,
	}
}

func NewWithdrawalResponse(w *domain.WithdrawalRequest) WithdrawalResponseDTO {
	ids := make([]string, len(w.CycleIDs))
	for i, id := range w.CycleIDs {
		ids[i] = id.String()
	}
	return WithdrawalResponseDTO{
		ID:          w.ID.String(),
		UserID:      w.UserID,
		Amount:      w.Amount,
		BankDetails: NewBankDetailsDTO(w.BankDetails),
		CycleIDs:    ids,
		Status:      string(w.Status),
		Notes:       w.Notes,
		RequestedAt: w.RequestedAt,
		ProcessedAt: w.ProcessedAt,
	}
}

func NewWithdrawalsResponse(ws []domain.WithdrawalRequest) []WithdrawalResponseDTO {
	out := make([]WithdrawalResponseDTO, len(ws))
	for i := range ws {
		out[i] = NewWithdrawalResponse(&ws[i])
	}
	return out
}


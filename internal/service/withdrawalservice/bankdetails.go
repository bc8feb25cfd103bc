package withdrawalservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/pkg/validate"
)

// ValidateBankDetails normalizes d in place and checks that it carries a
// usable payout destination: an account number with IFSC, or a UPI id.
func ValidateBankDetails(d *domain.BankDetails) error {
	d.AccountHolder = strings.TrimSpace(d.AccountHolder)
	d.AccountNumber = strings.TrimSpace(d.AccountNumber)
	d.IFSC = strings.ToUpper(strings.TrimSpace(d.IFSC))
	d.BankName = strings.TrimSpace(d.BankName)
	d.UPIID = strings.TrimSpace(d.UPIID)
	d.CardNumber = strings.ReplaceAll(strings.TrimSpace(d.CardNumber), " ", "")

	if d.AccountHolder == "" {
		return fmt.Errorf("%w: account holder is required", domain.ErrInvalidBankDetails)
	}
	hasAccount := d.AccountNumber != "" || d.IFSC != ""
	if hasAccount {
		if !validate.IsAccountNumber(d.AccountNumber) {
			return fmt.Errorf("%w: account number must be 6 to 18 digits", domain.ErrInvalidBankDetails)
		}
		if !validate.IsIFSC(d.IFSC) {
			return fmt.Errorf("%w: malformed IFSC code", domain.ErrInvalidBankDetails)
		}
	}
	if d.UPIID != "" && !validate.IsUPIID(d.UPIID) {
		return fmt.Errorf("%w: malformed UPI id", domain.ErrInvalidBankDetails)
	}
	if !hasAccount && d.UPIID == "" {
		return fmt.Errorf("%w: account number with IFSC or a UPI id is required", domain.ErrInvalidBankDetails)
	}
	if d.CardNumber != "" && !validate.IsLuhn(d.CardNumber) {
		return fmt.Errorf("%w: card number fails the Luhn check", domain.ErrInvalidBankDetails)
	}
	return nil
}

func (s *Service) SaveBankDetails(ctx context.Context, d *domain.BankDetails) (*domain.BankDetails, error) {
	if err := ValidateBankDetails(d); err != nil {
		return nil, err
	}
	d.UpdatedAt = s.now().UTC()
	if err := s.banks.SaveBankDetails(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) GetBankDetails(ctx context.Context, userID int) (*domain.BankDetails, error) {
	d, err := s.banks.GetBankDetails(ctx, userID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("bank details of user %d: %w", userID, domain.ErrNotFound)
	}
	return d, nil
}

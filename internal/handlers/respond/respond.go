package respond

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/pkg/utils"
)

var statusByError = []struct {
	err    error
	status int
}{
	{domain.ErrInvalidReferralCode, http.StatusBadRequest},
	{domain.ErrSelfReferral, http.StatusBadRequest},
	{domain.ErrAlreadyLinked, http.StatusConflict},
	{domain.ErrPendingRequestExists, http.StatusConflict},
	{domain.ErrRequestNotPending, http.StatusConflict},
	{domain.ErrInvalidTransition, http.StatusConflict},
	{domain.ErrNoEligibleEarnings, http.StatusUnprocessableEntity},
	{domain.ErrMissingBankDetails, http.StatusUnprocessableEntity},
	{domain.ErrInvalidBankDetails, http.StatusUnprocessableEntity},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrTransientFailure, http.StatusServiceUnavailable},
	{domain.ErrConcurrencyConflict, http.StatusServiceUnavailable},
}

// Status maps a service error to its HTTP status code.
func Status(err error) int {
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// Error writes err as a JSON error response. Unknown errors are logged and
// reported without details.
func Error(w http.ResponseWriter, err error) {
	status := Status(err)
	switch status {
	case http.StatusInternalServerError:
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, status, "Internal server error")
	case http.StatusServiceUnavailable:
		utils.RespondWithError(w, status, "Temporary conflict, try again")
	case http.StatusNotFound:
		utils.RespondWithError(w, status, "Not found")
	default:
		utils.RespondWithError(w, status, err.Error())
	}
}

package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/pkg/utils"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrInvalidReferralCode, http.StatusBadRequest},
		{domain.ErrSelfReferral, http.StatusBadRequest},
		{domain.ErrAlreadyLinked, http.StatusConflict},
		{domain.ErrPendingRequestExists, http.StatusConflict},
		{domain.ErrNoEligibleEarnings, http.StatusUnprocessableEntity},
		{domain.ErrMissingBankDetails, http.StatusUnprocessableEntity},
		{fmt.Errorf("cycle x: %w", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: %w", domain.ErrTransientFailure, domain.ErrConcurrencyConflict), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{"Domain error keeps its message", domain.ErrPendingRequestExists, http.StatusConflict, domain.ErrPendingRequestExists.Error()},
		{"Transient asks to retry", domain.ErrTransientFailure, http.StatusServiceUnavailable, "Temporary conflict, try again"},
		{"Internal error is hidden", errors.New("pq: connection reset"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Error(w, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			var body utils.Response
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.wantMessage, body.Error)
		})
	}
}

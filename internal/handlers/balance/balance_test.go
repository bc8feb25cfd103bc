package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/dto"
	"github.com/GlebRadaev/refledger/pkg/auth"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func userCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, 1)
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetBalance(userCtx(), 1).
					Return(&domain.Balance{
						UserID:            1,
						BalanceEarnings:   decimal.NewFromInt(625),
						WithdrawnEarnings: decimal.NewFromInt(125),
						TotalEarnings:     decimal.NewFromInt(750),
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{
				Balance:   decimal.NewFromInt(625),
				Withdrawn: decimal.NewFromInt(125),
				Total:     decimal.NewFromInt(750),
			},
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				service.EXPECT().GetBalance(userCtx(), 1).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetBalance(userCtx(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
			r = r.WithContext(userCtx())
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, tt.expectedBody.Balance.Equal(body.Balance))
				assert.True(t, tt.expectedBody.Withdrawn.Equal(body.Withdrawn))
				assert.True(t, tt.expectedBody.Total.Equal(body.Total))
			}
		})
	}
}

func TestGetEarningsHandler(t *testing.T) {
	handler, service := NewMock(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := domain.EarningEntry{
		EarningRecord: domain.EarningRecord{
			ID:            uuid.New(),
			BeneficiaryID: 1,
			SourceUserID:  2,
			Level:         1,
			Tier:          1,
			RewardType:    domain.RewardInitial,
			Amount:        decimal.NewFromInt(25),
			CreatedAt:     created,
		},
		SourceName: "bob",
	}

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:  "Default page",
			query: "",
			prepareMock: func() {
				service.EXPECT().
					ListEarnings(userCtx(), 1, domain.Page{Limit: domain.DefaultPageLimit, Offset: 0}).
					Return([]domain.EarningEntry{entry}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:  "Explicit page and limit",
			query: "?page=3&limit=10",
			prepareMock: func() {
				service.EXPECT().
					ListEarnings(userCtx(), 1, domain.Page{Limit: 10, Offset: 20}).
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:         "Invalid page",
			query:        "?page=abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Negative limit",
			query:        "?limit=-1",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Internal server error",
			query: "",
			prepareMock: func() {
				service.EXPECT().ListEarnings(userCtx(), 1, gomock.Any()).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/user/earnings"+tt.query, nil)
			r = r.WithContext(userCtx())
			w := httptest.NewRecorder()
			handler.GetEarnings(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.EarningResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
				if tt.expectedLen > 0 {
					assert.Equal(t, "bob", body[0].SourceName)
					assert.Equal(t, entry.ID.String(), body[0].ID)
					assert.True(t, decimal.NewFromInt(25).Equal(body[0].Amount))
				}
			}
		})
	}
}

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/dto"
	"github.com/GlebRadaev/refledger/internal/handlers/respond"
	"github.com/GlebRadaev/refledger/pkg/utils"
)

//go:generate mockgen -destination=mock_admin.go -package=admin . WithdrawalService,ReferralService

type WithdrawalService interface {
	ListByStatus(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error)
	Approve(ctx context.Context, requestID uuid.UUID, notes string) (*domain.WithdrawalRequest, error)
	Reject(ctx context.Context, requestID uuid.UUID, notes string) (*domain.WithdrawalRequest, error)
	MarkPaid(ctx context.Context, requestID uuid.UUID, notes string) (*domain.WithdrawalRequest, error)
}

type ReferralService interface {
	SetCodeActive(ctx context.Context, userID int, active bool) error
}

type AdminHandler struct {
	withdrawalService WithdrawalService
	referralService   ReferralService
}

func New(withdrawalService WithdrawalService, referralService ReferralService) *AdminHandler {
	return &AdminHandler{
		withdrawalService: withdrawalService,
		referralService:   referralService,
	}
}

// ListWithdrawals godoc
//
//	@Summary		List withdrawal requests by status
//	@Description	List every withdrawal request in the given status, oldest first. Defaults to pending.
//	@Tags			Admin
//	@Security		ApiKeyAuth
//	@Produce		json
//	@Param			status	query		string	false	"pending, approved, rejected or paid"
//	@Success		200		{array}		dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown status"
//	@Failure		401		{object}	utils.Response	"Invalid API key"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *AdminHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	status := domain.WithdrawalPending
	if raw := r.URL.Query().Get("status"); raw != "" {
		var ok bool
		if status, ok = domain.ParseWithdrawalStatus(raw); !ok {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown status")
			return
		}
	}

	requests, err := h.withdrawalService.ListByStatus(r.Context(), status)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalsResponse(requests))
}

// Approve godoc
//
//	@Summary		Approve a withdrawal
//	@Tags			Admin
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Request id"
//	@Param			request	body		dto.AdminNotesRequestDTO	false	"Admin notes"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		409		{object}	utils.Response	"Transition not allowed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/approve [post]
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.withdrawalService.Approve)
}

// Reject godoc
//
//	@Summary		Reject a withdrawal
//	@Tags			Admin
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Request id"
//	@Param			request	body		dto.AdminNotesRequestDTO	false	"Admin notes"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		409		{object}	utils.Response	"Transition not allowed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/reject [post]
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.withdrawalService.Reject)
}

// MarkPaid godoc
//
//	@Summary		Mark an approved withdrawal as paid
//	@Tags			Admin
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Request id"
//	@Param			request	body		dto.AdminNotesRequestDTO	false	"Admin notes"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		409		{object}	utils.Response	"Transition not allowed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/paid [post]
func (h *AdminHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.withdrawalService.MarkPaid)
}

type transitionFn func(ctx context.Context, requestID uuid.UUID, notes string) (*domain.WithdrawalRequest, error)

func (h *AdminHandler) transition(w http.ResponseWriter, r *http.Request, fn transitionFn) {
	requestID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}
	var req dto.AdminNotesRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := fn(r.Context(), requestID, req.Notes)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalResponse(request))
}

// DeactivateCode godoc
//
//	@Summary		Deactivate a referral code
//	@Description	Stop new users from linking under this user. Existing links are kept.
//	@Tags			Admin
//	@Security		ApiKeyAuth
//	@Param			id	path	int	true	"User id"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/referral-code/deactivate [post]
func (h *AdminHandler) DeactivateCode(w http.ResponseWriter, r *http.Request) {
	h.setCodeActive(w, r, false)
}

// ActivateCode godoc
//
//	@Summary		Activate a referral code
//	@Tags			Admin
//	@Security		ApiKeyAuth
//	@Param			id	path	int	true	"User id"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/referral-code/activate [post]
func (h *AdminHandler) ActivateCode(w http.ResponseWriter, r *http.Request) {
	h.setCodeActive(w, r, true)
}

func (h *AdminHandler) setCodeActive(w http.ResponseWriter, r *http.Request, active bool) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if err := h.referralService.SetCodeActive(r.Context(), userID, active); err != nil {
		respond.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

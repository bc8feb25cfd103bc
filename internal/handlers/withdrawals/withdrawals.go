package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/dto"
	"github.com/GlebRadaev/refledger/internal/handlers/respond"
	"github.com/GlebRadaev/refledger/internal/service/withdrawalservice"
	"github.com/GlebRadaev/refledger/pkg/auth"
	"github.com/GlebRadaev/refledger/pkg/utils"
)

//go:generate mockgen -destination=mock_withdrawals.go -package=withdrawals . Service

type Service interface {
	RequestWithdrawal(ctx context.Context, userID int, notes string) (*domain.WithdrawalRequest, error)
	UpdateRequest(ctx context.Context, userID int, requestID uuid.UUID, in withdrawalservice.UpdateInput) (*domain.WithdrawalRequest, error)
	History(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
	SaveBankDetails(ctx context.Context, d *domain.BankDetails) (*domain.BankDetails, error)
	GetBankDetails(ctx context.Context, userID int) (*domain.BankDetails, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// CreateWithdrawal godoc
//
//	@Summary		Request a withdrawal
//	@Description	Withdraw the earnings of every completed cycle to the saved bank details. Only one request may be pending at a time.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalCreateRequestDTO	false	"Optional notes"
//	@Success		201		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"A request is already pending"
//	@Failure		422		{object}	utils.Response	"Nothing to withdraw or bank details missing"
//	@Failure		503		{object}	utils.Response	"Temporary conflict, try again"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/withdrawals [post]
func (h *WithdrawalHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawalCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.withdrawalService.RequestWithdrawal(r.Context(), userID, req.Notes)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewWithdrawalResponse(request))
}

// UpdateWithdrawal godoc
//
//	@Summary		Update a pending withdrawal
//	@Description	Change the notes or the bank details of the user's own pending request.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Request id"
//	@Param			request	body		dto.WithdrawalUpdateRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		409		{object}	utils.Response	"Request is no longer pending"
//	@Failure		422		{object}	utils.Response	"Invalid bank details"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/withdrawals/{id} [patch]
func (h *WithdrawalHandler) UpdateWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	requestID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}
	var req dto.WithdrawalUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	in := withdrawalservice.UpdateInput{Notes: req.Notes}
	if req.BankDetails != nil {
		in.BankDetails = req.BankDetails.ToDomain(userID)
	}
	request, err := h.withdrawalService.UpdateRequest(r.Context(), userID, requestID, in)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalResponse(request))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Get the withdrawal requests of the authenticated user, newest first.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Withdrawals history"
//	@Success		204	{object}	utils.Response				"Withdrawals not found"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	requests, err := h.withdrawalService.History(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	if len(requests) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalsResponse(requests))
}

// GetBankDetails godoc
//
//	@Summary		Get bank details
//	@Description	Get the payout details saved by the authenticated user.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BankDetailsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No bank details saved"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/bank-details [get]
func (h *WithdrawalHandler) GetBankDetails(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	details, err := h.withdrawalService.GetBankDetails(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BankDetailsResponseDTO{
		BankDetailsDTO: dto.NewBankDetailsDTO(*details),
		UpdatedAt:      details.UpdatedAt,
	})
}

// SaveBankDetails godoc
//
//	@Summary		Save bank details
//	@Description	Create or replace the payout details of the authenticated user. An account number with IFSC or a UPI id is required.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BankDetailsDTO	true	"Bank details"
//	@Success		200		{object}	dto.BankDetailsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid bank details"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/bank-details [put]
func (h *WithdrawalHandler) SaveBankDetails(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BankDetailsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	details, err := h.withdrawalService.SaveBankDetails(r.Context(), req.ToDomain(userID))
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BankDetailsResponseDTO{
		BankDetailsDTO: dto.NewBankDetailsDTO(*details),
		UpdatedAt:      details.UpdatedAt,
	})
}

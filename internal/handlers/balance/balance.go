package balance

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/dto"
	"github.com/GlebRadaev/refledger/internal/handlers/respond"
	"github.com/GlebRadaev/refledger/pkg/auth"
	"github.com/GlebRadaev/refledger/pkg/utils"
)

//go:generate mockgen -destination=mock_balance.go -package=balance . Service

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	ListEarnings(ctx context.Context, userID int, page domain.Page) ([]domain.EarningEntry, error)
}

type BalanceHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the withdrawable, withdrawn and total referral earnings of the authenticated user.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponse(balance))
}

// GetEarnings godoc
//
//	@Summary		Get earnings history
//	@Description	List earning records of the authenticated user, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int							false	"Page number, starting at 1"
//	@Param			limit	query		int							false	"Page size, at most 100"
//	@Success		200		{array}		dto.EarningResponseDTO		"Earnings history"
//	@Failure		400		{object}	utils.Response				"Invalid pagination"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/earnings [get]
func (h *BalanceHandler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	page, ok := queryInt(r, "page")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid page")
		return
	}
	limit, ok := queryInt(r, "limit")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	entries, err := h.ledgerService.ListEarnings(r.Context(), userID, domain.NewPage(page, limit))
	if err != nil {
		respond.Error(w, err)
		return
	}

	response := make([]dto.EarningResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.NewEarningResponse(e)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// queryInt returns zero for an absent parameter.
func queryInt(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

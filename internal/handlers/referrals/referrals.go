package referrals

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/dto"
	"github.com/GlebRadaev/refledger/internal/handlers/respond"
	"github.com/GlebRadaev/refledger/pkg/auth"
	"github.com/GlebRadaev/refledger/pkg/utils"
)

//go:generate mockgen -destination=mock_referrals.go -package=referrals . Service

type Service interface {
	LinkReferral(ctx context.Context, childID int, code string) (*domain.ReferralEdge, error)
	ListReferrals(ctx context.Context, parentID int) ([]domain.ReferredUser, error)
}

type ReferralHandler struct {
	referralService Service
}

func New(referralService Service) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// ApplyCode godoc
//
//	@Summary		Apply a referral code
//	@Description	Link the authenticated user under the owner of the referral code.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplyReferralRequestDTO	true	"Referral code"
//	@Success		200		{object}	dto.ReferralEdgeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid or inactive code, self-referral"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"User already has a referrer"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/referral [post]
func (h *ReferralHandler) ApplyCode(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ApplyReferralRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Code) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	edge, err := h.referralService.LinkReferral(r.Context(), userID, strings.TrimSpace(req.Code))
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReferralEdgeResponseDTO{
		ParentID:  edge.ParentID,
		ChildID:   edge.ChildID,
		CreatedAt: edge.CreatedAt,
	})
}

// GetReferrals godoc
//
//	@Summary		List referred users
//	@Description	List the users referred by the authenticated user with their display names.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReferredUserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/referrals [get]
func (h *ReferralHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	users, err := h.referralService.ListReferrals(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	response := make([]dto.ReferredUserResponseDTO, len(users))
	for i, u := range users {
		response[i] = dto.NewReferredUserResponse(u)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

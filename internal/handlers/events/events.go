package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/dto"
	"github.com/GlebRadaev/refledger/internal/handlers/respond"
	"github.com/GlebRadaev/refledger/internal/service/rewardservice"
	"github.com/GlebRadaev/refledger/pkg/utils"
)

//go:generate mockgen -destination=mock_events.go -package=events . Service

type Service interface {
	OnSubscriptionStatusChanged(ctx context.Context, sub domain.Subscription) (rewardservice.Outcome, error)
}

type EventHandler struct {
	rewardService Service
}

func New(rewardService Service) *EventHandler {
	return &EventHandler{
		rewardService: rewardService,
	}
}

// SubscriptionChanged godoc
//
//	@Summary		Report a subscription change
//	@Description	Store the subscription state of a user and evaluate the referral reward of their referrer.
//	@Tags			Internal
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubscriptionEventRequestDTO	true	"Subscription state"
//	@Success		200		{object}	dto.SubscriptionEventResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid event"
//	@Failure		401		{object}	utils.Response	"Invalid API key"
//	@Failure		503		{object}	utils.Response	"Temporary conflict, try again"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/internal/subscriptions/events [post]
func (h *EventHandler) SubscriptionChanged(w http.ResponseWriter, r *http.Request) {
	var req dto.SubscriptionEventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	status, ok := domain.ParseSubscriptionStatus(req.Status)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown subscription status")
		return
	}

	outcome, err := h.rewardService.OnSubscriptionStatusChanged(r.Context(), domain.Subscription{
		UserID:    req.UserID,
		Plan:      req.Plan,
		Status:    status,
		Paid:      req.Paid,
		ExpiresAt: req.ExpiresAt,
		UpdatedAt: req.UpdatedAt,
	})
	if err != nil {
		if errors.Is(err, rewardservice.ErrInvalidEvent) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SubscriptionEventResponseDTO{Outcome: string(outcome)})
}

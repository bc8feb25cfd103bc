package cycles

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/dto"
	"github.com/GlebRadaev/refledger/internal/handlers/respond"
	"github.com/GlebRadaev/refledger/pkg/auth"
	"github.com/GlebRadaev/refledger/pkg/utils"
)

//go:generate mockgen -destination=mock_cycles.go -package=cycles . Service

type Service interface {
	ListCycles(ctx context.Context, userID int) ([]domain.ReferralCycle, error)
	GetCycle(ctx context.Context, userID int, cycleID uuid.UUID) (*domain.CycleDetail, error)
}

type CycleHandler struct {
	cycleService Service
}

func New(cycleService Service) *CycleHandler {
	return &CycleHandler{
		cycleService: cycleService,
	}
}

// GetCycles godoc
//
//	@Summary		List referral cycles
//	@Description	List the referral cycles of the authenticated user, newest first. Stale open cycles are reported as expired.
//	@Tags			Cycles
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CycleResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/cycles [get]
func (h *CycleHandler) GetCycles(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	cycles, err := h.cycleService.ListCycles(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	response := make([]dto.CycleResponseDTO, len(cycles))
	for i, c := range cycles {
		response[i] = dto.NewCycleResponse(c)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetCycle godoc
//
//	@Summary		Get a referral cycle
//	@Description	Get one cycle of the authenticated user together with the users it counted.
//	@Tags			Cycles
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Cycle id"
//	@Success		200	{object}	dto.CycleDetailResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid cycle id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Cycle not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/cycles/{id} [get]
func (h *CycleHandler) GetCycle(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	cycleID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid cycle id")
		return
	}

	detail, err := h.cycleService.GetCycle(r.Context(), userID, cycleID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCycleDetailResponse(detail))
}

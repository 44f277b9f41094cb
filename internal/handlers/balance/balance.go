package balance

import (
	"context"
	"net/http"

	"github.com/wkittisak/shoppay/internal/domain"
	"github.com/wkittisak/shoppay/internal/dto"
	"github.com/wkittisak/shoppay/pkg/auth"
	"github.com/wkittisak/shoppay/pkg/utils"
)

type Service interface {
	CreateBalance(ctx context.Context, userID int) (*domain.Balance, error)
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the current store-credit balance with top-up and spend totals for the authenticated user.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithErrorCode(w, http.StatusInternalServerError, "STORAGE_FAILURE", "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current:  balance.CurrentBalance,
		ToppedUp: balance.ToppedUpTotal,
		Spent:    balance.SpentTotal,
	})
}

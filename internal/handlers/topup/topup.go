package topup

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/wkittisak/shoppay/internal/domain"
	"github.com/wkittisak/shoppay/internal/dto"
	topupservice "github.com/wkittisak/shoppay/internal/service/topupservice"
	"github.com/wkittisak/shoppay/pkg/auth"
	"github.com/wkittisak/shoppay/pkg/utils"
)

type Service interface {
	Verify(ctx context.Context, cmd topupservice.VerifyCommand) (*domain.SlipMatch, error)
	Apply(ctx context.Context, userID int, match *domain.SlipMatch, amount decimal.Decimal, transRef string) (*domain.Balance, error)
}

type TopupHandler struct {
	topupService Service
}

func New(topupService Service) *TopupHandler {
	return &TopupHandler{
		topupService: topupService,
	}
}

func respondTopupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, topupservice.ErrDuplicateTransRef):
		utils.RespondWithErrorCode(w, http.StatusBadRequest, "DUPLICATE_TRANS_REF", err.Error())
	case errors.Is(err, topupservice.ErrNoAccountsConfigured):
		utils.RespondWithErrorCode(w, http.StatusNotFound, "NO_ACCOUNTS_CONFIGURED", err.Error())
	case errors.Is(err, topupservice.ErrAccountMismatch):
		utils.RespondWithErrorCode(w, http.StatusBadRequest, "ACCOUNT_MISMATCH", err.Error())
	case errors.Is(err, topupservice.ErrInvalidAmount):
		utils.RespondWithErrorCode(w, http.StatusBadRequest, "VALIDATION", err.Error())
	default:
		utils.RespondWithErrorCode(w, http.StatusInternalServerError, "STORAGE_FAILURE", "Internal server error")
	}
}

// VerifySlip godoc
//
//	@Summary		Verify a payment slip
//	@Description	Match a bank-transfer slip against the registered receiving accounts without crediting anything.
//	@Tags			Topup
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifySlipRequestDTO	true	"Slip payload"
//	@Success		200		{object}	dto.SlipMatchResponseDTO	"Matched receiving account"
//	@Failure		400		{object}	utils.Response				"Duplicate reference or account mismatch"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"No receiving accounts configured"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/topup/verify [post]
func (h *TopupHandler) VerifySlip(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifySlipRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithErrorCode(w, http.StatusBadRequest, "VALIDATION", "invalid request body")
		return
	}

	match, err := h.topupService.Verify(r.Context(), topupservice.VerifyCommand{
		ReceiverAccount: req.ReceiverAccount,
		ReceiverName:    req.ReceiverName,
		Amount:          req.Amount,
		TransRef:        req.TransRef,
	})
	if err != nil {
		respondTopupError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SlipMatchResponseDTO{
		AccountID:     match.Account.ID,
		AccountSuffix: match.Account.AccountSuffix,
		DisplayName:   match.DisplayName,
		MatchedBy:     match.MatchedBy,
	})
}

// Topup godoc
//
//	@Summary		Redeem a payment slip for balance credit
//	@Description	Verify the slip and, in one transaction, credit the balance and consume the transfer reference.
//	@Tags			Topup
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifySlipRequestDTO	true	"Slip payload"
//	@Success		200		{object}	dto.TopupResponseDTO		"Balance after credit"
//	@Failure		400		{object}	utils.Response				"Duplicate reference, mismatch or validation failure"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"No receiving accounts configured"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/topup [post]
func (h *TopupHandler) Topup(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.VerifySlipRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithErrorCode(w, http.StatusBadRequest, "VALIDATION", "invalid request body")
		return
	}

	match, err := h.topupService.Verify(r.Context(), topupservice.VerifyCommand{
		ReceiverAccount: req.ReceiverAccount,
		ReceiverName:    req.ReceiverName,
		Amount:          req.Amount,
		TransRef:        req.TransRef,
	})
	if err != nil {
		respondTopupError(w, err)
		return
	}

	balance, err := h.topupService.Apply(r.Context(), userID, match, req.Amount, req.TransRef)
	if err != nil {
		respondTopupError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TopupResponseDTO{
		Balance: dto.BalanceResponseDTO{
			Current:  balance.CurrentBalance,
			ToppedUp: balance.ToppedUpTotal,
			Spent:    balance.SpentTotal,
		},
		Message: "top-up applied",
	})
}

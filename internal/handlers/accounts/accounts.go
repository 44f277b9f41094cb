package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wkittisak/shoppay/internal/domain"
	"github.com/wkittisak/shoppay/internal/dto"
	accountservice "github.com/wkittisak/shoppay/internal/service/accountservice"
	"github.com/wkittisak/shoppay/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Account, error)
	Create(ctx context.Context, cmd accountservice.AccountCommand) (*domain.Account, error)
	Update(ctx context.Context, id int, cmd accountservice.AccountCommand) (*domain.Account, error)
	Delete(ctx context.Context, id int) error
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

func toResponse(account *domain.Account) dto.AccountResponseDTO {
	return dto.AccountResponseDTO{
		ID:            account.ID,
		AccountNumber: account.AccountNumber,
		AccountSuffix: account.AccountSuffix,
		ReceiverName:  account.ReceiverName,
		DisplayName:   account.DisplayName,
		FullName:      account.FullName,
		IsActive:      account.IsActive,
		CreatedAt:     account.CreatedAt,
	}
}

func respondAccountError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accountservice.ErrInvalidAccountNumber):
		utils.RespondWithErrorCode(w, http.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, accountservice.ErrDuplicateSuffix):
		utils.RespondWithErrorCode(w, http.StatusConflict, "DUPLICATE_SUFFIX", err.Error())
	case errors.Is(err, accountservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithErrorCode(w, http.StatusInternalServerError, "STORAGE_FAILURE", "Internal server error")
	}
}

// List godoc
//
//	@Summary		List slip-receiving accounts
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/slip-accounts [get]
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.List(r.Context())
	if err != nil {
		utils.RespondWithErrorCode(w, http.StatusInternalServerError, "STORAGE_FAILURE", "Internal server error")
		return
	}

	response := make([]dto.AccountResponseDTO, len(accounts))
	for i := range accounts {
		response[i] = toResponse(&accounts[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Create godoc
//
//	@Summary		Register a slip-receiving account
//	@Description	Derives the last-4 suffix from the account number; rejects a suffix already used by another active account.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AccountRequestDTO	true	"Account payload"
//	@Success		200		{object}	dto.AccountResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid account number"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Duplicate active suffix"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/slip-accounts [post]
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithErrorCode(w, http.StatusBadRequest, "VALIDATION", "invalid request body")
		return
	}

	account, err := h.accountService.Create(r.Context(), accountservice.AccountCommand{
		AccountNumber: req.AccountNumber,
		ReceiverName:  req.ReceiverName,
		DisplayName:   req.DisplayName,
		FullName:      req.FullName,
		IsActive:      req.IsActive,
	})
	if err != nil {
		respondAccountError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(account))
}

// Update godoc
//
//	@Summary		Update a slip-receiving account
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Account ID"
//	@Param			request	body		dto.AccountRequestDTO	true	"Account payload"
//	@Success		200		{object}	dto.AccountResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid account number or ID"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		409		{object}	utils.Response	"Duplicate active suffix"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/slip-accounts/{id} [put]
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithErrorCode(w, http.StatusBadRequest, "VALIDATION", "invalid account id")
		return
	}

	var req dto.AccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithErrorCode(w, http.StatusBadRequest, "VALIDATION", "invalid request body")
		return
	}

	account, err := h.accountService.Update(r.Context(), id, accountservice.AccountCommand{
		AccountNumber: req.AccountNumber,
		ReceiverName:  req.ReceiverName,
		DisplayName:   req.DisplayName,
		FullName:      req.FullName,
		IsActive:      req.IsActive,
	})
	if err != nil {
		respondAccountError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(account))
}

// Delete godoc
//
//	@Summary		Delete a slip-receiving account
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Account ID"
//	@Success		200	{object}	utils.Response	"Account deleted"
//	@Failure		400	{object}	utils.Response	"Invalid ID"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/slip-accounts/{id} [delete]
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithErrorCode(w, http.StatusBadRequest, "VALIDATION", "invalid account id")
		return
	}

	if err := h.accountService.Delete(r.Context(), id); err != nil {
		respondAccountError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "account deleted"})
}

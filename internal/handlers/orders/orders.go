package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wkittisak/shoppay/internal/domain"
	"github.com/wkittisak/shoppay/internal/dto"
	orderservice "github.com/wkittisak/shoppay/internal/service/orderservice"
	"github.com/wkittisak/shoppay/pkg/auth"
	"github.com/wkittisak/shoppay/pkg/utils"
)

type Service interface {
	Checkout(ctx context.Context, userID *int, cmd orderservice.CheckoutCommand) (*domain.Order, error)
	GetOrders(ctx context.Context, userID int) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Checkout godoc
//
//	@Summary		Submit an order
//	@Description	Commit a purchase: order header, item snapshots and, for authenticated buyers, the balance debit. Guest checkout is allowed without a token.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CheckoutRequestDTO	true	"Checkout payload"
//	@Success		200		{object}	dto.CheckoutResponseDTO	"Order created"
//	@Failure		400		{object}	utils.Response			"Validation failure or insufficient balance"
//	@Failure		401		{object}	utils.Response			"Invalid token supplied"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var userID *int
	if id, ok := r.Context().Value(auth.UserIDKey).(int); ok {
		userID = &id
	}

	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithErrorCode(w, http.StatusBadRequest, "VALIDATION", "invalid request body")
		return
	}

	cmd := orderservice.CheckoutCommand{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Items:     make([]orderservice.CheckoutItem, len(req.Items)),
	}
	for i, it := range req.Items {
		cmd.Items[i] = orderservice.CheckoutItem{
			ProductName:  it.ProductName,
			ProductImage: it.ProductImage,
			Price:        it.Price,
			Quantity:     it.Quantity,
		}
	}

	order, err := h.orderService.Checkout(r.Context(), userID, cmd)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrMissingShippingInfo),
			errors.Is(err, orderservice.ErrEmptyOrder),
			errors.Is(err, orderservice.ErrZeroTotal):
			utils.RespondWithErrorCode(w, http.StatusBadRequest, "VALIDATION", err.Error())
		case errors.Is(err, orderservice.ErrInsufficientBalance):
			utils.RespondWithErrorCode(w, http.StatusBadRequest, "INSUFFICIENT_BALANCE", err.Error())
		default:
			utils.RespondWithErrorCode(w, http.StatusInternalServerError, "STORAGE_FAILURE", "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CheckoutResponseDTO{
		OrderNumber: order.Number,
		Total:       order.Total,
		Message:     "order created",
	})
}

// GetOrders godoc
//
//	@Summary		Get order history
//	@Description	List the authenticated user's orders, newest first.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetOrdersResponseDTO	"Order history"
//	@Success		204	{object}	utils.Response				"No orders"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	orders, err := h.orderService.GetOrders(r.Context(), userID)
	if err != nil {
		utils.RespondWithErrorCode(w, http.StatusInternalServerError, "STORAGE_FAILURE", "Failed to fetch orders")
		return
	}

	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Orders not found")
		return
	}

	response := make([]dto.GetOrdersResponseDTO, len(orders))
	for i, order := range orders {
		response[i] = dto.GetOrdersResponseDTO{
			Number:    order.Number,
			Total:     order.Total,
			Status:    order.Status,
			CreatedAt: order.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

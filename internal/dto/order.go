package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckoutItemDTO struct {
	ProductName  string          `json:"product_name" example:"Keycap set"`
	ProductImage string          `json:"product_image" example:"https://cdn.example.com/keycaps.png"`
	Price        decimal.Decimal `json:"price" example:"250"`
	Quantity     int             `json:"quantity" example:"2"`
}

type CheckoutRequestDTO struct {
	FirstName string            `json:"first_name" example:"Somchai"`
	LastName  string            `json:"last_name" example:"Jaidee"`
	Phone     string            `json:"phone" example:"0812345678"`
	Address   string            `json:"address" example:"99/1 Sukhumvit Rd, Bangkok"`
	Items     []CheckoutItemDTO `json:"items"`
}

type CheckoutResponseDTO struct {
	OrderNumber string          `json:"order_number" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Total       decimal.Decimal `json:"total" example:"500"`
	Message     string          `json:"message" example:"order created"`
}

type GetOrdersResponseDTO struct {
	Number    string          `json:"number" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Total     decimal.Decimal `json:"total" example:"500"`
	Status    string          `json:"status" example:"pending"`
	CreatedAt time.Time       `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

package dto

import "github.com/shopspring/decimal"

type BalanceResponseDTO struct {
	Current  decimal.Decimal `json:"current" example:"500.5"`
	ToppedUp decimal.Decimal `json:"topped_up" example:"1000"`
	Spent    decimal.Decimal `json:"spent" example:"499.5"`
}

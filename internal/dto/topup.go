package dto

import "github.com/shopspring/decimal"

type VerifySlipRequestDTO struct {
	ReceiverAccount string          `json:"receiver_account" example:"xxx-x-x7890-x"`
	ReceiverName    string          `json:"receiver_name,omitempty" example:"Somchai J."`
	Amount          decimal.Decimal `json:"amount" example:"500"`
	TransRef        string          `json:"trans_ref,omitempty" example:"2024042199000123456"`
}

type SlipMatchResponseDTO struct {
	AccountID     int    `json:"account_id" example:"1"`
	AccountSuffix string `json:"account_suffix" example:"7890"`
	DisplayName   string `json:"display_name" example:"Shop Receiving Account"`
	MatchedBy     string `json:"matched_by" example:"account_suffix"`
}

type TopupResponseDTO struct {
	Balance BalanceResponseDTO `json:"balance"`
	Message string             `json:"message" example:"top-up applied"`
}

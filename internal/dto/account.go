package dto

import "time"

type AccountRequestDTO struct {
	AccountNumber string `json:"account_number" example:"123-4-56789-0"`
	ReceiverName  string `json:"receiver_name" example:"Somchai J."`
	DisplayName   string `json:"display_name" example:"Shop Receiving Account"`
	FullName      string `json:"full_name" example:"Somchai Jaidee"`
	IsActive      bool   `json:"is_active" example:"true"`
}

type AccountResponseDTO struct {
	ID            int       `json:"id" example:"1"`
	AccountNumber string    `json:"account_number" example:"123-4-56789-0"`
	AccountSuffix string    `json:"account_suffix" example:"7890"`
	ReceiverName  string    `json:"receiver_name" example:"Somchai J."`
	DisplayName   string    `json:"display_name" example:"Shop Receiving Account"`
	FullName      string    `json:"full_name" example:"Somchai Jaidee"`
	IsActive      bool      `json:"is_active" example:"true"`
	CreatedAt     time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

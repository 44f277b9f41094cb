package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Balance struct {
	ID             int             `db:"id"`
	UserID         int             `db:"user_id"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	ToppedUpTotal  decimal.Decimal `db:"topped_up_total"`
	SpentTotal     decimal.Decimal `db:"spent_total"`
}

// Account is a registered slip-receiving bank account. Matching is done on
// the derived last-4-digit suffix only; the full number is kept for display.
type Account struct {
	ID            int       `db:"id"`
	AccountNumber string    `db:"account_number"`
	AccountSuffix string    `db:"account_suffix"`
	ReceiverName  string    `db:"receiver_name"`
	DisplayName   string    `db:"display_name"`
	FullName      string    `db:"full_name"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
}

const (
	PendingTransferStatus  string = "pending"
	VerifiedTransferStatus string = "verified"
)

// TransferReference records one bank transfer redemption attempt. At most
// one row per trans_ref may ever reach the verified status.
type TransferReference struct {
	ID         int             `db:"id"`
	TransRef   string          `db:"trans_ref"`
	UserID     *int            `db:"user_id"`
	AccountID  *int            `db:"account_id"`
	Amount     decimal.Decimal `db:"amount"`
	Status     string          `db:"status"`
	CreatedAt  time.Time       `db:"created_at"`
	VerifiedAt *time.Time      `db:"verified_at"`
}

const PendingOrderStatus string = "pending"

// Order header. UserID is nil for guest checkout.
type Order struct {
	ID        int             `db:"id"`
	Number    string          `db:"number"`
	UserID    *int            `db:"user_id"`
	FirstName string          `db:"first_name"`
	LastName  string          `db:"last_name"`
	Phone     string          `db:"phone"`
	Address   string          `db:"address"`
	Total     decimal.Decimal `db:"total"`
	Status    string          `db:"status"`
	CreatedAt time.Time       `db:"created_at"`
}

// OrderItem is an immutable snapshot of a catalog product at purchase time.
type OrderItem struct {
	ID           int             `db:"id"`
	OrderID      int             `db:"order_id"`
	ProductName  string          `db:"product_name"`
	ProductImage string          `db:"product_image"`
	Price        decimal.Decimal `db:"price"`
	Quantity     int             `db:"quantity"`
	Position     int             `db:"position"`
}

// SlipMatch is the result of verifying a payment slip against the account
// store.
type SlipMatch struct {
	Account     Account
	DisplayName string
	MatchedBy   string
}

const (
	MatchedBySuffix string = "account_suffix"
	MatchedByName   string = "receiver_name"
)

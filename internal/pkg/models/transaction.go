package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction states
const (
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
	TransactionRefunded  = "refunded"
)

// Transaction represents a captured checkout for one ticket. The buyer's
// display name is recorded here; the ticket's passenger of record is never
// overwritten.
type Transaction struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	TicketID           uuid.UUID       `json:"ticket_id" db:"ticket_id"`
	BuyerID            uuid.UUID       `json:"buyer_id" db:"buyer_id"`
	SellerID           uuid.UUID       `json:"seller_id" db:"seller_id"`
	Amount             decimal.Decimal `json:"amount" db:"amount"`
	PlatformCommission decimal.Decimal `json:"platform_commission" db:"platform_commission"`
	SellerAmount       decimal.Decimal `json:"seller_amount" db:"seller_amount"`
	Currency           string          `json:"currency" db:"currency"`
	RazorpayOrderID    string          `json:"razorpay_order_id" db:"razorpay_order_id"`
	RazorpayPaymentID  string          `json:"razorpay_payment_id" db:"razorpay_payment_id"`
	BuyerName          string          `json:"buyer_name" db:"buyer_name"`
	Status             string          `json:"status" db:"status"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty" db:"completed_at"`
}

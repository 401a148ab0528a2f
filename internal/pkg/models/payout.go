package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payout states. A payout is a bookkeeping row owed to a seller; actual
// disbursement happens out of band.
const (
	PayoutPending    = "pending"
	PayoutProcessing = "processing"
	PayoutPaid       = "paid"
	PayoutCancelled  = "cancelled"
)

// Payout represents money owed to a seller for a completed transaction
type Payout struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	TransactionID uuid.UUID       `json:"transaction_id" db:"transaction_id"`
	SellerID      uuid.UUID       `json:"seller_id" db:"seller_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Status        string          `json:"status" db:"status"`
	Method        string          `json:"method" db:"method"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

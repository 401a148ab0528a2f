package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NATS subjects published by the marketplace service
const (
	SubjectTicketListed      = "tickets.listed"
	SubjectTicketReserved    = "tickets.reserved"
	SubjectPaymentCompleted  = "payments.completed"
	SubjectPaymentFailed     = "payments.failed"
	SubjectPaymentRefunded   = "payments.refunded"
	SubjectUserRegistered    = "users.registered"
)

// TicketEvent is published on ticket lifecycle transitions
type TicketEvent struct {
	TicketID  string    `json:"ticket_id"`
	SellerID  string    `json:"seller_id"`
	BuyerID   string    `json:"buyer_id,omitempty"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// PaymentEvent is published on payment lifecycle transitions
type PaymentEvent struct {
	TransactionID string          `json:"transaction_id"`
	TicketID      string          `json:"ticket_id"`
	BuyerID       string          `json:"buyer_id"`
	SellerID      string          `json:"seller_id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	Timestamp     time.Time       `json:"timestamp"`
}

// UserEvent is published when a user registers or completes their profile
type UserEvent struct {
	UserID    string    `json:"user_id"`
	MSISDN    string    `json:"msisdn"`
	Timestamp time.Time `json:"timestamp"`
}

package models

import (
	"github.com/shopspring/decimal"
)

// CreateOrderRequest represents a checkout order creation request.
// Pointer fields distinguish "missing" from zero values so validation can
// report exactly which fields were omitted.
type CreateOrderRequest struct {
	TicketID           string           `json:"ticket_id"`
	Amount             *decimal.Decimal `json:"amount"`
	SellerAmount       *decimal.Decimal `json:"seller_amount"`
	PlatformCommission *decimal.Decimal `json:"platform_commission"`
}

// OrderResponse carries the gateway order back to the checkout widget
type OrderResponse struct {
	OrderID            string          `json:"order_id"`
	Amount             int64           `json:"amount"` // minor units
	Currency           string          `json:"currency"`
	RazorpayKeyID      string          `json:"razorpay_key_id"`
	Receipt            string          `json:"receipt"`
	TicketID           string          `json:"ticket_id"`
	SellerAmount       decimal.Decimal `json:"seller_amount"`
	PlatformCommission decimal.Decimal `json:"platform_commission"`
}

// GatewayOrder is the order object returned by the payment gateway
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// VerifyPaymentRequest represents a checkout completion callback
type VerifyPaymentRequest struct {
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	TicketID          string `json:"ticket_id"`
	BuyerName         string `json:"buyer_name"`
}

// PaymentResult summarises a completed checkout
type PaymentResult struct {
	Transaction *Transaction `json:"transaction"`
	Ticket      *Ticket      `json:"ticket"`
}

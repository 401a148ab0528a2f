package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

type razorpayOrderRequest struct {
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder creates a gateway order over the Razorpay REST API using
// basic auth from config. Amounts are in minor units.
func (g *MarketplaceGW) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*models.GatewayOrder, error) {
	req := razorpayOrderRequest{
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
	}

	var order models.GatewayOrder
	if err := g.razorpayClient.PostJSON(ctx, "/v1/orders", req, &order); err != nil {
		return nil, fmt.Errorf("razorpay order creation failed: %w", err)
	}

	return &order, nil
}

// VerifyPaymentSignature checks the checkout callback signature:
// HMAC-SHA256 over "order_id|payment_id" with the key secret.
func (g *MarketplaceGW) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	payload := fmt.Sprintf("%s|%s", orderID, paymentID)
	return verifyHMAC([]byte(payload), signature, g.cfg.Razorpay.KeySecret)
}

// VerifyWebhookSignature checks a webhook delivery signature: HMAC-SHA256
// over the raw body with the webhook secret.
func (g *MarketplaceGW) VerifyWebhookSignature(body []byte, signature string) bool {
	return verifyHMAC(body, signature, g.cfg.Razorpay.WebhookSecret)
}

func verifyHMAC(payload []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

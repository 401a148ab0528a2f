package models

import (
	"encoding/json"
	"time"
)

// Gateway webhook event types handled by the marketplace
const (
	WebhookPaymentCaptured = "payment.captured"
	WebhookPaymentFailed   = "payment.failed"
	WebhookRefundProcessed = "refund.processed"
)

// WebhookEvent is a persisted gateway webhook delivery, deduplicated by
// provider event id.
type WebhookEvent struct {
	ID              string     `json:"id" db:"id"`
	Provider        string     `json:"provider" db:"provider"`
	ProviderEventID string     `json:"provider_event_id" db:"provider_event_id"`
	EventType       string     `json:"event_type" db:"event_type"`
	Payload         []byte     `json:"-" db:"payload"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty" db:"processed_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

// WebhookPayload is the gateway's webhook envelope
type WebhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID          string `json:"id"`
				OrderID     string `json:"order_id"`
				Status      string `json:"status"`
				ErrorReason string `json:"error_reason"`
			} `json:"entity"`
		} `json:"payment"`
		Refund struct {
			Entity struct {
				ID        string `json:"id"`
				PaymentID string `json:"payment_id"`
				Status    string `json:"status"`
			} `json:"entity"`
		} `json:"refund"`
	} `json:"payload"`
}

// ParseWebhookPayload decodes a raw webhook body
func ParseWebhookPayload(body []byte) (*WebhookPayload, error) {
	var p WebhookPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

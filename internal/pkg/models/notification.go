package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types
const (
	NotificationTicketSold    = "ticket_sold"
	NotificationTicketBought  = "ticket_bought"
	NotificationPaymentFailed = "payment_failed"
	NotificationRefund        = "refund_processed"
)

// Notification is an in-app notification row for a user
type Notification struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Type      string    `json:"type" db:"type"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

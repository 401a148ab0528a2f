package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a marketplace user. Every user can both list and buy
// tickets; there is no separate seller account type.
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	MSISDN         string    `json:"msisdn" db:"msisdn"`
	FullName       string    `json:"fullname" db:"full_name"`
	Email          string    `json:"email" db:"email"`
	EmailConfirmed bool      `json:"email_confirmed" db:"email_confirmed"`
	Role           string    `json:"role" db:"role"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// UpdateProfileRequest represents a profile completion request
type UpdateProfileRequest struct {
	FullName string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// ConfirmEmailRequest represents an email confirmation request
type ConfirmEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

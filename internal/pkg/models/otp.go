package models

import (
	"time"
)

// OTP represents a one-time password for user authentication. Only a
// bcrypt hash of the code is persisted.
type OTP struct {
	ID         string    `json:"id" db:"id"`
	MSISDN     string    `json:"msisdn" db:"msisdn"`
	CodeHash   string    `json:"-" db:"code_hash"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	ExpiresAt  time.Time `json:"expires_at" db:"expires_at"`
	IsVerified bool      `json:"is_verified" db:"is_verified"`
}

// LoginRequest represents a request to login with MSISDN
type LoginRequest struct {
	MSISDN string `json:"msisdn" validate:"required"`
}

// VerifyRequest represents a request to verify OTP
type VerifyRequest struct {
	MSISDN string `json:"msisdn" validate:"required"`
	OTP    string `json:"otp" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}

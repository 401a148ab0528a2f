package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ticket lifecycle states. A ticket moves available -> reserved -> sold;
// reservations fall back to available on expiry or payment failure, and a
// sold ticket can move to refunded via the gateway webhook.
const (
	TicketStatusAvailable = "available"
	TicketStatusReserved  = "reserved"
	TicketStatusSold      = "sold"
	TicketStatusRefunded  = "refunded"
	TicketStatusCancelled = "cancelled"
)

// Ticket verification states against the PNR registry
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationFailed   = "failed"
)

// Ticket represents a resale listing for a pre-purchased ticket
type Ticket struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	PNR                string          `json:"pnr" db:"pnr"`
	PassengerName      string          `json:"passenger_name" db:"passenger_name"`
	Operator           string          `json:"operator" db:"operator"`
	Origin             string          `json:"origin" db:"origin"`
	Destination        string          `json:"destination" db:"destination"`
	DepartureDate      string          `json:"departure_date" db:"departure_date"`
	DepartureTime      string          `json:"departure_time" db:"departure_time"`
	SeatNumber         string          `json:"seat_number" db:"seat_number"`
	FacePrice          decimal.Decimal `json:"face_price" db:"face_price"`
	SellingPrice       decimal.Decimal `json:"selling_price" db:"selling_price"`
	Status             string          `json:"status" db:"status"`
	VerificationStatus string          `json:"verification_status" db:"verification_status"`
	SellerID           uuid.UUID       `json:"seller_id" db:"seller_id"`
	BuyerID            *uuid.UUID      `json:"buyer_id,omitempty" db:"buyer_id"`
	ReservedBy         *uuid.UUID      `json:"reserved_by,omitempty" db:"reserved_by"`
	ReservedUntil      *time.Time      `json:"reserved_until,omitempty" db:"reserved_until"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" db:"updated_at"`
}

// TicketListingRequest represents a seller's request to list a ticket
type TicketListingRequest struct {
	PNR           string          `json:"pnr" validate:"required"`
	PassengerName string          `json:"passenger_name" validate:"required"`
	Operator      string          `json:"operator"`
	SellingPrice  decimal.Decimal `json:"selling_price" validate:"required"`
}

// TicketFilter narrows a ticket browse query
type TicketFilter struct {
	Operator    string `query:"operator"`
	Origin      string `query:"origin"`
	Destination string `query:"destination"`
	Limit       int    `query:"limit"`
	Offset      int    `query:"offset"`
}

// PNRRecord is a record from the external PNR registry
type PNRRecord struct {
	PNRNumber       string          `json:"pnr_number"`
	PassengerName   string          `json:"passenger_name"`
	BusOperator     string          `json:"bus_operator"`
	SourceLocation  string          `json:"source_location"`
	DestLocation    string          `json:"destination_location"`
	DepartureDate   string          `json:"departure_date"`
	DepartureTime   string          `json:"departure_time"`
	SeatNumber      string          `json:"seat_number"`
	TicketPrice     decimal.Decimal `json:"ticket_price"`
}

// PNRValidation is the outcome of validating a PNR against the registry
type PNRValidation struct {
	PNR           string          `json:"pnr"`
	PassengerName string          `json:"passenger_name"`
	Operator      string          `json:"operator"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	DepartureDate string          `json:"departure_date"`
	DepartureTime string          `json:"departure_time"`
	SeatNumber    string          `json:"seat_number"`
	FacePrice     decimal.Decimal `json:"face_price"`
	Provider      string          `json:"provider"`
	Confidence    int             `json:"confidence"`
}

// ValidatePNRRequest represents a standalone PNR validation request
type ValidatePNRRequest struct {
	PNR           string `json:"pnr" validate:"required"`
	Operator      string `json:"operator"`
	PassengerName string `json:"passenger_name" validate:"required"`
}

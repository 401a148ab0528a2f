package marketplace

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the marketplace service. Handlers map these
// to HTTP status codes.
var (
	ErrInvalidPNRFormat    = errors.New("invalid PNR format")
	ErrPNRNotFound         = errors.New("PNR not found in registry")
	ErrNameMismatch        = errors.New("passenger name does not match PNR record")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrTicketUnavailable   = errors.New("ticket is not available")
	ErrDuplicateListing    = errors.New("an active listing already exists for this PNR")
	ErrCannotBuyOwnTicket  = errors.New("cannot buy your own ticket")
	ErrNotReservedByBuyer  = errors.New("ticket is not reserved by this buyer")
	ErrAlreadySold         = errors.New("ticket has already been sold")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrEmailNotConfirmed   = errors.New("email address must be confirmed before making payments")
	ErrInvalidSignature    = errors.New("invalid payment signature")
	ErrDuplicateWebhook    = errors.New("webhook event already processed")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrUserNotFound        = errors.New("user not found")
)

// MissingFieldsError reports exactly which required order fields were
// omitted from a request.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

package users

import (
	"context"

	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/ticketswapper/ticketswapper/services/users UserGW

// UserGW represents the user gateway interface for external providers and
// event publishing
type UserGW interface {
	SendOTP(ctx context.Context, msisdn, code string) error
	SendEmailConfirmation(ctx context.Context, email, token string) error
	PublishUserRegistered(event *models.UserEvent) error
}

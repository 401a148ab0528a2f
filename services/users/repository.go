package users

import (
	"context"
	"time"

	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ticketswapper/ticketswapper/services/users UserRepo

// UserRepo represents the user repository interface
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByMSISDN(ctx context.Context, msisdn string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	SetEmailConfirmed(ctx context.Context, userID string) error

	// handle OTP
	CreateOTP(ctx context.Context, otp *models.OTP) error
	GetLatestOTP(ctx context.Context, msisdn string) (*models.OTP, error)
	MarkOTPVerified(ctx context.Context, id string) error
	CountOTPRequests(ctx context.Context, msisdn string, window time.Duration) (int64, error)

	// email confirmation tokens
	StoreEmailToken(ctx context.Context, userID, token string, ttl time.Duration) error
	ResolveEmailToken(ctx context.Context, token string) (string, error)
	DeleteEmailToken(ctx context.Context, token string) error
}

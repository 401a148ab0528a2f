package users

import (
	"context"

	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ticketswapper/ticketswapper/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	// handle OTP login
	GenerateOTP(ctx context.Context, msisdn string) error
	VerifyOTP(ctx context.Context, msisdn, code string) (*models.AuthResponse, error)

	// handle profile
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error)
	ConfirmEmail(ctx context.Context, token string) error
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	jwtpkg "github.com/ticketswapper/ticketswapper/internal/pkg/jwt"
	"github.com/ticketswapper/ticketswapper/internal/pkg/logger"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/internal/utils"
	"github.com/ticketswapper/ticketswapper/services/users"
	"golang.org/x/crypto/bcrypt"
)

const (
	otpTTL        = 5 * time.Minute
	otpRateWindow = 1 * time.Hour
	otpRateLimit  = 5
)

// GenerateOTP generates a new OTP for the given MSISDN and dispatches it
// via the SMS provider. Only a bcrypt hash of the code is stored.
func (u *UserUC) GenerateOTP(ctx context.Context, msisdn string) error {
	isValid, formattedMSISDN, err := utils.ValidateMSISDN(msisdn)
	if err != nil || !isValid {
		return users.ErrInvalidMSISDN
	}

	count, err := u.userRepo.CountOTPRequests(ctx, formattedMSISDN, otpRateWindow)
	if err != nil {
		return fmt.Errorf("failed to check OTP rate: %w", err)
	}
	if count > otpRateLimit {
		return users.ErrTooManyOTPRequests
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash OTP: %w", err)
	}

	now := time.Now()
	otp := &models.OTP{
		ID:        uuid.New().String(),
		MSISDN:    formattedMSISDN,
		CodeHash:  string(hash),
		CreatedAt: now,
		ExpiresAt: now.Add(otpTTL),
	}

	if err := u.userRepo.CreateOTP(ctx, otp); err != nil {
		return fmt.Errorf("failed to create OTP: %w", err)
	}

	if err := u.userGW.SendOTP(ctx, formattedMSISDN, code); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}

	logger.Info("Generated OTP",
		logger.String("msisdn", formattedMSISDN))

	return nil
}

// VerifyOTP verifies the OTP for the given MSISDN, creating the user on
// first login, and issues a JWT.
func (u *UserUC) VerifyOTP(ctx context.Context, msisdn, code string) (*models.AuthResponse, error) {
	isValid, formattedMSISDN, err := utils.ValidateMSISDN(msisdn)
	if err != nil || !isValid {
		return nil, users.ErrInvalidMSISDN
	}

	otp, err := u.userRepo.GetLatestOTP(ctx, formattedMSISDN)
	if err != nil {
		return nil, users.ErrOTPInvalid
	}
	if time.Now().After(otp.ExpiresAt) {
		return nil, users.ErrOTPExpired
	}
	if err := bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(code)); err != nil {
		return nil, users.ErrOTPInvalid
	}

	if err := u.userRepo.MarkOTPVerified(ctx, otp.ID); err != nil {
		return nil, fmt.Errorf("failed to mark OTP verified: %w", err)
	}

	// Get or create user
	user, err := u.userRepo.GetUserByMSISDN(ctx, formattedMSISDN)
	if err != nil {
		user = &models.User{
			ID:       uuid.New(),
			MSISDN:   formattedMSISDN,
			Role:     "user",
			IsActive: true,
		}

		if err := u.userRepo.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		event := &models.UserEvent{
			UserID:    user.ID.String(),
			MSISDN:    user.MSISDN,
			Timestamp: time.Now().UTC(),
		}
		if err := u.userGW.PublishUserRegistered(event); err != nil {
			logger.Warn("Failed to publish user registered event",
				logger.String("user_id", user.ID.String()),
				logger.Err(err))
		}
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.MSISDN, user.Role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

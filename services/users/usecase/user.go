package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ticketswapper/ticketswapper/internal/pkg/logger"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/internal/utils"
	"github.com/ticketswapper/ticketswapper/services/users"
)

const emailTokenTTL = 24 * time.Hour

// GetUserByID retrieves a user profile by id
func (u *UserUC) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, users.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile completes a user's profile and kicks off email
// confirmation. Changing the email resets the confirmed flag.
func (u *UserUC) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if !strings.Contains(req.Email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, users.ErrUserNotFound
	}

	emailChanged := user.Email != req.Email

	user.FullName = strings.TrimSpace(req.FullName)
	user.Email = strings.TrimSpace(req.Email)
	if emailChanged {
		user.EmailConfirmed = false
	}

	if err := u.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if emailChanged {
		token, err := utils.GenerateSecureToken(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate confirmation token: %w", err)
		}

		if err := u.userRepo.StoreEmailToken(ctx, user.ID.String(), token, emailTokenTTL); err != nil {
			return nil, fmt.Errorf("failed to store confirmation token: %w", err)
		}

		if err := u.userGW.SendEmailConfirmation(ctx, user.Email, token); err != nil {
			logger.Warn("Failed to send confirmation email",
				logger.String("user_id", user.ID.String()),
				logger.Err(err))
		}
	}

	return user, nil
}

// ConfirmEmail resolves a confirmation token and marks the user's email as
// confirmed.
func (u *UserUC) ConfirmEmail(ctx context.Context, token string) error {
	userID, err := u.userRepo.ResolveEmailToken(ctx, token)
	if err != nil || userID == "" {
		return users.ErrEmailTokenInvalid
	}

	if err := u.userRepo.SetEmailConfirmed(ctx, userID); err != nil {
		return fmt.Errorf("failed to confirm email: %w", err)
	}

	if err := u.userRepo.DeleteEmailToken(ctx, token); err != nil {
		logger.Warn("Failed to delete used confirmation token", logger.Err(err))
	}

	return nil
}

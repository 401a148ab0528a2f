package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

// CreateUser creates a new user in the database
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, msisdn, full_name, email, email_confirmed, role, is_active, created_at, updated_at)
		VALUES (:id, :msisdn, :full_name, :email, :email_confirmed, :role, :is_active, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, msisdn, full_name, email, email_confirmed, role, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByMSISDN retrieves a user by MSISDN
func (r *UserRepo) GetUserByMSISDN(ctx context.Context, msisdn string) (*models.User, error) {
	query := `
		SELECT id, msisdn, full_name, email, email_confirmed, role, is_active, created_at, updated_at
		FROM users
		WHERE msisdn = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, msisdn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UpdateProfile updates a user's profile fields
func (r *UserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	query := `
		UPDATE users
		SET full_name = :full_name, email = :email, email_confirmed = :email_confirmed, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

// SetEmailConfirmed marks a user's email as confirmed
func (r *UserRepo) SetEmailConfirmed(ctx context.Context, userID string) error {
	query := `
		UPDATE users
		SET email_confirmed = true, updated_at = $2
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to confirm email: %w", err)
	}

	return nil
}

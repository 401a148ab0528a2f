package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

// CreateOTP stores a new OTP record
func (r *UserRepo) CreateOTP(ctx context.Context, otp *models.OTP) error {
	query := `
		INSERT INTO otps (id, msisdn, code_hash, is_verified, created_at, expires_at)
		VALUES (:id, :msisdn, :code_hash, :is_verified, :created_at, :expires_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, otp)
	if err != nil {
		return fmt.Errorf("failed to insert OTP: %w", err)
	}

	return nil
}

// GetLatestOTP retrieves the most recent unverified OTP for an MSISDN
func (r *UserRepo) GetLatestOTP(ctx context.Context, msisdn string) (*models.OTP, error) {
	query := `
		SELECT id, msisdn, code_hash, is_verified, created_at, expires_at
		FROM otps
		WHERE msisdn = $1 AND is_verified = false
		ORDER BY created_at DESC
		LIMIT 1
	`

	var otp models.OTP
	err := r.db.GetContext(ctx, &otp, query, msisdn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("OTP not found")
		}
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}

	return &otp, nil
}

// MarkOTPVerified marks an OTP as consumed
func (r *UserRepo) MarkOTPVerified(ctx context.Context, id string) error {
	query := `UPDATE otps SET is_verified = true WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark OTP verified: %w", err)
	}

	return nil
}

// CountOTPRequests counts OTP requests within the rate-limit window using a
// Redis counter keyed by MSISDN. The counter expires with the window.
func (r *UserRepo) CountOTPRequests(ctx context.Context, msisdn string, window time.Duration) (int64, error) {
	key := fmt.Sprintf("otp:rate:%s", msisdn)

	count, err := r.redis.Incr(ctx, key, window)
	if err != nil {
		return 0, fmt.Errorf("failed to count OTP requests: %w", err)
	}

	return count, nil
}

// StoreEmailToken stores an email confirmation token in Redis with a TTL
func (r *UserRepo) StoreEmailToken(ctx context.Context, userID, token string, ttl time.Duration) error {
	key := fmt.Sprintf("email:confirm:%s", token)

	if err := r.redis.Set(ctx, key, userID, ttl); err != nil {
		return fmt.Errorf("failed to store email token: %w", err)
	}

	return nil
}

// ResolveEmailToken resolves an email confirmation token to a user id
func (r *UserRepo) ResolveEmailToken(ctx context.Context, token string) (string, error) {
	key := fmt.Sprintf("email:confirm:%s", token)

	userID, err := r.redis.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to resolve email token: %w", err)
	}

	return userID, nil
}

// DeleteEmailToken removes a used email confirmation token
func (r *UserRepo) DeleteEmailToken(ctx context.Context, token string) error {
	key := fmt.Sprintf("email:confirm:%s", token)

	if err := r.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete email token: %w", err)
	}

	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
)

// GetUserByID reads a user row from the shared schema. The marketplace
// only needs the email-confirmation flag before payments.
func (r *MarketplaceRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, msisdn, full_name, email, email_confirmed, role, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, marketplace.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

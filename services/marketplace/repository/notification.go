package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

// CreateNotification inserts an in-app notification row
func (r *MarketplaceRepo) CreateNotification(ctx context.Context, notification *models.Notification) error {
	notification.CreatedAt = time.Now()

	query := `
		INSERT INTO notifications (id, user_id, type, title, body, read, created_at)
		VALUES (:id, :user_id, :type, :title, :body, :read, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, notification)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

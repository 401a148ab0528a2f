package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
)

// InsertWebhookEvent stores a webhook delivery. The unique
// (provider, provider_event_id) index makes re-deliveries fail with
// ErrDuplicateWebhook.
func (r *MarketplaceRepo) InsertWebhookEvent(ctx context.Context, event *models.WebhookEvent) error {
	query := `
		INSERT INTO webhook_events (id, provider, provider_event_id, event_type, payload, created_at)
		VALUES (:id, :provider, :provider_event_id, :event_type, :payload, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return marketplace.ErrDuplicateWebhook
		}
		return fmt.Errorf("failed to insert webhook event: %w", err)
	}

	return nil
}

// MarkWebhookProcessed stamps a webhook event as handled
func (r *MarketplaceRepo) MarkWebhookProcessed(ctx context.Context, id string) error {
	query := `UPDATE webhook_events SET processed_at = $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to mark webhook processed: %w", err)
	}

	return nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ticketswapper/ticketswapper/internal/pkg/logger"
	"github.com/ticketswapper/ticketswapper/internal/pkg/metrics"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
)

const webhookProvider = "razorpay"

// ProcessWebhook verifies, deduplicates and dispatches a gateway webhook
// delivery. Re-deliveries of an already-stored event id are acknowledged
// without reprocessing.
func (u *MarketplaceUC) ProcessWebhook(ctx context.Context, eventID, signature string, body []byte) error {
	if !u.gw.VerifyWebhookSignature(body, signature) {
		return marketplace.ErrInvalidSignature
	}

	payload, err := models.ParseWebhookPayload(body)
	if err != nil {
		return fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	event := &models.WebhookEvent{
		ID:              uuid.New().String(),
		Provider:        webhookProvider,
		ProviderEventID: eventID,
		EventType:       payload.Event,
		Payload:         body,
		CreatedAt:       time.Now(),
	}
	if err := u.repo.InsertWebhookEvent(ctx, event); err != nil {
		if errors.Is(err, marketplace.ErrDuplicateWebhook) {
			logger.Info("Skipping duplicate webhook event",
				logger.String("provider_event_id", eventID))
			return nil
		}
		return fmt.Errorf("failed to store webhook event: %w", err)
	}

	metrics.WebhookEvents.WithLabelValues(payload.Event).Inc()

	switch payload.Event {
	case models.WebhookPaymentCaptured:
		err = u.handlePaymentCaptured(ctx, payload)
	case models.WebhookPaymentFailed:
		err = u.handlePaymentFailed(ctx, payload)
	case models.WebhookRefundProcessed:
		err = u.handleRefundProcessed(ctx, payload)
	default:
		logger.Info("Ignoring unhandled webhook event",
			logger.String("event", payload.Event))
	}
	if err != nil {
		return err
	}

	if err := u.repo.MarkWebhookProcessed(ctx, event.ID); err != nil {
		logger.Warn("Failed to mark webhook event processed",
			logger.String("event_id", event.ID),
			logger.Err(err))
	}

	return nil
}

// handlePaymentCaptured confirms the capture for a transaction created by
// the verify endpoint. The transaction is normally already completed, so
// this is a consistency check rather than a state change.
func (u *MarketplaceUC) handlePaymentCaptured(ctx context.Context, payload *models.WebhookPayload) error {
	orderID := payload.Payload.Payment.Entity.OrderID

	txn, err := u.repo.GetTransactionByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, marketplace.ErrTransactionNotFound) {
			logger.Warn("Capture webhook for unknown order",
				logger.String("order_id", orderID))
			return nil
		}
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	if txn.Status != models.TransactionCompleted {
		logger.Warn("Capture webhook for transaction in unexpected state",
			logger.String("transaction_id", txn.ID.String()),
			logger.String("status", txn.Status))
	}

	return nil
}

// handlePaymentFailed fails the transaction and returns the ticket to the
// available pool.
func (u *MarketplaceUC) handlePaymentFailed(ctx context.Context, payload *models.WebhookPayload) error {
	orderID := payload.Payload.Payment.Entity.OrderID

	txn, err := u.repo.GetTransactionByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, marketplace.ErrTransactionNotFound) {
			logger.Warn("Failure webhook for unknown order",
				logger.String("order_id", orderID))
			return nil
		}
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	if err := u.repo.UpdateTransactionStatus(ctx, txn.ID.String(), models.TransactionFailed); err != nil {
		return fmt.Errorf("failed to fail transaction: %w", err)
	}
	if err := u.repo.ReleaseTicket(ctx, txn.TicketID.String()); err != nil {
		return fmt.Errorf("failed to release ticket: %w", err)
	}

	metrics.PaymentsTotal.WithLabelValues("failed").Inc()

	u.notify(ctx, txn.BuyerID, models.NotificationPaymentFailed,
		"Payment failed",
		fmt.Sprintf("Your payment for order %s failed: %s",
			orderID, payload.Payload.Payment.Entity.ErrorReason))

	event := &models.PaymentEvent{
		TransactionID: txn.ID.String(),
		TicketID:      txn.TicketID.String(),
		BuyerID:       txn.BuyerID.String(),
		SellerID:      txn.SellerID.String(),
		Amount:        txn.Amount,
		Status:        models.TransactionFailed,
		Timestamp:     time.Now().UTC(),
	}
	if err := u.gw.PublishPaymentFailed(event); err != nil {
		logger.Warn("Failed to publish payment failed event", logger.Err(err))
	}

	return nil
}

// handleRefundProcessed refunds the transaction and ticket and cancels the
// seller's pending payout.
func (u *MarketplaceUC) handleRefundProcessed(ctx context.Context, payload *models.WebhookPayload) error {
	paymentID := payload.Payload.Refund.Entity.PaymentID

	txn, err := u.repo.GetTransactionByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, marketplace.ErrTransactionNotFound) {
			logger.Warn("Refund webhook for unknown payment",
				logger.String("payment_id", paymentID))
			return nil
		}
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	if err := u.repo.UpdateTransactionStatus(ctx, txn.ID.String(), models.TransactionRefunded); err != nil {
		return fmt.Errorf("failed to refund transaction: %w", err)
	}
	if err := u.repo.MarkTicketRefunded(ctx, txn.TicketID.String()); err != nil {
		return fmt.Errorf("failed to refund ticket: %w", err)
	}
	if err := u.repo.CancelPayoutByTransactionID(ctx, txn.ID.String()); err != nil {
		return fmt.Errorf("failed to cancel payout: %w", err)
	}

	metrics.PaymentsTotal.WithLabelValues("refunded").Inc()

	u.notify(ctx, txn.BuyerID, models.NotificationRefund,
		"Refund processed",
		fmt.Sprintf("Your refund of %s %s has been processed.", txn.Amount, txn.Currency))
	u.notify(ctx, txn.SellerID, models.NotificationRefund,
		"Sale refunded",
		"A sale of your ticket was refunded and the pending payout was cancelled.")

	event := &models.PaymentEvent{
		TransactionID: txn.ID.String(),
		TicketID:      txn.TicketID.String(),
		BuyerID:       txn.BuyerID.String(),
		SellerID:      txn.SellerID.String(),
		Amount:        txn.Amount,
		Status:        models.TransactionRefunded,
		Timestamp:     time.Now().UTC(),
	}
	if err := u.gw.PublishPaymentRefunded(event); err != nil {
		logger.Warn("Failed to publish payment refunded event", logger.Err(err))
	}

	return nil
}

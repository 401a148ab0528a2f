package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
)

const transactionColumns = `id, ticket_id, buyer_id, seller_id, amount,
	platform_commission, seller_amount, currency, razorpay_order_id,
	razorpay_payment_id, buyer_name, status, created_at, completed_at`

// GetTransactionByOrderID retrieves a transaction by gateway order id
func (r *MarketplaceRepo) GetTransactionByOrderID(ctx context.Context, orderID string) (*models.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE razorpay_order_id = $1`, transactionColumns)

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, marketplace.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &txn, nil
}

// GetTransactionByPaymentID retrieves a transaction by gateway payment id
func (r *MarketplaceRepo) GetTransactionByPaymentID(ctx context.Context, paymentID string) (*models.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE razorpay_payment_id = $1`, transactionColumns)

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, marketplace.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &txn, nil
}

// UpdateTransactionStatus sets a transaction's status
func (r *MarketplaceRepo) UpdateTransactionStatus(ctx context.Context, id, status string) error {
	query := `UPDATE transactions SET status = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return marketplace.ErrTransactionNotFound
	}

	return nil
}

// CancelPayoutByTransactionID cancels a pending payout for a refunded
// transaction. Paid payouts are left alone.
func (r *MarketplaceRepo) CancelPayoutByTransactionID(ctx context.Context, transactionID string) error {
	query := `
		UPDATE payouts
		SET status = $1, updated_at = $2
		WHERE transaction_id = $3 AND status IN ($4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		models.PayoutCancelled, time.Now(), transactionID,
		models.PayoutPending, models.PayoutProcessing)
	if err != nil {
		return fmt.Errorf("failed to cancel payout: %w", err)
	}

	return nil
}

// GetPayoutsBySeller lists a seller's payouts, newest first
func (r *MarketplaceRepo) GetPayoutsBySeller(ctx context.Context, sellerID string) ([]*models.Payout, error) {
	query := `
		SELECT id, transaction_id, seller_id, amount, status, method, created_at, updated_at
		FROM payouts
		WHERE seller_id = $1
		ORDER BY created_at DESC
	`

	payouts := []*models.Payout{}
	if err := r.db.SelectContext(ctx, &payouts, query, sellerID); err != nil {
		return nil, fmt.Errorf("failed to get payouts: %w", err)
	}

	return payouts, nil
}

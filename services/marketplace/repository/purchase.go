package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
)

const defaultPayoutMethod = "bank_transfer"

// CompletePurchase records a verified payment in one database transaction:
// the ticket row is locked, its state re-checked, the transaction inserted,
// the ticket flipped to sold and the seller's payout queued. Any failure
// rolls the whole sequence back.
func (r *MarketplaceRepo) CompletePurchase(ctx context.Context, txn *models.Transaction) (*models.PaymentResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var ticket models.Ticket
	lockQuery := fmt.Sprintf(`SELECT %s FROM tickets WHERE id = $1 FOR UPDATE`, ticketColumns)
	if err := tx.GetContext(ctx, &ticket, lockQuery, txn.TicketID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, marketplace.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to lock ticket: %w", err)
	}

	switch {
	case ticket.Status == models.TicketStatusSold:
		return nil, marketplace.ErrAlreadySold
	case ticket.Status != models.TicketStatusReserved,
		ticket.ReservedBy == nil,
		*ticket.ReservedBy != txn.BuyerID:
		return nil, marketplace.ErrNotReservedByBuyer
	}

	insertTxn := `
		INSERT INTO transactions (id, ticket_id, buyer_id, seller_id, amount,
			platform_commission, seller_amount, currency, razorpay_order_id,
			razorpay_payment_id, buyer_name, status, created_at, completed_at)
		VALUES (:id, :ticket_id, :buyer_id, :seller_id, :amount,
			:platform_commission, :seller_amount, :currency, :razorpay_order_id,
			:razorpay_payment_id, :buyer_name, :status, :created_at, :completed_at)
	`
	if _, err := tx.NamedExecContext(ctx, insertTxn, txn); err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	now := time.Now()
	updateTicket := `
		UPDATE tickets
		SET status = $1, buyer_id = $2, reserved_by = NULL, reserved_until = NULL, updated_at = $3
		WHERE id = $4
	`
	if _, err := tx.ExecContext(ctx, updateTicket,
		models.TicketStatusSold, txn.BuyerID, now, ticket.ID); err != nil {
		return nil, fmt.Errorf("failed to mark ticket sold: %w", err)
	}

	payout := &models.Payout{
		ID:            uuid.New(),
		TransactionID: txn.ID,
		SellerID:      txn.SellerID,
		Amount:        txn.SellerAmount,
		Status:        models.PayoutPending,
		Method:        defaultPayoutMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	insertPayout := `
		INSERT INTO payouts (id, transaction_id, seller_id, amount, status, method, created_at, updated_at)
		VALUES (:id, :transaction_id, :seller_id, :amount, :status, :method, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, insertPayout, payout); err != nil {
		return nil, fmt.Errorf("failed to insert payout: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit purchase: %w", err)
	}

	ticket.Status = models.TicketStatusSold
	ticket.BuyerID = &txn.BuyerID
	ticket.ReservedBy = nil
	ticket.ReservedUntil = nil
	ticket.UpdatedAt = now

	key := fmt.Sprintf("reservation:ticket:%s", ticket.ID)
	_ = r.redis.Delete(ctx, key)

	return &models.PaymentResult{
		Transaction: txn,
		Ticket:      &ticket,
	}, nil
}

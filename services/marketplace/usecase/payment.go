package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ticketswapper/ticketswapper/internal/pkg/logger"
	"github.com/ticketswapper/ticketswapper/internal/pkg/metrics"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/internal/utils"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
)

// splitAmount divides a selling price into platform commission and seller
// amount. Commission is rounded to two decimal places before subtraction so
// the two parts always sum to the price.
func splitAmount(price decimal.Decimal, commissionPercent float64) (commission, sellerAmount decimal.Decimal) {
	commission = price.Mul(decimal.NewFromFloat(commissionPercent)).Div(decimal.NewFromInt(100)).Round(2)
	sellerAmount = price.Sub(commission)
	return commission, sellerAmount
}

// toMinorUnits converts a decimal amount to the gateway's integer minor
// units (paise).
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func (u *MarketplaceUC) requireConfirmedEmail(ctx context.Context, userID string) error {
	user, err := u.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, marketplace.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to get buyer: %w", err)
	}
	if !user.EmailConfirmed {
		return marketplace.ErrEmailNotConfirmed
	}
	return nil
}

// CreateOrder creates a gateway order for a reserved ticket. Missing body
// fields are rejected with an error naming exactly which ones were omitted.
func (u *MarketplaceUC) CreateOrder(ctx context.Context, buyerID string, req *models.CreateOrderRequest) (*models.OrderResponse, error) {
	var missing []string
	if req.TicketID == "" {
		missing = append(missing, "ticket_id")
	}
	if req.Amount == nil {
		missing = append(missing, "amount")
	}
	if req.SellerAmount == nil {
		missing = append(missing, "seller_amount")
	}
	if req.PlatformCommission == nil {
		missing = append(missing, "platform_commission")
	}
	if len(missing) > 0 {
		return nil, &marketplace.MissingFieldsError{Fields: missing}
	}

	if err := u.requireConfirmedEmail(ctx, buyerID); err != nil {
		return nil, err
	}

	ticket, err := u.repo.GetTicketByID(ctx, req.TicketID)
	if err != nil {
		if errors.Is(err, marketplace.ErrTicketNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if ticket.Status == models.TicketStatusSold {
		return nil, marketplace.ErrAlreadySold
	}
	if ticket.Status != models.TicketStatusReserved || ticket.ReservedBy == nil || ticket.ReservedBy.String() != buyerID {
		return nil, marketplace.ErrNotReservedByBuyer
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, marketplace.ErrInvalidAmount
	}

	receipt := utils.GenerateReceiptID()
	currency := u.cfg.Pricing.Currency

	order, err := u.gw.CreateOrder(ctx, toMinorUnits(*req.Amount), currency, receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	logger.Info("Created payment order",
		logger.String("order_id", order.ID),
		logger.String("ticket_id", req.TicketID),
		logger.String("buyer_id", buyerID))

	return &models.OrderResponse{
		OrderID:            order.ID,
		Amount:             order.Amount,
		Currency:           order.Currency,
		RazorpayKeyID:      u.cfg.Razorpay.KeyID,
		Receipt:            order.Receipt,
		TicketID:           req.TicketID,
		SellerAmount:       *req.SellerAmount,
		PlatformCommission: *req.PlatformCommission,
	}, nil
}

// VerifyPayment completes a checkout. The gateway signature is verified
// first; the ticket sale, transaction and payout are then written in one
// database transaction. The ticket's passenger of record is never changed,
// the buyer's display name is stored on the transaction.
func (u *MarketplaceUC) VerifyPayment(ctx context.Context, buyerID string, req *models.VerifyPaymentRequest) (*models.PaymentResult, error) {
	var missing []string
	if req.RazorpayPaymentID == "" {
		missing = append(missing, "razorpay_payment_id")
	}
	if req.RazorpayOrderID == "" {
		missing = append(missing, "razorpay_order_id")
	}
	if req.RazorpaySignature == "" {
		missing = append(missing, "razorpay_signature")
	}
	if req.TicketID == "" {
		missing = append(missing, "ticket_id")
	}
	if len(missing) > 0 {
		return nil, &marketplace.MissingFieldsError{Fields: missing}
	}

	if err := u.requireConfirmedEmail(ctx, buyerID); err != nil {
		return nil, err
	}

	if !u.gw.VerifyPaymentSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		metrics.PaymentsTotal.WithLabelValues("signature_rejected").Inc()
		return nil, marketplace.ErrInvalidSignature
	}

	ticket, err := u.repo.GetTicketByID(ctx, req.TicketID)
	if err != nil {
		if errors.Is(err, marketplace.ErrTicketNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	buyerUUID, err := uuid.Parse(buyerID)
	if err != nil {
		return nil, fmt.Errorf("invalid buyer id: %w", err)
	}

	commission, sellerAmount := splitAmount(ticket.SellingPrice, u.cfg.Pricing.CommissionPercent)
	now := time.Now()

	txn := &models.Transaction{
		ID:                 uuid.New(),
		TicketID:           ticket.ID,
		BuyerID:            buyerUUID,
		SellerID:           ticket.SellerID,
		Amount:             ticket.SellingPrice,
		PlatformCommission: commission,
		SellerAmount:       sellerAmount,
		Currency:           u.cfg.Pricing.Currency,
		RazorpayOrderID:    req.RazorpayOrderID,
		RazorpayPaymentID:  req.RazorpayPaymentID,
		BuyerName:          req.BuyerName,
		Status:             models.TransactionCompleted,
		CreatedAt:          now,
		CompletedAt:        &now,
	}

	result, err := u.repo.CompletePurchase(ctx, txn)
	if err != nil {
		metrics.PaymentsTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	metrics.PaymentsTotal.WithLabelValues("completed").Inc()
	metrics.ReservationsActive.Dec()

	u.notify(ctx, ticket.SellerID, models.NotificationTicketSold,
		"Your ticket sold",
		fmt.Sprintf("Ticket %s sold for %s %s. Your payout of %s %s is pending.",
			ticket.PNR, txn.Amount, txn.Currency, sellerAmount, txn.Currency))
	u.notify(ctx, buyerUUID, models.NotificationTicketBought,
		"Ticket purchased",
		fmt.Sprintf("You bought ticket %s (%s to %s, %s).",
			ticket.PNR, ticket.Origin, ticket.Destination, ticket.DepartureDate))

	event := &models.PaymentEvent{
		TransactionID: txn.ID.String(),
		TicketID:      ticket.ID.String(),
		BuyerID:       buyerID,
		SellerID:      ticket.SellerID.String(),
		Amount:        txn.Amount,
		Status:        txn.Status,
		Timestamp:     now.UTC(),
	}
	if err := u.gw.PublishPaymentCompleted(event); err != nil {
		logger.Warn("Failed to publish payment completed event",
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(err))
	}

	logger.Info("Payment verified",
		logger.String("transaction_id", txn.ID.String()),
		logger.String("ticket_id", ticket.ID.String()),
		logger.String("order_id", req.RazorpayOrderID))

	return result, nil
}

// GetSellerPayouts returns the seller's payout rows
func (u *MarketplaceUC) GetSellerPayouts(ctx context.Context, sellerID string) ([]*models.Payout, error) {
	return u.repo.GetPayoutsBySeller(ctx, sellerID)
}

func (u *MarketplaceUC) notify(ctx context.Context, userID uuid.UUID, notifType, title, body string) {
	n := &models.Notification{
		ID:     uuid.New(),
		UserID: userID,
		Type:   notifType,
		Title:  title,
		Body:   body,
	}
	if err := u.repo.CreateNotification(ctx, n); err != nil {
		logger.Warn("Failed to create notification",
			logger.String("user_id", userID.String()),
			logger.String("type", notifType),
			logger.Err(err))
	}
}

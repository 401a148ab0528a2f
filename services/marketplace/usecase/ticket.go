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
	"github.com/ticketswapper/ticketswapper/services/marketplace"
)

// ListTicket creates a resale listing after the PNR has been verified
// against the registry. Trip details come from the matched registry record,
// never from the seller's input.
func (u *MarketplaceUC) ListTicket(ctx context.Context, sellerID string, req *models.TicketListingRequest) (*models.Ticket, error) {
	if req.SellingPrice.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("selling price must be positive")
	}

	validation, err := u.ValidatePNR(ctx, &models.ValidatePNRRequest{
		PNR:           req.PNR,
		PassengerName: req.PassengerName,
	})
	if err != nil {
		return nil, err
	}

	sellerUUID, err := uuid.Parse(sellerID)
	if err != nil {
		return nil, fmt.Errorf("invalid seller id: %w", err)
	}

	ticket := &models.Ticket{
		ID:                 uuid.New(),
		PNR:                validation.PNR,
		PassengerName:      validation.PassengerName,
		Operator:           validation.Operator,
		Origin:             validation.Origin,
		Destination:        validation.Destination,
		DepartureDate:      validation.DepartureDate,
		DepartureTime:      validation.DepartureTime,
		SeatNumber:         validation.SeatNumber,
		FacePrice:          validation.FacePrice,
		SellingPrice:       req.SellingPrice,
		Status:             models.TicketStatusAvailable,
		VerificationStatus: models.VerificationVerified,
		SellerID:           sellerUUID,
	}

	if err := u.repo.CreateTicket(ctx, ticket); err != nil {
		return nil, err
	}

	metrics.TicketsListed.Inc()

	event := &models.TicketEvent{
		TicketID:  ticket.ID.String(),
		SellerID:  sellerID,
		Status:    ticket.Status,
		Timestamp: time.Now().UTC(),
	}
	if err := u.gw.PublishTicketListed(event); err != nil {
		logger.Warn("Failed to publish ticket listed event",
			logger.String("ticket_id", ticket.ID.String()),
			logger.Err(err))
	}

	logger.Info("Ticket listed",
		logger.String("ticket_id", ticket.ID.String()),
		logger.String("pnr", ticket.PNR),
		logger.String("seller_id", sellerID))

	return ticket, nil
}

// BrowseTickets returns available tickets matching the filter
func (u *MarketplaceUC) BrowseTickets(ctx context.Context, filter *models.TicketFilter) ([]*models.Ticket, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return u.repo.BrowseTickets(ctx, filter)
}

// GetTicket fetches a single ticket by id
func (u *MarketplaceUC) GetTicket(ctx context.Context, id string) (*models.Ticket, error) {
	ticket, err := u.repo.GetTicketByID(ctx, id)
	if err != nil {
		if errors.Is(err, marketplace.ErrTicketNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return ticket, nil
}

// ReserveTicket moves an available ticket to reserved for the buyer. The
// transition is guarded in the database, so concurrent reservations of the
// same ticket lose cleanly.
func (u *MarketplaceUC) ReserveTicket(ctx context.Context, ticketID, buyerID string) (*models.Ticket, error) {
	ticket, err := u.repo.GetTicketByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, marketplace.ErrTicketNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if ticket.SellerID.String() == buyerID {
		return nil, marketplace.ErrCannotBuyOwnTicket
	}

	until := time.Now().Add(time.Duration(u.cfg.Reservation.TTLMinutes) * time.Minute)
	won, err := u.repo.ReserveTicket(ctx, ticketID, buyerID, until)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve ticket: %w", err)
	}
	if !won {
		return nil, marketplace.ErrTicketUnavailable
	}

	metrics.ReservationsActive.Inc()

	ticket, err = u.repo.GetTicketByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload reserved ticket: %w", err)
	}

	event := &models.TicketEvent{
		TicketID:  ticketID,
		SellerID:  ticket.SellerID.String(),
		BuyerID:   buyerID,
		Status:    ticket.Status,
		Timestamp: time.Now().UTC(),
	}
	if err := u.gw.PublishTicketReserved(event); err != nil {
		logger.Warn("Failed to publish ticket reserved event",
			logger.String("ticket_id", ticketID),
			logger.Err(err))
	}

	return ticket, nil
}

// ReleaseExpiredReservations returns expired reservations to the available
// pool. Called periodically by the reservation janitor.
func (u *MarketplaceUC) ReleaseExpiredReservations(ctx context.Context) (int64, error) {
	released, err := u.repo.ReleaseExpiredReservations(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to release expired reservations: %w", err)
	}

	if released > 0 {
		metrics.ReservationsActive.Sub(float64(released))
		logger.Info("Released expired reservations",
			logger.Int64("count", released))
	}

	return released, nil
}

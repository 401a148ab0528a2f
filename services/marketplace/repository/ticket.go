package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
)

const pgUniqueViolation = "23505"

const ticketColumns = `id, pnr, passenger_name, operator, origin, destination,
	departure_date, departure_time, seat_number, face_price, selling_price,
	status, verification_status, seller_id, buyer_id, reserved_by,
	reserved_until, created_at, updated_at`

// CreateTicket inserts a new listing. A partial unique index on active
// listings rejects a second available/reserved row for the same PNR.
func (r *MarketplaceRepo) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	now := time.Now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now

	query := `
		INSERT INTO tickets (id, pnr, passenger_name, operator, origin, destination,
			departure_date, departure_time, seat_number, face_price, selling_price,
			status, verification_status, seller_id, created_at, updated_at)
		VALUES (:id, :pnr, :passenger_name, :operator, :origin, :destination,
			:departure_date, :departure_time, :seat_number, :face_price, :selling_price,
			:status, :verification_status, :seller_id, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, ticket)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return marketplace.ErrDuplicateListing
		}
		return fmt.Errorf("failed to insert ticket: %w", err)
	}

	return nil
}

// GetTicketByID retrieves a ticket by id
func (r *MarketplaceRepo) GetTicketByID(ctx context.Context, id string) (*models.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE id = $1`, ticketColumns)

	var ticket models.Ticket
	err := r.db.GetContext(ctx, &ticket, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, marketplace.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return &ticket, nil
}

// BrowseTickets lists available tickets matching the filter, newest first
func (r *MarketplaceRepo) BrowseTickets(ctx context.Context, filter *models.TicketFilter) ([]*models.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE status = $1`, ticketColumns)
	args := []interface{}{models.TicketStatusAvailable}

	if filter.Operator != "" {
		args = append(args, filter.Operator)
		query += fmt.Sprintf(" AND operator = $%d", len(args))
	}
	if filter.Origin != "" {
		args = append(args, filter.Origin)
		query += fmt.Sprintf(" AND origin = $%d", len(args))
	}
	if filter.Destination != "" {
		args = append(args, filter.Destination)
		query += fmt.Sprintf(" AND destination = $%d", len(args))
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	tickets := []*models.Ticket{}
	if err := r.db.SelectContext(ctx, &tickets, query, args...); err != nil {
		return nil, fmt.Errorf("failed to browse tickets: %w", err)
	}

	return tickets, nil
}

// ReserveTicket flips an available ticket to reserved for the buyer. The
// WHERE clause guards the transition, so of two concurrent callers exactly
// one wins. A Redis key mirrors the reservation with the same TTL.
func (r *MarketplaceRepo) ReserveTicket(ctx context.Context, ticketID, buyerID string, until time.Time) (bool, error) {
	query := `
		UPDATE tickets
		SET status = $1, reserved_by = $2, reserved_until = $3, updated_at = $4
		WHERE id = $5 AND status = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		models.TicketStatusReserved, buyerID, until, time.Now(),
		ticketID, models.TicketStatusAvailable)
	if err != nil {
		return false, fmt.Errorf("failed to reserve ticket: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check reservation result: %w", err)
	}
	if rows == 0 {
		return false, nil
	}

	// The database row is authoritative, the key is a convenience. The
	// guarded UPDATE means we are the only writer, so set-if-absent.
	key := fmt.Sprintf("reservation:ticket:%s", ticketID)
	_, _ = r.redis.SetNX(ctx, key, buyerID, time.Until(until))

	return true, nil
}

// ReleaseTicket returns a reserved ticket to the available pool
func (r *MarketplaceRepo) ReleaseTicket(ctx context.Context, ticketID string) error {
	query := `
		UPDATE tickets
		SET status = $1, reserved_by = NULL, reserved_until = NULL, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	_, err := r.db.ExecContext(ctx, query,
		models.TicketStatusAvailable, time.Now(), ticketID, models.TicketStatusReserved)
	if err != nil {
		return fmt.Errorf("failed to release ticket: %w", err)
	}

	key := fmt.Sprintf("reservation:ticket:%s", ticketID)
	if err := r.redis.Delete(ctx, key); err != nil {
		return nil
	}

	return nil
}

// MarkTicketRefunded moves a sold ticket to refunded
func (r *MarketplaceRepo) MarkTicketRefunded(ctx context.Context, ticketID string) error {
	query := `
		UPDATE tickets
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		models.TicketStatusRefunded, time.Now(), ticketID, models.TicketStatusSold)
	if err != nil {
		return fmt.Errorf("failed to refund ticket: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check refund result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("ticket is not sold")
	}

	return nil
}

// ReleaseExpiredReservations returns every reservation past its deadline to
// the available pool and reports how many were released.
func (r *MarketplaceRepo) ReleaseExpiredReservations(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE tickets
		SET status = $1, reserved_by = NULL, reserved_until = NULL, updated_at = $2
		WHERE status = $3 AND reserved_until < $4
	`

	result, err := r.db.ExecContext(ctx, query,
		models.TicketStatusAvailable, now, models.TicketStatusReserved, now)
	if err != nil {
		return 0, fmt.Errorf("failed to release expired reservations: %w", err)
	}

	return result.RowsAffected()
}

package marketplace

import (
	"context"
	"time"

	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ticketswapper/ticketswapper/services/marketplace MarketplaceRepo

// MarketplaceRepo represents the marketplace repository interface
type MarketplaceRepo interface {
	// tickets
	CreateTicket(ctx context.Context, ticket *models.Ticket) error
	GetTicketByID(ctx context.Context, id string) (*models.Ticket, error)
	BrowseTickets(ctx context.Context, filter *models.TicketFilter) ([]*models.Ticket, error)
	ReserveTicket(ctx context.Context, ticketID, buyerID string, until time.Time) (bool, error)
	ReleaseTicket(ctx context.Context, ticketID string) error
	MarkTicketRefunded(ctx context.Context, ticketID string) error
	ReleaseExpiredReservations(ctx context.Context, now time.Time) (int64, error)

	// purchase, executed as a single database transaction
	CompletePurchase(ctx context.Context, txn *models.Transaction) (*models.PaymentResult, error)

	// transactions and payouts
	GetTransactionByOrderID(ctx context.Context, orderID string) (*models.Transaction, error)
	GetTransactionByPaymentID(ctx context.Context, paymentID string) (*models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, id, status string) error
	CancelPayoutByTransactionID(ctx context.Context, transactionID string) error
	GetPayoutsBySeller(ctx context.Context, sellerID string) ([]*models.Payout, error)

	// webhook events
	InsertWebhookEvent(ctx context.Context, event *models.WebhookEvent) error
	MarkWebhookProcessed(ctx context.Context, id string) error

	// notifications
	CreateNotification(ctx context.Context, notification *models.Notification) error

	// users (shared schema; payment endpoints require a confirmed email)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

package marketplace

import (
	"context"

	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ticketswapper/ticketswapper/services/marketplace MarketplaceUC

// MarketplaceUC represents the marketplace usecase interface
type MarketplaceUC interface {
	// tickets
	ListTicket(ctx context.Context, sellerID string, req *models.TicketListingRequest) (*models.Ticket, error)
	BrowseTickets(ctx context.Context, filter *models.TicketFilter) ([]*models.Ticket, error)
	GetTicket(ctx context.Context, id string) (*models.Ticket, error)
	ReserveTicket(ctx context.Context, ticketID, buyerID string) (*models.Ticket, error)
	ReleaseExpiredReservations(ctx context.Context) (int64, error)

	// PNR validation
	ValidatePNR(ctx context.Context, req *models.ValidatePNRRequest) (*models.PNRValidation, error)

	// payments
	CreateOrder(ctx context.Context, buyerID string, req *models.CreateOrderRequest) (*models.OrderResponse, error)
	VerifyPayment(ctx context.Context, buyerID string, req *models.VerifyPaymentRequest) (*models.PaymentResult, error)
	ProcessWebhook(ctx context.Context, eventID, signature string, body []byte) error
	GetSellerPayouts(ctx context.Context, sellerID string) ([]*models.Payout, error)
}

package marketplace

import (
	"context"

	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/ticketswapper/ticketswapper/services/marketplace MarketplaceGW

// MarketplaceGW represents the marketplace gateway interface for the
// payment gateway, the PNR registry and event publishing
type MarketplaceGW interface {
	// payment gateway
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*models.GatewayOrder, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool

	// PNR registry
	FetchPNRRecords(ctx context.Context) ([]models.PNRRecord, error)

	// events
	PublishTicketListed(event *models.TicketEvent) error
	PublishTicketReserved(event *models.TicketEvent) error
	PublishPaymentCompleted(event *models.PaymentEvent) error
	PublishPaymentFailed(event *models.PaymentEvent) error
	PublishPaymentRefunded(event *models.PaymentEvent) error
}

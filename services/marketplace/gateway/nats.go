package gateway

import (
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

// PublishTicketListed publishes a ticket listed event
func (g *MarketplaceGW) PublishTicketListed(event *models.TicketEvent) error {
	return g.natsClient.PublishJSON(models.SubjectTicketListed, event)
}

// PublishTicketReserved publishes a ticket reserved event
func (g *MarketplaceGW) PublishTicketReserved(event *models.TicketEvent) error {
	return g.natsClient.PublishJSON(models.SubjectTicketReserved, event)
}

// PublishPaymentCompleted publishes a payment completed event
func (g *MarketplaceGW) PublishPaymentCompleted(event *models.PaymentEvent) error {
	return g.natsClient.PublishJSON(models.SubjectPaymentCompleted, event)
}

// PublishPaymentFailed publishes a payment failed event
func (g *MarketplaceGW) PublishPaymentFailed(event *models.PaymentEvent) error {
	return g.natsClient.PublishJSON(models.SubjectPaymentFailed, event)
}

// PublishPaymentRefunded publishes a payment refunded event
func (g *MarketplaceGW) PublishPaymentRefunded(event *models.PaymentEvent) error {
	return g.natsClient.PublishJSON(models.SubjectPaymentRefunded, event)
}

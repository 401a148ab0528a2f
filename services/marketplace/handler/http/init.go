package http

import (
	"github.com/ticketswapper/ticketswapper/services/marketplace"
)

// MarketplaceHandler handles HTTP requests for the marketplace service
type MarketplaceHandler struct {
	uc marketplace.MarketplaceUC
}

// NewMarketplaceHandler creates a new marketplace handler
func NewMarketplaceHandler(uc marketplace.MarketplaceUC) *MarketplaceHandler {
	return &MarketplaceHandler{
		uc: uc,
	}
}

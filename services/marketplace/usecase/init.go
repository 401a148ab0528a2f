package usecase

import (
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
)

// MarketplaceUC implements the marketplace.MarketplaceUC interface
type MarketplaceUC struct {
	repo marketplace.MarketplaceRepo
	gw   marketplace.MarketplaceGW
	cfg  *models.Config
}

// NewMarketplaceUC creates a new marketplace usecase instance
func NewMarketplaceUC(
	repo marketplace.MarketplaceRepo,
	gw marketplace.MarketplaceGW,
	cfg *models.Config,
) *MarketplaceUC {
	return &MarketplaceUC{
		repo: repo,
		gw:   gw,
		cfg:  cfg,
	}
}

package gateway

import (
	"time"

	"github.com/ticketswapper/ticketswapper/internal/pkg/database"
	httpclient "github.com/ticketswapper/ticketswapper/internal/pkg/http"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	natspkg "github.com/ticketswapper/ticketswapper/internal/pkg/nats"
)

// MarketplaceGW implements the marketplace.MarketplaceGW interface,
// bridging the usecase to Razorpay, the PNR registry and NATS.
type MarketplaceGW struct {
	cfg            *models.Config
	razorpayClient *httpclient.Client
	pnrClient      *httpclient.APIKeyClient
	redis          *database.RedisClient
	natsClient     *natspkg.Client
}

// NewMarketplaceGW creates a new marketplace gateway
func NewMarketplaceGW(cfg *models.Config, redis *database.RedisClient, natsClient *natspkg.Client) *MarketplaceGW {
	return &MarketplaceGW{
		cfg: cfg,
		razorpayClient: httpclient.NewClient(httpclient.Config{
			BaseURL:       cfg.Razorpay.BaseURL,
			Timeout:       time.Duration(cfg.Razorpay.Timeout) * time.Second,
			BasicAuthUser: cfg.Razorpay.KeyID,
			BasicAuthPass: cfg.Razorpay.KeySecret,
		}),
		pnrClient: httpclient.NewAPIKeyClient(
			cfg.PNRRegistry.BaseURL,
			cfg.PNRRegistry.APIKey,
			time.Duration(cfg.PNRRegistry.Timeout)*time.Second,
		),
		redis:      redis,
		natsClient: natsClient,
	}
}

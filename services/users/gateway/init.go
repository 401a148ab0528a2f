package gateway

import (
	httpclient "github.com/ticketswapper/ticketswapper/internal/pkg/http"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	natspkg "github.com/ticketswapper/ticketswapper/internal/pkg/nats"
)

// UserGW implements the users.UserGW interface, bridging the usecase to
// the SMS provider, the email provider and NATS.
type UserGW struct {
	cfg         *models.Config
	smsClient   *httpclient.APIKeyClient
	emailClient *httpclient.APIKeyClient
	natsClient  *natspkg.Client
}

// NewUserGW creates a new user gateway
func NewUserGW(cfg *models.Config, natsClient *natspkg.Client) *UserGW {
	return &UserGW{
		cfg:         cfg,
		smsClient:   httpclient.NewAPIKeyClient(cfg.SMS.BaseURL, cfg.SMS.APIKey, httpclient.DefaultTimeout),
		emailClient: httpclient.NewAPIKeyClient(cfg.Email.BaseURL, cfg.Email.APIKey, httpclient.DefaultTimeout),
		natsClient:  natsClient,
	}
}

package gateway

import (
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

// PublishUserRegistered publishes a user registration event to NATS
func (g *UserGW) PublishUserRegistered(event *models.UserEvent) error {
	return g.natsClient.PublishJSON(models.SubjectUserRegistered, event)
}

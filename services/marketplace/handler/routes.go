package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ticketswapper/ticketswapper/internal/pkg/middleware"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
	httphandler "github.com/ticketswapper/ticketswapper/services/marketplace/handler/http"
)

// RegisterRoutes wires the marketplace service endpoints onto the echo
// instance
func RegisterRoutes(e *echo.Echo, uc marketplace.MarketplaceUC, cfg *models.Config) {
	h := httphandler.NewMarketplaceHandler(uc)
	jwtAuth := middleware.JWTAuthMiddleware(cfg.JWT)

	tickets := e.Group("/tickets")
	tickets.GET("", h.BrowseTickets)
	tickets.GET("/:id", h.GetTicket)
	tickets.POST("", h.ListTicket, jwtAuth)
	tickets.POST("/:id/reserve", h.ReserveTicket, jwtAuth)

	e.POST("/pnr/validate", h.ValidatePNR, jwtAuth)

	payments := e.Group("/payments")
	payments.POST("/orders", h.CreateOrder, jwtAuth)
	payments.POST("/verify", h.VerifyPayment, jwtAuth)
	payments.GET("/payouts", h.GetPayouts, jwtAuth)

	// The gateway authenticates itself with an HMAC signature, not a JWT.
	payments.POST("/webhook", h.Webhook)
}

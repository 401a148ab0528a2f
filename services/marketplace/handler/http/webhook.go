package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ticketswapper/ticketswapper/internal/utils"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
)

// Razorpay webhook headers
const (
	headerWebhookSignature = "X-Razorpay-Signature"
	headerWebhookEventID   = "X-Razorpay-Event-Id"
)

// Webhook handles POST /payments/webhook. The signature covers the raw
// body, so it is read before any JSON parsing.
func (h *MarketplaceHandler) Webhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read request body")
	}

	signature := c.Request().Header.Get(headerWebhookSignature)
	eventID := c.Request().Header.Get(headerWebhookEventID)
	if signature == "" || eventID == "" {
		return utils.BadRequestResponse(c, "Missing webhook signature or event id")
	}

	if err := h.uc.ProcessWebhook(c.Request().Context(), eventID, signature, body); err != nil {
		if errors.Is(err, marketplace.ErrInvalidSignature) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to process webhook")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Webhook processed", nil)
}

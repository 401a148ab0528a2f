package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ticketswapper/ticketswapper/internal/pkg/middleware"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/internal/utils"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
)

// CreateOrder handles POST /payments/orders
func (h *MarketplaceHandler) CreateOrder(c echo.Context) error {
	buyerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), buyerID.String(), &req)
	if err != nil {
		var missingErr *marketplace.MissingFieldsError
		switch {
		case errors.As(err, &missingErr):
			return utils.BadRequestResponse(c, missingErr.Error())
		case errors.Is(err, marketplace.ErrInvalidAmount):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrEmailNotConfirmed):
			return utils.ForbiddenResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrTicketNotFound), errors.Is(err, marketplace.ErrUserNotFound):
			return utils.NotFoundResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrAlreadySold), errors.Is(err, marketplace.ErrNotReservedByBuyer):
			return utils.ConflictResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to create order")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Order created successfully", order)
}

// VerifyPayment handles POST /payments/verify
func (h *MarketplaceHandler) VerifyPayment(c echo.Context) error {
	buyerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	result, err := h.uc.VerifyPayment(c.Request().Context(), buyerID.String(), &req)
	if err != nil {
		var missingErr *marketplace.MissingFieldsError
		switch {
		case errors.As(err, &missingErr):
			return utils.BadRequestResponse(c, missingErr.Error())
		case errors.Is(err, marketplace.ErrEmailNotConfirmed):
			return utils.ForbiddenResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrInvalidSignature):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrTicketNotFound), errors.Is(err, marketplace.ErrUserNotFound):
			return utils.NotFoundResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrAlreadySold), errors.Is(err, marketplace.ErrNotReservedByBuyer):
			return utils.ConflictResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to verify payment")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment verified successfully", result)
}

// GetPayouts handles GET /payments/payouts
func (h *MarketplaceHandler) GetPayouts(c echo.Context) error {
	sellerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	payouts, err := h.uc.GetSellerPayouts(c.Request().Context(), sellerID.String())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get payouts")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payouts retrieved successfully", payouts)
}

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

// ListTicket handles POST /tickets
func (h *MarketplaceHandler) ListTicket(c echo.Context) error {
	sellerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TicketListingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.PNR == "" || req.PassengerName == "" {
		return utils.BadRequestResponse(c, "PNR and passenger name are required")
	}

	ticket, err := h.uc.ListTicket(c.Request().Context(), sellerID.String(), &req)
	if err != nil {
		switch {
		case errors.Is(err, marketplace.ErrInvalidPNRFormat):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrPNRNotFound):
			return utils.NotFoundResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrNameMismatch):
			return utils.ErrorResponseHandler(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, marketplace.ErrDuplicateListing):
			return utils.ConflictResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to list ticket")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ticket listed successfully", ticket)
}

// BrowseTickets handles GET /tickets
func (h *MarketplaceHandler) BrowseTickets(c echo.Context) error {
	var filter models.TicketFilter
	if err := c.Bind(&filter); err != nil {
		return utils.BadRequestResponse(c, "Invalid filter")
	}

	tickets, err := h.uc.BrowseTickets(c.Request().Context(), &filter)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to browse tickets")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tickets retrieved successfully", tickets)
}

// GetTicket handles GET /tickets/:id
func (h *MarketplaceHandler) GetTicket(c echo.Context) error {
	id := c.Param("id")

	ticket, err := h.uc.GetTicket(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, marketplace.ErrTicketNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to get ticket")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ticket retrieved successfully", ticket)
}

// ReserveTicket handles POST /tickets/:id/reserve
func (h *MarketplaceHandler) ReserveTicket(c echo.Context) error {
	buyerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	ticket, err := h.uc.ReserveTicket(c.Request().Context(), c.Param("id"), buyerID.String())
	if err != nil {
		switch {
		case errors.Is(err, marketplace.ErrTicketNotFound):
			return utils.NotFoundResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrCannotBuyOwnTicket):
			return utils.ForbiddenResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrTicketUnavailable):
			return utils.ConflictResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to reserve ticket")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ticket reserved successfully", ticket)
}

// ValidatePNR handles POST /pnr/validate
func (h *MarketplaceHandler) ValidatePNR(c echo.Context) error {
	var req models.ValidatePNRRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.PNR == "" || req.PassengerName == "" {
		return utils.BadRequestResponse(c, "PNR and passenger name are required")
	}

	validation, err := h.uc.ValidatePNR(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, marketplace.ErrInvalidPNRFormat):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrPNRNotFound):
			return utils.NotFoundResponse(c, err.Error())
		case errors.Is(err, marketplace.ErrNameMismatch):
			return utils.ErrorResponseHandler(c, http.StatusUnprocessableEntity, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to validate PNR")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "PNR validated successfully", validation)
}

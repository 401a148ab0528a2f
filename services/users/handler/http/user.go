package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ticketswapper/ticketswapper/internal/pkg/middleware"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/internal/utils"
	"github.com/ticketswapper/ticketswapper/services/users"
)

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetUserByID(c.Request().Context(), userID.String())
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to get profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile handles POST /users
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID.String(), &req)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}

// GetUserByID handles GET /users/:id
func (h *UserHandler) GetUserByID(c echo.Context) error {
	id := c.Param("id")

	user, err := h.userUC.GetUserByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to get user")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// ConfirmEmail handles GET /users/email/confirm
func (h *UserHandler) ConfirmEmail(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return utils.BadRequestResponse(c, "Confirmation token is required")
	}

	if err := h.userUC.ConfirmEmail(c.Request().Context(), token); err != nil {
		if errors.Is(err, users.ErrEmailTokenInvalid) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to confirm email")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Email confirmed successfully", nil)
}

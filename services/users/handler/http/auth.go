package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/internal/utils"
	"github.com/ticketswapper/ticketswapper/services/users"
)

// GenerateOTP handles POST /auth/otp/generate
func (h *UserHandler) GenerateOTP(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.MSISDN == "" {
		return utils.BadRequestResponse(c, "MSISDN is required")
	}

	err := h.userUC.GenerateOTP(c.Request().Context(), req.MSISDN)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidMSISDN):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, users.ErrTooManyOTPRequests):
			return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to generate OTP")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP handles POST /auth/otp/verify
func (h *UserHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.MSISDN == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "MSISDN and OTP are required")
	}

	auth, err := h.userUC.VerifyOTP(c.Request().Context(), req.MSISDN, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidMSISDN):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, users.ErrOTPInvalid), errors.Is(err, users.ErrOTPExpired):
			return utils.UnauthorizedResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to verify OTP")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Authentication successful", auth)
}

package users

import "errors"

// Sentinel errors returned by the users service. Handlers map these to
// HTTP status codes.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidMSISDN      = errors.New("invalid MSISDN format")
	ErrOTPInvalid         = errors.New("invalid OTP code")
	ErrOTPExpired         = errors.New("OTP expired")
	ErrTooManyOTPRequests = errors.New("too many OTP requests")
	ErrEmailTokenInvalid  = errors.New("invalid or expired confirmation token")
)

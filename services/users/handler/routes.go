package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ticketswapper/ticketswapper/internal/pkg/database"
	"github.com/ticketswapper/ticketswapper/internal/pkg/middleware"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/services/users"
	httphandler "github.com/ticketswapper/ticketswapper/services/users/handler/http"
)

// RegisterRoutes wires the users service endpoints onto the echo instance
func RegisterRoutes(e *echo.Echo, userUC users.UserUC, cfg *models.Config, redisClient *database.RedisClient) {
	h := httphandler.NewUserHandler(userUC)

	otpLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Key:         "ratelimit:otp",
		Limit:       10,
		Period:      time.Minute,
	})

	auth := e.Group("/auth")
	auth.POST("/otp/generate", h.GenerateOTP, otpLimiter)
	auth.POST("/otp/verify", h.VerifyOTP, otpLimiter)

	// Email confirmation links are opened from the user's inbox, so the
	// endpoint cannot require a bearer token.
	e.GET("/users/email/confirm", h.ConfirmEmail)

	usersGroup := e.Group("/users", middleware.JWTAuthMiddleware(cfg.JWT))
	usersGroup.GET("/me", h.GetProfile)
	usersGroup.POST("", h.UpdateProfile)
	usersGroup.GET("/:id", h.GetUserByID)
}

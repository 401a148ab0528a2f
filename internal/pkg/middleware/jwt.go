package middleware

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/internal/utils"
)

// JWTAuthMiddleware builds the echo-jwt middleware for protected route
// groups. The success handler re-parses the token with golang-jwt/v4 so the
// claims land in the context with the types the handlers expect.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(config.Secret),
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.UnauthorizedResponse(c, "Invalid or missing token")
		},
		SuccessHandler: func(c echo.Context) {
			authHeader := c.Request().Header.Get("Authorization")
			if len(authHeader) <= 7 || authHeader[:7] != "Bearer " {
				return
			}

			token, err := jwt.Parse(authHeader[7:], func(token *jwt.Token) (interface{}, error) {
				return []byte(config.Secret), nil
			})
			if err != nil || !token.Valid {
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", claims["user_id"]))
			if err != nil {
				return
			}

			c.Set("user_id", userID)
			c.Set("user_role", claims["role"])
		},
	})
}

// UserIDFromContext extracts the authenticated user id set by the JWT
// middleware.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}

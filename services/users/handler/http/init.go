package http

import (
	"github.com/ticketswapper/ticketswapper/services/users"
)

// UserHandler handles HTTP requests for the users service
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

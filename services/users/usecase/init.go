package usecase

import (
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/services/users"
)

// UserUC implements the users.UserUC interface
type UserUC struct {
	userRepo users.UserRepo
	userGW   users.UserGW
	cfg      *models.Config
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	userGW users.UserGW,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		userGW:   userGW,
		cfg:      cfg,
	}
}

package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/ticketswapper/ticketswapper/internal/pkg/database"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

// UserRepo implements the users.UserRepo interface over Postgres and Redis
type UserRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewUserRepo creates a new user repository
func NewUserRepo(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) *UserRepo {
	return &UserRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

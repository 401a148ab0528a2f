package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/ticketswapper/ticketswapper/internal/pkg/database"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

// MarketplaceRepo implements the marketplace.MarketplaceRepo interface
// over Postgres, with Redis for reservation keys.
type MarketplaceRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewMarketplaceRepo creates a new marketplace repository
func NewMarketplaceRepo(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) *MarketplaceRepo {
	return &MarketplaceRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

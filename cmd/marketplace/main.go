package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ticketswapper/ticketswapper/internal/pkg/config"
	"github.com/ticketswapper/ticketswapper/internal/pkg/database"
	"github.com/ticketswapper/ticketswapper/internal/pkg/health"
	"github.com/ticketswapper/ticketswapper/internal/pkg/logger"
	"github.com/ticketswapper/ticketswapper/internal/pkg/metrics"
	"github.com/ticketswapper/ticketswapper/internal/pkg/middleware"
	natspkg "github.com/ticketswapper/ticketswapper/internal/pkg/nats"
	"github.com/ticketswapper/ticketswapper/internal/pkg/server"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
	"github.com/ticketswapper/ticketswapper/services/marketplace/gateway"
	"github.com/ticketswapper/ticketswapper/services/marketplace/handler"
	"github.com/ticketswapper/ticketswapper/services/marketplace/repository"
	"github.com/ticketswapper/ticketswapper/services/marketplace/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "marketplace-service"

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/marketplace.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	metrics.Init()

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	if err := database.RunMigrations(context.Background(), postgresClient.GetDB()); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	marketplaceRepo := repository.NewMarketplaceRepo(configs, postgresClient.GetDB(), redisClient)
	marketplaceGW := gateway.NewMarketplaceGW(configs, redisClient, natsClient)
	marketplaceUC := usecase.NewMarketplaceUC(marketplaceRepo, marketplaceGW, configs)

	// Expired reservations are swept in the background so abandoned
	// checkouts return to the marketplace.
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go runReservationJanitor(janitorCtx, marketplaceUC, configs.Reservation.SweepInterval)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(middleware.MetricsMiddleware())

	health.RegisterHealthEndpoints(e, appName)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	handler.RegisterRoutes(e, marketplaceUC, configs)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}

func runReservationJanitor(ctx context.Context, uc marketplace.MarketplaceUC, sweepIntervalSeconds int) {
	if sweepIntervalSeconds <= 0 {
		sweepIntervalSeconds = 60
	}
	ticker := time.NewTicker(time.Duration(sweepIntervalSeconds) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			released, err := uc.ReleaseExpiredReservations(ctx)
			if err != nil {
				logger.Error("Failed to release expired reservations", logger.Err(err))
				continue
			}
			if released > 0 {
				logger.Info("Released expired reservations", logger.Int64("count", released))
			}
		}
	}
}

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

// InitConfig loads configuration from an env file (local only) and the
// process environment.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 0)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 0)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 0)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "ticketswapper")

	// Payment gateway config
	configs.Razorpay.KeyID = GetEnv("RAZORPAY_KEY_ID", "")
	configs.Razorpay.KeySecret = GetEnv("RAZORPAY_KEY_SECRET", "")
	configs.Razorpay.WebhookSecret = GetEnv("RAZORPAY_WEBHOOK_SECRET", "")
	configs.Razorpay.BaseURL = GetEnv("RAZORPAY_BASE_URL", "https://api.razorpay.com")
	configs.Razorpay.Timeout = GetEnvAsInt("RAZORPAY_TIMEOUT", 30)

	// PNR registry config
	configs.PNRRegistry.BaseURL = GetEnv("PNR_REGISTRY_URL", "")
	configs.PNRRegistry.APIKey = GetEnv("PNR_REGISTRY_API_KEY", "")
	configs.PNRRegistry.Timeout = GetEnvAsInt("PNR_REGISTRY_TIMEOUT", 10)
	configs.PNRRegistry.CacheTTL = GetEnvAsInt("PNR_REGISTRY_CACHE_TTL", 60)

	// SMS provider config
	configs.SMS.BaseURL = GetEnv("SMS_PROVIDER_URL", "")
	configs.SMS.APIKey = GetEnv("SMS_PROVIDER_API_KEY", "")
	configs.SMS.SenderID = GetEnv("SMS_SENDER_ID", "TKTSWP")

	// Email provider config
	configs.Email.BaseURL = GetEnv("EMAIL_PROVIDER_URL", "")
	configs.Email.APIKey = GetEnv("EMAIL_PROVIDER_API_KEY", "")
	configs.Email.FromAddr = GetEnv("EMAIL_FROM_ADDR", "noreply@ticketswapper.app")
	configs.Email.ConfirmURL = GetEnv("EMAIL_CONFIRM_URL", "")

	// Pricing config
	configs.Pricing.CommissionPercent = GetEnvAsFloat("PRICING_COMMISSION_PERCENT", 5.0)
	configs.Pricing.Currency = GetEnv("PRICING_CURRENCY", "INR")

	// Reservation config
	configs.Reservation.TTLMinutes = GetEnvAsInt("RESERVATION_TTL_MINUTES", 10)
	configs.Reservation.SweepInterval = GetEnvAsInt("RESERVATION_SWEEP_INTERVAL", 30)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %f", key, defaultValue)
		return defaultValue
	}

	return value
}

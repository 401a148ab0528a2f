package models

// Config holds all configuration for the application
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	NATS        NATSConfig
	JWT         JWTConfig
	Logger      LoggerConfig
	Razorpay    RazorpayConfig
	PNRRegistry PNRRegistryConfig
	SMS         SMSConfig
	Email       EmailConfig
	Pricing     PricingConfig
	Reservation ReservationConfig
}

// AppConfig holds application-wide configuration
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Driver    string `json:"driver"`
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	SSLMode   string `json:"ssl_mode"`
	MaxConns  int    `json:"max_conns"`
	IdleConns int    `json:"idle_conns"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string `json:"url"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string `json:"secret"`
	Expiration int    `json:"expiration"` // minutes
	Issuer     string `json:"issuer"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}

// RazorpayConfig holds payment gateway credentials and endpoints
type RazorpayConfig struct {
	KeyID         string `json:"key_id"`
	KeySecret     string `json:"key_secret"`
	WebhookSecret string `json:"webhook_secret"`
	BaseURL       string `json:"base_url"`
	Timeout       int    `json:"timeout"` // seconds
}

// PNRRegistryConfig holds the external PNR record store configuration
type PNRRegistryConfig struct {
	BaseURL  string `json:"base_url"`
	APIKey   string `json:"api_key"`
	Timeout  int    `json:"timeout"`   // seconds
	CacheTTL int    `json:"cache_ttl"` // seconds
}

// SMSConfig holds the SMS provider configuration for OTP delivery
type SMSConfig struct {
	BaseURL  string `json:"base_url"`
	APIKey   string `json:"api_key"`
	SenderID string `json:"sender_id"`
}

// EmailConfig holds the transactional email provider configuration
type EmailConfig struct {
	BaseURL    string `json:"base_url"`
	APIKey     string `json:"api_key"`
	FromAddr   string `json:"from_addr"`
	ConfirmURL string `json:"confirm_url"`
}

// PricingConfig holds marketplace fee configuration
type PricingConfig struct {
	CommissionPercent float64 `json:"commission_percent"`
	Currency          string  `json:"currency"`
}

// ReservationConfig holds ticket reservation configuration
type ReservationConfig struct {
	TTLMinutes    int `json:"ttl_minutes"`
	SweepInterval int `json:"sweep_interval"` // seconds
}

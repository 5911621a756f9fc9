package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

const (
	// StorageMemory keeps documents in process memory only
	StorageMemory = "memory"
	// StoragePostgres keeps documents in a PostgreSQL table through GORM
	StoragePostgres = "postgres"
)

// DBConfig holds database configuration
type DBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        logger.LogLevel
}

// GetDSN returns the PostgreSQL connection string
func (c *DBConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// JWTConfig holds JWT configuration for admin session tokens
type JWTConfig struct {
	SigningKey      string
	ExpirationHours int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Prefix string
}

// StorageConfig selects where store documents are kept
type StorageConfig struct {
	Backend   string
	KeyPrefix string
}

// AdminConfig holds the admin console gate configuration
type AdminConfig struct {
	Secret string
	// SecretHash is a bcrypt hash of the secret; when set it replaces Secret
	SecretHash string
}

// StylistConfig holds the text generation endpoint used by the chat stylist
type StylistConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// DefaultsConfig holds the settings used when nothing has been saved yet
type DefaultsConfig struct {
	WhatsAppNumber string
	AdminEmail     string
}

// Config holds all configuration
type Config struct {
	ServiceName string
	DB          DBConfig
	Server      ServerConfig
	JWT         JWTConfig
	Log         LogConfig
	Metrics     MetricsConfig
	Storage     StorageConfig
	Admin       AdminConfig
	Stylist     StylistConfig
	Defaults    DefaultsConfig
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not returning error as .env file is optional
		fmt.Printf("Warning: .env file not found, using environment variables\n")
	}

	config := &Config{
		ServiceName: getEnv("SERVICE_NAME", "storefront"),
		DB: DBConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "password"),
			DBName:          getEnv("DB_NAME", "storefront"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 1*time.Hour),
			LogLevel:        getEnvAsLogLevel("DB_LOG_LEVEL", logger.Error),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		JWT: JWTConfig{
			SigningKey:      getEnv("JWT_SIGNING_KEY", "defaultsecretkey"),
			ExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 8),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "storefront"),
		},
		Storage: StorageConfig{
			Backend:   getEnv("STORAGE_BACKEND", StorageMemory),
			KeyPrefix: getEnv("STORAGE_KEY_PREFIX", ""),
		},
		Admin: AdminConfig{
			Secret:     getEnv("ADMIN_SECRET", "03377501681faheemabid"),
			SecretHash: getEnv("ADMIN_SECRET_HASH", ""),
		},
		Stylist: StylistConfig{
			BaseURL: getEnv("STYLIST_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai"),
			Model:   getEnv("STYLIST_MODEL", "gemini-3-flash-preview"),
			APIKey:  getEnv("STYLIST_API_KEY", ""),
			Timeout: getEnvAsDuration("STYLIST_TIMEOUT", 0),
		},
		Defaults: DefaultsConfig{
			WhatsAppNumber: getEnv("DEFAULT_WHATSAPP_NUMBER", "923001234567"),
			AdminEmail:     getEnv("DEFAULT_ADMIN_EMAIL", "admin@trendynd.com"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the values that cannot fall back to a sane default
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Admin.Secret == "" && c.Admin.SecretHash == "" {
		return errors.New("admin secret must not be empty")
	}
	if c.JWT.SigningKey == "" {
		return errors.New("jwt signing key must not be empty")
	}
	return nil
}

// LogFields returns the configuration as zap fields for the startup log
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.String("server_port", c.Server.Port),
		zap.String("storage_backend", c.Storage.Backend),
		zap.String("db_host", c.DB.Host),
		zap.String("db_name", c.DB.DBName),
		zap.String("stylist_model", c.Stylist.Model),
		zap.Bool("stylist_api_key_set", c.Stylist.APIKey != ""),
		zap.Bool("admin_secret_hashed", c.Admin.SecretHash != ""),
	}
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as durations
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as log levels
func getEnvAsLogLevel(key string, defaultValue logger.LogLevel) logger.LogLevel {
	valueStr := getEnv(key, "")
	switch valueStr {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return defaultValue
	}
}

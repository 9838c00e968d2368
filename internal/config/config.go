package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"apartment-be-svc/internal/models"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	Mail      MailConfig
	App       AppConfig
	Billing   BillingConfig
	CORS      CORSConfig
	Scheduler SchedulerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}

// MailConfig holds SMTP sender configuration
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// AppConfig holds settings used when rendering reminders
type AppConfig struct {
	BaseURL        string
	Timezone       string
	Locale         string
	CurrencySymbol string
}

// BillingConfig holds the monthly rent charge and due-date policy
type BillingConfig struct {
	RentPrice decimal.Decimal
	RentTax   decimal.Decimal
	DueDays   int
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins string
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	ReminderEnabled        bool
	ReminderCronExpression string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env file doesn't exist
		fmt.Println("No .env file found, using environment variables")
	}

	rentPrice, err := getEnvAsDecimal("RENT_PRICE", decimal.NewFromInt(1500000))
	if err != nil {
		return nil, err
	}
	rentTax, err := getEnvAsDecimal("RENT_TAX", decimal.Zero)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "apartment"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Mail: MailConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("MAIL_FROM", ""),
			FromName: getEnv("MAIL_FROM_NAME", "Apartment Management"),
		},
		App: AppConfig{
			BaseURL:        strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:3000"), "/"),
			Timezone:       getEnv("APP_TIMEZONE", "Asia/Jakarta"),
			Locale:         strings.ToLower(strings.TrimSpace(getEnv("APP_LOCALE", "id"))),
			CurrencySymbol: getEnv("CURRENCY_SYMBOL", "Rp"),
		},
		Billing: BillingConfig{
			RentPrice: rentPrice,
			RentTax:   rentTax,
			DueDays:   getEnvAsInt("BILLING_DUE_DAYS", 10),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),
		},
		Scheduler: SchedulerConfig{
			ReminderEnabled:        getEnvAsBool("REMINDER_SCHEDULER_ENABLED", false),
			ReminderCronExpression: getEnv("REMINDER_CRON_EXPRESSION", "0 0 8 * * *"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Billing.RentPrice.IsNegative() || c.Billing.RentPrice.GreaterThan(models.MaxPrice) {
		return fmt.Errorf("RENT_PRICE must be between 0 and %s", models.MaxPrice)
	}
	if c.Billing.RentTax.IsNegative() || c.Billing.RentTax.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("RENT_TAX must be between 0 and 100")
	}
	if !hasScale(c.Billing.RentPrice, models.MoneyPlaces) || !hasScale(c.Billing.RentTax, models.MoneyPlaces) {
		return fmt.Errorf("RENT_PRICE and RENT_TAX allow at most %d decimal places", models.MoneyPlaces)
	}
	if c.Billing.DueDays < 0 {
		return fmt.Errorf("BILLING_DUE_DAYS must not be negative")
	}
	return nil
}

func hasScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}

// GetDSN returns PostgreSQL connection string.
// Sessions run in UTC so date-only due dates compare against UTC midnights.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// AllowedOriginList splits the comma separated origin list
func (c *CORSConfig) AllowedOriginList() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvAsBool gets an environment variable as bool with a fallback value
func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvAsDecimal gets an environment variable as decimal; malformed values are an error
func getEnvAsDecimal(key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

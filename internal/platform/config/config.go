package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	JWTSecret      string
	JWTIssuer      string
	AllowedOrigins []string
	RateLimit      string

	// Unit-of-work settings for multi-row writes.
	TxIsolation pgx.TxIsoLevel
	TxTimeout   time.Duration

	// ForecastFiscalYear is the calendar year the forecast fiscal year starts in.
	ForecastFiscalYear int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_ISSUER", "expense-ledger-app")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("DB_TX_ISOLATION", "read committed")
	viper.SetDefault("DB_TX_TIMEOUT", "15s")
	viper.SetDefault("FORECAST_FISCAL_YEAR", 2023)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      viper.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:     viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		JWTIssuer:          viper.GetString("JWT_ISSUER"),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		ForecastFiscalYear: viper.GetInt("FORECAST_FISCAL_YEAR"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	for _, o := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	iso, err := ParseIsolation(viper.GetString("DB_TX_ISOLATION"))
	if err != nil {
		return nil, err
	}
	cfg.TxIsolation = iso

	timeoutStr := viper.GetString("DB_TX_TIMEOUT")
	cfg.TxTimeout, err = time.ParseDuration(timeoutStr)
	if err != nil {
		cfg.TxTimeout = 15 * time.Second
		log.Printf("Warning: Invalid value for DB_TX_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, cfg.TxTimeout)
	}

	if cfg.ForecastFiscalYear < 1970 {
		return nil, fmt.Errorf("FORECAST_FISCAL_YEAR must be a calendar year, got %d", cfg.ForecastFiscalYear)
	}

	return cfg, nil
}

// ParseIsolation maps a human readable isolation level to pgx's. Levels
// weaker than read committed are refused.
func ParseIsolation(level string) (pgx.TxIsoLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "read committed", "read_committed":
		return pgx.ReadCommitted, nil
	case "repeatable read", "repeatable_read":
		return pgx.RepeatableRead, nil
	case "serializable":
		return pgx.Serializable, nil
	default:
		return "", fmt.Errorf("unsupported DB_TX_ISOLATION %q", level)
	}
}

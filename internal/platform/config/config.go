package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// RoutingNumber is the institution-wide ABA routing number stamped on
	// every account.
	RoutingNumber string

	// AuthRateLimit is a limiter format string like "5-M" (5 per minute),
	// applied to the unauthenticated auth endpoints.
	AuthRateLimit string

	// LedgerCommitTimeout bounds the atomic balance+transaction commit.
	// Past the deadline the commit fails closed and row locks are released.
	LedgerCommitTimeout time.Duration

	FrontendBaseURL string
	PosthogAPIKey   string

	// SMTP settings for transaction receipt emails. Delivery is disabled
	// when SMTPHost is empty.
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "belize-bank-backend")
	viper.SetDefault("ROUTING_NUMBER", "211691185")
	viper.SetDefault("AUTH_RATE_LIMIT", "5-M")
	viper.SetDefault("LEDGER_COMMIT_TIMEOUT", "5s")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASS", "")
	viper.SetDefault("SMTP_FROM", "no-reply@belizebank.example")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RoutingNumber = viper.GetString("ROUTING_NUMBER")
	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")

	commitTimeoutStr := viper.GetString("LEDGER_COMMIT_TIMEOUT")
	commitTimeout, err := time.ParseDuration(commitTimeoutStr)
	if err != nil {
		commitTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for LEDGER_COMMIT_TIMEOUT ('%s'). Defaulting to %s.\n", commitTimeoutStr, commitTimeout.String())
	}
	cfg.LedgerCommitTimeout = commitTimeout
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetString("SMTP_PORT")
	cfg.SMTPUser = viper.GetString("SMTP_USER")
	cfg.SMTPPass = viper.GetString("SMTP_PASS")
	cfg.SMTPFrom = viper.GetString("SMTP_FROM")
	if cfg.SMTPHost == "" {
		log.Println("Warning: SMTP_HOST not set. Transaction receipt emails are disabled.")
	}

	return cfg, nil
}

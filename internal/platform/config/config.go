package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	JWTIssuer      string
	MigrationsPath string

	// Optional Redis; rate limiting and debt locks fall back to in-process implementations without it.
	RedisURL string

	// ulule/limiter formatted rates, e.g. "100-M".
	RateLimit        string
	WebhookRateLimit string

	PosthogAPIKey   string
	PosthogEndpoint string

	CORSAllowedOrigins []string

	DefaultPhoneRegion     string
	RecurrenceHorizonYears int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "edu-backoffice")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("WEBHOOK_RATE_LIMIT", "60-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://us.i.posthog.com")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("DEFAULT_PHONE_REGION", "BR")
	viper.SetDefault("RECURRENCE_HORIZON_YEARS", 5)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:            viper.GetString("PGSQL_URL"),
		Port:                   viper.GetString("PORT"),
		IsProduction:           viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:          viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:              viper.GetString("JWT_SECRET"),
		JWTIssuer:              viper.GetString("JWT_ISSUER"),
		MigrationsPath:         viper.GetString("MIGRATIONS_PATH"),
		RedisURL:               viper.GetString("REDIS_URL"),
		RateLimit:              viper.GetString("RATE_LIMIT"),
		WebhookRateLimit:       viper.GetString("WEBHOOK_RATE_LIMIT"),
		PosthogAPIKey:          viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:        viper.GetString("POSTHOG_ENDPOINT"),
		CORSAllowedOrigins:     splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		DefaultPhoneRegion:     strings.ToUpper(viper.GetString("DEFAULT_PHONE_REGION")),
		RecurrenceHorizonYears: viper.GetInt("RECURRENCE_HORIZON_YEARS"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.RecurrenceHorizonYears <= 0 {
		log.Printf("Warning: Invalid RECURRENCE_HORIZON_YEARS (%d). Defaulting to 5.\n", cfg.RecurrenceHorizonYears)
		cfg.RecurrenceHorizonYears = 5
	}
	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Product analytics disabled.")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string

	JWTSecret string
	JWTExpiry time.Duration

	OTPLength      int
	OTPTTL         time.Duration
	ResetTicketTTL time.Duration

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string

	// RedisAddr selects the shared OTP store backend. Empty means the
	// in-process store, which is fine for a single instance.
	RedisAddr string

	StripeSecretKey string
	StripePriceID   string
	StripeProductID string
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/tyler?parseTime=true"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTExpiry: 24 * time.Hour,

		OTPLength:      getEnvInt("OTP_LENGTH", 6),
		OTPTTL:         120 * time.Second,
		ResetTicketTTL: 10 * time.Minute,

		SMTPHost: getEnv("SMTP_HOST", ""),
		SMTPPort: getEnv("SMTP_PORT", "465"),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),
		MailFrom: getEnv("MAIL_FROM", "no-reply@tyler.app"),

		RedisAddr: getEnv("REDIS_ADDR", ""),

		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		StripePriceID:   getEnv("STRIPE_PRICE_ID", ""),
		StripeProductID: getEnv("STRIPE_PRODUCT_ID", ""),
	}

	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			slog.Error("JWT_SECRET must be set outside development")
			os.Exit(1)
		}
		cfg.JWTSecret = "dev-secret-change-in-production"
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

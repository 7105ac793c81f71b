package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/tylerhq/tyler-go/internal/config"
	"github.com/tylerhq/tyler-go/internal/handler"
	"github.com/tylerhq/tyler-go/internal/mail"
	"github.com/tylerhq/tyler-go/internal/middleware"
	"github.com/tylerhq/tyler-go/internal/otpstore"
	"github.com/tylerhq/tyler-go/internal/repository"
	"github.com/tylerhq/tyler-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var codes, tickets otpstore.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		codes = otpstore.NewRedisStore(rdb, "tyler:otp")
		tickets = otpstore.NewRedisStore(rdb, "tyler:ticket")
		slog.Info("otp store backend", "backend", "redis", "addr", cfg.RedisAddr)
	} else {
		codeStore := otpstore.NewMemoryStore()
		ticketStore := otpstore.NewMemoryStore()
		defer codeStore.Close()
		defer ticketStore.Close()
		codes, tickets = codeStore, ticketStore
		slog.Info("otp store backend", "backend", "memory")
	}

	if cfg.SMTPHost == "" {
		slog.Warn("SMTP_HOST not set — OTP mail delivery will fail")
	}
	mailer := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)

	userRepo := repository.NewUserRepository(db)
	fileRepo := repository.NewFileRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	resetService := service.NewPasswordResetService(userRepo, codes, tickets, mailer,
		cfg.OTPLength, cfg.OTPTTL, cfg.ResetTicketTTL)
	fileService := service.NewFileService(fileRepo)

	authHandler := handler.NewAuthHandler(authService)
	resetHandler := handler.NewPasswordResetHandler(resetService)
	profileHandler := handler.NewProfileHandler(authService)
	fileHandler := handler.NewFileHandler(fileService)
	healthHandler := handler.NewHealthHandler(db)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Tyler API","status":"running"}`))
	})
	r.Get("/api/health", healthHandler.HandleHealth)

	// Unauthenticated auth surface, rate limited per IP.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/auth/signup", authHandler.HandleSignup)
		r.Post("/api/auth/signin", authHandler.HandleSignin)
		r.Post("/api/auth/generate-otp", resetHandler.HandleGenerateOTP)
		r.Post("/api/auth/confirm-otp", resetHandler.HandleConfirmOTP)
		r.Post("/api/auth/reset-password", resetHandler.HandleResetPassword)
	})

	// Everything behind the token gate.
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))

		r.Put("/api/auth/change-password", authHandler.HandleChangePassword)

		r.Get("/api/profile", profileHandler.HandleGetProfile)
		r.Put("/api/profile", profileHandler.HandleUpdateProfile)

		r.Get("/api/files", fileHandler.HandleList)
		r.Post("/api/files", fileHandler.HandleCreate)
		r.Put("/api/files/{file_id}", fileHandler.HandleUpdate)
		r.Delete("/api/files/{file_id}", fileHandler.HandleDelete)

		if cfg.StripeSecretKey != "" {
			paymentService := service.NewPaymentService(cfg.StripeSecretKey, cfg.StripePriceID, cfg.StripeProductID)
			paymentHandler := handler.NewPaymentHandler(paymentService)
			r.Get("/api/payments/price-details", paymentHandler.HandlePriceDetails)
			r.Post("/api/payments/create-payment-intent", paymentHandler.HandleCreateIntent)
		} else {
			slog.Warn("STRIPE_SECRET_KEY not set — payment routes disabled")
		}
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

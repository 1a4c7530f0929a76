package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	_ "eventhub/docs"

	"eventhub/config"
	"eventhub/internal/adapters/auth"
	"eventhub/internal/adapters/email"
	"eventhub/internal/adapters/oauth"
	deliveryhttp "eventhub/internal/delivery/http"
	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
	"eventhub/internal/repository/postgres"
	"eventhub/internal/services"
	"eventhub/internal/worker/reminder"
)

const bcryptCost = 12

// @title EventHub API
// @version 1.0
// @description Event management backend with attendance, social features, and derived notifications.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	shareRepo := postgres.NewShareRepository(db)
	socialAuthRepo := postgres.NewSocialAuthRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	// Adapters
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}
	hasher := auth.NewBcryptHasher(bcryptCost)
	tokenIssuer := auth.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := auth.NewJWTVerifier(cfg.JWTSecret)
	httpClient := &http.Client{Timeout: 10 * time.Second}
	identityProviders := map[string]domain.IdentityProvider{
		domain.ProviderGoogle:   oauth.NewGoogleProvider(httpClient, cfg.GoogleAndroidClientID),
		domain.ProviderFacebook: oauth.NewFacebookProvider(httpClient),
	}

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	userService := services.NewUserService(userRepo, hasher, tokenIssuer, emailService, cfg.TokenExpiry)
	eventService := services.NewEventService(eventRepo, attendanceRepo)
	socialService := services.NewSocialService(eventRepo, commentRepo, shareRepo)
	notificationService := services.NewNotificationService(attendanceRepo)
	statsService := services.NewStatsService(statsRepo)
	oauthService := services.NewOAuthService(
		identityProviders,
		userRepo,
		socialAuthRepo,
		tokenIssuer,
		cfg.TokenExpiry,
	)

	// Controllers and router
	router := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Auth:         controllers.NewAuthController(logger, userService),
		Event:        controllers.NewEventController(logger, eventService),
		Social:       controllers.NewSocialController(logger, socialService),
		Notification: controllers.NewNotificationController(logger, notificationService),
		OAuth:        controllers.NewOAuthController(logger, oauthService),
		Stats:        controllers.NewStatsController(logger, statsService),
	}, tokenVerifier)

	rateLimiter := middleware.NewRateLimiter(10, 30)
	defer rateLimiter.Stop()
	handler := middleware.CORS(cfg.CORSAllowedOrigins,
		middleware.LoggingMiddleware(logger,
			rateLimiter.Middleware(router)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ReminderWorkerEnabled {
		worker := reminder.NewWorker(notificationService, emailService, logger, cfg.ReminderWorkerInterval)
		go worker.Start(ctx)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}

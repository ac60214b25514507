package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Haedeel-Basel/My-Tutor/internal/app"
	"github.com/Haedeel-Basel/My-Tutor/internal/auth"
	"github.com/Haedeel-Basel/My-Tutor/internal/config"
	"github.com/Haedeel-Basel/My-Tutor/internal/controller"
	"github.com/Haedeel-Basel/My-Tutor/internal/controller/handlers"
	"github.com/Haedeel-Basel/My-Tutor/internal/httpmiddleware"
	"github.com/Haedeel-Basel/My-Tutor/internal/notify"
	"github.com/Haedeel-Basel/My-Tutor/internal/repository"
	"github.com/Haedeel-Basel/My-Tutor/internal/service"
	"github.com/Haedeel-Basel/My-Tutor/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Application failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		return err
	}
	if err := migrator.Run(ctx); err != nil {
		return err
	}
	migrator.Close()

	redis := store.NewRedis(cfg.RedisAddr)
	defer redis.Client.Close()

	// Репозитории
	tutorRepo := repository.NewTutorRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	userRepo := repository.NewAuthUserRepository(pool)

	// Уведомления: лог всегда, телеграм если настроен
	var notifier notify.Notifier = notify.NewZapNotifier(logger)
	if cfg.TelegramEnabled() {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.AdminChatID, logger)
		if err != nil {
			logger.Warn("Telegram notifications disabled", zap.Error(err))
		} else {
			notifier = notify.Multi{notifier, tg}
			logger.Info("✅ Telegram notifications enabled")
		}
	}

	// Сервисы
	broker := auth.NewBroker()
	authSvc := auth.NewService(userRepo, profileRepo, notifier, broker, logger,
		cfg.JWTIssuer, cfg.JWTSigningKey, cfg.TokenTTL, cfg.VerifyTTL)
	resolver := service.NewResolverService(tutorRepo, logger)
	directory := service.NewDirectoryService(tutorRepo, logger)
	bookings := service.NewBookingService(resolver, bookingRepo, tutorRepo, notifier, logger)
	profiles := service.NewProfileService(profileRepo, tutorRepo, bookings, logger)

	// Лог событий сессий
	events, unsubscribe := authSvc.Events()
	defer unsubscribe()
	go logSessionEvents(ctx, events, logger)

	// Фоновая чистка неподтверждённых регистраций
	maintenance := app.NewMaintenance(userRepo, logger)
	maintenance.Start(ctx)
	defer maintenance.Stop()

	handler := handlers.New(authSvc, directory, resolver, bookings, profiles, logger)
	limiter := httpmiddleware.NewRateLimiter(redis, cfg.RateLimitPerMin, logger)

	server := controller.NewServer(cfg.HTTPPort, handler, limiter, pool, redis, logger)
	return server.Run(ctx)
}

func logSessionEvents(ctx context.Context, events <-chan auth.Event, logger *zap.Logger) {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			logger.Info("Session event",
				zap.String("type", string(event.Type)),
				zap.String("user_id", event.UserID.String()),
				zap.String("email", event.Email),
			)
		case <-ctx.Done():
			return
		}
	}
}

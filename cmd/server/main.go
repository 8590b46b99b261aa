package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/kalejaiyeoluwadara/push-notification-setup/internal/config"
	"github.com/kalejaiyeoluwadara/push-notification-setup/internal/fcm"
	"github.com/kalejaiyeoluwadara/push-notification-setup/internal/handlers"
	"github.com/kalejaiyeoluwadara/push-notification-setup/internal/repository"
	"github.com/kalejaiyeoluwadara/push-notification-setup/internal/routes"
	"github.com/kalejaiyeoluwadara/push-notification-setup/pkg/logger"
	"github.com/kalejaiyeoluwadara/push-notification-setup/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logr := logger.New(cfg.LogLevel, cfg.AppName)
	logr.Info("starting notification gateway", slog.String("port", cfg.HTTPPort))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The admin client is constructed once, before the server accepts any
	// request, so concurrent first requests cannot race on initialization.
	fcmClient, err := fcm.New(ctx, cfg.ServiceAccountKey)
	if err != nil {
		logr.Error("failed to initialize fcm client", slog.Any("error", err))
		os.Exit(1)
	}

	var suppressor repository.TokenSuppressor
	if cfg.RedisURL != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
		redisRepo := repository.NewRedisRepository(rdb, cfg.TokenSuppressionTTL)
		defer redisRepo.Close()
		suppressor = redisRepo
		logr.Info("token suppression cache enabled")
	}

	metricsCollector := metrics.New()

	notificationHandler := handlers.NewNotificationHandler(
		fcmClient.Messaging(),
		suppressor,
		metricsCollector,
		logr,
		cfg.ProviderTimeout,
		cfg.TokenSuppressionTTL,
	)
	webConfigHandler := handlers.NewWebConfigHandler(cfg.Web, cfg.VAPIDKey)

	router := routes.NewRouter(cfg, notificationHandler, webConfigHandler, metricsCollector)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Error("http server error", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownHTTP(srv, logr)
	logr.Info("notification gateway stopped")
}

func shutdownHTTP(srv *http.Server, logr *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("failed to shutdown http server", slog.Any("error", err))
	}
}

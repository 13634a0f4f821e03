package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"personal-site/internal/config"
	"personal-site/internal/email"
	apihttp "personal-site/internal/http"
	"personal-site/internal/metrics"
	"personal-site/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	repo, closeStore := openStore(ctx, cfg, logger)
	defer closeStore()

	m := metrics.New(metrics.WithRuntimeCollectors())
	messageSvc := service.NewMessageService(repo)
	aboutSvc := service.NewAboutService(cfg.AboutImage)

	messageHandler := apihttp.NewMessageHandler(logger, messageSvc, m, newNotifier(cfg, logger))
	aboutHandler := apihttp.NewAboutHandler(aboutSvc)
	healthHandler := apihttp.NewHealthHandler(logger, messageSvc, cfg.StoreDriver)
	router := apihttp.NewRouter(logger, apihttp.RouterOptions{
		AllowOrigins: cfg.CORSAllowOrigins,
		LogRequests:  !cfg.IsTest(),
		StaticDir:    cfg.StaticDir,
	}, m, messageHandler, aboutHandler, healthHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("store", cfg.StoreDriver))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newNotifier devuelve nil cuando el aviso por email no esta configurado.
func newNotifier(cfg *config.Config, logger *zap.Logger) email.Sender {
	if !cfg.NotificationsEnabled() {
		return nil
	}
	sender, err := email.NewSMTPSender(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.SMTPFrom,
		cfg.SMTPFromName,
		cfg.NotifyEmail,
		cfg.SMTPUseTLS,
	)
	if err != nil {
		logger.Warn("email notifications disabled", zap.Error(err))
		return nil
	}
	return sender
}

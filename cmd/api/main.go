package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/atorres/portfolio-api/internal/api/router"
	appconfig "github.com/atorres/portfolio-api/internal/config"
	"github.com/atorres/portfolio-api/internal/contact"
	"github.com/atorres/portfolio-api/internal/notify"
	"github.com/atorres/portfolio-api/internal/observability/metrics"
	"github.com/atorres/portfolio-api/internal/ratelimit"
	"github.com/atorres/portfolio-api/internal/site"
	"github.com/atorres/portfolio-api/internal/turnstile"
	"github.com/atorres/portfolio-api/pkg/logging"
)

func main() {
	// Load configuration (.env is optional; real env vars win)
	_ = godotenv.Load()
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting portfolio API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Email delivery
	var sender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.ContactFromEmail,
		FromName:  cfg.ContactFromName,
	}, logger); sg != nil {
		sender = sg
	} else {
		logger.Warn("sendgrid not configured; contact submissions will be refused")
	}

	// Bot verification
	var verifier contact.Verifier
	if client, err := turnstile.New(turnstile.Config{
		Secret:  cfg.TurnstileSecretKey,
		BaseURL: cfg.TurnstileBaseURL,
		Logger:  logger,
	}); err == nil {
		verifier = client
	} else {
		logger.Warn("turnstile not configured; contact submissions will be refused", "error", err)
	}

	// Rate limiting (optional; the contact path fails open without it)
	var limiter contact.Limiter
	if cfg.RedisAddr != "" {
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		limiter = ratelimit.NewSlidingWindow(redis.NewClient(opts), cfg.RateLimitMax, cfg.RateLimitWindow, nil)
	} else {
		logger.Warn("REDIS_ADDR not set; rate limiting disabled")
	}

	contactMetrics := metrics.NewContactMetrics(nil)
	contactHandler := contact.NewHandler(cfg.ContactToEmail, sender, verifier, limiter, contactMetrics, logger)
	siteHandler := site.NewHandler(logger)

	// Setup router
	r := router.New(&router.Config{
		Logger:             logger,
		ContactHandler:     contactHandler,
		SiteHandler:        siteHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "openaria_tracking/docs"
	"openaria_tracking/internal/adapter/http/routes"
	"openaria_tracking/internal/config"
	"openaria_tracking/internal/infrastructure/logging"
	"openaria_tracking/internal/infrastructure/observability"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

// @title           OpenAria Tracking API
// @version         1.0
// @description     Payment webhook to Conversions API bridge and CRM lead forwarder.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat, nil)
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := observability.NewProviders(ctx, cfg.Telemetry, cfg.AppEnv)
	if err != nil {
		log.WithError(err).Fatal("telemetry setup failed")
	}
	providers.SetGlobal()
	observability.SetPropagator()

	log.WithFields(log.Fields{
		"env":              cfg.AppEnv,
		"site_url":         cfg.SiteURL,
		"fb_configured":    cfg.FacebookConfigured(),
		"stripe_verifying": cfg.Stripe.WebhookSecret != "",
		"crm_simulation":   cfg.Leads.WebhookURL == "",
		"otlp_endpoint":    cfg.Telemetry.OTLPEndpoint,
	}).Info("configuration loaded")

	runErr := routes.Run(ctx, cfg)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("telemetry shutdown incomplete")
	}
	if runErr != nil {
		log.WithError(runErr).Fatal("http server failed")
	}
	log.Info("server stopped")
}

package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "openaria_tracking/docs" // swagger docs
	"openaria_tracking/internal/adapter/http/handlers"
	"openaria_tracking/internal/config"
	"openaria_tracking/internal/infrastructure/conversions"
	"openaria_tracking/internal/infrastructure/crm"
	"openaria_tracking/internal/infrastructure/logging"
	"openaria_tracking/internal/infrastructure/observability"
	"openaria_tracking/internal/infrastructure/payments"
	"openaria_tracking/internal/usecase"
	"openaria_tracking/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg config.Config) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr()).Info("starting http server")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the engine with every dependency wired from cfg.
func NewRouter(cfg config.Config) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h := buildHandlers(cfg)

	// Path kept for Stripe endpoints registered before the /v1 prefix.
	router.POST(PathLegacyStripeWebhook, h.webhook.Receive)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTrackingRoutes(v1, h)

	return router
}

type routeHandlers struct {
	webhook  *handlers.StripeWebhookHandler
	leads    *handlers.LeadHandler
	tracking *handlers.TrackingHandler
}

func buildHandlers(cfg config.Config) routeHandlers {
	httpClient := observability.WrapHTTPClient(&http.Client{Timeout: cfg.OutboundTimeout}, nil)

	var recorder interfaces.IDispatchRecorder
	if metrics, err := observability.NewDispatchMetrics(nil); err != nil {
		log.WithError(err).Warn("dispatch metrics disabled")
	} else {
		recorder = metrics
	}

	dispatcher := conversions.NewFacebookConversionsClient(cfg.Facebook, httpClient)
	forwarder := crm.NewGoHighLevelClient(cfg.Leads, httpClient)
	verifier := payments.NewStripeSignatureVerifier(cfg.Stripe)

	webhookUseCase := usecase.NewStripeWebhookUseCase(verifier, usecase.NewPurchaseNormalizer(cfg.SiteURL), dispatcher, recorder)
	leadUseCase := usecase.NewLeadUseCase(forwarder, dispatcher, recorder, cfg.Leads.PropagateFailures, cfg.SiteURL)
	trackingUseCase := usecase.NewTrackingUseCase(dispatcher, recorder, cfg.SiteURL)

	return routeHandlers{
		webhook:  handlers.NewStripeWebhookHandler(webhookUseCase),
		leads:    handlers.NewLeadHandler(leadUseCase),
		tracking: handlers.NewTrackingHandler(trackingUseCase),
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(logging.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithFields(log.Fields{
			"request_id": logging.RequestIDFromContext(c.Request.Context()),
			"panic":      recovered,
		}).Error("Recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

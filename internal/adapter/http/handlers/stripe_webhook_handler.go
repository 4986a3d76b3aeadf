package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	response "openaria_tracking/internal/adapter/http/dto/response"
	"openaria_tracking/internal/domain/entities"
	"openaria_tracking/internal/infrastructure/logging"
	"openaria_tracking/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	HeaderStripeSignature = "Stripe-Signature"
	maxWebhookBodyBytes   = 1 << 20

	msgMissingSignature = "Missing stripe-signature header"
	msgInvalidSignature = "Invalid signature"
	msgInvalidPayload   = "Invalid payload"
	msgHandlerFailed    = "Webhook handler failed"
)

// StripeWebhookHandler receives Stripe event deliveries.
type StripeWebhookHandler struct {
	usecase usecase.IStripeWebhookUseCase
}

func NewStripeWebhookHandler(uc usecase.IStripeWebhookUseCase) *StripeWebhookHandler {
	return &StripeWebhookHandler{usecase: uc}
}

// Receive godoc
// @Summary      Receive a Stripe webhook
// @Description  Verifies the Stripe-Signature header and forwards completed checkouts to the Conversions API.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header  string  true  "Stripe signature header"
// @Success      200  {object}  response.WebhookAck
// @Failure      400  {object}  response.WebhookError
// @Failure      500  {object}  response.WebhookError
// @Router       /webhooks/stripe [post]
func (h *StripeWebhookHandler) Receive(c *gin.Context) {
	logger := logging.FromContext(c.Request.Context())

	signature := strings.TrimSpace(c.GetHeader(HeaderStripeSignature))
	if signature == "" {
		logger.Warn("[webhook][handler] missing signature header")
		c.JSON(http.StatusBadRequest, response.WebhookError{Error: msgMissingSignature})
		return
	}

	// The signature covers the exact bytes, so the body is read raw.
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		logger.WithError(err).Error("[webhook][handler] read body failed")
		c.JSON(http.StatusInternalServerError, response.WebhookError{Error: msgHandlerFailed})
		return
	}

	res, err := h.usecase.HandleEvent(c.Request.Context(), payload, signature, requestMeta(c))
	if err != nil {
		status, msg := mapWebhookError(err)
		logger.WithError(err).WithField("status", status).Warn("[webhook][handler] delivery rejected")
		c.JSON(status, response.WebhookError{Error: msg})
		return
	}
	logger.WithField("event_type", res.EventType).Debug("[webhook][handler] delivery accepted")

	c.JSON(http.StatusOK, response.WebhookAck{Received: true})
}

func mapWebhookError(err error) (int, string) {
	var parseErr *entities.ParseError
	switch {
	case errors.Is(err, entities.ErrMissingSignature):
		return http.StatusBadRequest, msgMissingSignature
	case errors.Is(err, entities.ErrInvalidSignature):
		return http.StatusBadRequest, msgInvalidSignature
	case errors.Is(err, entities.ErrMalformedPayload), errors.As(err, &parseErr):
		return http.StatusBadRequest, msgInvalidPayload
	default:
		return http.StatusInternalServerError, msgHandlerFailed
	}
}

package payments

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"openaria_tracking/internal/config"
	"openaria_tracking/internal/domain/entities"
	"openaria_tracking/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76/webhook"
)

var (
	ErrInvalidSignature = entities.ErrInvalidSignature
	ErrSecretMissing    = entities.ErrVerifierNotConfigured
)

// StripeSignatureVerifier checks the Stripe-Signature header (t=...,v1=...)
// against the endpoint signing secret.
type StripeSignatureVerifier struct {
	secret    string
	tolerance time.Duration
}

var _ interfaces.IWebhookVerifier = (*StripeSignatureVerifier)(nil)

func NewStripeSignatureVerifier(cfg config.StripeConfig) *StripeSignatureVerifier {
	tolerance := cfg.WebhookTolerance
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	v := &StripeSignatureVerifier{secret: strings.TrimSpace(cfg.WebhookSecret), tolerance: tolerance}
	if v.secret == "" {
		log.Warn("[payments] STRIPE_WEBHOOK_SECRET missing; webhook deliveries will be rejected")
	}
	return v
}

func (v *StripeSignatureVerifier) Verify(payload []byte, signatureHeader string) error {
	if v == nil || v.secret == "" {
		return ErrSecretMissing
	}
	err := webhook.ValidatePayloadWithTolerance(payload, signatureHeader, v.secret, v.tolerance)
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, webhook.ErrTooOld):
		return fmt.Errorf("%w: timestamp outside tolerance", ErrInvalidSignature)
	case errors.Is(err, webhook.ErrNotSigned), errors.Is(err, webhook.ErrInvalidHeader):
		return fmt.Errorf("%w: malformed signature header", ErrInvalidSignature)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
}

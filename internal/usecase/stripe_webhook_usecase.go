package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"openaria_tracking/internal/domain/entities"
	"openaria_tracking/internal/infrastructure/logging"
	"openaria_tracking/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

const (
	dispatchTargetFacebook = "facebook"
	dispatchTargetCRM      = "crm"
)

// WebhookResult describes what happened to an accepted delivery.
type WebhookResult struct {
	EventID    string
	EventType  string
	Dispatched bool
	Skipped    bool
	// DispatchError is set when the conversion could not be delivered. The
	// delivery is still acknowledged.
	DispatchError error
}

// IStripeWebhookUseCase encapsulates the inbound payment webhook flow:
// signature check, parse, classify, normalize and dispatch.
type IStripeWebhookUseCase interface {
	HandleEvent(ctx context.Context, payload []byte, signatureHeader string, meta entities.RequestMeta) (WebhookResult, error)
}

type StripeWebhookUseCase struct {
	verifier   interfaces.IWebhookVerifier
	normalizer IPurchaseNormalizer
	dispatcher interfaces.IConversionDispatcher
	recorder   interfaces.IDispatchRecorder
}

var _ IStripeWebhookUseCase = (*StripeWebhookUseCase)(nil)

func NewStripeWebhookUseCase(verifier interfaces.IWebhookVerifier, normalizer IPurchaseNormalizer, dispatcher interfaces.IConversionDispatcher, recorder interfaces.IDispatchRecorder) *StripeWebhookUseCase {
	return &StripeWebhookUseCase{verifier: verifier, normalizer: normalizer, dispatcher: dispatcher, recorder: recorder}
}

func (u *StripeWebhookUseCase) HandleEvent(ctx context.Context, payload []byte, signatureHeader string, meta entities.RequestMeta) (WebhookResult, error) {
	logger := logging.FromContext(ctx).WithField("payload_len", len(payload))

	if strings.TrimSpace(signatureHeader) == "" {
		logger.Warn("[webhook] missing signature header")
		return WebhookResult{}, entities.ErrMissingSignature
	}
	if u.verifier == nil {
		logger.Error("[webhook] verifier not configured")
		return WebhookResult{}, entities.ErrVerifierNotConfigured
	}
	if err := u.verifier.Verify(payload, signatureHeader); err != nil {
		if errors.Is(err, entities.ErrVerifierNotConfigured) {
			logger.WithError(err).Error("[webhook] verifier not configured")
			return WebhookResult{}, err
		}
		logger.WithError(err).Warn("[webhook] signature verification failed")
		if !errors.Is(err, entities.ErrInvalidSignature) {
			err = fmt.Errorf("%w: %v", entities.ErrInvalidSignature, err)
		}
		return WebhookResult{}, err
	}

	evt, err := entities.ParseProviderEvent(payload)
	if err != nil {
		logger.WithError(err).Warn("[webhook] invalid payload")
		return WebhookResult{}, err
	}
	logger = logger.WithFields(log.Fields{"event_id": evt.ID, "event_type": evt.Type})
	logger.Info("[webhook] event received")

	result := WebhookResult{EventID: evt.ID, EventType: evt.Type}
	if u.normalizer == nil {
		return WebhookResult{}, errors.New("purchase normalizer not configured")
	}
	conversion, ok, err := u.normalizer.Normalize(evt, meta)
	if err != nil {
		logger.WithError(err).Warn("[webhook] event could not be normalized")
		return WebhookResult{}, err
	}
	if !ok {
		result.Skipped = true
		return result, nil
	}

	if u.dispatcher == nil {
		logger.Warn("[webhook] conversions dispatcher not configured; event dropped")
		u.record(ctx, string(conversion.Name), interfaces.OutcomeSkipped)
		result.Skipped = true
		return result, nil
	}
	if err := u.dispatcher.Dispatch(ctx, conversion); err != nil {
		logger.WithError(err).WithField("conversion_event_id", conversion.EventID).Error("[webhook] conversion dispatch failed")
		u.record(ctx, string(conversion.Name), interfaces.OutcomeFailure)
		result.DispatchError = err
		return result, nil
	}
	logger.WithField("conversion_event_id", conversion.EventID).Info("[webhook] conversion dispatched")
	u.record(ctx, string(conversion.Name), interfaces.OutcomeSuccess)
	result.Dispatched = true
	return result, nil
}

func (u *StripeWebhookUseCase) record(ctx context.Context, eventName, outcome string) {
	if u.recorder == nil {
		return
	}
	u.recorder.Record(ctx, dispatchTargetFacebook, eventName, outcome)
}

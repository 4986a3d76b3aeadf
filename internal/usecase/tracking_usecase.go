package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"openaria_tracking/internal/domain/entities"
	"openaria_tracking/internal/infrastructure/logging"
	"openaria_tracking/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidTrackingEvent    = errors.New("invalid tracking event")
	ErrDispatcherNotConfigured = errors.New("conversions dispatcher not configured")
)

// TrackingEvent is a server-side pixel event reported by the website.
type TrackingEvent struct {
	Name            entities.EventName
	Email           string
	Phone           string
	Value           *float64
	Currency        string
	ContentName     string
	ContentCategory string
	SourceURL       string
	FBC             string
	FBP             string
	EventID         string
}

type ITrackingUseCase interface {
	Track(ctx context.Context, evt TrackingEvent, meta entities.RequestMeta) (entities.ConversionEvent, error)
}

type TrackingUseCase struct {
	dispatcher interfaces.IConversionDispatcher
	recorder   interfaces.IDispatchRecorder
	sourceURL  string
}

var _ ITrackingUseCase = (*TrackingUseCase)(nil)

func NewTrackingUseCase(dispatcher interfaces.IConversionDispatcher, recorder interfaces.IDispatchRecorder, sourceURL string) *TrackingUseCase {
	return &TrackingUseCase{dispatcher: dispatcher, recorder: recorder, sourceURL: sourceURL}
}

// Track builds and dispatches the conversion. The built event is returned even
// when the dispatch fails so callers can report its id.
func (u *TrackingUseCase) Track(ctx context.Context, evt TrackingEvent, meta entities.RequestMeta) (entities.ConversionEvent, error) {
	if !evt.Name.IsValid() {
		return entities.ConversionEvent{}, fmt.Errorf("%w: unsupported event_name %q", ErrInvalidTrackingEvent, evt.Name)
	}
	if evt.Value != nil && *evt.Value < 0 {
		return entities.ConversionEvent{}, fmt.Errorf("%w: value must not be negative", ErrInvalidTrackingEvent)
	}

	conversion := u.build(evt, meta)
	logger := logging.FromContext(ctx).WithFields(log.Fields{
		"event_name": conversion.Name,
		"event_id":   conversion.EventID,
	})

	if u.dispatcher == nil {
		logger.Warn("[tracking] dispatcher not configured")
		return conversion, ErrDispatcherNotConfigured
	}
	if err := u.dispatcher.Dispatch(ctx, conversion); err != nil {
		logger.WithError(err).Warn("[tracking] dispatch failed")
		u.record(ctx, string(conversion.Name), interfaces.OutcomeFailure)
		return conversion, err
	}
	logger.Info("[tracking] event dispatched")
	u.record(ctx, string(conversion.Name), interfaces.OutcomeSuccess)
	return conversion, nil
}

func (u *TrackingUseCase) build(evt TrackingEvent, meta entities.RequestMeta) entities.ConversionEvent {
	identity := entities.NewIdentity(evt.Email, evt.Phone, meta)
	identity.FBC = strings.TrimSpace(evt.FBC)
	identity.FBP = strings.TrimSpace(evt.FBP)

	attrs := entities.Attributes{
		ContentName: strings.TrimSpace(evt.ContentName),
		Value:       evt.Value,
	}
	if c := strings.TrimSpace(evt.Currency); c != "" {
		attrs.Currency = entities.NormalizeCurrency(c)
	}
	if evt.Name == entities.EventInitiateCheckout {
		attrs.Currency = entities.NormalizeCurrency(attrs.Currency)
		if attrs.Value == nil {
			zero := 0.0
			attrs.Value = &zero
		}
	}
	if attrs.Value != nil && attrs.Currency == "" {
		attrs.Currency = entities.DefaultCurrency
	}
	if cat := strings.TrimSpace(evt.ContentCategory); cat != "" {
		attrs.Extra = map[string]any{"content_category": cat}
	}

	sourceURL := strings.TrimSpace(evt.SourceURL)
	if sourceURL == "" {
		sourceURL = u.sourceURL
	}
	eventID := strings.TrimSpace(evt.EventID)
	if eventID == "" {
		eventID = newEventID(evt.Name)
	}

	return entities.ConversionEvent{
		Name:       evt.Name,
		OccurredAt: time.Now().Unix(),
		SourceURL:  sourceURL,
		EventID:    eventID,
		Identity:   identity,
		Attributes: attrs,
	}
}

func (u *TrackingUseCase) record(ctx context.Context, eventName, outcome string) {
	if u.recorder != nil {
		u.recorder.Record(ctx, dispatchTargetFacebook, eventName, outcome)
	}
}

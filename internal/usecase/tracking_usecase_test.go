package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"openaria_tracking/internal/domain/entities"
	mock_interfaces "openaria_tracking/internal/usecase/interfaces/mocks"
	"openaria_tracking/pkg/hashing"

	"go.uber.org/mock/gomock"
)

func TestTrackingUseCase_Track(t *testing.T) {
	meta := entities.RequestMeta{ClientIP: "198.51.100.1", UserAgent: "Mozilla/5.0"}

	t.Run("unknown event name", func(t *testing.T) {
		uc := NewTrackingUseCase(nil, nil, "https://openaria.app")
		_, err := uc.Track(context.Background(), TrackingEvent{Name: "PageView"}, meta)
		if !errors.Is(err, ErrInvalidTrackingEvent) {
			t.Fatalf("expected ErrInvalidTrackingEvent, got %v", err)
		}
	})

	t.Run("negative value", func(t *testing.T) {
		uc := NewTrackingUseCase(nil, nil, "https://openaria.app")
		v := -1.0
		_, err := uc.Track(context.Background(), TrackingEvent{Name: entities.EventPurchase, Value: &v}, meta)
		if !errors.Is(err, ErrInvalidTrackingEvent) {
			t.Fatalf("expected ErrInvalidTrackingEvent, got %v", err)
		}
	})

	t.Run("dispatcher not configured", func(t *testing.T) {
		uc := NewTrackingUseCase(nil, nil, "https://openaria.app")
		_, err := uc.Track(context.Background(), TrackingEvent{Name: entities.EventViewContent}, meta)
		if !errors.Is(err, ErrDispatcherNotConfigured) {
			t.Fatalf("expected ErrDispatcherNotConfigured, got %v", err)
		}
	})

	t.Run("initiate checkout defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dispatcher := mock_interfaces.NewMockIConversionDispatcher(ctrl)
		recorder := mock_interfaces.NewMockIDispatchRecorder(ctrl)
		uc := NewTrackingUseCase(dispatcher, recorder, "https://openaria.app")

		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)
		recorder.EXPECT().Record(gomock.Any(), "facebook", "InitiateCheckout", "success")

		got, err := uc.Track(context.Background(), TrackingEvent{Name: entities.EventInitiateCheckout, ContentName: "Starter Plan"}, meta)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Attributes.Currency != "USD" || got.Attributes.Value == nil || *got.Attributes.Value != 0 {
			t.Fatalf("unexpected attributes: %+v", got.Attributes)
		}
		if !strings.HasPrefix(got.EventID, "InitiateCheckout_") || got.SourceURL != "https://openaria.app" {
			t.Fatalf("unexpected envelope: %+v", got)
		}
	})

	t.Run("client supplied fields are kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dispatcher := mock_interfaces.NewMockIConversionDispatcher(ctrl)
		uc := NewTrackingUseCase(dispatcher, nil, "https://openaria.app")

		v := 497.0
		in := TrackingEvent{
			Name:            entities.EventPurchase,
			Email:           "Jane@Example.com",
			Value:           &v,
			Currency:        "eur",
			ContentCategory: "CTA Button",
			SourceURL:       "https://openaria.app/pricing",
			FBC:             "fb.1.1554763741205.AbCdEfGhIjKlMnOpQrStUvWxYz1234567890",
			FBP:             "fb.1.1558571054389.1098115397",
			EventID:         "Purchase_client_1",
		}
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Track(context.Background(), in, meta)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.EventID != "Purchase_client_1" || got.SourceURL != "https://openaria.app/pricing" {
			t.Fatalf("unexpected envelope: %+v", got)
		}
		if got.Identity.HashedEmail != hashing.Hash("jane@example.com") || got.Identity.FBC != in.FBC || got.Identity.FBP != in.FBP {
			t.Fatalf("unexpected identity: %+v", got.Identity)
		}
		if got.Attributes.Currency != "EUR" || got.Attributes.Extra["content_category"] != "CTA Button" {
			t.Fatalf("unexpected attributes: %+v", got.Attributes)
		}
	})

	t.Run("dispatch error is returned with the event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dispatcher := mock_interfaces.NewMockIConversionDispatcher(ctrl)
		recorder := mock_interfaces.NewMockIDispatchRecorder(ctrl)
		uc := NewTrackingUseCase(dispatcher, recorder, "https://openaria.app")

		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("Invalid OAuth access token."))
		recorder.EXPECT().Record(gomock.Any(), "facebook", "Lead", "failure")

		got, err := uc.Track(context.Background(), TrackingEvent{Name: entities.EventLead}, meta)
		if err == nil || got.EventID == "" {
			t.Fatalf("expected error and event, got %+v err=%v", got, err)
		}
	})
}

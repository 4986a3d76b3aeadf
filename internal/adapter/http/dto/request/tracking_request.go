package request

import (
	"strings"

	"openaria_tracking/internal/domain/entities"
	"openaria_tracking/internal/usecase"
)

type TrackingEventRequest struct {
	EventName       string   `json:"event_name" binding:"required,oneof=Purchase Lead Contact ViewContent InitiateCheckout"`
	Email           string   `json:"email" binding:"omitempty,email"`
	Phone           string   `json:"phone"`
	Value           *float64 `json:"value" binding:"omitempty,gte=0"`
	Currency        string   `json:"currency" binding:"omitempty,len=3"`
	ContentName     string   `json:"content_name"`
	ContentCategory string   `json:"content_category"`
	SourceURL       string   `json:"source_url" binding:"omitempty,url"`
	FBC             string   `json:"fbc"`
	FBP             string   `json:"fbp"`
	EventID         string   `json:"event_id" binding:"omitempty,max=128"`
}

func (r TrackingEventRequest) ToTrackingEvent() usecase.TrackingEvent {
	return usecase.TrackingEvent{
		Name:            entities.EventName(strings.TrimSpace(r.EventName)),
		Email:           r.Email,
		Phone:           r.Phone,
		Value:           r.Value,
		Currency:        r.Currency,
		ContentName:     r.ContentName,
		ContentCategory: r.ContentCategory,
		SourceURL:       r.SourceURL,
		FBC:             r.FBC,
		FBP:             r.FBP,
		EventID:         r.EventID,
	}
}

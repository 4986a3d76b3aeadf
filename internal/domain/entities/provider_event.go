package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	StripeEventCheckoutCompleted      = "checkout.session.completed"
	StripeEventPaymentIntentSucceeded = "payment_intent.succeeded"
)

var (
	ErrMissingSignature      = errors.New("missing stripe-signature header")
	ErrInvalidSignature      = errors.New("invalid webhook signature")
	ErrVerifierNotConfigured = errors.New("webhook signing secret not configured")
	ErrMalformedPayload      = errors.New("malformed webhook payload")
)

// ParseError reports a recognised provider event that lacks a required field.
type ParseError struct {
	EventType string
	Field     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: missing required field %q", e.EventType, e.Field)
}

// ProviderEvent is the envelope of a Stripe webhook delivery. Data.Object is
// kept raw until the discriminator says how to decode it.
type ProviderEvent struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Created int64  `json:"created"`
	Data    struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

type CustomerDetails struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

// CheckoutSession is the subset of a Stripe Checkout Session this service reads.
type CheckoutSession struct {
	ID              string            `json:"id"`
	AmountTotal     *int64            `json:"amount_total"`
	Currency        string            `json:"currency"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerDetails *CustomerDetails  `json:"customer_details"`
	Metadata        map[string]string `json:"metadata"`
	PaymentIntent   string            `json:"payment_intent"`
}

// Email prefers customer_details.email and falls back to customer_email.
func (s CheckoutSession) Email() string {
	if s.CustomerDetails != nil {
		if e := strings.TrimSpace(s.CustomerDetails.Email); e != "" {
			return e
		}
	}
	return strings.TrimSpace(s.CustomerEmail)
}

func (s CheckoutSession) Phone() string {
	if s.CustomerDetails == nil {
		return ""
	}
	return strings.TrimSpace(s.CustomerDetails.Phone)
}

func (s CheckoutSession) PlanName() string {
	return s.Metadata["plan_name"]
}

// PaymentIntent is the subset of a Stripe PaymentIntent this service reads.
type PaymentIntent struct {
	ID       string            `json:"id"`
	Amount   *int64            `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

// ParseProviderEvent decodes the webhook envelope. Malformed JSON yields
// ErrMalformedPayload; a missing type discriminator yields a *ParseError.
func ParseProviderEvent(body []byte) (ProviderEvent, error) {
	var evt ProviderEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return ProviderEvent{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	evt.Type = strings.TrimSpace(evt.Type)
	if evt.Type == "" {
		return ProviderEvent{}, &ParseError{EventType: "event", Field: "type"}
	}
	return evt, nil
}

// CheckoutSession decodes data.object as a checkout session.
func (e ProviderEvent) CheckoutSession() (CheckoutSession, error) {
	var s CheckoutSession
	if err := e.decodeObject(&s); err != nil {
		return CheckoutSession{}, err
	}
	if s.AmountTotal == nil {
		return CheckoutSession{}, &ParseError{EventType: e.Type, Field: "amount_total"}
	}
	return s, nil
}

// PaymentIntent decodes data.object as a payment intent.
func (e ProviderEvent) PaymentIntent() (PaymentIntent, error) {
	var pi PaymentIntent
	if err := e.decodeObject(&pi); err != nil {
		return PaymentIntent{}, err
	}
	if pi.Amount == nil {
		return PaymentIntent{}, &ParseError{EventType: e.Type, Field: "amount"}
	}
	return pi, nil
}

func (e ProviderEvent) decodeObject(dst any) error {
	raw := strings.TrimSpace(string(e.Data.Object))
	if raw == "" || raw == "null" {
		return &ParseError{EventType: e.Type, Field: "data.object"}
	}
	if err := json.Unmarshal(e.Data.Object, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedPayload, e.Type, err)
	}
	return nil
}

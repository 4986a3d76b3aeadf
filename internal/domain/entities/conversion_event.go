package entities

import (
	"strings"

	"openaria_tracking/pkg/hashing"
)

// EventName is the standard event name understood by the ads platform.
type EventName string

const (
	EventPurchase         EventName = "Purchase"
	EventLead             EventName = "Lead"
	EventContact          EventName = "Contact"
	EventViewContent      EventName = "ViewContent"
	EventInitiateCheckout EventName = "InitiateCheckout"
)

const DefaultCurrency = "USD"

func (n EventName) IsValid() bool {
	switch n {
	case EventPurchase, EventLead, EventContact, EventViewContent, EventInitiateCheckout:
		return true
	default:
		return false
	}
}

// ConversionEvent is the canonical, provider-independent record of a
// business outcome that is forwarded to the ads platform.
//
// Identity holds only hashed email/phone values; build it with NewIdentity.
// Attributes.Value is always expressed in major currency units.
type ConversionEvent struct {
	Name       EventName
	OccurredAt int64
	SourceURL  string
	EventID    string
	Identity   Identity
	Attributes Attributes
}

type Identity struct {
	HashedEmail string
	HashedPhone string
	ClientIP    string
	UserAgent   string
	FBC         string
	FBP         string
}

type Attributes struct {
	Currency    string
	Value       *float64
	ContentName string
	Extra       map[string]any
}

// RequestMeta carries what the inbound HTTP request knows about the client.
type RequestMeta struct {
	ClientIP  string
	UserAgent string
}

// NewIdentity hashes the raw email and phone and keeps client metadata as-is.
// Blank inputs leave the matching field empty.
func NewIdentity(email, phone string, meta RequestMeta) Identity {
	return Identity{
		HashedEmail: hashing.HashEmail(email),
		HashedPhone: hashing.HashPhone(phone),
		ClientIP:    strings.TrimSpace(meta.ClientIP),
		UserAgent:   strings.TrimSpace(meta.UserAgent),
	}
}

// MinorToMajor converts an amount reported in minor units (cents) to major units.
func MinorToMajor(amountMinor int64) float64 {
	return float64(amountMinor) / 100
}

// NormalizeCurrency upper-cases an ISO-4217 code, defaulting to USD.
func NormalizeCurrency(currency string) string {
	c := strings.ToUpper(strings.TrimSpace(currency))
	if c == "" {
		return DefaultCurrency
	}
	return c
}

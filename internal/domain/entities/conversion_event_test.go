package entities

import (
	"testing"

	"openaria_tracking/pkg/hashing"
)

func TestNewIdentity(t *testing.T) {
	id := NewIdentity(" Jane@Example.com", "+1 (555) 010-9999", RequestMeta{ClientIP: " 203.0.113.7 ", UserAgent: "UA"})
	if id.HashedEmail != hashing.Hash("jane@example.com") {
		t.Fatalf("unexpected email hash %s", id.HashedEmail)
	}
	if id.HashedPhone != hashing.Hash("15550109999") {
		t.Fatalf("unexpected phone hash %s", id.HashedPhone)
	}
	if id.ClientIP != "203.0.113.7" || id.UserAgent != "UA" {
		t.Fatalf("unexpected meta: %+v", id)
	}

	empty := NewIdentity("", "n/a", RequestMeta{})
	if empty.HashedEmail != "" || empty.HashedPhone != "" {
		t.Fatalf("blank inputs must not be hashed: %+v", empty)
	}
}

func TestEventName_IsValid(t *testing.T) {
	for _, n := range []EventName{EventPurchase, EventLead, EventContact, EventViewContent, EventInitiateCheckout} {
		if !n.IsValid() {
			t.Fatalf("%s should be valid", n)
		}
	}
	if EventName("PageView").IsValid() {
		t.Fatalf("PageView should not be valid")
	}
}

func TestMinorToMajorAndCurrency(t *testing.T) {
	if MinorToMajor(99700) != 997 || MinorToMajor(9750) != 97.5 {
		t.Fatalf("unexpected conversion")
	}
	if NormalizeCurrency(" usd ") != "USD" || NormalizeCurrency("") != "USD" || NormalizeCurrency("eur") != "EUR" {
		t.Fatalf("unexpected currency normalization")
	}
}
